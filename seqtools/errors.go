// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqtools

import (
	"fmt"
	"strings"
)

// A FormatError is returned when a file name or batch of file names does not
// describe a single recognised compression envelope.
type FormatError struct {
	Op     string
	Names  []string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("seqtools: %s [%s]: %s", e.Op, strings.Join(e.Names, " "), e.Reason)
}

// An IOError is returned when a file cannot be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("seqtools: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
