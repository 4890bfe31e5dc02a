// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"fmt"
	"strings"
)

// An EmptyResultError is returned when no records remain after a stage.
type EmptyResultError struct {
	Stage string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("prep: 0 sequences after %s", e.Stage)
}

// A ToolError is returned when an external program fails to start or exits
// with a non-zero status.
type ToolError struct {
	Args []string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("prep: %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }
