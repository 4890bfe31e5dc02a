// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqtools

import (
	"bytes"
	"io"
	"path/filepath"
)

// BlockSize is the size of the blocks read by CountLines.
const BlockSize = 1 << 16

// CountLines returns the number of newline characters read from r before
// the end of the stream. Memory use is bounded by BlockSize.
func CountLines(r io.Reader) (int, error) {
	return countLines(r, BlockSize)
}

func countLines(r io.Reader, size int) (int, error) {
	var (
		buf = make([]byte, size)
		n   int
	)
	for {
		c, err := r.Read(buf)
		n += bytes.Count(buf[:c], []byte{'\n'})
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// CountFile returns the number of lines in the named file after removing
// the compression envelope c.
func CountFile(path string, c Compression) (n int, err error) {
	f, err := Open(path, c)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	n, err = CountLines(f)
	if err != nil {
		return n, &IOError{Op: "read", Path: path, Err: err}
	}
	return n, nil
}

// CountBatch returns the line counts of each of the named files in dir, in
// order. The files must share a single extension; this is checked before
// any file is opened.
func CountBatch(dir string, names []string) ([]int, error) {
	c, err := BatchCompression(names)
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(names))
	for i, name := range names {
		counts[i], err = CountFile(filepath.Join(dir, name), c)
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}
