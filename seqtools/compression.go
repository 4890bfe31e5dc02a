// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqtools

import (
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	gzip "github.com/klauspost/pgzip"
)

// Compression is the envelope applied to a text stream before it is split
// into lines.
type Compression int

const (
	None Compression = iota
	Gzip
	Bzip2
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	}
	return "unknown"
}

// extension returns the text after the final dot of name, or name itself
// if it holds no dot.
func extension(name string) string {
	return strings.TrimRightFunc(name[strings.LastIndex(name, ".")+1:], isSpace)
}

// CompressionOf returns the compression envelope implied by the extension
// of name: "fastq" is uncompressed, "gz" is gzip and "bz2" is bzip2.
func CompressionOf(name string) (Compression, error) {
	switch extension(name) {
	case "fastq":
		return None, nil
	case "gz":
		return Gzip, nil
	case "bz2":
		return Bzip2, nil
	}
	return None, &FormatError{Op: "compression", Names: []string{name}, Reason: "unknown extension"}
}

// BatchCompression returns the single compression envelope shared by all
// of names. It is an error for names to be empty or to hold more than one
// extension.
func BatchCompression(names []string) (Compression, error) {
	if len(names) == 0 {
		return None, &FormatError{Op: "batch compression", Reason: "no files"}
	}
	ext := extension(names[0])
	for _, n := range names[1:] {
		if extension(n) != ext {
			return None, &FormatError{Op: "batch compression", Names: names, Reason: "more than one type of extension"}
		}
	}
	c, err := CompressionOf(names[0])
	if err != nil {
		err.(*FormatError).Names = names
		err.(*FormatError).Op = "batch compression"
		return None, err
	}
	return c, nil
}

// NewReader returns a reader that removes the envelope c from r. Closing the
// returned reader does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err == io.EOF {
			// A zero-length file holds no gzip header; treat it as empty.
			return io.NopCloser(strings.NewReader("")), nil
		}
		if err != nil {
			return nil, err
		}
		return zr, nil
	case Bzip2:
		return bzip2.NewReader(r, nil)
	}
	return nil, &FormatError{Op: "decompress", Names: []string{c.String()}, Reason: "unknown compression"}
}

// file is an open, decompressing file.
type file struct {
	io.ReadCloser
	f *os.File
}

func (f file) Close() error {
	err := f.ReadCloser.Close()
	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open opens the named file for reading through the envelope c.
func Open(path string, c Compression) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	r, err := NewReader(f, c)
	if err != nil {
		f.Close()
		if _, ok := err.(*FormatError); ok {
			return nil, err
		}
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return file{ReadCloser: r, f: f}, nil
}
