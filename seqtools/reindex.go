// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqtools

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

func isSpace(r rune) bool { return unicode.IsSpace(r) }

// A Sample pairs a sample identifier with the name of its source file.
type Sample struct {
	// ID is used to name regenerated record identifiers
	// and the output file.
	ID string

	// Name is the source file name relative to the
	// input directory.
	Name string
}

// ReindexFastq copies the FASTQ records read from src to dst, replacing the
// identifier line of each record with "@<id>_<n>", where n counts records
// from 1. All other lines have trailing white space removed and are
// terminated by a single newline. ReindexFastq returns the number of
// identifier lines written.
//
// Record boundaries are found by line position alone; the content of the
// original identifier lines is ignored.
func ReindexFastq(dst io.Writer, src io.Reader, id string) (n int, err error) {
	var (
		r      = bufio.NewReader(src)
		w      = bufio.NewWriter(dst)
		header = make([]byte, 0, len(id)+24)
	)
	for line := 0; ; line++ {
		b, rerr := r.ReadBytes('\n')
		if len(b) != 0 {
			if line%4 == 0 {
				n++
				header = append(header[:0], '@')
				header = append(header, id...)
				header = append(header, '_')
				header = strconv.AppendInt(header, int64(n), 10)
				header = append(header, '\n')
				_, err = w.Write(header)
			} else {
				_, err = w.Write(bytes.TrimRightFunc(b, isSpace))
				if err == nil {
					err = w.WriteByte('\n')
				}
			}
			if err != nil {
				return n, err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return n, rerr
		}
	}
	return n, w.Flush()
}

// RecreateDir removes dir and everything it contains, if it exists, and
// creates it again empty.
func RecreateDir(dir string) error {
	err := os.RemoveAll(dir)
	if err != nil {
		return &IOError{Op: "remove", Path: dir, Err: err}
	}
	err = os.Mkdir(dir, 0o755)
	if err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// Reindex writes a reindexed copy of each sample's FASTQ file in inDir to
// outDir/<ID>.fastq and returns the paths written, in sample order.
//
// All samples must share one file extension, which selects the compression
// envelope for the batch. This is checked before anything is written.
//
// Reindex is destructive: outDir and any contents it holds are removed
// before the outputs are written. At most one call to Reindex should be
// active for a given outDir.
func Reindex(inDir, outDir string, samples []Sample) ([]string, error) {
	names := make([]string, len(samples))
	for i, s := range samples {
		if s.ID == "" || strings.ContainsRune(s.ID, filepath.Separator) {
			return nil, &FormatError{Op: "reindex", Names: []string{s.ID}, Reason: "invalid sample identifier"}
		}
		names[i] = s.Name
	}
	c, err := BatchCompression(names)
	if err != nil {
		return nil, err
	}

	err = RecreateDir(outDir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(samples))
	for i, s := range samples {
		paths[i] = filepath.Join(outDir, s.ID+".fastq")
		err = reindexFile(paths[i], filepath.Join(inDir, s.Name), s.ID, c)
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func reindexFile(dst, src, id string, c Compression) (err error) {
	in, err := Open(src, c)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return &IOError{Op: "create", Path: dst, Err: err}
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = &IOError{Op: "close", Path: dst, Err: cerr}
		}
	}()

	return reindexStream(out, dst, in, src, id)
}

// reindexStream reindexes src into dst, attributing a failure to the
// path of whichever side caused it.
func reindexStream(dst io.Writer, dstPath string, src io.Reader, srcPath, id string) error {
	w := &errWriter{w: dst}
	_, err := ReindexFastq(w, src, id)
	if w.err != nil {
		return &IOError{Op: "write", Path: dstPath, Err: w.err}
	}
	if err != nil {
		return &IOError{Op: "read", Path: srcPath, Err: err}
	}
	return nil
}

// errWriter records the first error returned by w.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}
