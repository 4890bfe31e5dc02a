// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/gweonlab/pispino/seqtools"
)

// A ReadPair names the forward and reverse raw read files of a sample.
type ReadPair struct {
	SampleID string
	Forward  string
	Reverse  string
}

func validSampleID(id string) error {
	if id == "" {
		return fmt.Errorf("prep: empty sample identifier")
	}
	for _, r := range id {
		if r == '/' || r == os.PathSeparator || unicode.IsSpace(r) {
			return fmt.Errorf("prep: invalid sample identifier %q", id)
		}
	}
	return nil
}

// ParseReadPairs reads a read pairs list from r. Each line holds a sample
// identifier, a forward read file name and a reverse read file name,
// separated by tabs. Blank lines and lines starting with '#' are ignored.
func ParseReadPairs(r io.Reader) ([]ReadPair, error) {
	var (
		pairs []ReadPair
		seen  = make(map[string]int)
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		f := strings.Split(text, "\t")
		if len(f) != 3 {
			return nil, fmt.Errorf("prep: read pairs line %d: expected 3 tab separated fields, found %d", line, len(f))
		}
		p := ReadPair{
			SampleID: strings.TrimSpace(f[0]),
			Forward:  strings.TrimSpace(f[1]),
			Reverse:  strings.TrimSpace(f[2]),
		}
		err := validSampleID(p.SampleID)
		if err != nil {
			return nil, fmt.Errorf("%v on read pairs line %d", err, line)
		}
		if p.Forward == "" || p.Reverse == "" {
			return nil, fmt.Errorf("prep: read pairs line %d: missing file name", line)
		}
		if prev, ok := seen[p.SampleID]; ok {
			return nil, fmt.Errorf("prep: read pairs line %d: sample %q already listed on line %d", line, p.SampleID, prev)
		}
		seen[p.SampleID] = line
		pairs = append(pairs, p)
	}
	err := sc.Err()
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("prep: no read pairs listed")
	}
	return pairs, nil
}

// ReadPairsFile reads the read pairs list in the named file.
func ReadPairsFile(path string) ([]ReadPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReadPairs(f)
}

// WriteReadPairs writes pairs to w in the format read by ParseReadPairs.
func WriteReadPairs(w io.Writer, pairs []ReadPair) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "#SampleID\tForward\tReverse")
	for _, p := range pairs {
		fmt.Fprintf(bw, "%s\t%s\t%s\n", p.SampleID, p.Forward, p.Reverse)
	}
	return bw.Flush()
}

const (
	forwardMark = "_R1"
	reverseMark = "_R2"
)

// ScanReadPairs returns the read pairs found in dir. Read files are those
// with a FASTQ, gzip or bzip2 extension; a forward file is marked by "_R1"
// and its reverse file has the same name with the last "_R1" replaced by
// "_R2". The sample identifier is the part of the file name before the
// first '_'. Pairs are returned sorted by sample identifier.
func ScanReadPairs(dir string) ([]ReadPair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make(map[string]bool)
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if _, err := seqtools.CompressionOf(e.Name()); err != nil {
			continue
		}
		files[e.Name()] = true
	}

	var (
		pairs []ReadPair
		seen  = make(map[string]string)
		used  = make(map[string]bool)
	)
	for name := range files {
		i := strings.LastIndex(name, forwardMark)
		if i < 0 {
			continue
		}
		rev := name[:i] + reverseMark + name[i+len(forwardMark):]
		if !files[rev] {
			return nil, fmt.Errorf("prep: no reverse read file for %q", name)
		}
		id := name[:strings.Index(name, "_")]
		err := validSampleID(id)
		if err != nil {
			return nil, fmt.Errorf("%v from %q", err, name)
		}
		if other, ok := seen[id]; ok {
			return nil, fmt.Errorf("prep: sample %q from both %q and %q", id, other, name)
		}
		seen[id] = name
		used[name], used[rev] = true, true
		pairs = append(pairs, ReadPair{SampleID: id, Forward: name, Reverse: rev})
	}
	for name := range files {
		if strings.Contains(name, reverseMark) && !used[name] {
			return nil, fmt.Errorf("prep: no forward read file for %q", name)
		}
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("prep: no read pairs found in %q", dir)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].SampleID < pairs[j].SampleID })
	return pairs, nil
}
