// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pear implements interaction with the PEAR paired-end read merger.
package pear

import (
	"errors"
	"os/exec"

	"github.com/biogo/external"
)

// Pear merges a pair of FASTQ files. On success the merged reads are
// written to Output+".assembled.fastq".
type Pear struct {
	// Usage: pear -f <forward> -r <reverse> -o <output prefix> [options]
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}pear{{end}}"` // pear

	Forward string `buildarg:"{{if .}}-f{{split}}{{.}}{{end}}"` // -f <file>
	Reverse string `buildarg:"{{if .}}-r{{split}}{{.}}{{end}}"` // -r <file>
	Output  string `buildarg:"{{if .}}-o{{split}}{{.}}{{end}}"` // -o <prefix>

	Threads   int `buildarg:"{{if .}}-j{{split}}{{.}}{{end}}"` // -j <n>
	PhredBase int `buildarg:"{{if .}}-b{{split}}{{.}}{{end}}"` // -b <33|64>

	// QualityThreshold is the base quality used for trimming
	// the low quality tail of reads.
	QualityThreshold int `buildarg:"{{if .}}-q{{split}}{{.}}{{end}}"` // -q <n>

	// PValue is the significance threshold of the statistical
	// test for merging. Zero leaves the PEAR default.
	PValue float64 `buildarg:"{{if .}}-p{{split}}{{.}}{{end}}"` // -p <p>

	// Extra holds additional arguments passed verbatim.
	Extra []string `buildarg:"{{range $i, $a := .}}{{if $i}}{{split}}{{end}}{{$a}}{{end}}"`
}

// AssembledSuffix is the suffix PEAR appends to the output prefix for
// merged reads.
const AssembledSuffix = ".assembled.fastq"

func (p Pear) BuildCommand() (*exec.Cmd, error) {
	if p.Forward == "" || p.Reverse == "" {
		return nil, errors.New("pear: missing input file")
	}
	if p.Output == "" {
		return nil, errors.New("pear: missing output prefix")
	}
	cl, err := external.Build(p)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
