// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vsearch implements interaction with the paired-end read merging
// mode of VSEARCH.
package vsearch

import (
	"errors"
	"os/exec"

	"github.com/biogo/external"
)

// MergePairs merges paired-end reads with vsearch --fastq_mergepairs.
type MergePairs struct {
	// Usage: vsearch --fastq_mergepairs <forward> --reverse <reverse> --fastqout <out> [options]
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}vsearch{{end}}"` // vsearch

	Forward string `buildarg:"{{if .}}--fastq_mergepairs{{split}}{{.}}{{end}}"` // --fastq_mergepairs <file>
	Reverse string `buildarg:"{{if .}}--reverse{{split}}{{.}}{{end}}"`          // --reverse <file>
	Output  string `buildarg:"{{if .}}--fastqout{{split}}{{.}}{{end}}"`         // --fastqout <file>

	Threads   int `buildarg:"{{if .}}--threads{{split}}{{.}}{{end}}"`     // --threads <n>
	PhredBase int `buildarg:"{{if .}}--fastq_ascii{{split}}{{.}}{{end}}"` // --fastq_ascii <33|64>

	AllowStagger bool `buildarg:"{{if .}}--fastq_allowmergestagger{{end}}"`         // --fastq_allowmergestagger
	MaxDiffs     int  `buildarg:"{{if .}}--fastq_maxdiffs{{split}}{{.}}{{end}}"`    // --fastq_maxdiffs <n>
	MinOverlap   int  `buildarg:"{{if .}}--fastq_minovlen{{split}}{{.}}{{end}}"`    // --fastq_minovlen <n>
	MinMergeLen  int  `buildarg:"{{if .}}--fastq_minmergelen{{split}}{{.}}{{end}}"` // --fastq_minmergelen <n>
}

func (m MergePairs) BuildCommand() (*exec.Cmd, error) {
	if m.Forward == "" || m.Reverse == "" {
		return nil, errors.New("vsearch: missing input file")
	}
	if m.Output == "" {
		return nil, errors.New("vsearch: missing output file")
	}
	cl, err := external.Build(m)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
