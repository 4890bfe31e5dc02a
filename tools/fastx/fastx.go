// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastx implements interaction with programs from the FASTX-Toolkit.
package fastx

import (
	"errors"
	"os/exec"

	"github.com/biogo/external"
)

// QualityFilter removes reads with too few high quality bases using
// fastq_quality_filter.
type QualityFilter struct {
	// Usage: fastq_quality_filter -i <in> -o <out> -q <quality> -p <percent> [-Q33]
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}fastq_quality_filter{{end}}"` // fastq_quality_filter

	In  string `buildarg:"{{if .}}-i{{split}}{{.}}{{end}}"` // -i <file>
	Out string `buildarg:"{{if .}}-o{{split}}{{.}}{{end}}"` // -o <file>

	// Quality is the minimum quality score to keep.
	Quality int `buildarg:"-q{{split}}{{.}}"` // -q <n>

	// Percent is the minimum percent of bases that must
	// have at least Quality.
	Percent int `buildarg:"-p{{split}}{{.}}"` // -p <n>

	PhredBase int `buildarg:"{{if .}}-Q{{.}}{{end}}"` // -Q<33|64>
}

func (q QualityFilter) BuildCommand() (*exec.Cmd, error) {
	if q.In == "" || q.Out == "" {
		return nil, errors.New("fastx: missing input or output file")
	}
	cl, err := external.Build(q)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// ToFasta converts FASTQ to FASTA using fastq_to_fasta.
type ToFasta struct {
	// Usage: fastq_to_fasta -i <in> -o <out> [-Q33] [-n]
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}fastq_to_fasta{{end}}"` // fastq_to_fasta

	In  string `buildarg:"{{if .}}-i{{split}}{{.}}{{end}}"` // -i <file>
	Out string `buildarg:"{{if .}}-o{{split}}{{.}}{{end}}"` // -o <file>

	PhredBase int `buildarg:"{{if .}}-Q{{.}}{{end}}"` // -Q<33|64>

	// KeepN retains reads containing unknown (N) bases.
	KeepN bool `buildarg:"{{if .}}-n{{end}}"` // -n
}

func (t ToFasta) BuildCommand() (*exec.Cmd, error) {
	if t.In == "" || t.Out == "" {
		return nil, errors.New("fastx: missing input or output file")
	}
	cl, err := external.Build(t)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
