// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastqjoin implements interaction with the ea-utils fastq-join
// program.
package fastqjoin

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/biogo/external"
)

// FastqJoin joins overlapping paired-end reads.
type FastqJoin struct {
	// Usage: fastq-join [options] <read1.fq> <read2.fq> -o <read.%.fq>
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}fastq-join{{end}}"` // fastq-join

	// Output is the output file template. A '%' is replaced
	// by "join", "un1" and "un2" for the joined and unjoined
	// read files.
	Output string `buildarg:"{{if .}}-o{{split}}{{.}}{{end}}"` // -o <template>

	MaxDiff int `buildarg:"{{if .}}-p{{split}}{{.}}{{end}}"` // -p <percent>
	MinLen  int `buildarg:"{{if .}}-m{{split}}{{.}}{{end}}"` // -m <n>

	Forward string `buildarg:"{{.}}"` // <read1.fq>
	Reverse string `buildarg:"{{.}}"` // <read2.fq>
}

// Joined returns the name of the joined read file for the output
// template tmpl.
func Joined(tmpl string) string { return strings.Replace(tmpl, "%", "join", 1) }

func (f FastqJoin) BuildCommand() (*exec.Cmd, error) {
	if f.Forward == "" || f.Reverse == "" {
		return nil, errors.New("fastqjoin: missing input file")
	}
	if !strings.Contains(f.Output, "%") {
		return nil, errors.New("fastqjoin: output template must contain '%'")
	}
	cl, err := external.Build(f)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
