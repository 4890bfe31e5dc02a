// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"errors"
	"fmt"
	"strings"
)

// Joiner specifies the program used to join paired-end reads.
type Joiner int

const (
	PEAR Joiner = iota
	FastqJoin
	Vsearch
)

func (j Joiner) String() string {
	switch j {
	case PEAR:
		return "PEAR"
	case FastqJoin:
		return "FASTQJOIN"
	case Vsearch:
		return "VSEARCH"
	}
	return fmt.Sprintf("Joiner(%d)", int(j))
}

// ParseJoiner returns the Joiner named by s, ignoring case.
func ParseJoiner(s string) (Joiner, error) {
	switch strings.ToUpper(s) {
	case "PEAR":
		return PEAR, nil
	case "FASTQJOIN", "FASTQ-JOIN":
		return FastqJoin, nil
	case "VSEARCH":
		return Vsearch, nil
	}
	return 0, fmt.Errorf("prep: unknown joiner %q", s)
}

// Tools holds the names of the external programs used by the pipeline.
// Names without a path separator are looked up in PATH.
type Tools struct {
	Pear          string
	FastqJoin     string
	Vsearch       string
	QualityFilter string
	FastqToFasta  string
}

// Colours holds the terminal escape sequences used when logging.
type Colours struct {
	Timestamp string
	Count     string
	Reset     string
}

// ANSI is the default colour scheme.
var ANSI = Colours{
	Timestamp: "\033[91m",
	Count:     "\033[94m",
	Reset:     "\033[0m",
}

// Config describes a sequence preparation run.
type Config struct {
	// InDir holds the raw read files named in the
	// read pairs list.
	InDir string

	// OutDir receives the prepped sequences, the
	// log and the summary. Temporary files are
	// written to OutDir/tmp.
	OutDir string

	Tools   Tools
	Colours Colours

	Joiner Joiner

	// ForwardOnly skips joining and uses the
	// forward reads alone.
	ForwardOnly bool

	PhredBase int
	Threads   int

	// PearParams holds additional arguments
	// passed to PEAR.
	PearParams []string

	// QualityThreshold and QualityPercent are
	// the -q and -p options of fastq_quality_filter.
	QualityThreshold int
	QualityPercent   int

	// DiscardN removes reads containing
	// N bases during FASTA conversion.
	DiscardN bool

	// Retain keeps the temporary directory.
	Retain bool

	// Verbose displays the output of the
	// external programs.
	Verbose bool

	// Plot writes a bar chart of read counts
	// per stage to OutDir/read_counts.png.
	Plot bool
}

// DefaultConfig returns a Config with the default tool names and
// parameters. InDir and OutDir are left empty.
func DefaultConfig() Config {
	return Config{
		Tools: Tools{
			Pear:          "pear",
			FastqJoin:     "fastq-join",
			Vsearch:       "vsearch",
			QualityFilter: "fastq_quality_filter",
			FastqToFasta:  "fastq_to_fasta",
		},
		Colours:          ANSI,
		Joiner:           PEAR,
		PhredBase:        33,
		Threads:          1,
		QualityThreshold: 30,
		QualityPercent:   80,
	}
}

// maxQuality is the highest phred quality score
// representable in either FASTQ encoding.
const maxQuality = 93

// Validate returns an error if c cannot describe a run.
func (c *Config) Validate() error {
	switch {
	case c.InDir == "":
		return errors.New("prep: no input directory")
	case c.OutDir == "":
		return errors.New("prep: no output directory")
	case c.PhredBase != 33 && c.PhredBase != 64:
		return fmt.Errorf("prep: invalid phred base %d: must be 33 or 64", c.PhredBase)
	case c.Threads < 1:
		return fmt.Errorf("prep: invalid thread count %d", c.Threads)
	case c.QualityThreshold < 0 || c.QualityThreshold > maxQuality:
		return fmt.Errorf("prep: invalid quality threshold %d", c.QualityThreshold)
	case c.QualityPercent < 0 || c.QualityPercent > 100:
		return fmt.Errorf("prep: invalid quality percent %d", c.QualityPercent)
	case c.Joiner < PEAR || c.Joiner > Vsearch:
		return fmt.Errorf("prep: invalid joiner %v", c.Joiner)
	}
	return nil
}
