// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"bytes"
	"path/filepath"
	"strings"

	"gopkg.in/check.v1"
)

func (s *S) TestParseReadPairs(c *check.C) {
	in := "#SampleID\tForward\tReverse\n" +
		"\n" +
		"S1\tS1_R1.fastq.gz\tS1_R2.fastq.gz\n" +
		"S2\tS2_R1.fastq.gz\tS2_R2.fastq.gz  \n"
	pairs, err := ParseReadPairs(strings.NewReader(in))
	c.Assert(err, check.IsNil)
	c.Check(pairs, check.DeepEquals, []ReadPair{
		{SampleID: "S1", Forward: "S1_R1.fastq.gz", Reverse: "S1_R2.fastq.gz"},
		{SampleID: "S2", Forward: "S2_R1.fastq.gz", Reverse: "S2_R2.fastq.gz"},
	})

	var buf bytes.Buffer
	c.Assert(WriteReadPairs(&buf, pairs), check.IsNil)
	again, err := ParseReadPairs(&buf)
	c.Check(err, check.IsNil)
	c.Check(again, check.DeepEquals, pairs)
}

func (s *S) TestParseReadPairsErrors(c *check.C) {
	for _, t := range []struct {
		in  string
		err string
	}{
		{in: "S1\tS1_R1.fastq\n", err: ".*expected 3 tab separated fields, found 2"},
		{in: "S1\ta\tb\nS1\tc\td\n", err: `.*sample "S1" already listed on line 1`},
		{in: "S 1\ta\tb\n", err: ".*invalid sample identifier.*"},
		{in: "a/b\ta\tb\n", err: ".*invalid sample identifier.*"},
		{in: "S1\t\tb\n", err: ".*missing file name"},
		{in: "# nothing here\n", err: ".*no read pairs listed"},
	} {
		_, err := ParseReadPairs(strings.NewReader(t.in))
		c.Check(err, check.ErrorMatches, t.err, check.Commentf("%q", t.in))
	}
}

func (s *S) TestScanReadPairs(c *check.C) {
	dir := c.MkDir()
	for _, name := range []string{
		"B2_S7_L001_R1_001.fastq.gz",
		"B2_S7_L001_R2_001.fastq.gz",
		"A1_S1_L001_R1_001.fastq.gz",
		"A1_S1_L001_R2_001.fastq.gz",
		"README.txt",
	} {
		writeFile(c, filepath.Join(dir, name), "")
	}
	pairs, err := ScanReadPairs(dir)
	c.Assert(err, check.IsNil)
	c.Check(pairs, check.DeepEquals, []ReadPair{
		{SampleID: "A1", Forward: "A1_S1_L001_R1_001.fastq.gz", Reverse: "A1_S1_L001_R2_001.fastq.gz"},
		{SampleID: "B2", Forward: "B2_S7_L001_R1_001.fastq.gz", Reverse: "B2_S7_L001_R2_001.fastq.gz"},
	})

	writeFile(c, filepath.Join(dir, "C3_R2.fastq.gz"), "")
	_, err = ScanReadPairs(dir)
	c.Check(err, check.ErrorMatches, `.*no forward read file for "C3_R2.fastq.gz"`)

	dir = c.MkDir()
	writeFile(c, filepath.Join(dir, "C3_R1.fastq"), "")
	_, err = ScanReadPairs(dir)
	c.Check(err, check.ErrorMatches, `.*no reverse read file for "C3_R1.fastq"`)

	dir = c.MkDir()
	for _, name := range []string{"D4_a_R1.fastq", "D4_a_R2.fastq", "D4_b_R1.fastq", "D4_b_R2.fastq"} {
		writeFile(c, filepath.Join(dir, name), "")
	}
	_, err = ScanReadPairs(dir)
	c.Check(err, check.ErrorMatches, `.*sample "D4" from both.*`)

	_, err = ScanReadPairs(c.MkDir())
	c.Check(err, check.ErrorMatches, ".*no read pairs found.*")
}
