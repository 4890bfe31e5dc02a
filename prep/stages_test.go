// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/check.v1"
)

// reindexedPairs writes reindexed forward and reverse reads for samples
// S1 (two reads), S2 (one read) and S3 (no reads).
func reindexedPairs(c *check.C) (fwd, rev string, ids []string) {
	fwd, rev = c.MkDir(), c.MkDir()
	for _, dir := range []string{fwd, rev} {
		writeFile(c, filepath.Join(dir, "S1.fastq"), "@S1_1\nACGT\n+\nIIII\n@S1_2\nTTGA\n+\nHHHH\n")
		writeFile(c, filepath.Join(dir, "S2.fastq"), "@S2_1\nGGCA\n+\nIIII\n")
		writeFile(c, filepath.Join(dir, "S3.fastq"), "")
	}
	return fwd, rev, []string{"S1", "S2", "S3"}
}

func (s *S) TestCountReads(c *check.C) {
	p, _, sum := newPrep(c)
	p.InDir = c.MkDir()
	writeFile(c, filepath.Join(p.InDir, "S1_R1.fastq"), twoReads)
	writeFile(c, filepath.Join(p.InDir, "S1_R2.fastq"), twoReads)
	writeFile(c, filepath.Join(p.InDir, "S2_R1.fastq"), oneRead)
	writeFile(c, filepath.Join(p.InDir, "S2_R2.fastq"), oneRead)
	pairs := []ReadPair{
		{SampleID: "S1", Forward: "S1_R1.fastq", Reverse: "S1_R2.fastq"},
		{SampleID: "S2", Forward: "S2_R1.fastq", Reverse: "S2_R2.fastq"},
	}

	n, err := p.CountReads(pairs)
	c.Check(err, check.IsNil)
	c.Check(n, check.Equals, 6)
	c.Check(sum.String(), check.Equals, "Number of reads: 6\n")

	p.ForwardOnly = true
	n, err = p.CountReads(pairs)
	c.Check(err, check.IsNil)
	c.Check(n, check.Equals, 3)

	writeFile(c, filepath.Join(p.InDir, "E_R1.fastq"), "")
	_, err = p.CountReads([]ReadPair{{SampleID: "E", Forward: "E_R1.fastq", Reverse: "E_R2.fastq"}})
	c.Check(err, check.FitsTypeOf, &EmptyResultError{})
}

func (s *S) TestJoin(c *check.C) {
	for _, j := range []Joiner{PEAR, FastqJoin, Vsearch} {
		p, log, sum := newPrep(c)
		p.Joiner = j
		fwd, rev, ids := reindexedPairs(c)
		out := filepath.Join(c.MkDir(), "joined")

		err := p.Join(fwd, rev, out, ids)
		c.Assert(err, check.IsNil, check.Commentf("%v", j))
		c.Check(readFile(c, filepath.Join(out, "S1.fastq")), check.Equals, readFile(c, filepath.Join(fwd, "S1.fastq")))
		c.Check(readFile(c, filepath.Join(out, "S2.fastq")), check.Equals, readFile(c, filepath.Join(fwd, "S2.fastq")))
		for _, path := range emptyJoinOutputs(out, "S3") {
			c.Check(readFile(c, path), check.Equals, "", check.Commentf("%v %s", j, path))
		}
		c.Check(sum.String(), check.Equals, "Number of joined reads: 3\n", check.Commentf("%v", j))
		c.Check(p.Counts, check.DeepEquals, []StageCount{{Stage: "joining", Label: "Number of joined reads", Count: 3}})
		if j == PEAR {
			c.Check(strings.Contains(log.String(), "PEAR stand-in"), check.Equals, true)
		}
	}
}

func (s *S) TestJoinToolFailure(c *check.C) {
	p, log, _ := newPrep(c)
	p.Tools.Pear = stub(c, c.MkDir(), "pear", failStub)
	fwd, rev, ids := reindexedPairs(c)

	err := p.Join(fwd, rev, filepath.Join(c.MkDir(), "joined"), ids)
	var te *ToolError
	c.Assert(errors.As(err, &te), check.Equals, true)
	c.Check(te.Args[0], check.Equals, p.Tools.Pear)
	c.Check(strings.Contains(log.String(), "something went wrong"), check.Equals, true)
}

func (s *S) TestSkipJoin(c *check.C) {
	p, _, sum := newPrep(c)
	fwd, _, ids := reindexedPairs(c)
	out := filepath.Join(c.MkDir(), "joined")

	err := p.SkipJoin(fwd, out, ids)
	c.Assert(err, check.IsNil)
	c.Check(readFile(c, filepath.Join(out, "S1.fastq")), check.Equals, readFile(c, filepath.Join(fwd, "S1.fastq")))
	c.Check(readFile(c, filepath.Join(out, "S3.fastq")), check.Equals, "")
	c.Check(sum.String(), check.Equals, "Number of forward reads: 3\n")
}

func (s *S) TestQualityFilter(c *check.C) {
	p, _, sum := newPrep(c)
	in, _, ids := reindexedPairs(c)
	out := filepath.Join(c.MkDir(), "filtered")

	// A stale output directory is replaced.
	c.Assert(os.Mkdir(out, 0o755), check.IsNil)
	writeFile(c, filepath.Join(out, "stale.fastq"), twoReads)

	err := p.QualityFilter(in, out, ids)
	c.Assert(err, check.IsNil)
	_, err = os.Stat(filepath.Join(out, "stale.fastq"))
	c.Check(os.IsNotExist(err), check.Equals, true)
	c.Check(readFile(c, filepath.Join(out, "S3.fastq")), check.Equals, "")
	c.Check(sum.String(), check.Equals, "Number of quality filtered reads: 3\n")

	p.Tools.QualityFilter = stub(c, c.MkDir(), "fastq_quality_filter", emptyStub)
	err = p.QualityFilter(in, out, ids)
	var ee *EmptyResultError
	c.Assert(errors.As(err, &ee), check.Equals, true)
	c.Check(ee.Stage, check.Equals, "quality filtering")
}

func (s *S) TestConvert(c *check.C) {
	p, _, sum := newPrep(c)
	in, _, ids := reindexedPairs(c)
	out := filepath.Join(c.MkDir(), "fasta")

	err := p.Convert(in, out, ids)
	c.Assert(err, check.IsNil)
	c.Check(readFile(c, filepath.Join(out, "S1.fasta")), check.Equals, ">S1_1\nACGT\n>S1_2\nTTGA\n")
	c.Check(readFile(c, filepath.Join(out, "S3.fasta")), check.Equals, "")
	c.Check(sum.String(), check.Equals, "Number of prepped sequences: 3\n")
}

func (s *S) TestMergeAndStats(c *check.C) {
	p, _, _ := newPrep(c)
	in := c.MkDir()
	writeFile(c, filepath.Join(in, "S1.fasta"), ">S1_1\nACGTACGTAA\n>S1_2\nTTGA\n")
	writeFile(c, filepath.Join(in, "S2.fasta"), ">S2_1\nGGCAT\n")
	writeFile(c, filepath.Join(in, "S3.fasta"), "")
	out := filepath.Join(c.MkDir(), PreppedFile)

	err := p.Merge(in, out, []string{"S2", "S1", "S3"})
	c.Assert(err, check.IsNil)
	c.Check(readFile(c, out), check.Equals, ">S2_1\nGGCAT\n>S1_1\nACGTACGTAA\n>S1_2\nTTGA\n")

	st, err := SeqStatsFile(out)
	c.Assert(err, check.IsNil)
	c.Check(st.Sequences, check.Equals, 3)
	c.Check(st.Size, check.Equals, 19)
	c.Check(st.Min, check.Equals, 4)
	c.Check(st.Max, check.Equals, 10)
	c.Check(st.N50, check.Equals, 10)
	c.Check(st.Mean, check.Equals, 19.0/3)
	c.Check(st.StdDev > 0, check.Equals, true)

	st, err = SeqStats(strings.NewReader(""))
	c.Check(err, check.IsNil)
	c.Check(st, check.Equals, Stats{})
}

func (s *S) TestPlotCounts(c *check.C) {
	path := filepath.Join(c.MkDir(), PlotFile)
	err := PlotCounts(path, []StageCount{
		{Stage: "counting raw reads", Count: 600},
		{Stage: "joining", Count: 250},
		{Stage: "quality filtering", Count: 200},
	})
	c.Assert(err, check.IsNil)
	fi, err := os.Stat(path)
	c.Assert(err, check.IsNil)
	c.Check(fi.Size() > 0, check.Equals, true)

	c.Check(PlotCounts(path, nil), check.NotNil)
}
