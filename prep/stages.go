// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gweonlab/pispino/seqtools"
	"github.com/gweonlab/pispino/tools/fastqjoin"
	"github.com/gweonlab/pispino/tools/fastx"
	"github.com/gweonlab/pispino/tools/pear"
	"github.com/gweonlab/pispino/tools/vsearch"
)

// Fixed joiner parameters.
const (
	pearQuality = 30
	pearPValue  = 0.0001

	vsearchMaxDiffs    = 500
	vsearchMinOverlap  = 20
	vsearchMinMergeLen = 100
)

// A StageCount is the number of records remaining after a stage.
type StageCount struct {
	Stage string
	Label string
	Count int
}

// Prep runs the stages of sequence preparation. Each stage that produces
// records counts them, reports the count to Log and Summary, and fails with
// an *EmptyResultError if no records remain.
type Prep struct {
	Config

	Log     *Logger
	Summary io.Writer

	// Counts holds the counts reported
	// by completed stages.
	Counts []StageCount
}

// tally counts the records in the uncompressed files at paths, with lines
// lines per record, and reports the total.
func (p *Prep) tally(stage, what, label string, paths []string, lines int) (int, error) {
	var n int
	for _, path := range paths {
		l, err := seqtools.CountFile(path, seqtools.None)
		if err != nil {
			return 0, err
		}
		n += l / lines
	}
	return n, p.report(stage, what, label, n)
}

func (p *Prep) report(stage, what, label string, n int) error {
	if n == 0 {
		return &EmptyResultError{Stage: stage}
	}
	p.Log.Countf("... number of %s: %d", what, n)
	fmt.Fprintf(p.Summary, "%s: %d\n", label, n)
	p.Counts = append(p.Counts, StageCount{Stage: stage, Label: label, Count: n})
	return nil
}

func samplePaths(dir string, ids []string, ext string) []string {
	paths := make([]string, len(ids))
	for i, id := range ids {
		paths[i] = filepath.Join(dir, id+ext)
	}
	return paths
}

func isEmpty(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return fi.Size() == 0, nil
}

// touch creates empty files at each of paths.
func touch(paths ...string) error {
	for _, path := range paths {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		err = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(dst, src string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(out, in)
	return err
}

// CountReads counts the raw reads in the forward files of pairs and, unless
// ForwardOnly is set, the reverse files.
func (p *Prep) CountReads(pairs []ReadPair) (int, error) {
	p.Log.Displayf("Counting sequences in rawdata")
	var names []string
	for _, r := range pairs {
		names = append(names, r.Forward)
	}
	if !p.ForwardOnly {
		for _, r := range pairs {
			names = append(names, r.Reverse)
		}
	}
	counts, err := seqtools.CountBatch(p.InDir, names)
	if err != nil {
		return 0, err
	}
	var n int
	for _, l := range counts {
		n += l / 4
	}
	return n, p.report("counting raw reads", "reads", "Number of reads", n)
}

// Reindex writes reindexed copies of the forward reads of pairs to fwdDir
// and, unless ForwardOnly is set, of the reverse reads to revDir. Both
// directories are recreated.
func (p *Prep) Reindex(pairs []ReadPair, fwdDir, revDir string) error {
	p.Log.Displayf("Reindexing forward reads")
	err := p.reindex(pairs, fwdDir, func(r ReadPair) string { return r.Forward })
	if err != nil || p.ForwardOnly {
		return err
	}
	p.Log.Displayf("Reindexing reverse reads")
	return p.reindex(pairs, revDir, func(r ReadPair) string { return r.Reverse })
}

func (p *Prep) reindex(pairs []ReadPair, dir string, name func(ReadPair) string) error {
	samples := make([]seqtools.Sample, len(pairs))
	for i, r := range pairs {
		samples[i] = seqtools.Sample{ID: r.SampleID, Name: name(r)}
	}
	paths, err := seqtools.Reindex(p.InDir, dir, samples)
	if err != nil {
		return err
	}
	for _, path := range paths {
		p.Log.Printf("Reindexed and saved: %s", path)
	}
	return nil
}

// Join joins the paired reads of each sample in fwdDir and revDir, writing
// the joined reads to outDir/<id>.fastq.
func (p *Prep) Join(fwdDir, revDir, outDir string, ids []string) error {
	p.Log.Displayf("Joining paired-end reads [%v]", p.Joiner)
	err := seqtools.RecreateDir(outDir)
	if err != nil {
		return err
	}

	for _, id := range ids {
		var (
			fwd = filepath.Join(fwdDir, id+".fastq")
			rev = filepath.Join(revDir, id+".fastq")
			out = filepath.Join(outDir, id+".fastq")
		)
		emptyFwd, err := isEmpty(fwd)
		if err != nil {
			return err
		}
		emptyRev, err := isEmpty(rev)
		if err != nil {
			return err
		}
		if emptyFwd || emptyRev {
			p.Log.Printf("Empty input for %s: writing empty outputs", id)
			err = touch(emptyJoinOutputs(outDir, id)...)
			if err != nil {
				return err
			}
			continue
		}

		switch p.Joiner {
		case PEAR:
			prefix := filepath.Join(outDir, id)
			err = run(pear.Pear{
				Cmd:              p.Tools.Pear,
				Forward:          fwd,
				Reverse:          rev,
				Output:           prefix,
				Threads:          p.Threads,
				PhredBase:        p.PhredBase,
				QualityThreshold: pearQuality,
				PValue:           pearPValue,
				Extra:            p.PearParams,
			}, p.Log, p.Verbose)
			if err == nil {
				err = os.Rename(prefix+pear.AssembledSuffix, out)
			}
		case FastqJoin:
			tmpl := filepath.Join(outDir, id+".%.fastq")
			err = run(fastqjoin.FastqJoin{
				Cmd:     p.Tools.FastqJoin,
				Output:  tmpl,
				Forward: fwd,
				Reverse: rev,
			}, p.Log, p.Verbose)
			if err == nil {
				err = os.Rename(fastqjoin.Joined(tmpl), out)
			}
		case Vsearch:
			err = run(vsearch.MergePairs{
				Cmd:          p.Tools.Vsearch,
				Forward:      fwd,
				Reverse:      rev,
				Output:       out,
				Threads:      p.Threads,
				PhredBase:    p.PhredBase,
				AllowStagger: true,
				MaxDiffs:     vsearchMaxDiffs,
				MinOverlap:   vsearchMinOverlap,
				MinMergeLen:  vsearchMinMergeLen,
			}, p.Log, p.Verbose)
		default:
			err = fmt.Errorf("prep: invalid joiner %v", p.Joiner)
		}
		if err != nil {
			return err
		}
	}

	_, err = p.tally("joining", "joined reads", "Number of joined reads", samplePaths(outDir, ids, ".fastq"), 4)
	return err
}

func emptyJoinOutputs(dir, id string) []string {
	base := filepath.Join(dir, id)
	return []string{
		base + ".fastq",
		base + ".discarded.fastq",
		base + ".unassembled.forward.fastq",
		base + ".unassembled.reverse.fastq",
	}
}

// SkipJoin copies the forward reads of each sample in fwdDir to
// outDir/<id>.fastq in place of joining.
func (p *Prep) SkipJoin(fwdDir, outDir string, ids []string) error {
	p.Log.Displayf("Skip joining (just using forward reads)")
	err := seqtools.RecreateDir(outDir)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fwd := filepath.Join(fwdDir, id+".fastq")
		empty, err := isEmpty(fwd)
		if err != nil {
			return err
		}
		if empty {
			err = touch(emptyJoinOutputs(outDir, id)...)
		} else {
			err = copyFile(filepath.Join(outDir, id+".fastq"), fwd)
		}
		if err != nil {
			return err
		}
	}
	_, err = p.tally("skipping join", "forward reads", "Number of forward reads", samplePaths(outDir, ids, ".fastq"), 4)
	return err
}

// QualityFilter filters the reads of each sample in inDir with
// fastq_quality_filter, writing to outDir/<id>.fastq.
func (p *Prep) QualityFilter(inDir, outDir string, ids []string) error {
	p.Log.Displayf("Quality filtering [FASTX]")
	err := seqtools.RecreateDir(outDir)
	if err != nil {
		return err
	}
	for _, id := range ids {
		var (
			in  = filepath.Join(inDir, id+".fastq")
			out = filepath.Join(outDir, id+".fastq")
		)
		empty, err := isEmpty(in)
		if err != nil {
			return err
		}
		if empty {
			err = touch(out)
		} else {
			err = run(fastx.QualityFilter{
				Cmd:       p.Tools.QualityFilter,
				In:        in,
				Out:       out,
				Quality:   p.QualityThreshold,
				Percent:   p.QualityPercent,
				PhredBase: p.PhredBase,
			}, p.Log, p.Verbose)
		}
		if err != nil {
			return err
		}
	}
	_, err = p.tally("quality filtering", "quality filtered reads", "Number of quality filtered reads", samplePaths(outDir, ids, ".fastq"), 4)
	return err
}

// Convert converts the reads of each sample in inDir to FASTA with
// fastq_to_fasta, writing to outDir/<id>.fasta. Reads containing N are
// removed if DiscardN is set.
func (p *Prep) Convert(inDir, outDir string, ids []string) error {
	p.Log.Displayf("Converting FASTQ to FASTA [FASTX]")
	err := seqtools.RecreateDir(outDir)
	if err != nil {
		return err
	}
	for _, id := range ids {
		var (
			in  = filepath.Join(inDir, id+".fastq")
			out = filepath.Join(outDir, id+".fasta")
		)
		empty, err := isEmpty(in)
		if err != nil {
			return err
		}
		if empty {
			err = touch(out)
		} else {
			err = run(fastx.ToFasta{
				Cmd:       p.Tools.FastqToFasta,
				In:        in,
				Out:       out,
				PhredBase: p.PhredBase,
				KeepN:     !p.DiscardN,
			}, p.Log, p.Verbose)
		}
		if err != nil {
			return err
		}
	}
	_, err = p.tally("converting FASTQ to FASTA", "prepped sequences", "Number of prepped sequences", samplePaths(outDir, ids, ".fasta"), 2)
	return err
}
