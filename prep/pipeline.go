// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gweonlab/pispino/seqtools"
)

// Files written to the output directory.
const (
	PreppedFile = "prepped.fasta"
	LogFile     = "output.log"
	SummaryFile = "summary.log"
	PlotFile    = "read_counts.png"
	TmpDir      = "tmp"
)

// Temporary stage directories.
const (
	reindexFwdDir = "reindex_f"
	reindexRevDir = "reindex_r"
	joinedDir     = "joined"
	filteredDir   = "qualityfiltered"
	fastaDir      = "fastqtofasta"
)

// A Summary describes a completed run.
type Summary struct {
	RunID  string
	Counts []StageCount
	Stats  Stats
}

// Run prepares the reads listed in pairs as described by cfg. The log and
// summary are written to files in cfg.OutDir, and displayed messages are
// also written to display if it is not nil.
//
// Run recreates cfg.OutDir/tmp, destroying any previous contents. Once the
// log is open, an error is logged and displayed before being returned along
// with a Summary holding the counts of the stages completed. Errors returned
// with a nil Summary have not been displayed.
func Run(cfg Config, pairs []ReadPair, display io.Writer) (*Summary, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, errors.New("prep: no read pairs")
	}
	err = os.MkdirAll(cfg.OutDir, 0o755)
	if err != nil {
		return nil, err
	}

	logFile, err := os.Create(filepath.Join(cfg.OutDir, LogFile))
	if err != nil {
		return nil, err
	}
	defer logFile.Close()
	summaryFile, err := os.Create(filepath.Join(cfg.OutDir, SummaryFile))
	if err != nil {
		return nil, err
	}
	defer summaryFile.Close()

	p := &Prep{
		Config:  cfg,
		Log:     NewLogger(logFile, display, cfg.Colours),
		Summary: summaryFile,
	}
	sum := &Summary{RunID: uuid.New().String()}
	p.Log.Printf("Run %s", sum.RunID)

	sum.Stats, err = p.prepare(pairs)
	sum.Counts = p.Counts
	if err != nil {
		p.Log.Displayf("ERROR: %v", err)
		return sum, err
	}
	return sum, summaryFile.Close()
}

func (p *Prep) prepare(pairs []ReadPair) (Stats, error) {
	ids := make([]string, len(pairs))
	for i, r := range pairs {
		ids[i] = r.SampleID
	}

	tmp := filepath.Join(p.OutDir, TmpDir)
	err := seqtools.RecreateDir(tmp)
	if err != nil {
		return Stats{}, err
	}
	var (
		fwd      = filepath.Join(tmp, reindexFwdDir)
		rev      = filepath.Join(tmp, reindexRevDir)
		joined   = filepath.Join(tmp, joinedDir)
		filtered = filepath.Join(tmp, filteredDir)
		fasta    = filepath.Join(tmp, fastaDir)
		prepped  = filepath.Join(p.OutDir, PreppedFile)
	)

	_, err = p.CountReads(pairs)
	if err != nil {
		return Stats{}, err
	}
	err = p.Reindex(pairs, fwd, rev)
	if err != nil {
		return Stats{}, err
	}
	if p.ForwardOnly {
		err = p.SkipJoin(fwd, joined, ids)
	} else {
		err = p.Join(fwd, rev, joined, ids)
	}
	if err != nil {
		return Stats{}, err
	}
	err = p.QualityFilter(joined, filtered, ids)
	if err != nil {
		return Stats{}, err
	}
	err = p.Convert(filtered, fasta, ids)
	if err != nil {
		return Stats{}, err
	}
	err = p.Merge(fasta, prepped, ids)
	if err != nil {
		return Stats{}, err
	}

	st, err := SeqStatsFile(prepped)
	if err != nil {
		return st, err
	}
	err = st.writeTo(p.Summary)
	if err != nil {
		return st, err
	}

	if p.Plot {
		path := filepath.Join(p.OutDir, PlotFile)
		err = PlotCounts(path, p.Counts)
		if err != nil {
			return st, err
		}
		p.Log.Printf("Read counts plotted to %s", path)
	}

	if !p.Retain {
		p.Log.Printf("Removing temporary directory %s", tmp)
		err = os.RemoveAll(tmp)
		if err != nil {
			return st, err
		}
	}
	p.Log.Displayf("Done - prepped sequences are in %s", prepped)
	return st, nil
}
