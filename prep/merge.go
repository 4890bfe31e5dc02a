// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"gonum.org/v1/gonum/stat"
)

// oneLine is a FASTA line width that keeps each sequence on a single line.
const oneLine = math.MaxInt32

func newFastaScanner(r io.Reader) *seqio.Scanner {
	return seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
}

// Merge concatenates the FASTA files inDir/<id>.fasta, in the order of ids,
// into outFile.
func (p *Prep) Merge(inDir, outFile string, ids []string) (err error) {
	p.Log.Displayf("Merging into a single file")
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	buf := bufio.NewWriter(f)
	w := fasta.NewWriter(buf, oneLine)
	for _, id := range ids {
		path := filepath.Join(inDir, id+".fasta")
		p.Log.Printf("Reading %s", path)
		err = appendFasta(w, path)
		if err != nil {
			return err
		}
	}
	err = buf.Flush()
	if err != nil {
		return err
	}
	p.Log.Countf("... done")
	return nil
}

func appendFasta(w *fasta.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := newFastaScanner(f)
	for sc.Next() {
		s := sc.Seq()
		_, err = w.Write(s)
		if err != nil {
			return fmt.Errorf("prep: failed to write sequence %q: %v", s.Name(), err)
		}
	}
	err = sc.Error()
	if err != nil {
		return fmt.Errorf("prep: failed during read of %q: %v", path, err)
	}
	return nil
}

// Stats holds length statistics of a set of sequences, in bases.
type Stats struct {
	Sequences int
	Size      int
	Min       int
	Max       int
	Mean      float64
	StdDev    float64
	N50       int
}

// SeqStats calculates the length statistics of the FASTA sequences read
// from r.
func SeqStats(r io.Reader) (Stats, error) {
	var (
		st   Stats
		lens []float64
	)
	sc := newFastaScanner(r)
	for sc.Next() {
		n := sc.Seq().Len()
		st.Sequences++
		st.Size += n
		if st.Sequences == 1 || n < st.Min {
			st.Min = n
		}
		if n > st.Max {
			st.Max = n
		}
		lens = append(lens, float64(n))
	}
	err := sc.Error()
	if err != nil {
		return st, err
	}
	if len(lens) == 0 {
		return st, nil
	}

	st.Mean = stat.Mean(lens, nil)
	if len(lens) > 1 {
		st.StdDev = stat.StdDev(lens, nil)
	}

	// Sort in descending order of sequence length; N50 is the
	// length at which the cumulative length reaches half the size.
	sort.Sort(sort.Reverse(sort.Float64Slice(lens)))
	var csum int
	for _, l := range lens {
		csum += int(l)
		if 2*csum >= st.Size {
			st.N50 = int(l)
			break
		}
	}
	return st, nil
}

// SeqStatsFile calculates the length statistics of the named FASTA file.
func SeqStatsFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()
	return SeqStats(f)
}

// writeTo writes st as summary lines.
func (st Stats) writeTo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Prepped sequence length: min %d, max %d, mean %.2f, sd %.2f, N50 %d, total %d bp\n",
		st.Min, st.Max, st.Mean, st.StdDev, st.N50, st.Size)
	return err
}
