// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pispino prepares paired-end amplicon sequencing reads for analysis.
//
// The seqprep command counts and reindexes raw reads, joins read pairs,
// quality filters the joined reads, converts them to FASTA and merges all
// samples into a single prepped.fasta file. The readpairs command writes the
// read pairs list used by seqprep from a directory of raw read files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gweonlab/pispino/prep"
)

// errDisplayed is returned by commands whose error has already been shown.
var errDisplayed = errors.New("error already displayed")

func main() {
	log.SetFlags(0)
	log.SetPrefix("pispino: ")

	root := &cobra.Command{
		Use:           "pispino",
		Short:         "Bioinformatics tools for preparing NGS amplicon reads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(seqprepCommand(), readpairsCommand())

	err := root.Execute()
	switch {
	case err == errDisplayed:
		os.Exit(1)
	case err != nil:
		log.Fatal(err)
	}
}

func seqprepCommand() *cobra.Command {
	var (
		cfg        = prep.DefaultConfig()
		pairsFile  string
		joiner     string
		pearParams string
		noColour   bool
	)

	cmd := &cobra.Command{
		Use:   "seqprep",
		Short: "Join, quality filter and convert paired-end reads to FASTA",
		Long: `seqprep reindexes raw reads, joins read pairs, quality filters the
joined reads with fastq_quality_filter and converts them to FASTA with
fastq_to_fasta. All samples are merged into OUTDIR/prepped.fasta, and the
number of reads remaining after each stage is written to OUTDIR/summary.log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg.Joiner, err = prep.ParseJoiner(joiner)
			if err != nil {
				return err
			}
			cfg.PearParams = strings.Fields(pearParams)
			if noColour {
				cfg.Colours = prep.Colours{}
			}

			pairs, err := prep.ReadPairsFile(pairsFile)
			if err != nil {
				return err
			}
			sum, err := prep.Run(cfg, pairs, os.Stdout)
			if err != nil && sum != nil {
				return errDisplayed
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.InDir, "in", "i", "", "directory holding the raw read files (required)")
	flags.StringVarP(&pairsFile, "list", "l", "", "tab separated read pairs list (required)")
	flags.StringVarP(&cfg.OutDir, "out", "o", "prepped", "output directory")
	flags.IntVarP(&cfg.PhredBase, "base-phred", "b", cfg.PhredBase, "base phred quality score (33 or 64)")
	flags.StringVarP(&joiner, "joiner", "j", cfg.Joiner.String(), "paired-end read joiner: PEAR, FASTQJOIN or VSEARCH")
	flags.IntVarP(&cfg.Threads, "threads", "t", cfg.Threads, "number of threads for the joiner")
	flags.StringVar(&pearParams, "pear-params", "", "additional parameters for PEAR, split on white space; quoting is not supported")
	flags.IntVar(&cfg.QualityThreshold, "fastx-q", cfg.QualityThreshold, "fastq_quality_filter minimum quality score")
	flags.IntVar(&cfg.QualityPercent, "fastx-p", cfg.QualityPercent, "fastq_quality_filter minimum percent of bases with at least fastx-q quality")
	flags.BoolVar(&cfg.DiscardN, "fastx-n", false, "discard reads with unknown (N) bases")
	flags.BoolVar(&cfg.ForwardOnly, "forward-only", false, "skip joining and use forward reads only")
	flags.BoolVar(&cfg.Retain, "retain", false, "keep the temporary directory")
	flags.BoolVar(&noColour, "no-colour", false, "do not colour log output")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "display external program output")
	flags.BoolVar(&cfg.Plot, "plot", false, "plot read counts per stage to OUTDIR/"+prep.PlotFile)

	flags.StringVar(&cfg.Tools.Pear, "pear", cfg.Tools.Pear, "PEAR executable")
	flags.StringVar(&cfg.Tools.FastqJoin, "fastq-join", cfg.Tools.FastqJoin, "fastq-join executable")
	flags.StringVar(&cfg.Tools.Vsearch, "vsearch", cfg.Tools.Vsearch, "VSEARCH executable")
	flags.StringVar(&cfg.Tools.QualityFilter, "fastq-quality-filter", cfg.Tools.QualityFilter, "fastq_quality_filter executable")
	flags.StringVar(&cfg.Tools.FastqToFasta, "fastq-to-fasta", cfg.Tools.FastqToFasta, "fastq_to_fasta executable")

	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("list")

	return cmd
}

func readpairsCommand() *cobra.Command {
	var (
		inDir   string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "readpairs",
		Short: "Write a read pairs list for the raw read files in a directory",
		Long: `readpairs finds forward read files marked "_R1" and their reverse
"_R2" counterparts in a directory and writes a tab separated read pairs list
for seqprep. The sample identifier is the file name up to the first '_'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := prep.ScanReadPairs(inDir)
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			err = prep.WriteReadPairs(out, pairs)
			if err != nil {
				return err
			}
			if outFile != "" {
				fmt.Fprintf(os.Stderr, "wrote %d read pairs to %q.\n", len(pairs), outFile)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inDir, "in", "i", "", "directory holding the raw read files (required)")
	flags.StringVarP(&outFile, "out", "o", "", "read pairs list file name. Defaults to stdout.")
	cmd.MarkFlagRequired("in")

	return cmd
}
