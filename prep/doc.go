// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prep prepares paired-end amplicon reads for downstream analysis.
//
// Raw reads are counted and reindexed, joined with one of PEAR, fastq-join or
// VSEARCH, quality filtered and converted to FASTA with the FASTX-Toolkit,
// and finally merged into a single prepped.fasta file. The number of reads
// surviving each stage is logged and written to a summary file.
//
// Every stage writes into a directory that is removed and created anew when
// the stage starts, so a failed run is recovered by running it again.
package prep
