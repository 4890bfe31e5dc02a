// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqtools provides streaming line counting and FASTQ record
// reindexing over plain, gzip and bzip2 compressed text files.
//
// Line counts are returned as is; callers divide by the number of lines per
// record of the format they are counting, 4 for FASTQ and 2 for FASTA.
package seqtools
