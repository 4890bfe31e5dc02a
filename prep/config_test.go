// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"gopkg.in/check.v1"
)

func (s *S) TestParseJoiner(c *check.C) {
	for _, t := range []struct {
		in   string
		want Joiner
		err  bool
	}{
		{in: "PEAR", want: PEAR},
		{in: "pear", want: PEAR},
		{in: "FASTQJOIN", want: FastqJoin},
		{in: "fastq-join", want: FastqJoin},
		{in: "Vsearch", want: Vsearch},
		{in: "flash", err: true},
	} {
		got, err := ParseJoiner(t.in)
		if t.err {
			c.Check(err, check.NotNil, check.Commentf("%q", t.in))
			continue
		}
		c.Check(err, check.IsNil)
		c.Check(got, check.Equals, t.want, check.Commentf("%q", t.in))
		c.Check(got.String(), check.Equals, map[Joiner]string{PEAR: "PEAR", FastqJoin: "FASTQJOIN", Vsearch: "VSEARCH"}[t.want])
	}
}

func (s *S) TestValidate(c *check.C) {
	valid := DefaultConfig()
	valid.InDir, valid.OutDir = "in", "out"
	c.Check(valid.Validate(), check.IsNil)

	for i, mod := range []func(*Config){
		func(c *Config) { c.InDir = "" },
		func(c *Config) { c.OutDir = "" },
		func(c *Config) { c.PhredBase = 40 },
		func(c *Config) { c.Threads = 0 },
		func(c *Config) { c.QualityPercent = 101 },
		func(c *Config) { c.QualityPercent = -1 },
		func(c *Config) { c.QualityThreshold = -1 },
		func(c *Config) { c.QualityThreshold = 94 },
		func(c *Config) { c.Joiner = Joiner(7) },
	} {
		cfg := valid
		mod(&cfg)
		c.Check(cfg.Validate(), check.NotNil, check.Commentf("Test %d", i))
	}

	zero := valid
	zero.QualityThreshold, zero.QualityPercent = 0, 0
	c.Check(zero.Validate(), check.IsNil)
}
