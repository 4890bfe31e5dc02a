// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"gopkg.in/check.v1"
)

func (s *S) TestRunCmd(c *check.C) {
	var file, display bytes.Buffer
	l := NewLogger(&file, &display, Colours{})

	err := runCmd(exec.Command("sh", "-c", "echo out; echo err >&2"), l, true)
	c.Check(err, check.IsNil)
	c.Check(strings.Contains(file.String(), "Running: sh -c"), check.Equals, true)
	c.Check(strings.Contains(file.String(), "\nout\n"), check.Equals, true)
	c.Check(strings.Contains(file.String(), "\nerr\n"), check.Equals, true)
	c.Check(display.String(), check.Equals, "out\nerr\n")

	display.Reset()
	err = runCmd(exec.Command("sh", "-c", "echo quiet"), l, false)
	c.Check(err, check.IsNil)
	c.Check(display.String(), check.Equals, "")

	err = runCmd(exec.Command("sh", "-c", "exit 3"), l, false)
	var te *ToolError
	c.Assert(errors.As(err, &te), check.Equals, true)
	c.Check(te.Args, check.DeepEquals, []string{"sh", "-c", "exit 3"})
	c.Check(err, check.ErrorMatches, ".*non-zero return code 3")

	err = runCmd(exec.Command("/nonexistent/program"), l, false)
	c.Check(err, check.FitsTypeOf, &ToolError{})
}
