// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/biogo/external"
)

// maxLine is the longest line of program output that is logged intact.
const maxLine = 1 << 20

// run builds the command described by b and runs it to completion,
// logging its combined standard output and standard error line by line.
func run(b external.CommandBuilder, l *Logger, verbose bool) error {
	cmd, err := b.BuildCommand()
	if err != nil {
		return err
	}
	return runCmd(cmd, l, verbose)
}

func runCmd(cmd *exec.Cmd, l *Logger, verbose bool) error {
	l.Printf("Running: %s", strings.Join(cmd.Args, " "))
	out, err := cmd.StdoutPipe()
	if err != nil {
		return &ToolError{Args: cmd.Args, Err: err}
	}
	cmd.Stderr = cmd.Stdout
	err = cmd.Start()
	if err != nil {
		return &ToolError{Args: cmd.Args, Err: err}
	}

	sc := bufio.NewScanner(out)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	for sc.Scan() {
		l.Output(strings.TrimRight(sc.Text(), " \t\r"), verbose)
	}
	serr := sc.Err()
	if serr != nil {
		// Keep the pipe drained so the program can exit.
		io.Copy(io.Discard, out)
	}

	err = cmd.Wait()
	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			err = fmt.Errorf("non-zero return code %d", exit.ExitCode())
		}
		return &ToolError{Args: cmd.Args, Err: err}
	}
	if serr != nil {
		return &ToolError{Args: cmd.Args, Err: serr}
	}
	return nil
}
