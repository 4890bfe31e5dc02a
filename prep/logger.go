// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prep

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Logger writes progress messages to a log file and, for messages that are
// displayed, to a terminal.
type Logger struct {
	file    *log.Logger
	display *log.Logger
	colours Colours

	now func() time.Time
}

// NewLogger returns a Logger writing to file and display. If display is nil
// no messages are displayed.
func NewLogger(file, display io.Writer, colours Colours) *Logger {
	l := &Logger{
		file:    log.New(file, "", 0),
		colours: colours,
		now:     time.Now,
	}
	if display != nil {
		l.display = log.New(display, "", 0)
	}
	return l
}

func (l *Logger) stamp(format string, v []interface{}) string {
	return l.colours.Timestamp + l.now().Format("2006-01-02 15:04:05") + l.colours.Reset + " " + fmt.Sprintf(format, v...)
}

// Printf writes a timestamped message to the log file.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.file.Print(l.stamp(format, v))
}

// Displayf writes a timestamped message to the log file and the display.
func (l *Logger) Displayf(format string, v ...interface{}) {
	s := l.stamp(format, v)
	l.file.Print(s)
	if l.display != nil {
		l.display.Print(s)
	}
}

// Countf is Displayf with the message in the count colour.
func (l *Logger) Countf(format string, v ...interface{}) {
	l.Displayf("%s%s%s", l.colours.Count, fmt.Sprintf(format, v...), l.colours.Reset)
}

// Output writes line to the log file without a timestamp, and to the
// display if show is true.
func (l *Logger) Output(line string, show bool) {
	l.file.Print(line)
	if show && l.display != nil {
		l.display.Print(line)
	}
}
