// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color" //nolint:misspell
)

const levelWidth = len("ERROR")

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if *l.settings.level > level {
		return
	}

	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	var padding string
	if n := levelWidth - len(level.String()); n > 0 {
		padding = strings.Repeat(" ", n)
	}
	levelString := level.String() + padding
	if l.isTerminal() {
		levelString = level.colouredString() + padding
	}

	var line strings.Builder
	line.WriteString(time.Now().Format(time.RFC3339))
	line.WriteString(" " + levelString + " " + message)
	for i, kvs := range l.settings.context {
		separator := " "
		if i == 0 {
			separator = "\t"
		}
		line.WriteString(separator + kvs.String())
	}
	line.WriteByte('\n')

	_, _ = l.settings.writer.Write([]byte(line.String()))
}

func (l *Logger) isTerminal() bool {
	file, ok := l.settings.writer.(*os.File)
	return ok && !color.NoColor && (file == os.Stdout || file == os.Stderr)
}

// Debug logs at the DEBUG level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Tracef formats and logs at the TRACE level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(Trace, format, args...)
}

// Debugf formats and logs at the DEBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(Debug, format, args...)
}

// Infof formats and logs at the INFO level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(Info, format, args...)
}

// Warnf formats and logs at the WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(Warn, format, args...)
}
