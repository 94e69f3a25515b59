/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package flowlog is the core's structured logger: a small logrus-backed
// wrapper, in the shape of the teacher's Debug/Info/Warning(message, data)
// logger interface. For derives a child logger that tags every line with a
// process name and RunID. It also exposes an adapter onto hashicorp/go-hclog, for user logic
// written against that ecosystem's logging interface.
package flowlog

import (
	"github.com/sirupsen/logrus"
)

// Logger is the structured logger handed to a process. It satisfies
// process.Logger (Debugf/Infof/Warnf) for the harness's own diagnostics,
// plus the teacher's richer message+fields style for application code.
type Logger struct {
	entry *logrus.Entry
}

// New returns a Logger backed by a fresh logrus.Logger at the given level.
func New(level logrus.Level) *Logger {
	l := logrus.New()
	l.SetLevel(level)
	return &Logger{entry: logrus.NewEntry(l)}
}

// For returns a child Logger tagged with the given process name and run ID,
// the way the teacher's logger.Clone pattern derives scoped loggers.
func (l *Logger) For(process, runID string) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields{
		"process": process,
		"run_id":  runID,
	})}
}

// WithFields returns a child Logger with additional structured fields
// merged in.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}

// Debug logs message at debug level with an optional structured data blob.
func (l *Logger) Debug(message string, data any) { l.log(logrus.DebugLevel, message, data) }

// Info logs message at info level with an optional structured data blob.
func (l *Logger) Info(message string, data any) { l.log(logrus.InfoLevel, message, data) }

// Warning logs message at warn level with an optional structured data blob.
func (l *Logger) Warning(message string, data any) { l.log(logrus.WarnLevel, message, data) }

// Error logs message at error level with an optional structured data blob.
func (l *Logger) Error(message string, data any) { l.log(logrus.ErrorLevel, message, data) }

func (l *Logger) log(level logrus.Level, message string, data any) {
	if data == nil {
		l.entry.Log(level, message)
		return
	}
	l.entry.WithField("data", data).Log(level, message)
}

// Debugf implements process.Logger.
func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }

// Infof implements process.Logger.
func (l *Logger) Infof(format string, args ...any) { l.entry.Infof(format, args...) }

// Warnf implements process.Logger.
func (l *Logger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }
