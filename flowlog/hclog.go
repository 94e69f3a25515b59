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

package flowlog

import (
	"io"
	"log"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
)

// HCLogAdapter bridges a Logger onto hashicorp/go-hclog.Logger, the way the
// teacher's logger package bridges onto the same interface for components
// written against the HashiCorp logging ecosystem.
type HCLogAdapter struct {
	name  string
	entry *logrus.Entry
}

var _ hclog.Logger = (*HCLogAdapter)(nil)

// AsHCLog wraps l as an hclog.Logger.
func (l *Logger) AsHCLog(name string) *HCLogAdapter {
	return &HCLogAdapter{name: name, entry: l.entry.WithField("logger", name)}
}

func argsToFields(args []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok {
			f[k] = args[i+1]
		}
	}
	return f
}

func (h *HCLogAdapter) Log(level hclog.Level, msg string, args ...interface{}) {
	switch level {
	case hclog.Trace, hclog.Debug:
		h.Debug(msg, args...)
	case hclog.Warn:
		h.Warn(msg, args...)
	case hclog.Error:
		h.Error(msg, args...)
	default:
		h.Info(msg, args...)
	}
}

func (h *HCLogAdapter) Trace(msg string, args ...interface{}) {
	h.entry.WithFields(argsToFields(args)).Trace(msg)
}

func (h *HCLogAdapter) Debug(msg string, args ...interface{}) {
	h.entry.WithFields(argsToFields(args)).Debug(msg)
}

func (h *HCLogAdapter) Info(msg string, args ...interface{}) {
	h.entry.WithFields(argsToFields(args)).Info(msg)
}

func (h *HCLogAdapter) Warn(msg string, args ...interface{}) {
	h.entry.WithFields(argsToFields(args)).Warn(msg)
}

func (h *HCLogAdapter) Error(msg string, args ...interface{}) {
	h.entry.WithFields(argsToFields(args)).Error(msg)
}

func (h *HCLogAdapter) IsTrace() bool { return h.entry.Logger.IsLevelEnabled(logrus.TraceLevel) }
func (h *HCLogAdapter) IsDebug() bool { return h.entry.Logger.IsLevelEnabled(logrus.DebugLevel) }
func (h *HCLogAdapter) IsInfo() bool  { return h.entry.Logger.IsLevelEnabled(logrus.InfoLevel) }
func (h *HCLogAdapter) IsWarn() bool  { return h.entry.Logger.IsLevelEnabled(logrus.WarnLevel) }
func (h *HCLogAdapter) IsError() bool { return h.entry.Logger.IsLevelEnabled(logrus.ErrorLevel) }

func (h *HCLogAdapter) ImpliedArgs() []interface{} { return nil }

func (h *HCLogAdapter) With(args ...interface{}) hclog.Logger {
	return &HCLogAdapter{name: h.name, entry: h.entry.WithFields(argsToFields(args))}
}

func (h *HCLogAdapter) Name() string { return h.name }

func (h *HCLogAdapter) Named(name string) hclog.Logger {
	full := name
	if h.name != "" {
		full = h.name + "." + name
	}
	return &HCLogAdapter{name: full, entry: h.entry.WithField("logger", full)}
}

func (h *HCLogAdapter) ResetNamed(name string) hclog.Logger {
	return &HCLogAdapter{name: name, entry: h.entry.WithField("logger", name)}
}

func (h *HCLogAdapter) SetLevel(level hclog.Level) {
	switch level {
	case hclog.Trace:
		h.entry.Logger.SetLevel(logrus.TraceLevel)
	case hclog.Debug:
		h.entry.Logger.SetLevel(logrus.DebugLevel)
	case hclog.Warn:
		h.entry.Logger.SetLevel(logrus.WarnLevel)
	case hclog.Error:
		h.entry.Logger.SetLevel(logrus.ErrorLevel)
	default:
		h.entry.Logger.SetLevel(logrus.InfoLevel)
	}
}

func (h *HCLogAdapter) GetLevel() hclog.Level {
	switch h.entry.Logger.GetLevel() {
	case logrus.TraceLevel:
		return hclog.Trace
	case logrus.DebugLevel:
		return hclog.Debug
	case logrus.WarnLevel:
		return hclog.Warn
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return hclog.Error
	default:
		return hclog.Info
	}
}

func (h *HCLogAdapter) StandardLogger(opts *hclog.StandardLoggerOptions) *log.Logger {
	return log.New(h.StandardWriter(opts), "", 0)
}

func (h *HCLogAdapter) StandardWriter(_ *hclog.StandardLoggerOptions) io.Writer {
	return h.entry.Logger.Writer()
}
