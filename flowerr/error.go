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

package flowerr

import (
	"fmt"
	"runtime"
	"strings"
)

type ferr struct {
	k Kind
	m string
	p []Error
	t runtime.Frame
}

func frame() runtime.Frame {
	var pcs [1]uintptr
	// skip: Callers, frame, New/Newf
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return runtime.Frame{}
	}
	f, _ := runtime.CallersFrames(pcs[:n]).Next()
	return f
}

// New creates a new Error of the given Kind with msg as its message.
func New(k Kind, msg string, parent ...error) Error {
	return &ferr{k: k, m: msg, p: wrap(parent), t: frame()}
}

// Newf creates a new Error of the given Kind, formatting msg with args.
func Newf(k Kind, pattern string, args ...any) Error {
	return &ferr{k: k, m: fmt.Sprintf(pattern, args...), t: frame()}
}

// Of creates a new Error of the given Kind using the Kind's default message.
func Of(k Kind, parent ...error) Error {
	return &ferr{k: k, m: k.Message(), p: wrap(parent), t: frame()}
}

func wrap(errs []error) []Error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]Error, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		if fe, ok := e.(Error); ok {
			out = append(out, fe)
			continue
		}
		out = append(out, &ferr{k: KindUnknown, m: e.Error()})
	}
	return out
}

func (e *ferr) Error() string {
	if e.t.File != "" {
		return fmt.Sprintf("[%d] %s (%s)", e.k.Uint16(), e.m, e.Trace())
	}
	return fmt.Sprintf("[%d] %s", e.k.Uint16(), e.m)
}

func (e *ferr) IsKind(k Kind) bool {
	return e.k == k
}

func (e *ferr) HasKind(k Kind) bool {
	if e.k == k {
		return true
	}
	for _, p := range e.p {
		if p.HasKind(k) {
			return true
		}
	}
	return false
}

func (e *ferr) Kind() Kind {
	return e.k
}

func (e *ferr) Add(parent ...error) {
	e.p = append(e.p, wrap(parent)...)
}

func (e *ferr) Unwrap() []error {
	if len(e.p) == 0 {
		return nil
	}
	out := make([]error, 0, len(e.p))
	for _, p := range e.p {
		out = append(out, p)
	}
	return out
}

func (e *ferr) Trace() string {
	if e.t.File == "" {
		return ""
	}
	file := e.t.File
	if i := strings.LastIndex(file, "/"); i >= 0 {
		file = file[i+1:]
	}
	return fmt.Sprintf("%s#%d", file, e.t.Line)
}
