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

// Package flowerr provides the core's coded, traced error type: the five
// error kinds of the harness (unknown port, not-ready, end-of-stream,
// send-to-closed, user-logic-fault) plus validation errors from flowconfig,
// all compatible with errors.Is and errors.As.
package flowerr

import "errors"

// Error extends the standard error with a Kind, a parent chain, and the
// call-site trace captured when it was created.
type Error interface {
	error

	// IsKind reports whether this error's own Kind equals k (parents are
	// not considered).
	IsKind(k Kind) bool

	// HasKind reports whether this error or any parent in its chain has
	// Kind k.
	HasKind(k Kind) bool

	// Kind returns this error's own Kind.
	Kind() Kind

	// Add appends additional parent errors to this error's chain.
	Add(parent ...error)

	// Unwrap exposes the parent chain for errors.Is/errors.As.
	Unwrap() []error

	// Trace returns "file#line" for the call site that created this error.
	Trace() string
}

// Is reports whether e is (or wraps) a flowerr.Error.
func Is(e error) bool {
	var err Error
	return errors.As(e, &err)
}

// Get returns e as a flowerr.Error if it is one, else nil.
func Get(e error) Error {
	var err Error
	if errors.As(e, &err) {
		return err
	}
	return nil
}

// Has reports whether e is, or wraps, an Error whose chain contains Kind k.
func Has(e error, k Kind) bool {
	if err := Get(e); err != nil {
		return err.HasKind(k)
	}
	return false
}
