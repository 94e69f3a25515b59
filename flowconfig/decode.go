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

// Package flowconfig decodes a process's untyped metadata.config blob into
// a caller-supplied typed struct and validates it, so a launcher building a
// process's metadata before spawn gets typo- and type-checking that
// GetConfig() itself deliberately does not perform.
package flowconfig

import (
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/nabbar/flowcore/flowerr"
)

var validate = validator.New()

// Decode maps raw (typically a map[string]any produced by a graph-file
// decoder, out of this module's scope) onto a new T via mapstructure, then
// validates the result's `validate:"..."` struct tags. On either failure it
// returns a KindValidation flowerr.Error carrying the underlying
// mapstructure or validator error as a parent.
func Decode[T any](raw any) (T, error) {
	var out T
	if raw == nil {
		return out, nil
	}

	if err := mapstructure.Decode(raw, &out); err != nil {
		return out, flowerr.New(flowerr.KindValidation, "config decode failed", err)
	}

	if err := validate.Struct(out); err != nil {
		return out, flowerr.New(flowerr.KindValidation, "config validation failed", err)
	}

	return out, nil
}
