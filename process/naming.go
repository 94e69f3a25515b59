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

package process

import "strings"

// IsCoScheduled reports whether name follows the "_..._" convention: a
// lightweight unit meant to run co-scheduled with the launcher, in its own
// address space, rather than as a fully isolated process. No length floor
// beyond the prefix/suffix check itself, so a bare "_" or "__" also counts,
// matching the original convention's plain prefix/suffix test.
func IsCoScheduled(name string) bool {
	return strings.HasPrefix(name, "_") && strings.HasSuffix(name, "_")
}

// IsFrameworkSynthesized reports whether name follows the "*...*"
// convention: a process the framework generated rather than one the user
// declared in the graph. The core treats it identically to any other
// process; the marker exists for introspection and logging only. No length
// floor beyond the prefix/suffix check, for the same reason as IsCoScheduled.
func IsFrameworkSynthesized(name string) bool {
	return strings.HasPrefix(name, "*") && strings.HasSuffix(name, "*")
}
