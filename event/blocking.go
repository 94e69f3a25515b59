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

package event

// ShouldBlock looks up eventType in a process's metadata.blocking map and
// reports whether that event type is configured as blocking. The map
// arrives from outside the core (ultimately from a graph file, out of this
// module's scope) as an untyped any, so this degrades silently to false —
// never an error — whenever blocking is absent or shaped unexpectedly: a
// missing or malformed blocking config simply means "nothing blocks".
func ShouldBlock(blocking any, eventType string) bool {
	switch m := blocking.(type) {
	case map[string]bool:
		return m[eventType]
	case map[string]any:
		v, ok := m[eventType]
		if !ok {
			return false
		}
		b, ok := v.(bool)
		return ok && b
	case map[any]any:
		v, ok := m[eventType]
		if !ok {
			return false
		}
		b, ok := v.(bool)
		return ok && b
	default:
		return false
	}
}
