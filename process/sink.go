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

import "github.com/nabbar/flowcore/event"

// MultiSink fans one EventSink out to several, so a launcher can attach,
// say, a metrics registry and an event-log recorder to the same process at
// once. It also satisfies LifecycleSink, delegating to whichever of its
// members implement it.
type MultiSink []EventSink

// Record implements EventSink by forwarding ev to every member sink.
func (m MultiSink) Record(ev event.Event) {
	for _, s := range m {
		if s != nil {
			s.Record(ev)
		}
	}
}

// ProcessStarted implements LifecycleSink by forwarding to every member that
// implements it.
func (m MultiSink) ProcessStarted() {
	for _, s := range m {
		if ls, ok := s.(LifecycleSink); ok {
			ls.ProcessStarted()
		}
	}
}

// ProcessStopped implements LifecycleSink by forwarding to every member that
// implements it.
func (m MultiSink) ProcessStopped() {
	for _, s := range m {
		if ls, ok := s.(LifecycleSink); ok {
			ls.ProcessStopped()
		}
	}
}
