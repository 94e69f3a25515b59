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

// Package event defines the framework notification carried on every
// process's implicit "events" output port, and the Latch used to make an
// event's emission block its sender until the receiver acknowledges it.
package event

import "sync"

// Well-known event types emitted by the process harness itself. User logic
// may emit additional, application-defined types through the same port.
const (
	// TypeReceivedAllInputs fires once, the first time a process has
	// received at least one IP on every one of its input ports (or
	// immediately at startup if it has none).
	TypeReceivedAllInputs = "ReceivedAllInputs"
)

// Event is the message carried on the "events" port.
type Event struct {
	// Sender is the name of the process that emitted this event.
	Sender string

	// Type identifies the kind of event; framework-defined types are
	// exported constants above, user logic may define its own.
	Type string

	// Blocker is non-nil when this event is configured as blocking for its
	// Type: the sender suspends on Blocker.Wait() after dispatching the
	// event until the receiver calls Blocker.Set().
	Blocker *Latch
}

// Latch is a one-shot synchronization gate: initially unset, Wait suspends
// until Set is called, and Set is idempotent — only the first call has any
// effect, every subsequent call is a no-op.
type Latch struct {
	once sync.Once
	done chan struct{}
}

// NewLatch returns an unset Latch, ready to use.
func NewLatch() *Latch {
	return &Latch{done: make(chan struct{})}
}

// Set releases every current and future Wait call. Idempotent.
func (l *Latch) Set() {
	l.once.Do(func() {
		close(l.done)
	})
}

// Wait suspends until Set has been called.
func (l *Latch) Wait() {
	<-l.done
}

// IsSet reports whether Set has already been called, without blocking.
func (l *Latch) IsSet() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}
