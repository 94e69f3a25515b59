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

// Package floweventlog is an optional, CBOR-encoded audit trail of the
// framework events a graph run emits: strictly additive, sink-only, and
// never part of the blocking-event protocol. There is no code path that
// reads a recording back into a running graph; it exists purely for
// offline debugging of a single run.
package floweventlog

import (
	"io"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/nabbar/flowcore/event"
)

// Entry is one recorded event, timestamped when the Recorder observed it.
type Entry struct {
	Sender   string    `cbor:"sender"`
	Type     string    `cbor:"type"`
	Blocking bool      `cbor:"blocking"`
	Recorded time.Time `cbor:"recorded"`
}

// Recorder appends a CBOR-encoded Entry to w for every event it observes.
// It satisfies process.EventSink. A Recorder is safe for concurrent use by
// multiple processes sharing one sink.
type Recorder struct {
	mu  sync.Mutex
	w   io.Writer
	enc *cbor.Encoder
	now func() time.Time
}

// New returns a Recorder writing to w.
func New(w io.Writer) *Recorder {
	return &Recorder{w: w, enc: cbor.NewEncoder(w), now: time.Now}
}

// Record implements process.EventSink. Encoding errors are swallowed: a
// recording failure must never affect graph behavior, since this sink sits
// strictly outside the blocking-event protocol.
func (r *Recorder) Record(ev event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_ = r.enc.Encode(Entry{
		Sender:   ev.Sender,
		Type:     ev.Type,
		Blocking: ev.Blocker != nil,
		Recorded: r.now(),
	})
}
