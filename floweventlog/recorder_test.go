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

package floweventlog_test

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"

	"github.com/nabbar/flowcore/event"
	"github.com/nabbar/flowcore/floweventlog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Recorder", func() {
	It("appends one CBOR entry per recorded event, in order", func() {
		buf := &bytes.Buffer{}
		rec := floweventlog.New(buf)

		rec.Record(event.Event{Sender: "source", Type: event.TypeReceivedAllInputs})
		rec.Record(event.Event{Sender: "sink", Type: "custom", Blocker: event.NewLatch()})

		dec := cbor.NewDecoder(buf)

		var e1 floweventlog.Entry
		Expect(dec.Decode(&e1)).To(Succeed())
		Expect(e1.Sender).To(Equal("source"))
		Expect(e1.Type).To(Equal(event.TypeReceivedAllInputs))
		Expect(e1.Blocking).To(BeFalse())

		var e2 floweventlog.Entry
		Expect(dec.Decode(&e2)).To(Succeed())
		Expect(e2.Sender).To(Equal("sink"))
		Expect(e2.Blocking).To(BeTrue())
	})

	It("never panics on a writer, regardless of event shape", func() {
		buf := &bytes.Buffer{}
		rec := floweventlog.New(buf)
		Expect(func() {
			rec.Record(event.Event{})
		}).ToNot(Panic())
	})
})
