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

package event_test

import (
	"time"

	"github.com/nabbar/flowcore/event"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Latch", func() {
	It("is initially unset", func() {
		l := event.NewLatch()
		Expect(l.IsSet()).To(BeFalse())
	})

	It("releases Wait once Set is called", func() {
		l := event.NewLatch()
		released := make(chan struct{})

		go func() {
			l.Wait()
			close(released)
		}()

		Consistently(released, 20*time.Millisecond).ShouldNot(BeClosed())
		l.Set()
		Eventually(released).Should(BeClosed())
		Expect(l.IsSet()).To(BeTrue())
	})

	It("treats Set as idempotent", func() {
		l := event.NewLatch()
		Expect(func() {
			l.Set()
			l.Set()
			l.Set()
		}).ToNot(Panic())
		Expect(l.IsSet()).To(BeTrue())
	})

	It("releases every waiter, not just the first", func() {
		l := event.NewLatch()
		n := 5
		released := make(chan int, n)

		for i := 0; i < n; i++ {
			go func(id int) {
				l.Wait()
				released <- id
			}(i)
		}

		l.Set()
		Eventually(released).Should(HaveLen(n))
	})
})

var _ = Describe("ShouldBlock", func() {
	It("reports true for an explicitly blocking event type", func() {
		Expect(event.ShouldBlock(map[string]bool{"ReceivedAllInputs": true}, "ReceivedAllInputs")).To(BeTrue())
	})

	It("reports false for an event type absent from the map", func() {
		Expect(event.ShouldBlock(map[string]bool{"Other": true}, "ReceivedAllInputs")).To(BeFalse())
	})

	It("degrades silently to false when blocking is nil", func() {
		Expect(event.ShouldBlock(nil, "ReceivedAllInputs")).To(BeFalse())
	})

	It("degrades silently to false for a malformed map[string]any value", func() {
		Expect(event.ShouldBlock(map[string]any{"ReceivedAllInputs": "yes"}, "ReceivedAllInputs")).To(BeFalse())
	})

	It("handles the untyped map[string]any shape a graph decoder would actually produce", func() {
		Expect(event.ShouldBlock(map[string]any{"ReceivedAllInputs": true}, "ReceivedAllInputs")).To(BeTrue())
	})

	It("degrades silently when blocking is some unrelated type entirely", func() {
		Expect(event.ShouldBlock(42, "ReceivedAllInputs")).To(BeFalse())
	})
})
