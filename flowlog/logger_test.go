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

package flowlog_test

import (
	"github.com/sirupsen/logrus"

	"github.com/nabbar/flowcore/flowlog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var log *flowlog.Logger

	BeforeEach(func() {
		log = flowlog.New(logrus.DebugLevel)
	})

	It("derives a process-and-run-id-scoped child via For", func() {
		scoped := log.For("source", "run-123")
		Expect(scoped).ToNot(BeNil())
	})

	It("derives a child with extra fields via WithFields", func() {
		scoped := log.WithFields(map[string]any{"k": "v"})
		Expect(scoped).ToNot(BeNil())
	})

	It("emits the six canonical tags without panicking", func() {
		Expect(func() {
			log.Begin()
			log.Send("out")
			log.Receive("in")
			log.Connection("out", "closed")
			log.Wait("blocking-event")
			log.End(nil)
		}).ToNot(Panic())
	})

	It("logs End with a non-nil error without panicking", func() {
		Expect(func() {
			log.End(assertErr{})
		}).ToNot(Panic())
	})

	It("satisfies the harness's narrow Logger surface", func() {
		Expect(func() {
			log.Debugf("debug %d", 1)
			log.Infof("info %d", 2)
			log.Warnf("warn %d", 3)
		}).ToNot(Panic())
	})

	It("produces an hclog adapter that logs without panicking", func() {
		h := log.AsHCLog("demo")
		Expect(h.Name()).To(Equal("demo"))
		Expect(func() {
			h.Info("hello", "key", "value")
			h.Debug("debug")
			h.Warn("warn")
			h.Error("error")
		}).ToNot(Panic())

		named := h.Named("child")
		Expect(named.Name()).To(Equal("demo.child"))
	})
})

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
