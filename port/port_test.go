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

package port_test

import (
	"github.com/nabbar/flowcore/connection"
	"github.com/nabbar/flowcore/flowerr"
	"github.com/nabbar/flowcore/port"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Port", func() {
	Context("output fan-out", func() {
		It("round-robins across connections, not broadcasts", func() {
			c0, c1, c2 := connection.New(), connection.New(), connection.New()
			p := port.New("out", c0, c1, c2)

			for i := 0; i < 6; i++ {
				Expect(p.Send(i)).To(Succeed())
			}

			for i, c := range []*connection.Connection{c0, c1, c2} {
				v, err := c.Recv(false)
				Expect(err).ToNot(HaveOccurred())
				Expect(v).To(Equal(i))

				v, err = c.Recv(false)
				Expect(err).ToNot(HaveOccurred())
				Expect(v).To(Equal(i + 3))

				_, err = c.Recv(false)
				Expect(flowerr.Has(err, flowerr.KindNotReady)).To(BeTrue())
			}
		})

		It("fails with SendToClosedOrUnconnected when unconnected", func() {
			p := port.New("out")
			err := p.Send("x")
			Expect(flowerr.Has(err, flowerr.KindSendToClosedOrUnconnected)).To(BeTrue())
		})
	})

	Context("input fan-in", func() {
		It("addresses connections by explicit index, never merges", func() {
			c0, c1 := connection.New(), connection.New()
			Expect(c0.Send("from-0")).To(Succeed())
			Expect(c1.Send("from-1")).To(Succeed())
			p := port.New("in", c0, c1)

			v, err := p.RecvAt(1, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("from-1"))

			v, err = p.RecvAt(0, false)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("from-0"))
		})

		It("reports UnknownPort for an out-of-range index", func() {
			p := port.New("in", connection.New())
			_, err := p.RecvAt(5, false)
			Expect(flowerr.Has(err, flowerr.KindUnknownPort)).To(BeTrue())
		})

		It("Recv reads index 0 and flags ambiguity when fan-in has >1 connection", func() {
			c0, c1 := connection.New(), connection.New()
			Expect(c0.Send("only-from-0")).To(Succeed())
			p := port.New("in", c0, c1)

			v, warn, err := p.Recv(false)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("only-from-0"))
			Expect(warn).To(BeTrue())
		})

		It("Recv does not flag ambiguity for a single-connection port", func() {
			c0 := connection.New()
			Expect(c0.Send("x")).To(Succeed())
			p := port.New("in", c0)

			_, warn, err := p.Recv(false)
			Expect(err).ToNot(HaveOccurred())
			Expect(warn).To(BeFalse())
		})
	})

	Context("Table", func() {
		It("looks ports up by name and reports a stable sorted enumeration", func() {
			tbl := port.NewTable()
			tbl.Add(port.New("b"))
			tbl.Add(port.New("a"))
			tbl.Add(port.New("c"))

			Expect(tbl.Names()).To(Equal([]string{"a", "b", "c"}))
			Expect(tbl.Len()).To(Equal(3))

			_, ok := tbl.Get("a")
			Expect(ok).To(BeTrue())

			_, err := tbl.MustGet("missing")
			Expect(flowerr.Has(err, flowerr.KindUnknownPort)).To(BeTrue())
		})

		It("closes every port's connections", func() {
			c := connection.New()
			tbl := port.NewTable()
			tbl.Add(port.New("out", c))
			tbl.CloseAll()
			Expect(c.IsClosed()).To(BeTrue())
		})
	})
})
