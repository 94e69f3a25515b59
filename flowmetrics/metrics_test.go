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

package flowmetrics_test

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nabbar/flowcore/event"
	"github.com/nabbar/flowcore/flowmetrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func metricValue(reg *prometheus.Registry, family, wantLabel string) float64 {
	mfs, err := reg.Gather()
	Expect(err).ToNot(HaveOccurred())
	for _, mf := range mfs {
		if mf.GetName() != family {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := ""
			for _, lp := range m.GetLabel() {
				key += lp.GetName() + "=" + lp.GetValue() + ";"
			}
			if key == wantLabel {
				if m.GetCounter() != nil {
					return m.GetCounter().GetValue()
				}
				if m.GetGauge() != nil {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	return 0
}

var _ = Describe("Registry", func() {
	It("counts IPs per process and port", func() {
		promReg := prometheus.NewRegistry()
		reg := flowmetrics.New(promReg)

		reg.IPSent("source", "out")
		reg.IPSent("source", "out")
		reg.IPSent("source", "other")

		Expect(metricValue(promReg, "flowcore_ip_total", "port=out;process=source;")).To(Equal(2.0))
		Expect(metricValue(promReg, "flowcore_ip_total", "port=other;process=source;")).To(Equal(1.0))
	})

	It("counts events via Record, satisfying process.EventSink", func() {
		promReg := prometheus.NewRegistry()
		reg := flowmetrics.New(promReg)

		reg.Record(event.Event{Sender: "p", Type: event.TypeReceivedAllInputs})
		reg.Record(event.Event{Sender: "p", Type: event.TypeReceivedAllInputs})

		Expect(metricValue(promReg, "flowcore_event_total", "process=p;type=ReceivedAllInputs;")).To(Equal(2.0))
	})

	It("tracks live process count as a gauge", func() {
		promReg := prometheus.NewRegistry()
		reg := flowmetrics.New(promReg)

		reg.ProcessStarted()
		reg.ProcessStarted()
		reg.ProcessStopped()

		Expect(metricValue(promReg, "flowcore_processes_live", "")).To(Equal(1.0))
	})
})
