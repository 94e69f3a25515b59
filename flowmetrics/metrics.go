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

// Package flowmetrics instruments the core with Prometheus counters and
// gauges. Every increment happens synchronously on the caller's own
// goroutine and never blocks, so instrumenting a Send/Recv/event-emit call
// introduces no new suspension point.
package flowmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the core's Prometheus collectors. The zero value is not
// usable; build one with New.
type Registry struct {
	ips       *prometheus.CounterVec
	events    *prometheus.CounterVec
	processes prometheus.Gauge
}

// New constructs a Registry and registers its collectors with reg. Passing
// a fresh prometheus.NewRegistry() keeps the core's metrics isolated from
// the default global registry, useful for tests and for embedding multiple
// independent graph runs in one binary.
func New(reg prometheus.Registerer) *Registry {
	r := &Registry{
		ips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowcore",
			Name:      "ip_total",
			Help:      "Information packets sent, labeled by process and port.",
		}, []string{"process", "port"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowcore",
			Name:      "event_total",
			Help:      "Framework events emitted, labeled by process and type.",
		}, []string{"process", "type"}),
		processes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flowcore",
			Name:      "processes_live",
			Help:      "Number of processes currently running under the scheduler.",
		}),
	}
	reg.MustRegister(r.ips, r.events, r.processes)
	return r
}

// IPSent increments the IP throughput counter for process/port.
func (r *Registry) IPSent(process, port string) {
	r.ips.WithLabelValues(process, port).Inc()
}

// EventEmitted increments the event counter for process/eventType.
func (r *Registry) EventEmitted(process, eventType string) {
	r.events.WithLabelValues(process, eventType).Inc()
}

// ProcessStarted increments the live-process gauge.
func (r *Registry) ProcessStarted() {
	r.processes.Inc()
}

// ProcessStopped decrements the live-process gauge.
func (r *Registry) ProcessStopped() {
	r.processes.Dec()
}
