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

// graphs.go hardcodes the three demo graphs the launcher can run: pipe,
// fanout, and fanin. These mirror scenarios S1-S3 of the core's testable
// properties; they are not a graph-file format or a component registry,
// both of which remain out of this module's scope.
package main

import (
	"fmt"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/nabbar/flowcore/connection"
	"github.com/nabbar/flowcore/flowerr"
	"github.com/nabbar/flowcore/flowlog"
	"github.com/nabbar/flowcore/flowmetrics"
	"github.com/nabbar/flowcore/flowsched"
	"github.com/nabbar/flowcore/port"
	"github.com/nabbar/flowcore/process"
)

const demoBatchSize = 20

// buildGraph constructs one of the built-in demo graphs and returns a ready
// Scheduler; the caller only needs to call Wait. sink is what every
// process's events are reported to (normally metrics itself, or metrics
// fanned out alongside an event-log recorder); metrics is additionally kept
// as a concrete type so the fanin sink can instrument its per-index reads
// directly.
func buildGraph(name string, log *flowlog.Logger, metrics *flowmetrics.Registry, sink process.EventSink, bar *mpb.Progress) (*flowsched.Scheduler, error) {
	sched := flowsched.New()

	switch name {
	case "pipe":
		buildPipe(sched, log, metrics, sink, bar)
	case "fanout":
		buildFanout(sched, log, metrics, sink, bar)
	case "fanin":
		buildFanin(sched, log, metrics, sink, bar)
	default:
		return nil, fmt.Errorf("unknown demo graph %q (want pipe, fanout, or fanin)", name)
	}

	return sched, nil
}

// sourceLogic returns Logic for a process with no inputs that sends n
// integers on outPort, incrementing bar by one per IP, then returns.
func sourceLogic(outPort string, n int, bar *mpb.Bar) process.Logic {
	return func(api process.CoreAPI) error {
		for i := 0; i < n; i++ {
			if err := api.SetData(outPort, i); err != nil {
				return err
			}
			if bar != nil {
				bar.Increment()
			}
		}
		return nil
	}
}

// drainLogic returns Logic for a process that reads inPort to EndOfStream
// and reports every IP it saw via observe.
func drainLogic(inPort string, observe func(any)) process.Logic {
	return func(api process.CoreAPI) error {
		for {
			v, err := api.GetData(inPort, true)
			if err != nil {
				return nil
			}
			if observe != nil {
				observe(v)
			}
		}
	}
}

func newBar(progress *mpb.Progress, name string, total int) *mpb.Bar {
	if progress == nil {
		return nil
	}
	return progress.AddBar(int64(total),
		mpb.PrependDecorators(decor.Name(name)),
		mpb.AppendDecorators(decor.Percentage()),
	)
}

// buildPipe wires a single source directly into a single sink (scenario
// S1: pipe).
func buildPipe(sched *flowsched.Scheduler, log *flowlog.Logger, metrics *flowmetrics.Registry, sink process.EventSink, progress *mpb.Progress) {
	conn := flowsched.Connect()

	srcOut := port.NewTable()
	srcOut.Add(port.New("out", conn))

	sinkIn := port.NewTable()
	sinkIn.Add(port.New("in", conn))

	bar := newBar(progress, "pipe:source", demoBatchSize)

	src := process.New("source", nil, srcOut, process.Metadata{}, sourceLogic("out", demoBatchSize, bar), processOpts(log, sink)...)
	snk := process.New("sink", sinkIn, nil, process.Metadata{}, drainLogic("in", func(any) {
		if metrics != nil {
			metrics.IPSent("sink", "in")
		}
	}), processOpts(log, sink)...)

	sched.Spawn(src)
	sched.Spawn(snk)
}

// buildFanout wires one source's single output port across three
// connections, load-balanced round robin across three sinks (scenario S2).
func buildFanout(sched *flowsched.Scheduler, log *flowlog.Logger, metrics *flowmetrics.Registry, sink process.EventSink, progress *mpb.Progress) {
	const fanWidth = 3

	srcOut := port.NewTable()
	outConns := make([]*connection.Connection, 0, fanWidth)
	for i := 0; i < fanWidth; i++ {
		outConns = append(outConns, flowsched.Connect())
	}
	srcOut.Add(port.New("out", outConns...))

	bar := newBar(progress, "fanout:source", demoBatchSize)
	src := process.New("source", nil, srcOut, process.Metadata{}, sourceLogic("out", demoBatchSize, bar), processOpts(log, sink)...)
	sched.Spawn(src)

	for i := 0; i < fanWidth; i++ {
		in := port.NewTable()
		in.Add(port.New("in", outConns[i]))
		name := fmt.Sprintf("sink-%d", i)
		sk := process.New(name, in, nil, process.Metadata{}, drainLogic("in", nil), processOpts(log, sink)...)
		sched.Spawn(sk)
	}
}

// buildFanin wires three sources, each into its own indexed connection on
// one sink's single input port (scenario S3).
func buildFanin(sched *flowsched.Scheduler, log *flowlog.Logger, metrics *flowmetrics.Registry, sink process.EventSink, progress *mpb.Progress) {
	const fanWidth = 3

	inConns := make([]*connection.Connection, 0, fanWidth)
	for i := 0; i < fanWidth; i++ {
		inConns = append(inConns, flowsched.Connect())
	}

	for i := 0; i < fanWidth; i++ {
		out := port.NewTable()
		out.Add(port.New("out", inConns[i]))
		bar := newBar(progress, fmt.Sprintf("fanin:source-%d", i), demoBatchSize)
		name := fmt.Sprintf("source-%d", i)
		src := process.New(name, nil, out, process.Metadata{}, sourceLogic("out", demoBatchSize, bar), processOpts(log, sink)...)
		sched.Spawn(src)
	}

	sinkIn := port.NewTable()
	sinkIn.Add(port.New("in", inConns...))
	snk := process.New("sink", sinkIn, nil, process.Metadata{}, fanInDrainLogic("in", fanWidth, metrics), processOpts(log, sink)...)
	sched.Spawn(snk)
}

// processOpts builds only the options whose backing value is non-nil,
// since a nil *flowlog.Logger or a nil process.EventSink boxed into a
// non-nil Logger/EventSink interface would panic the first time the
// harness called through it.
func processOpts(log *flowlog.Logger, sink process.EventSink) []process.Option {
	var opts []process.Option
	if log != nil {
		opts = append(opts, process.WithLogger(log))
	}
	if sink != nil {
		opts = append(opts, process.WithEventSink(sink))
	}
	return opts
}

// fanInDrainLogic reads every indexed connection on inPort round robin,
// never merging them, until each has reported EndOfStream.
func fanInDrainLogic(inPort string, width int, metrics *flowmetrics.Registry) process.Logic {
	return func(api process.CoreAPI) error {
		closed := make([]bool, width)
		remaining := width
		for remaining > 0 {
			for i := 0; i < width; i++ {
				if closed[i] {
					continue
				}
				_, err := api.GetDataAt(i, inPort, false)
				switch {
				case err == nil:
					if metrics != nil {
						metrics.IPSent("sink", inPort)
					}
				case flowerr.Has(err, flowerr.KindEndOfStream):
					closed[i] = true
					remaining--
				}
			}
			if remaining > 0 {
				time.Sleep(time.Millisecond)
			}
		}
		return nil
	}
}
