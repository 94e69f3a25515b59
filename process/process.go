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

// Package process implements the generic execution harness: the wrapper
// that wires one process's ports, exposes the input/output API to its user
// logic, tracks ReceivedAllInputs, and drives the upstream-closure shutdown
// protocol.
package process

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/nabbar/flowcore/event"
	"github.com/nabbar/flowcore/flowerr"
	"github.com/nabbar/flowcore/ip"
	"github.com/nabbar/flowcore/port"
)

// EventsPort is the name of the implicit output port every process carries.
const EventsPort = "events"

// Logic is the user-supplied function a Process runs. It receives the
// harness's core API and returns an error that becomes the process's exit
// error (a panic inside Logic is instead recovered into KindUserLogicFault).
type Logic func(CoreAPI) error

// CoreAPI is the set of operations the harness exposes to user logic.
type CoreAPI interface {
	// Name returns the process's stable name.
	Name() string

	// GetDataAt receives the next IP from input port's i-th connection.
	GetDataAt(i int, port string, block bool) (ip.Packet, error)

	// GetData is GetDataAt(0, port, block); it warns if port has more than
	// one connection, since reading only index 0 then silently discards
	// the existence of the others.
	GetData(port string, block bool) (ip.Packet, error)

	// SetData sends v on output port, round-robin across its connections.
	// A port with zero connections, or a connection already closed by this
	// process, is logged and treated as a no-op rather than surfaced as an
	// error to Logic.
	SetData(port string, v ip.Packet) error

	// GetConfig returns the process's metadata.config blob unchanged, or
	// nil if none was supplied.
	GetConfig() any

	// LenAt returns the number of connections wired to the named port,
	// looked up in the input table if isInput, else the output table.
	LenAt(port string, isInput bool) (int, error)

	// Emit sends an Event of the given type on the implicit "events" port.
	// If that event type is configured as blocking, Emit suspends until
	// the receiver acknowledges it.
	Emit(eventType string) error
}

// Logger is the narrow logging surface the harness needs. flowlog's
// structured logger satisfies it; tests may supply a stub.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Tracer is the six canonical structured trace lines a Logger may
// additionally implement (flowlog.Logger does). Process checks for it with
// a type assertion rather than folding it into Logger itself, so a narrower
// stub Logger still satisfies the harness in tests that don't care about
// tracing.
type Tracer interface {
	Begin()
	Send(port string)
	Receive(port string)
	Connection(port, state string)
	Wait(reason string)
	End(err error)
}

// EventSink receives a copy of every event a process emits, strictly for
// observability: it is never part of the blocking-event protocol and can
// never change graph behavior. floweventlog's recorder satisfies it.
type EventSink interface {
	Record(event.Event)
}

// LifecycleSink additionally receives process start/stop notifications. An
// EventSink may optionally implement it (flowmetrics.Registry does); Process
// checks for it with a type assertion rather than widening EventSink, so an
// EventSink that only cares about events (e.g. floweventlog.Recorder) stays
// that narrow.
type LifecycleSink interface {
	ProcessStarted()
	ProcessStopped()
}

// Metadata is a process's opaque configuration blob.
type Metadata struct {
	// Config is handed back verbatim by GetConfig; flowconfig.Decode can
	// additionally type-check and validate it before a process is spawned.
	Config any

	// Blocking maps event type to whether Emit should suspend for it. See
	// event.ShouldBlock for the accepted shapes and degrade-silently rule.
	Blocking any
}

// Option configures optional Process behavior at construction time.
type Option func(*Process)

// WithLogger attaches a Logger used for the harness's own diagnostic lines
// (ambiguous fan-in reads, drops on closed/unconnected sends).
func WithLogger(l Logger) Option {
	return func(p *Process) { p.log = l }
}

// WithEventSink attaches an EventSink that receives a copy of every event
// this process emits, after it has already been dispatched on "events".
func WithEventSink(s EventSink) Option {
	return func(p *Process) { p.sink = s }
}

// Process is one independently executing unit of a graph.
type Process struct {
	name  string
	in    *port.Table
	out   *port.Table
	meta  Metadata
	logic Logic

	log  Logger
	sink EventSink

	runID string

	recvMu     sync.Mutex
	received   *bitset.BitSet
	inputIndex map[string]int
	allInputs  bool
}

// New builds a Process. in and out are the port tables the scheduler wired
// before spawning; New adds the implicit "events" output port if the
// caller's out table does not already carry one.
func New(name string, in, out *port.Table, meta Metadata, logic Logic, opts ...Option) *Process {
	if out == nil {
		out = port.NewTable()
	}
	if in == nil {
		in = port.NewTable()
	}
	if _, ok := out.Get(EventsPort); !ok {
		out.Add(port.New(EventsPort))
	}

	names := in.Names()
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}

	p := &Process{
		name:       name,
		in:         in,
		out:        out,
		meta:       meta,
		logic:      logic,
		received:   bitset.New(uint(len(names))),
		inputIndex: idx,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Name returns the process's stable name.
func (p *Process) Name() string { return p.name }

// RunID returns the identifier generated for the most recent (or current)
// Run call, or the empty string before the first Run.
func (p *Process) RunID() string { return p.runID }

func (p *Process) GetDataAt(i int, portName string, block bool) (ip.Packet, error) {
	prt, err := p.in.MustGet(portName)
	if err != nil {
		return nil, err
	}
	if t := p.trace(); t != nil && block {
		t.Wait(portName)
	}
	v, err := prt.RecvAt(i, block)
	if err != nil {
		return nil, err
	}
	p.markReceived(portName)
	if t := p.trace(); t != nil {
		t.Receive(portName)
	}
	return v, nil
}

func (p *Process) GetData(portName string, block bool) (ip.Packet, error) {
	prt, err := p.in.MustGet(portName)
	if err != nil {
		return nil, err
	}
	if t := p.trace(); t != nil && block {
		t.Wait(portName)
	}
	v, warn, err := prt.Recv(block)
	if err != nil {
		return nil, err
	}
	if warn && p.log != nil {
		p.log.Warnf("process %q: GetData(%q) read index 0 of a port with more than one connection", p.name, portName)
	}
	p.markReceived(portName)
	if t := p.trace(); t != nil {
		t.Receive(portName)
	}
	return v, nil
}

func (p *Process) SetData(portName string, v ip.Packet) error {
	prt, err := p.out.MustGet(portName)
	if err != nil {
		return err
	}
	if sendErr := prt.Send(v); sendErr != nil {
		if flowerr.Has(sendErr, flowerr.KindSendToClosedOrUnconnected) {
			if p.log != nil {
				p.log.Warnf("process %q: dropped IP on %q: %s", p.name, portName, sendErr.Error())
			}
			return nil
		}
		return sendErr
	}
	if t := p.trace(); t != nil {
		t.Send(portName)
	}
	return nil
}

// trace returns p.log's Tracer facet, or nil if the attached Logger doesn't
// implement it (or none was attached).
func (p *Process) trace() Tracer {
	if p.log == nil {
		return nil
	}
	t, _ := p.log.(Tracer)
	return t
}

func (p *Process) GetConfig() any { return p.meta.Config }

func (p *Process) LenAt(portName string, isInput bool) (int, error) {
	tbl := p.out
	if isInput {
		tbl = p.in
	}
	prt, err := tbl.MustGet(portName)
	if err != nil {
		return 0, err
	}
	return prt.Len(), nil
}

func (p *Process) Emit(eventType string) error {
	ev := event.Event{Sender: p.name, Type: eventType}
	if event.ShouldBlock(p.meta.Blocking, eventType) {
		ev.Blocker = event.NewLatch()
	}
	if err := p.SetData(EventsPort, ev); err != nil {
		return err
	}
	if p.sink != nil {
		p.sink.Record(ev)
	}
	if ev.Blocker != nil {
		if t := p.trace(); t != nil {
			t.Wait(eventType)
		}
		ev.Blocker.Wait()
	}
	return nil
}

// markReceived flags portName as having produced at least one IP, and
// emits ReceivedAllInputs the first time every input port has been flagged.
func (p *Process) markReceived(portName string) {
	p.recvMu.Lock()
	i, ok := p.inputIndex[portName]
	if !ok {
		p.recvMu.Unlock()
		return
	}
	p.received.Set(uint(i))
	fire := !p.allInputs && p.received.Count() == uint(len(p.inputIndex))
	if fire {
		p.allInputs = true
	}
	p.recvMu.Unlock()

	if fire {
		_ = p.Emit(event.TypeReceivedAllInputs)
	}
}

// Run executes the process: it assigns a fresh RunID, emits
// ReceivedAllInputs immediately if there are no input ports, invokes user
// logic with panic recovery, then drains and closes every port.
func (p *Process) Run() error {
	p.runID = newRunID()

	if t := p.trace(); t != nil {
		t.Begin()
	}
	if ls, ok := p.sink.(LifecycleSink); ok {
		ls.ProcessStarted()
		defer ls.ProcessStopped()
	}

	if len(p.inputIndex) == 0 {
		p.recvMu.Lock()
		p.allInputs = true
		p.recvMu.Unlock()
		_ = p.Emit(event.TypeReceivedAllInputs)
	}

	logicErr := p.invoke()
	p.shutdown()

	if t := p.trace(); t != nil {
		t.End(logicErr)
	}
	return logicErr
}

func (p *Process) invoke() (err error) {
	if p.logic == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = flowerr.Newf(flowerr.KindUserLogicFault, "process %q: panic: %v", p.name, r)
		}
	}()
	return p.logic(p)
}

// shutdown drains every input connection concurrently until it reports
// EndOfStream, then closes every input, output, and events connection. The
// drain reads go through the same markReceived bookkeeping GetDataAt uses,
// so a port whose data only arrives after user logic has already returned
// still counts toward ReceivedAllInputs.
func (p *Process) shutdown() {
	g := &errgroup.Group{}
	for _, name := range p.in.Names() {
		portName := name
		prt, ok := p.in.Get(portName)
		if !ok {
			continue
		}
		for i := 0; i < prt.Len(); i++ {
			conn, err := prt.At(i)
			if err != nil {
				continue
			}
			g.Go(func() error {
				for {
					_, recvErr := conn.Recv(true)
					if recvErr != nil {
						return nil
					}
					p.markReceived(portName)
				}
			})
		}
	}
	_ = g.Wait()

	p.in.CloseAll()
	p.out.CloseAll()

	if t := p.trace(); t != nil {
		for _, name := range p.in.Names() {
			t.Connection(name, "closed")
		}
		for _, name := range p.out.Names() {
			t.Connection(name, "closed")
		}
	}
}
