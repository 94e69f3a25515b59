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

// Package port implements the named attachment points a process exposes:
// an ordered list of Connection endpoints per port name, output fan-out by
// round robin, and input fan-in by explicit index.
package port

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/nabbar/flowcore/connection"
	"github.com/nabbar/flowcore/flowerr"
	"github.com/nabbar/flowcore/ip"
)

// Port is one named attachment point: an ordered, fixed-at-construction list
// of Connection endpoints. The same type serves input and output ports; the
// caller only ever calls Send on ports wired as outputs and Recv on ports
// wired as inputs.
type Port struct {
	name  string
	conns []*connection.Connection
	rr    atomic.Uint64
}

// New builds a Port named name over the given connection endpoints, in the
// given order. A Port with zero endpoints is valid: a no-op sink if used as
// an output, a never-ready source if used as an input.
func New(name string, conns ...*connection.Connection) *Port {
	return &Port{name: name, conns: append([]*connection.Connection(nil), conns...)}
}

// Name returns the port's name.
func (p *Port) Name() string {
	return p.name
}

// Len returns the number of connection endpoints wired to this port.
func (p *Port) Len() int {
	return len(p.conns)
}

// At returns the i-th connection endpoint. KindUnknownPort if i is out of
// range, since the requested endpoint simply does not exist.
func (p *Port) At(i int) (*connection.Connection, error) {
	if i < 0 || i >= len(p.conns) {
		return nil, flowerr.Newf(flowerr.KindUnknownPort, "port %q has no connection at index %d", p.name, i)
	}
	return p.conns[i], nil
}

// Next returns the connection endpoint selected by this port's round-robin
// counter, advancing it for the following call. KindSendToClosedOrUnconnected
// if the port has no connections at all.
func (p *Port) Next() (*connection.Connection, error) {
	n := len(p.conns)
	if n == 0 {
		return nil, flowerr.Of(flowerr.KindSendToClosedOrUnconnected)
	}
	i := p.rr.Add(1) - 1
	return p.conns[int(i%uint64(n))], nil
}

// RecvAt receives the next IP from this port's i-th connection.
func (p *Port) RecvAt(i int, block bool) (ip.Packet, error) {
	c, err := p.At(i)
	if err != nil {
		return nil, err
	}
	return c.Recv(block)
}

// Recv receives the next IP from this port's first connection. warn reports
// whether the port is wired with more than one connection, so callers can
// log the ambiguity the way GetData does in the process harness.
func (p *Port) Recv(block bool) (v ip.Packet, warn bool, err error) {
	v, err = p.RecvAt(0, block)
	return v, len(p.conns) > 1, err
}

// Send dispatches v to the connection selected by round robin.
func (p *Port) Send(v ip.Packet) error {
	c, err := p.Next()
	if err != nil {
		return err
	}
	return c.Send(v)
}

// Close closes every connection endpoint wired to this port. Idempotent,
// since Connection.Close is.
func (p *Port) Close() {
	for _, c := range p.conns {
		c.Close()
	}
}

// Table is a process's port table: a name-indexed collection of Ports, all
// either inputs or all outputs.
type Table struct {
	mu    sync.RWMutex
	ports map[string]*Port
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{ports: make(map[string]*Port)}
}

// Add registers p under its own name, replacing any previous port of the
// same name.
func (t *Table) Add(p *Port) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ports[p.Name()] = p
}

// Get returns the named port, or (nil, false) if absent.
func (t *Table) Get(name string) (*Port, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.ports[name]
	return p, ok
}

// MustGet returns the named port, or a KindUnknownPort error.
func (t *Table) MustGet(name string) (*Port, error) {
	if p, ok := t.Get(name); ok {
		return p, nil
	}
	return nil, flowerr.Newf(flowerr.KindUnknownPort, "no such port %q", name)
}

// Names returns every port name in this table, sorted, so that callers
// needing a stable enumeration order (e.g. the received-bitset index in the
// process harness) get one without re-deriving it themselves.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.ports))
	for name := range t.ports {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of ports registered in this table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ports)
}

// CloseAll closes every port's connections.
func (t *Table) CloseAll() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, p := range t.ports {
		p.Close()
	}
}
