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

// Package connection implements the single-producer/single-consumer FIFO
// that carries information packets between two process endpoints.
//
// A Connection is unbounded and never blocks on Send; it is built from an
// internal slice queue guarded by a mutex plus a close-once end-of-stream
// signal, rather than a fixed-capacity Go channel, so that a fast producer
// can never deadlock against a slow or absent consumer (see the core
// specification's "Connection primitive" design note).
package connection

import (
	"sync"

	"github.com/nabbar/flowcore/flowerr"
	"github.com/nabbar/flowcore/ip"
)

// Connection is a one-way FIFO with an explicit close signal. The zero value
// is not usable; construct with New.
type Connection struct {
	mu     sync.Mutex
	queue  []ip.Packet
	closed bool

	notify chan struct{} // signalled (best-effort) whenever data is enqueued
	done   chan struct{} // closed exactly once, when Close is called
	once   sync.Once
}

// New returns an open, empty Connection.
func New() *Connection {
	return &Connection{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Send enqueues ip for later delivery. It never blocks. Sending on a
// connection already closed by its sender is a programmer error: the IP is
// dropped and a KindSendToClosedOrUnconnected error is returned for the
// caller to log.
func (c *Connection) Send(v ip.Packet) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return flowerr.Of(flowerr.KindSendToClosedOrUnconnected)
	}
	c.queue = append(c.queue, v)
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
	}
	return nil
}

// Recv dequeues the next IP. If block is true it suspends until an IP is
// available or the sender closes the connection, in which case it returns a
// KindEndOfStream error. If block is false it returns a KindNotReady error
// immediately when nothing is queued, unless the connection is already
// closed and drained, in which case it still reports KindEndOfStream.
func (c *Connection) Recv(block bool) (ip.Packet, error) {
	for {
		c.mu.Lock()
		if len(c.queue) > 0 {
			v := c.queue[0]
			c.queue = c.queue[1:]
			c.mu.Unlock()
			return v, nil
		}
		if c.closed {
			c.mu.Unlock()
			return nil, flowerr.Of(flowerr.KindEndOfStream)
		}
		c.mu.Unlock()

		if !block {
			return nil, flowerr.Of(flowerr.KindNotReady)
		}

		select {
		case <-c.notify:
		case <-c.done:
		}
	}
}

// Poll is a non-destructive readiness check: true iff Recv(false) would
// currently return an IP rather than an error.
func (c *Connection) Poll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue) > 0
}

// Close marks the connection as closed by its sender. Idempotent: buffered
// IPs already queued remain deliverable via Recv until drained, after which
// every Recv call signals KindEndOfStream.
func (c *Connection) Close() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.done)
	})
}

// IsClosed reports whether Close has been called, regardless of whether any
// buffered IPs remain to be drained.
func (c *Connection) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
