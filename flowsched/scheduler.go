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

// Package flowsched is the thin surface an external launcher uses to spawn
// processes and wire their connections: it decides, from each process's
// name alone, whether it runs isolated on its own goroutine or co-scheduled
// with every other "_..._" process under one shared errgroup.
package flowsched

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nabbar/flowcore/connection"
	"github.com/nabbar/flowcore/process"
)

// Scheduler spawns processes and tracks their completion.
type Scheduler struct {
	mu sync.Mutex

	coGroup   *errgroup.Group
	coStarted bool

	isolated []*errgroup.Group // one single-member group per isolated/framework process, for uniform Wait
}

// New returns an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{coGroup: &errgroup.Group{}}
}

// Connect builds a new Connection; callers wire one endpoint into a
// producer's output port table and the other into a consumer's input port
// table.
func Connect() *connection.Connection {
	return connection.New()
}

// Spawn runs p to completion. Processes named with the "_..._" convention
// are submitted to one shared errgroup so they are demonstrably running in
// the scheduler's own address space and can be jointly awaited; every other
// process (isolated or "*...*" framework-synthesized) gets its own
// goroutine, tracked independently.
func (s *Scheduler) Spawn(p Process) {
	if process.IsCoScheduled(p.Name()) {
		s.mu.Lock()
		s.coStarted = true
		g := s.coGroup
		s.mu.Unlock()

		g.Go(func() error {
			return p.Run()
		})
		return
	}

	g := &errgroup.Group{}
	g.Go(func() error {
		return p.Run()
	})

	s.mu.Lock()
	s.isolated = append(s.isolated, g)
	s.mu.Unlock()
}

// Process is the subset of *process.Process the scheduler needs: a stable
// name to classify by, and a blocking Run. Matching on this narrow
// interface (rather than the concrete type) keeps flowsched independent of
// process's construction details.
type Process interface {
	Name() string
	Run() error
}

// Wait blocks until every spawned process has returned, and reports the
// first non-nil error among them (co-scheduled processes report via the
// shared errgroup, so only the first co-scheduled failure surfaces there).
func (s *Scheduler) Wait() error {
	s.mu.Lock()
	co := s.coGroup
	started := s.coStarted
	isolated := append([]*errgroup.Group(nil), s.isolated...)
	s.mu.Unlock()

	var first error
	if started {
		if err := co.Wait(); err != nil && first == nil {
			first = err
		}
	}
	for _, g := range isolated {
		if err := g.Wait(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
