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

package flowsched_test

import (
	"errors"
	"fmt"

	"github.com/nabbar/flowcore/flowsched"
	"github.com/nabbar/flowcore/port"
	"github.com/nabbar/flowcore/process"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scheduler", func() {
	It("runs a pipe graph end to end: source -> sink", func() {
		conn := flowsched.Connect()

		out := port.NewTable()
		out.Add(port.New("out", conn))
		source := process.New("source", nil, out, process.Metadata{}, func(api process.CoreAPI) error {
			for i := 0; i < 5; i++ {
				if err := api.SetData("out", i); err != nil {
					return err
				}
			}
			return nil
		})

		var received []int
		in := port.NewTable()
		in.Add(port.New("in", conn))
		sink := process.New("sink", in, nil, process.Metadata{}, func(api process.CoreAPI) error {
			for {
				v, err := api.GetData("in", true)
				if err != nil {
					return nil
				}
				received = append(received, v.(int))
			}
		})

		sched := flowsched.New()
		sched.Spawn(source)
		sched.Spawn(sink)

		Expect(sched.Wait()).ToNot(HaveOccurred())
		Expect(received).To(Equal([]int{0, 1, 2, 3, 4}))
	})

	It("runs co-scheduled (_..._) processes under one shared wait group", func() {
		boom := errors.New("co-scheduled failure")

		ok := process.New("_ok_", nil, nil, process.Metadata{}, func(process.CoreAPI) error {
			return nil
		})
		bad := process.New("_bad_", nil, nil, process.Metadata{}, func(process.CoreAPI) error {
			return boom
		})

		sched := flowsched.New()
		sched.Spawn(ok)
		sched.Spawn(bad)

		err := sched.Wait()
		Expect(err).To(HaveOccurred())
	})

	It("surfaces an isolated process's failure from Wait", func() {
		sched := flowsched.New()

		good := process.New("isolated-good", nil, nil, process.Metadata{}, func(process.CoreAPI) error {
			return nil
		})
		bad := process.New("isolated-bad", nil, nil, process.Metadata{}, func(process.CoreAPI) error {
			return fmt.Errorf("isolated failure")
		})

		sched.Spawn(good)
		sched.Spawn(bad)

		Expect(sched.Wait()).To(HaveOccurred())
	})
})
