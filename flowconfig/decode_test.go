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

package flowconfig_test

import (
	"github.com/nabbar/flowcore/flowconfig"
	"github.com/nabbar/flowcore/flowerr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type sourceConfig struct {
	BatchSize int    `mapstructure:"batch_size" validate:"required,gt=0"`
	Label     string `mapstructure:"label" validate:"required"`
}

var _ = Describe("Decode", func() {
	It("decodes and validates a well-formed config blob", func() {
		raw := map[string]any{"batch_size": 10, "label": "demo"}

		cfg, err := flowconfig.Decode[sourceConfig](raw)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.BatchSize).To(Equal(10))
		Expect(cfg.Label).To(Equal("demo"))
	})

	It("returns KindValidation when a required field is missing", func() {
		raw := map[string]any{"batch_size": 10}

		_, err := flowconfig.Decode[sourceConfig](raw)
		Expect(flowerr.Has(err, flowerr.KindValidation)).To(BeTrue())
	})

	It("returns KindValidation when a field fails its constraint", func() {
		raw := map[string]any{"batch_size": 0, "label": "demo"}

		_, err := flowconfig.Decode[sourceConfig](raw)
		Expect(flowerr.Has(err, flowerr.KindValidation)).To(BeTrue())
	})

	It("returns KindValidation for a type mismatch mapstructure cannot coerce", func() {
		raw := map[string]any{"batch_size": "not-a-number", "label": "demo"}

		_, err := flowconfig.Decode[sourceConfig](raw)
		Expect(flowerr.Has(err, flowerr.KindValidation)).To(BeTrue())
	})

	It("treats a nil blob as an empty, zero-value config", func() {
		cfg, err := flowconfig.Decode[sourceConfig](nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg).To(Equal(sourceConfig{}))
	})
})
