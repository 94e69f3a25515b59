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

package main

import (
	"fmt"

	hcver "github.com/hashicorp/go-version"
	spfcbr "github.com/spf13/cobra"
)

// engineVersion is bumped whenever a release changes the wire-visible
// behavior of process, port, or connection.
const engineVersion = "0.1.0"

func newVersionCommand() *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "version",
		Short: "Print the engine version",
		RunE: func(_ *spfcbr.Command, _ []string) error {
			v, err := hcver.NewVersion(engineVersion)
			if err != nil {
				return err
			}
			fmt.Printf("flowcoredemo %s\n", v.String())
			return nil
		},
	}
}
