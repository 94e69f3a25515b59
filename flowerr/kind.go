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

package flowerr

// Kind classifies a core error the way an HTTP status code classifies a
// response: a small closed set of numeric values, each with a fixed default
// message. A Kind value outside that set reports the generic unknown-error
// message.
type Kind uint16

const (
	// KindUnknown is the zero value: an error with no specific kind, used
	// when wrapping a foreign error that did not originate in this module.
	KindUnknown Kind = 0

	// KindUnknownPort: user logic referenced a port name absent from its
	// process's port table.
	KindUnknownPort Kind = 100

	// KindNotReady: a non-blocking receive found no IP waiting.
	KindNotReady Kind = 101

	// KindEndOfStream: receive on a connection whose sender has closed and
	// whose buffer has been fully drained.
	KindEndOfStream Kind = 102

	// KindSendToClosedOrUnconnected: a send landed on a port with no
	// connections, or on a connection already closed by its sender.
	KindSendToClosedOrUnconnected Kind = 103

	// KindUserLogicFault: user logic panicked; the harness recovered it.
	KindUserLogicFault Kind = 104

	// KindValidation: flowconfig.Decode rejected a metadata.config blob.
	KindValidation Kind = 105

	unknownMessage = "unknown error"
)

var kindMessage = map[Kind]string{
	KindUnknown:                   unknownMessage,
	KindUnknownPort:               "referenced port name is not present in the process port table",
	KindNotReady:                  "non-blocking receive found no information packet waiting",
	KindEndOfStream:               "connection is closed and fully drained",
	KindSendToClosedOrUnconnected: "send target has no connections or is already closed",
	KindUserLogicFault:            "user logic panicked during execution",
	KindValidation:                "process metadata config failed validation",
}

// Message returns the default human-readable message for a Kind, or the
// generic unknown-error message if the Kind was never registered.
func (k Kind) Message() string {
	if m, ok := kindMessage[k]; ok {
		return m
	}
	return unknownMessage
}

// Uint16 returns the Kind as its underlying numeric code.
func (k Kind) Uint16() uint16 {
	return uint16(k)
}
