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

package flowlog

// The six canonical log lines a process's lifecycle emits through this
// logger: harness startup, a send, a receive, a connection state change
// (close/open), a suspension on a blocking event or empty input, and
// harness shutdown.
const (
	TagBegin      = "BGIN"
	TagSend       = "SEND"
	TagReceive    = "RECV"
	TagConnection = "CONN"
	TagWait       = "WAIT"
	TagEnd        = "END"
)

// Begin logs TagBegin: harness startup for a process instance.
func (l *Logger) Begin() { l.Info(TagBegin, nil) }

// Send logs TagSend: an IP was dispatched on the named output port.
func (l *Logger) Send(port string) { l.Debug(TagSend, map[string]any{"port": port}) }

// Receive logs TagReceive: an IP was consumed from the named input port.
func (l *Logger) Receive(port string) { l.Debug(TagReceive, map[string]any{"port": port}) }

// Connection logs TagConnection: a connection changed state (e.g. closed).
func (l *Logger) Connection(port, state string) {
	l.Debug(TagConnection, map[string]any{"port": port, "state": state})
}

// Wait logs TagWait: the process suspended on a blocking event or an empty
// blocking receive.
func (l *Logger) Wait(reason string) { l.Debug(TagWait, map[string]any{"reason": reason}) }

// End logs TagEnd: harness shutdown for a process instance, with its exit
// error if any.
func (l *Logger) End(err error) {
	if err == nil {
		l.Info(TagEnd, nil)
		return
	}
	l.Error(TagEnd, map[string]any{"error": err.Error()})
}
