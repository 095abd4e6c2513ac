/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package gloop is the completion-based event-loop reactor: a
// single-threaded driver for timers, accept, connect, read and write
// operations whose completions are delivered as callbacks on the loop's own
// goroutine, matching the FSM dispatcher's single-threaded discipline.
//
// The default reactor is built from the standard library (time.Timer,
// net.Listener/net.Conn run on short-lived goroutines that hand their
// result back to the loop over a channel) in the idiom of nabbar-golib's
// socket/config accept-connect-read-write shape. On Linux, NewIOURingLoop
// arms timer completions on a real io_uring instance via
// github.com/pawelgaczynski/giouring instead of time.AfterFunc, driving a
// real kernel completion queue; accept/connect/read/write stay on the
// portable path on every platform, including that one.
package gloop
