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

package gloop

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorLoopNotRunning liberr.CodeError = iota + liberr.MinPkgLoop
	ErrorLoopAlreadyRunning
	ErrorEventStopped
	ErrorEventAlreadyStarted
	ErrorInvalidURL
	ErrorListenFailed
	ErrorDialFailed
	ErrorRingUnavailable
	ErrorRingFull
)

func init() {
	if liberr.ExistInMapMessage(ErrorLoopNotRunning) {
		panic(fmt.Errorf("error code collision with package gloop"))
	}
	liberr.RegisterIdFctMessage(ErrorLoopNotRunning, getMessage)

	liberr.Tag(ErrorLoopNotRunning, liberr.KindOperational)
	liberr.Tag(ErrorLoopAlreadyRunning, liberr.KindOperational)
	liberr.Tag(ErrorEventStopped, liberr.KindOperational)
	liberr.Tag(ErrorEventAlreadyStarted, liberr.KindOperational)
	liberr.Tag(ErrorInvalidURL, liberr.KindParameter)
	liberr.Tag(ErrorListenFailed, liberr.KindSystem)
	liberr.Tag(ErrorDialFailed, liberr.KindSystem)
	liberr.Tag(ErrorRingUnavailable, liberr.KindSystem)
	liberr.Tag(ErrorRingFull, liberr.KindSystem)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorLoopNotRunning:
		return "event loop is not running"
	case ErrorLoopAlreadyRunning:
		return "event loop is already running"
	case ErrorEventStopped:
		return "event has already been stopped"
	case ErrorEventAlreadyStarted:
		return "event is already armed"
	case ErrorInvalidURL:
		return "url is not a valid schema://host[:port][/path] endpoint"
	case ErrorListenFailed:
		return "failed to bind the listening socket"
	case ErrorDialFailed:
		return "failed to connect to the remote endpoint"
	case ErrorRingUnavailable:
		return "io_uring reactor is not available on this platform or kernel"
	case ErrorRingFull:
		return "io_uring submission queue has no free entry"
	}
	return liberr.NullMessage
}
