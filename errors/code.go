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

package errors

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// CodeError is a numeric error code. Each gobj-runtime package reserves a
// range (see modules.go) and registers one Message function covering it, so
// a bare code can always be resolved back to human-readable text.
type CodeError uint16

// Message resolves one code of a registered range to its message text. It
// must return NullMessage for codes outside its own constants.
type Message func(code CodeError) string

const (
	// UnknownError is the zero code, used when no more specific code applies.
	UnknownError CodeError = 0

	// UnknownMessage is the text reported for any code whose owning range
	// never registered a message.
	UnknownMessage = "unknown error"

	// NullMessage is the empty message a Message function returns for codes
	// it does not define.
	NullMessage = ""
)

var (
	msgMu    sync.RWMutex
	msgFct   = make(map[CodeError]Message)
	msgFloor []CodeError
)

// RegisterIdFctMessage registers fct as the message resolver for the code
// range starting at minCode. Called from each package's init alongside its
// error-code const block.
func RegisterIdFctMessage(minCode CodeError, fct Message) {
	msgMu.Lock()
	defer msgMu.Unlock()

	if _, dup := msgFct[minCode]; !dup {
		msgFloor = append(msgFloor, minCode)
		sort.Slice(msgFloor, func(i, j int) bool { return msgFloor[i] < msgFloor[j] })
	}
	msgFct[minCode] = fct
}

// ExistInMapMessage reports whether some registered resolver already yields
// a message for code, letting a package's init detect a range collision
// before registering its own resolver.
func ExistInMapMessage(code CodeError) bool {
	floor, ok := floorOf(code)
	if !ok {
		return false
	}

	msgMu.RLock()
	fct := msgFct[floor]
	msgMu.RUnlock()

	return fct != nil && fct(code) != NullMessage
}

// floorOf returns the highest registered range floor not above code.
func floorOf(code CodeError) (CodeError, bool) {
	msgMu.RLock()
	defer msgMu.RUnlock()

	found := false
	var floor CodeError
	for _, f := range msgFloor {
		if f > code {
			break
		}
		floor = f
		found = true
	}
	return floor, found
}

// GetMessage resolves c to its registered message, or UnknownMessage when no
// range covers it.
func (c CodeError) GetMessage() string {
	floor, ok := floorOf(c)
	if !ok {
		return UnknownMessage
	}

	msgMu.RLock()
	fct := msgFct[floor]
	msgMu.RUnlock()

	if fct == nil {
		return UnknownMessage
	}
	if m := fct(c); m != NullMessage {
		return m
	}
	return UnknownMessage
}

// Uint16 returns the raw code value.
func (c CodeError) Uint16() uint16 { return uint16(c) }

// Int returns the code as an int, for printf-style callers.
func (c CodeError) Int() int { return int(c) }

// String formats the raw code value.
func (c CodeError) String() string { return strconv.Itoa(c.Int()) }

// Error builds a new Error carrying c, its registered message, the calling
// frame, and any non-nil parents.
func (c CodeError) Error(parent ...error) Error {
	return newError(c, c.GetMessage(), parent...)
}

// Errorf builds a new Error like Error, appending the formatted args to the
// registered message.
func (c CodeError) Errorf(pattern string, args ...interface{}) Error {
	return newError(c, c.GetMessage()+": "+fmt.Sprintf(pattern, args...))
}

// IfError returns nil when every given error is nil, else an Error carrying
// c with the non-nil ones as parents.
func (c CodeError) IfError(parent ...error) Error {
	keep := make([]error, 0, len(parent))
	for _, p := range parent {
		if p != nil {
			keep = append(keep, p)
		}
	}
	if len(keep) == 0 {
		return nil
	}
	return c.Error(keep...)
}
