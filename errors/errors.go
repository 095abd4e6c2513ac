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
	"strings"
)

// ers is the single Error implementation. The parent chain is ordered and
// append-only through Add; errors are built and decorated on the runtime
// thread before they escape, so no locking is needed.
type ers struct {
	code    CodeError
	message string
	frame   frame
	parents []error
}

func newError(code CodeError, message string, parent ...error) Error {
	e := &ers{
		code:    code,
		message: message,
		frame:   callerFrame(),
	}
	e.Add(parent...)
	return e
}

func (e *ers) Error() string {
	if !e.HasParent() {
		return e.message
	}

	parts := make([]string, 0, len(e.parents)+1)
	parts = append(parts, e.message)
	for _, p := range e.parents {
		parts = append(parts, p.Error())
	}
	return strings.Join(parts, ", ")
}

func (e *ers) IsCode(code CodeError) bool { return e.code == code }

func (e *ers) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}
	for _, p := range e.parents {
		if pe, ok := p.(Error); ok && pe.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *ers) GetCode() CodeError { return e.code }

func (e *ers) GetParentCode() []CodeError {
	out := []CodeError{e.code}
	for _, p := range e.parents {
		if pe, ok := p.(Error); ok {
			out = append(out, pe.GetParentCode()...)
		}
	}
	return out
}

func (e *ers) Is(err error) bool {
	if err == nil {
		return false
	}
	if pe, ok := err.(Error); ok {
		return pe.GetCode() == e.code
	}
	return err.Error() == e.message
}

func (e *ers) HasParent() bool { return len(e.parents) > 0 }

func (e *ers) GetParent(withMainError bool) []error {
	out := make([]error, 0, len(e.parents)+1)
	if withMainError {
		out = append(out, e)
	}
	out = append(out, e.parents...)
	return out
}

func (e *ers) Add(parent ...error) {
	for _, p := range parent {
		if p == nil {
			continue
		}
		e.parents = append(e.parents, p)
	}
}

func (e *ers) SetParent(parent ...error) {
	e.parents = nil
	e.Add(parent...)
}

func (e *ers) Map(fct FuncMap) bool {
	if !fct(e) {
		return false
	}
	for _, p := range e.parents {
		if !fct(p) {
			return false
		}
	}
	return true
}

func (e *ers) ContainsString(s string) bool {
	if strings.Contains(e.message, s) {
		return true
	}
	for _, p := range e.parents {
		if strings.Contains(p.Error(), s) {
			return true
		}
	}
	return false
}

func (e *ers) GetTrace() string { return e.frame.String() }

// Unwrap exposes the parent chain so errors.Is / errors.As walk it.
func (e *ers) Unwrap() []error { return e.parents }

var _ Error = &ers{}
