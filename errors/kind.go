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

// Kind classifies an Error into the runtime's error taxonomy (msgset tag).
// Every Error raised by a gobj-runtime package carries one Kind in addition
// to its package-local CodeError, so log sinks and callers can filter on
// the taxonomy independently of which package raised the error.
type Kind string

const (
	KindParameter         Kind = "PARAMETER_ERROR"
	KindInternal          Kind = "INTERNAL_ERROR"
	KindMemory            Kind = "MEMORY_ERROR"
	KindSystem            Kind = "SYSTEM_ERROR"
	KindOperational       Kind = "OPERATIONAL_ERROR"
	KindProtocol          Kind = "PROTOCOL_ERROR"
	KindConnectDisconnect Kind = "CONNECT_DISCONNECT"
	KindJSON              Kind = "JSON_ERROR"
)

// kindOf tracks the Kind assigned to each registered CodeError so KindOf can
// recover it later purely from the code carried by an Error value.
var kindOf = make(map[CodeError]Kind)

// Tag associates a Kind with a CodeError at package-init time, alongside the
// RegisterIdFctMessage call that gives the code its message. Call once per
// constant from the registering package's init().
func Tag(code CodeError, kind Kind) {
	kindOf[code] = kind
}

// KindOf returns the taxonomy Kind registered for err's code, or
// KindInternal if the code was never tagged (a programming oversight in the
// raising package, not a caller error).
func KindOf(err error) Kind {
	if e, ok := err.(Error); ok {
		if k, found := kindOf[e.GetCode()]; found {
			return k
		}
	}
	return KindInternal
}
