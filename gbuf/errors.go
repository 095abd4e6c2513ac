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

package gbuf

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorNullBuffer liberr.CodeError = iota + liberr.MinPkgBuf
	ErrorCeilingReached
	ErrorInvalidBase64
	ErrorDecodeEnvelope
)

func init() {
	if liberr.ExistInMapMessage(ErrorNullBuffer) {
		panic(fmt.Errorf("error code collision with package gbuf"))
	}
	liberr.RegisterIdFctMessage(ErrorNullBuffer, getMessage)

	liberr.Tag(ErrorNullBuffer, liberr.KindParameter)
	liberr.Tag(ErrorCeilingReached, liberr.KindMemory)
	liberr.Tag(ErrorInvalidBase64, liberr.KindParameter)
	liberr.Tag(ErrorDecodeEnvelope, liberr.KindJSON)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorNullBuffer:
		return "buffer is nil or has been fully dereferenced"
	case ErrorCeilingReached:
		return "buffer growth would exceed its configured ceiling"
	case ErrorInvalidBase64:
		return "data contains characters outside the RFC-1521 alphabet"
	case ErrorDecodeEnvelope:
		return "serialized envelope is not a valid gbuf JSON object"
	}
	return liberr.NullMessage
}
