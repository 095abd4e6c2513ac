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

package gframe

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorFrameTooShort liberr.CodeError = iota + liberr.MinPkgFrame
	ErrorFrameTooLarge
)

func init() {
	if liberr.ExistInMapMessage(ErrorFrameTooShort) {
		panic(fmt.Errorf("error code collision with package gframe"))
	}
	liberr.RegisterIdFctMessage(ErrorFrameTooShort, getMessage)

	liberr.Tag(ErrorFrameTooShort, liberr.KindProtocol)
	liberr.Tag(ErrorFrameTooLarge, liberr.KindMemory)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorFrameTooShort:
		return "declared frame length is below the 4-byte header size"
	case ErrorFrameTooLarge:
		return "declared frame length exceeds the configured maximum packet size"
	}
	return liberr.NullMessage
}
