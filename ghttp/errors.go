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

package ghttp

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorMalformedStartLine liberr.CodeError = iota + liberr.MinPkgHttp
	ErrorMalformedHeader
	ErrorBodyTooLarge
)

func init() {
	if liberr.ExistInMapMessage(ErrorMalformedStartLine) {
		panic(fmt.Errorf("error code collision with package ghttp"))
	}
	liberr.RegisterIdFctMessage(ErrorMalformedStartLine, getMessage)

	liberr.Tag(ErrorMalformedStartLine, liberr.KindProtocol)
	liberr.Tag(ErrorMalformedHeader, liberr.KindProtocol)
	liberr.Tag(ErrorBodyTooLarge, liberr.KindProtocol)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorMalformedStartLine:
		return "request/status line could not be parsed"
	case ErrorMalformedHeader:
		return "header line is missing its ':' separator"
	case ErrorBodyTooLarge:
		return "declared Content-Length exceeds the parser's configured ceiling"
	}
	return liberr.NullMessage
}
