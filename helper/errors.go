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

package helper

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorPathWrongType liberr.CodeError = iota + liberr.MinPkgHelper
	ErrorJSONEncode
	ErrorJSONDecode
	ErrorFileWrite
	ErrorFileRead
	ErrorUnknownOwner
)

func init() {
	if liberr.ExistInMapMessage(ErrorPathWrongType) {
		panic(fmt.Errorf("error code collision with package helper"))
	}
	liberr.RegisterIdFctMessage(ErrorPathWrongType, getMessage)

	liberr.Tag(ErrorPathWrongType, liberr.KindSystem)
	liberr.Tag(ErrorJSONEncode, liberr.KindJSON)
	liberr.Tag(ErrorJSONDecode, liberr.KindJSON)
	liberr.Tag(ErrorFileWrite, liberr.KindSystem)
	liberr.Tag(ErrorFileRead, liberr.KindSystem)
	liberr.Tag(ErrorUnknownOwner, liberr.KindParameter)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorPathWrongType:
		return "path exists but is not of the requested type"
	case ErrorJSONEncode:
		return "could not encode value as JSON"
	case ErrorJSONDecode:
		return "could not decode JSON into value"
	case ErrorFileWrite:
		return "could not write file"
	case ErrorFileRead:
		return "could not read file"
	case ErrorUnknownOwner:
		return "no stored attributes for this owner"
	}
	return liberr.NullMessage
}
