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

package gconfig

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorInvalidValue liberr.CodeError = iota + liberr.MinPkgConfig
	ErrorSnapshotWrite
	ErrorSnapshotRead
)

func init() {
	if liberr.ExistInMapMessage(ErrorInvalidValue) {
		panic(fmt.Errorf("error code collision with package gconfig"))
	}
	liberr.RegisterIdFctMessage(ErrorInvalidValue, getMessage)

	liberr.Tag(ErrorInvalidValue, liberr.KindParameter)
	liberr.Tag(ErrorSnapshotWrite, liberr.KindSystem)
	liberr.Tag(ErrorSnapshotRead, liberr.KindSystem)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorInvalidValue:
		return "configuration value is zero or negative where a positive ceiling is required"
	case ErrorSnapshotWrite:
		return "attribute snapshot could not be written to its CBOR file"
	case ErrorSnapshotRead:
		return "attribute snapshot could not be decoded from its CBOR file"
	}
	return liberr.NullMessage
}
