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

package gclass

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorInvalidName liberr.CodeError = iota + liberr.MinPkgClass
	ErrorAlreadyRegistered
	ErrorNotFound
	ErrorUnknownState
	ErrorUnknownEvent
	ErrorInstancesAlive
)

func init() {
	if liberr.ExistInMapMessage(ErrorInvalidName) {
		panic(fmt.Errorf("error code collision with package gclass"))
	}
	liberr.RegisterIdFctMessage(ErrorInvalidName, getMessage)

	liberr.Tag(ErrorInvalidName, liberr.KindParameter)
	liberr.Tag(ErrorAlreadyRegistered, liberr.KindParameter)
	liberr.Tag(ErrorNotFound, liberr.KindParameter)
	liberr.Tag(ErrorUnknownState, liberr.KindParameter)
	liberr.Tag(ErrorUnknownEvent, liberr.KindParameter)
	liberr.Tag(ErrorInstancesAlive, liberr.KindOperational)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorInvalidName:
		return "gclass name is empty or contains `, ^ or ."
	case ErrorAlreadyRegistered:
		return "a gclass with this name is already registered"
	case ErrorNotFound:
		return "no gclass registered under this name"
	case ErrorUnknownState:
		return "state is not defined on this gclass"
	case ErrorUnknownEvent:
		return "event type is not defined on this gclass"
	case ErrorInstancesAlive:
		return "gclass has live instances and cannot be unregistered"
	}
	return liberr.NullMessage
}
