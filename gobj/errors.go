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

package gobj

import (
	"fmt"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	ErrorNilDestination liberr.CodeError = iota + liberr.MinPkgObj
	ErrorDestroying
	ErrorDestroyed
	ErrorUnknownGClass
	ErrorDuplicateService
	ErrorYunoAlreadyExists
	ErrorEmptyGClassName
	ErrorNoActionForEvent
	ErrorAlreadyRunning
	ErrorDisabled
	ErrorMissingRequiredAttrs
	ErrorNotRunning
	ErrorUnknownState
	ErrorServiceNotFound
	ErrorPathNotFound
	ErrorAlreadyInitialized
	ErrorNotInitialized
)

func init() {
	if liberr.ExistInMapMessage(ErrorNilDestination) {
		panic(fmt.Errorf("error code collision with package gobj"))
	}
	liberr.RegisterIdFctMessage(ErrorNilDestination, getMessage)

	liberr.Tag(ErrorNilDestination, liberr.KindParameter)
	liberr.Tag(ErrorDestroying, liberr.KindOperational)
	liberr.Tag(ErrorDestroyed, liberr.KindOperational)
	liberr.Tag(ErrorUnknownGClass, liberr.KindParameter)
	liberr.Tag(ErrorDuplicateService, liberr.KindParameter)
	liberr.Tag(ErrorYunoAlreadyExists, liberr.KindParameter)
	liberr.Tag(ErrorEmptyGClassName, liberr.KindParameter)
	liberr.Tag(ErrorNoActionForEvent, liberr.KindOperational)
	liberr.Tag(ErrorAlreadyRunning, liberr.KindOperational)
	liberr.Tag(ErrorDisabled, liberr.KindOperational)
	liberr.Tag(ErrorMissingRequiredAttrs, liberr.KindParameter)
	liberr.Tag(ErrorNotRunning, liberr.KindOperational)
	liberr.Tag(ErrorUnknownState, liberr.KindParameter)
	liberr.Tag(ErrorServiceNotFound, liberr.KindParameter)
	liberr.Tag(ErrorPathNotFound, liberr.KindParameter)
	liberr.Tag(ErrorAlreadyInitialized, liberr.KindOperational)
	liberr.Tag(ErrorNotInitialized, liberr.KindOperational)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorNilDestination:
		return "destination gobj is nil"
	case ErrorDestroying:
		return "gobj is already being destroyed"
	case ErrorDestroyed:
		return "gobj has already been destroyed"
	case ErrorUnknownGClass:
		return "gclass is not registered"
	case ErrorDuplicateService:
		return "a service is already registered under this name"
	case ErrorYunoAlreadyExists:
		return "a yuno singleton already exists"
	case ErrorEmptyGClassName:
		return "gclass name must not be empty"
	case ErrorNoActionForEvent:
		return "no action bound for this (state, event) pair"
	case ErrorAlreadyRunning:
		return "gobj is already running"
	case ErrorDisabled:
		return "gobj is disabled"
	case ErrorMissingRequiredAttrs:
		return "one or more required attributes are unset"
	case ErrorNotRunning:
		return "gobj is not running"
	case ErrorUnknownState:
		return "target state is not defined on this gclass"
	case ErrorServiceNotFound:
		return "no service registered under this name"
	case ErrorPathNotFound:
		return "no gobj found at this path"
	case ErrorAlreadyInitialized:
		return "runtime is already started up"
	case ErrorNotInitialized:
		return "runtime has not been started up"
	}
	return liberr.NullMessage
}
