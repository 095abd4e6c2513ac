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

// Package errors carries the gobj runtime's coded errors: every failure an
// API call reports is an Error holding a package-scoped CodeError, the
// taxonomy Kind registered for that code (kind.go), the frame that raised
// it, and an optional chain of parent errors.
//
// A package declares its codes against its reserved range and registers a
// message resolver once:
//
//	const ErrorSomething liberr.CodeError = iota + liberr.MinPkgBuf
//
//	func init() {
//		liberr.RegisterIdFctMessage(ErrorSomething, getMessage)
//		liberr.Tag(ErrorSomething, liberr.KindParameter)
//	}
//
// and raises them as `ErrorSomething.Error(parent)`.
package errors

import (
	"errors"
)

// FuncMap is the callback Map runs over an error chain; returning false
// stops the iteration.
type FuncMap func(e error) bool

// Error extends the standard error with the code, parent-chain and trace
// facilities the runtime's log records need.
type Error interface {
	error

	// IsCode reports whether this error's own code equals code; parents
	// are not consulted.
	IsCode(code CodeError) bool
	// HasCode reports whether this error or any parent carries code.
	HasCode(code CodeError) bool
	// GetCode returns this error's own code.
	GetCode() CodeError
	// GetParentCode returns the codes of this error and every parent that
	// is itself a coded Error.
	GetParentCode() []CodeError

	// Is implements the match used by the standard errors.Is.
	Is(e error) bool
	// HasParent reports whether at least one parent is attached.
	HasParent() bool
	// GetParent returns the parent chain, including this error first when
	// withMainError is true.
	GetParent(withMainError bool) []error
	// Add appends every non-nil given error to the parent chain.
	Add(parent ...error)
	// SetParent replaces the whole parent chain.
	SetParent(parent ...error)
	// Map runs fct over this error then each parent until fct returns
	// false; its result is the last fct return value.
	Map(fct FuncMap) bool
	// ContainsString reports whether this error's or any parent's message
	// contains s.
	ContainsString(s string) bool

	// GetTrace formats the file:line of the frame that raised this error.
	GetTrace() string
	// Unwrap exposes the parent chain to errors.Is / errors.As.
	Unwrap() []error
}

// Is reports whether e is (or wraps) a coded Error.
func Is(e error) bool {
	var err Error
	return errors.As(e, &err)
}

// Get extracts the coded Error from e, or nil if there is none.
func Get(e error) Error {
	var err Error
	if errors.As(e, &err) {
		return err
	}
	return nil
}

// New builds an Error with an ad-hoc code and message, for call sites that
// have no registered constant (tests, tooling).
func New(code uint16, message string, parent ...error) Error {
	return newError(CodeError(code), message, parent...)
}
