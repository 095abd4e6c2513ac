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

package gtrace

import (
	liberr "github.com/nabbar/yuneta/errors"
)

// Reserved global trace level names. Bit indices run from GlobalBitBase
// upward in declaration order.
const (
	GlobalMachine        = "machine"
	GlobalCreateDelete   = "create_delete"
	GlobalCreateDelete2  = "create_delete2"
	GlobalSubscriptions  = "subscriptions"
	GlobalStartStop      = "start_stop"
	GlobalMonitor        = "monitor"
	GlobalEventMonitor   = "event_monitor"
	GlobalLibuv          = "libuv"
	GlobalEvKw           = "ev_kw"
	GlobalAuthzs         = "authzs"
	GlobalStates         = "states"
	GlobalPeriodicTimer  = "periodic_timer"
	GlobalGBuffers       = "gbuffers"
	GlobalTimer          = "timer"
)

var globalNames = []string{
	GlobalMachine, GlobalCreateDelete, GlobalCreateDelete2, GlobalSubscriptions,
	GlobalStartStop, GlobalMonitor, GlobalEventMonitor, GlobalLibuv,
	GlobalEvKw, GlobalAuthzs, GlobalStates, GlobalPeriodicTimer,
	GlobalGBuffers, GlobalTimer,
}

// GlobalBit returns the mask bit for a reserved global trace level name,
// or false if name is not reserved.
func GlobalBit(name string) (uint, bool) {
	for i, n := range globalNames {
		if n == name {
			return GlobalBitBase + uint(i), true
		}
	}
	return 0, false
}

// UserLevels is the per-gclass registry of up to 16 named user trace
// levels, assigned bit 0..15 in declaration order.
type UserLevels struct {
	bitOf  map[string]uint
	nameOf map[uint]string
}

// NewUserLevels builds a UserLevels from an ordered list of level names,
// as passed to gclass_create's user_trace_level parameter.
func NewUserLevels(names []string) (*UserLevels, liberr.Error) {
	if len(names) > GlobalBitBase {
		return nil, ErrorTooManyUserLevels.Error(nil)
	}
	u := &UserLevels{
		bitOf:  make(map[string]uint, len(names)),
		nameOf: make(map[uint]string, len(names)),
	}
	for i, n := range names {
		if _, dup := u.bitOf[n]; dup {
			return nil, ErrorDuplicateLevelName.Error(nil)
		}
		u.bitOf[n] = uint(i)
		u.nameOf[uint(i)] = n
	}
	return u, nil
}

// Bit returns the mask bit registered for name.
func (u *UserLevels) Bit(name string) (uint, bool) {
	if u == nil {
		return 0, false
	}
	b, ok := u.bitOf[name]
	return b, ok
}

// Name returns the level name registered at bit, the inverse of Bit.
func (u *UserLevels) Name(bit uint) (string, bool) {
	if u == nil {
		return "", false
	}
	n, ok := u.nameOf[bit]
	return n, ok
}
