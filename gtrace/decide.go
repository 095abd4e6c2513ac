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
	"sync"
	"sync/atomic"
)

var (
	globalMu   sync.RWMutex
	globalMask = NewMask()

	// deepTrace is the numeric override knob: 0 normal, 1 trace everything
	// not suppressed by a no-mask, >=2 trace everything unconditionally.
	deepTrace int32
)

// SetGlobalLevel sets one bit on the process-wide trace mask.
func SetGlobalLevel(bit uint) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMask = globalMask.Set(bit)
}

// ClearGlobalLevel clears one bit on the process-wide trace mask.
func ClearGlobalLevel(bit uint) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMask = globalMask.Clear(bit)
}

// GlobalMask returns a copy of the process-wide trace mask.
func GlobalMask() Mask {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return NewMask().Union(globalMask)
}

// SetDeepTrace sets the numeric deep-trace knob: 0 disables it, 1 traces
// every level except those a no-mask suppresses, 2 or more traces every
// level unconditionally.
func SetDeepTrace(level int) {
	atomic.StoreInt32(&deepTrace, int32(level))
}

// DeepTrace returns the current knob value.
func DeepTrace() int {
	return int(atomic.LoadInt32(&deepTrace))
}

// ShouldTrace decides whether a trace record at bit fires for a gobj, given
// its gclass-level and gobj-level masks. The rule: the bit must be set in at
// least one of {global, gclass, gobj} and in neither of the two no-masks.
// The deep-trace knob overrides the set side (>=1) or both sides (>=2).
func ShouldTrace(bit uint, classMask, classNoMask, objMask, objNoMask Mask) bool {
	deep := DeepTrace()
	if deep >= 2 {
		return true
	}

	suppressed := classNoMask.Test(bit) || objNoMask.Test(bit)
	if deep == 1 {
		return !suppressed
	}

	if suppressed {
		return false
	}
	return GlobalMask().Test(bit) || classMask.Test(bit) || objMask.Test(bit)
}
