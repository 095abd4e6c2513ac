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
	"sync/atomic"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/gmem"
)

var (
	initialized int32
	shuttingDown int32

	memTracker atomic.Value // *gmem.Tracker
)

// StartUp initializes the runtime: the persistent-attribute startup
// callback runs and the optional memory tracker is installed for End's leak
// report. A second StartUp without an intervening End is refused — the
// __initialized__ gate is the only defined behavior for re-entry.
func StartUp(tracker *gmem.Tracker) liberr.Error {
	if !atomic.CompareAndSwapInt32(&initialized, 0, 1) {
		return ErrorAlreadyInitialized.Error(nil)
	}
	atomic.StoreInt32(&shuttingDown, 0)

	if tracker != nil {
		memTracker.Store(tracker)
	}
	gattr.PersistStartup()
	return nil
}

// IsInitialized reports whether StartUp has run without a matching End.
func IsInitialized() bool { return atomic.LoadInt32(&initialized) == 1 }

// MemTracker returns the tracker installed at StartUp, or nil.
func MemTracker() *gmem.Tracker {
	t, _ := memTracker.Load().(*gmem.Tracker)
	return t
}

// Shutdown sets the process-wide shutdown flag and winds the yuno down:
// paused first if playing, then stopped if running. Safe to call more than
// once.
func Shutdown() {
	atomic.StoreInt32(&shuttingDown, 1)

	y := Yuno()
	if y == nil {
		return
	}
	if y.IsPlaying() {
		_ = y.Pause()
	}
	if y.IsRunning() {
		_ = y.Stop()
	}
}

// IsShuttingDown reports whether Shutdown has been requested.
func IsShuttingDown() bool { return atomic.LoadInt32(&shuttingDown) == 1 }

// End tears the runtime down: the yuno tree is destroyed if still alive,
// every gclass and protocol-schema binding is unregistered, the service
// table is cleared, and the persistent-attribute end callback runs. The
// returned leak report carries any gclass that still had live instances and
// any memory block still outstanding in the StartUp tracker; both are empty
// on a clean shutdown.
func End() (aliveClasses []string, leakedBlocks []gmem.Block, err liberr.Error) {
	if !atomic.CompareAndSwapInt32(&initialized, 1, 0) {
		return nil, nil, ErrorNotInitialized.Error(nil)
	}

	if y := Yuno(); y != nil {
		y.Destroy()
	}

	aliveClasses = gclass.UnregisterAll()
	gclass.CommProtReset()
	clearServices()
	gattr.PersistEnd()

	if t := MemTracker(); t != nil && !t.IsEmpty() {
		leakedBlocks = t.LeakReport()
	}
	return aliveClasses, leakedBlocks, nil
}
