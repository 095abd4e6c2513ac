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

package gattr

import (
	"sync"

	liberr "github.com/nabbar/yuneta/errors"
)

// Selector names which persistent attributes a Load/Save/Remove/List call
// should act on: a single key (string), several keys ([]string), or
// everything (nil).
type Selector interface{}

// PersistStartupFn / PersistEndFn run once for the whole process.
type PersistStartupFn func()
type PersistEndFn func()

// PersistLoadFn must apply values to t's attributes from durable storage.
type PersistLoadFn func(owner string, t *Table, sel Selector) liberr.Error

// PersistSaveFn persists the current values of t's writable+persistent
// attributes matched by sel.
type PersistSaveFn func(owner string, t *Table, sel Selector) liberr.Error

// PersistRemoveFn deletes stored values matched by sel.
type PersistRemoveFn func(owner string, sel Selector) liberr.Error

// PersistListFn returns the stored attribute names matched by sel.
type PersistListFn func(owner string, sel Selector) ([]string, liberr.Error)

var (
	persistMu      sync.RWMutex
	persistStartup PersistStartupFn
	persistEnd     PersistEndFn
	persistLoad    PersistLoadFn
	persistSave    PersistSaveFn
	persistRemove  PersistRemoveFn
	persistList    PersistListFn
)

// RegisterPersistCallbacks installs the four process-wide persistent
// attribute callbacks. A nil argument leaves the existing callback (if any)
// untouched; the runtime never touches persistence storage itself, so
// calling this is optional — operations become no-ops without it.
func RegisterPersistCallbacks(startup PersistStartupFn, end PersistEndFn, load PersistLoadFn, save PersistSaveFn, remove PersistRemoveFn, list PersistListFn) {
	persistMu.Lock()
	defer persistMu.Unlock()

	if startup != nil {
		persistStartup = startup
	}
	if end != nil {
		persistEnd = end
	}
	if load != nil {
		persistLoad = load
	}
	if save != nil {
		persistSave = save
	}
	if remove != nil {
		persistRemove = remove
	}
	if list != nil {
		persistList = list
	}
}

// PersistStartup invokes the installed startup callback, if any.
func PersistStartup() {
	persistMu.RLock()
	fn := persistStartup
	persistMu.RUnlock()
	if fn != nil {
		fn()
	}
}

// PersistEnd invokes the installed end callback, if any.
func PersistEnd() {
	persistMu.RLock()
	fn := persistEnd
	persistMu.RUnlock()
	if fn != nil {
		fn()
	}
}

// PersistLoad invokes the installed load callback. The runtime calls this
// only for service-flagged gobjs during creation, before mt_create.
func PersistLoad(owner string, t *Table, sel Selector) liberr.Error {
	persistMu.RLock()
	fn := persistLoad
	persistMu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn(owner, t, sel)
}

// PersistSave invokes the installed save callback.
func PersistSave(owner string, t *Table, sel Selector) liberr.Error {
	persistMu.RLock()
	fn := persistSave
	persistMu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn(owner, t, sel)
}

// PersistRemove invokes the installed remove callback.
func PersistRemove(owner string, sel Selector) liberr.Error {
	persistMu.RLock()
	fn := persistRemove
	persistMu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn(owner, sel)
}

// PersistList invokes the installed list callback.
func PersistList(owner string, sel Selector) ([]string, liberr.Error) {
	persistMu.RLock()
	fn := persistList
	persistMu.RUnlock()
	if fn == nil {
		return nil, nil
	}
	return fn(owner, sel)
}
