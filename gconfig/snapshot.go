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
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gattr"
)

// FileSnapshot is an on-disk implementation of the persistent-attribute
// callback contract: each gobj's writable+persistent attributes round-trip
// through one CBOR file per owner name under dir. This is an optional
// convenience the runtime never requires; the callbacks stay no-ops until
// something like Install registers a store.
type FileSnapshot struct {
	mu  sync.Mutex
	dir string
}

// NewFileSnapshot returns a FileSnapshot rooted at dir, creating it if
// necessary.
func NewFileSnapshot(dir string) (*FileSnapshot, liberr.Error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ErrorSnapshotWrite.Error(err)
	}
	return &FileSnapshot{dir: dir}, nil
}

// Install registers fs's Load/Save/Remove/List methods as the runtime's
// process-wide persistent-attribute callbacks.
func (fs *FileSnapshot) Install() {
	gattr.RegisterPersistCallbacks(nil, nil, fs.Load, fs.Save, fs.Remove, fs.List)
}

func (fs *FileSnapshot) path(owner string) string {
	return filepath.Join(fs.dir, owner+".cbor")
}

// Load applies values from owner's snapshot file to t. sel narrows which
// keys are applied; nil means every stored key.
func (fs *FileSnapshot) Load(owner string, t *gattr.Table, sel gattr.Selector) liberr.Error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := os.ReadFile(fs.path(owner))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return ErrorSnapshotRead.Error(err)
	}

	var stored map[string]interface{}
	if err = cbor.Unmarshal(raw, &stored); err != nil {
		return ErrorSnapshotRead.Error(err)
	}

	wanted := selectorSet(sel)
	for name, value := range stored {
		if wanted != nil && !wanted[name] {
			continue
		}
		if _, ok := t.Descriptor(name); !ok {
			continue
		}
		_ = t.Write(name, value)
	}
	return nil
}

// Save writes owner's currently writable+persistent attributes matched by
// sel to its snapshot file, merging with whatever was already stored.
func (fs *FileSnapshot) Save(owner string, t *gattr.Table, sel gattr.Selector) liberr.Error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stored := fs.readRaw(owner)
	wanted := selectorSet(sel)

	for _, name := range t.Names() {
		if wanted != nil && !wanted[name] {
			continue
		}
		desc, ok := t.Descriptor(name)
		if !ok || !desc.Flags.Has(gattr.FlagPersistent) || !desc.Flags.Has(gattr.FlagWritable) {
			continue
		}
		if v, ok := t.Read(name); ok {
			stored[name] = v
		}
	}

	return fs.writeRaw(owner, stored)
}

// Remove deletes stored keys matched by sel, or the whole snapshot file
// when sel is nil.
func (fs *FileSnapshot) Remove(owner string, sel gattr.Selector) liberr.Error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if sel == nil {
		if err := os.Remove(fs.path(owner)); err != nil && !os.IsNotExist(err) {
			return ErrorSnapshotWrite.Error(err)
		}
		return nil
	}

	stored := fs.readRaw(owner)
	for name := range selectorSet(sel) {
		delete(stored, name)
	}
	return fs.writeRaw(owner, stored)
}

// List returns the stored key names matched by sel.
func (fs *FileSnapshot) List(owner string, sel gattr.Selector) ([]string, liberr.Error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stored := fs.readRaw(owner)
	wanted := selectorSet(sel)

	out := make([]string, 0, len(stored))
	for name := range stored {
		if wanted != nil && !wanted[name] {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

func (fs *FileSnapshot) readRaw(owner string) map[string]interface{} {
	raw, err := os.ReadFile(fs.path(owner))
	if err != nil {
		return make(map[string]interface{})
	}
	var stored map[string]interface{}
	if err = cbor.Unmarshal(raw, &stored); err != nil {
		return make(map[string]interface{})
	}
	return stored
}

func (fs *FileSnapshot) writeRaw(owner string, stored map[string]interface{}) liberr.Error {
	enc, err := cbor.Marshal(stored)
	if err != nil {
		return ErrorSnapshotWrite.Error(err)
	}
	if err = os.WriteFile(fs.path(owner), enc, 0o644); err != nil {
		return ErrorSnapshotWrite.Error(err)
	}
	return nil
}

// selectorSet normalizes a gattr.Selector (nil, string or []string) into a
// lookup set; nil stays nil to mean "every key".
func selectorSet(sel gattr.Selector) map[string]bool {
	switch v := sel.(type) {
	case nil:
		return nil
	case string:
		return map[string]bool{v: true}
	case []string:
		out := make(map[string]bool, len(v))
		for _, k := range v {
			out[k] = true
		}
		return out
	default:
		return nil
	}
}
