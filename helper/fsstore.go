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
	"os"
	"path/filepath"
	"sync"

	"github.com/nabbar/yuneta/gattr"
	liberr "github.com/nabbar/yuneta/errors"
)

// FileStore is a JSON-file-backed implementation of gattr's persistent
// attribute callbacks: one file per owner under dir, holding
// a flat name->value JSON object of that owner's FlagPersistent
// attributes. It follows gattr/persist.go's Selector/callback shapes and
// the JSON envelope convention already used by gbuf.Serialize.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore returns a store rooted at dir. dir is created lazily on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Register installs fs's methods as the process-wide persistence
// callbacks via gattr.RegisterPersistCallbacks. Startup/End are no-ops:
// a per-owner file store needs no global open/close step.
func (fs *FileStore) Register() {
	gattr.RegisterPersistCallbacks(nil, nil, fs.Load, fs.Save, fs.Remove, fs.List)
}

func (fs *FileStore) ownerPath(owner string) string {
	return filepath.Join(fs.dir, owner+".json")
}

// selected reports whether name matches sel: nil means "all", a string
// means exact match, a []string means membership.
func selected(sel gattr.Selector, name string) bool {
	switch s := sel.(type) {
	case nil:
		return true
	case string:
		return s == name
	case []string:
		for _, n := range s {
			if n == name {
				return true
			}
		}
		return false
	}
	return false
}

// Load reads owner's stored JSON object and writes matching keys back
// into t via Write, silently skipping names the table no longer defines
// (the table's descriptor set is authoritative, not the stored file).
func (fs *FileStore) Load(owner string, t *gattr.Table, sel gattr.Selector) liberr.Error {
	fs.mu.Lock()
	path := fs.ownerPath(owner)
	fs.mu.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	stored := make(map[string]interface{})
	if err := ReadJSONFile(path, &stored); err != nil {
		return err
	}

	for name, value := range stored {
		if !selected(sel, name) {
			continue
		}
		if _, ok := t.Descriptor(name); !ok {
			continue
		}
		_ = t.Write(name, value)
	}
	return nil
}

// Save writes every FlagPersistent attribute of t matched by sel into
// owner's JSON file, merging with (rather than clobbering) any attribute
// previously stored under a different selector.
func (fs *FileStore) Save(owner string, t *gattr.Table, sel gattr.Selector) liberr.Error {
	fs.mu.Lock()
	path := fs.ownerPath(owner)
	fs.mu.Unlock()

	stored := make(map[string]interface{})
	if _, err := os.Stat(path); err == nil {
		if e := ReadJSONFile(path, &stored); e != nil {
			return e
		}
	}

	for _, name := range t.Names() {
		if !selected(sel, name) {
			continue
		}
		desc, ok := t.Descriptor(name)
		if !ok || !desc.Flags.Has(gattr.FlagPersistent) {
			continue
		}
		if v, ok := t.Read(name); ok {
			stored[name] = v
		}
	}

	return WriteJSONFile(path, stored, 0644)
}

// Remove deletes matched names from owner's stored file, or the whole
// file when sel is nil.
func (fs *FileStore) Remove(owner string, sel gattr.Selector) liberr.Error {
	fs.mu.Lock()
	path := fs.ownerPath(owner)
	fs.mu.Unlock()

	if sel == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return ErrorFileWrite.Error(err)
		}
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	stored := make(map[string]interface{})
	if err := ReadJSONFile(path, &stored); err != nil {
		return err
	}
	for name := range stored {
		if selected(sel, name) {
			delete(stored, name)
		}
	}
	return WriteJSONFile(path, stored, 0644)
}

// List returns the stored attribute names for owner matched by sel.
func (fs *FileStore) List(owner string, sel gattr.Selector) ([]string, liberr.Error) {
	fs.mu.Lock()
	path := fs.ownerPath(owner)
	fs.mu.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	stored := make(map[string]interface{})
	if err := ReadJSONFile(path, &stored); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(stored))
	for name := range stored {
		if selected(sel, name) {
			out = append(out, name)
		}
	}
	return out, nil
}
