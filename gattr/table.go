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
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	liberr "github.com/nabbar/yuneta/errors"
)

type attribute struct {
	desc  Descriptor
	value interface{}
}

// WritingHook is invoked after a successful write, once the owning gobj has
// completed creation and is not yet destroyed.
type WritingHook func(name string)

// Table is the built, per-instance attribute record of one gobj.
type Table struct {
	mu      sync.RWMutex
	attrs   map[string]*attribute
	order   []string
	bottom  *Table
	hook    WritingHook
	created bool
	alive   bool
}

// Build constructs a Table from descriptors, applying each default then
// overlaying kw for keys that exist in the descriptor set. Keys in kw that
// do not name a known attribute are ignored.
func Build(descs []Descriptor, kw map[string]interface{}) (*Table, liberr.Error) {
	t := &Table{
		attrs: make(map[string]*attribute, len(descs)),
		order: make([]string, 0, len(descs)),
	}

	for _, d := range descs {
		def, err := parseDefault(d.Type, d.Default)
		if err != nil {
			return nil, err
		}
		t.attrs[d.Name] = &attribute{desc: d, value: def}
		t.order = append(t.order, d.Name)
	}

	for k, v := range kw {
		a, ok := t.attrs[k]
		if !ok {
			continue
		}
		if !typeMatches(a.desc.Type, v) {
			err := ErrorTypeMismatch.Error(nil)
			logCaught("keyword value does not match attribute type", err, k)
			return nil, err
		}
		a.value = v
	}

	return t, nil
}

// SetBottom installs the gobj this table falls back to for unresolved
// reads, implementing the bottom-gobj inheritance chain.
func (t *Table) SetBottom(bottom *Table) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bottom = bottom
}

// SetWritingHook installs the mt_writing callback.
func (t *Table) SetWritingHook(h WritingHook) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hook = h
}

// SetLifecycle records whether the owning gobj has finished gobj_create_gobj
// (created) and has not yet been destroyed (alive); both gate mt_writing
// delivery.
func (t *Table) SetLifecycle(created, alive bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.created = created
	t.alive = alive
}

// Names returns attribute names in descriptor declaration order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Descriptor returns the descriptor for name if defined locally.
func (t *Table) Descriptor(name string) (Descriptor, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, ok := t.attrs[name]
	if !ok {
		return Descriptor{}, false
	}
	return a.desc, true
}

// Read returns the current value of name, walking the bottom-gobj chain if
// it is not defined locally.
func (t *Table) Read(name string) (interface{}, bool) {
	t.mu.RLock()
	a, ok := t.attrs[name]
	bottom := t.bottom
	t.mu.RUnlock()

	if ok {
		return a.value, true
	}
	if bottom != nil {
		return bottom.Read(name)
	}
	return nil, false
}

// Write enforces the attribute contract: the attribute must exist locally
// and be writable, the value's type must match, and on success the
// mt_writing hook fires if the gobj has completed creation and is alive.
func (t *Table) Write(name string, value interface{}) liberr.Error {
	t.mu.Lock()

	a, ok := t.attrs[name]
	if !ok {
		t.mu.Unlock()
		err := ErrorUnknownAttribute.Error(nil)
		logCaught("write to unknown attribute", err, name)
		return err
	}
	if !a.desc.Flags.Has(FlagWritable) {
		t.mu.Unlock()
		err := ErrorNotWritable.Error(nil)
		logCaught("write to read-only attribute", err, name)
		return err
	}
	if !typeMatches(a.desc.Type, value) {
		t.mu.Unlock()
		err := ErrorTypeMismatch.Error(nil)
		logCaught("write value does not match attribute type", err, name)
		return err
	}

	a.value = value
	hook := t.hook
	fire := t.created && t.alive
	t.mu.Unlock()

	if fire && hook != nil {
		hook(name)
	}
	return nil
}

// ResetVolatile restores every volatile attribute to its descriptor
// default, called on each gobj_start.
func (t *Table) ResetVolatile() liberr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, a := range t.attrs {
		if !a.desc.Flags.Has(FlagVolatile) {
			continue
		}
		def, err := parseDefault(a.desc.Type, a.desc.Default)
		if err != nil {
			return err
		}
		a.value = def
	}
	return nil
}

// CheckRequired validates every required attribute is non-empty/non-zero,
// as gobj_start demands before allowing the transition.
func (t *Table) CheckRequired() liberr.Error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, a := range t.attrs {
		if !a.desc.Flags.Has(FlagRequired) {
			continue
		}
		if isEmpty(a.desc.Type, a.value) {
			return ErrorRequiredMissing.Error(nil)
		}
	}
	return nil
}

func typeMatches(t Type, v interface{}) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeInteger:
		switch v.(type) {
		case int, int32, int64:
			return true
		}
		return false
	case TypeReal:
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	case TypeList:
		_, ok := v.([]interface{})
		if ok {
			return true
		}
		_, ok = v.([]string)
		return ok
	case TypeDict:
		_, ok := v.(map[string]interface{})
		return ok
	case TypeJSON:
		return true
	case TypePointer:
		return v == nil || !isBasicKind(v)
	}
	return false
}

func isBasicKind(v interface{}) bool {
	switch v.(type) {
	case string, bool, int, int32, int64, float32, float64:
		return true
	}
	return false
}

func isEmpty(t Type, v interface{}) bool {
	switch t {
	case TypeString:
		s, _ := v.(string)
		return s == ""
	case TypeList:
		if l, ok := v.([]interface{}); ok {
			return len(l) == 0
		}
		if l, ok := v.([]string); ok {
			return len(l) == 0
		}
		return true
	case TypeDict:
		d, _ := v.(map[string]interface{})
		return len(d) == 0
	case TypeInteger:
		switch n := v.(type) {
		case int:
			return n == 0
		case int32:
			return n == 0
		case int64:
			return n == 0
		}
		return true
	case TypeReal:
		switch f := v.(type) {
		case float32:
			return f == 0
		case float64:
			return f == 0
		}
		return true
	case TypeBoolean, TypeJSON:
		return false
	case TypePointer:
		return v == nil
	}
	return v == nil
}

func parseDefault(t Type, s string) (interface{}, liberr.Error) {
	switch t {
	case TypeString:
		return s, nil
	case TypeBoolean:
		if s == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, ErrorInvalidDefault.Error(err)
		}
		return b, nil
	case TypeInteger:
		if s == "" {
			return int64(0), nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, ErrorInvalidDefault.Error(err)
		}
		return n, nil
	case TypeReal:
		if s == "" {
			return float64(0), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, ErrorInvalidDefault.Error(err)
		}
		return f, nil
	case TypeList:
		if s == "" {
			return []string{}, nil
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	case TypeDict:
		if s == "" {
			return map[string]interface{}{}, nil
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			return nil, ErrorInvalidDefault.Error(err)
		}
		return m, nil
	case TypeJSON:
		if s == "" {
			return nil, nil
		}
		var v interface{}
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, ErrorInvalidDefault.Error(err)
		}
		return v, nil
	case TypePointer:
		return nil, nil
	}
	return nil, ErrorInvalidDefault.Error(nil)
}
