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
	"strings"
	"sync"
	"sync/atomic"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/gtrace"
)

var (
	regMu sync.RWMutex
	reg   = make(map[string]*GClass)
)

// validName rejects empty names and the three separator characters the
// tree/path lookups reserve: backtick (separator between path and
// full-name segments), caret (separator between gclass and name inside a
// segment) and dot (reserved for future use).
func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, "`^.")
}

// Create registers a new gclass. states lists the initial state names (each
// created empty); use AddEvAction or AddStateWithActionList to populate
// their action tables.
func Create(name string, eventTypes []EventType, states []string, gmt GMT, attrDesc []gattr.Descriptor, privSize int, authzTable, commandTable, userTraceLevel []string, flags uint32) (*GClass, liberr.Error) {
	if !validName(name) {
		err := ErrorInvalidName.Error(nil)
		logCaught("gclass name is empty or carries a reserved character", err, name)
		return nil, err
	}

	regMu.Lock()
	defer regMu.Unlock()

	if _, exists := reg[name]; exists {
		err := ErrorAlreadyRegistered.Error(nil)
		logCaught("gclass is already registered", err, name)
		return nil, err
	}

	levels, lerr := gtrace.NewUserLevels(userTraceLevel)
	if lerr != nil {
		return nil, lerr
	}

	gc := &GClass{
		Name:           name,
		EventTypes:     make(map[string]EventType, len(eventTypes)),
		AttrDesc:       attrDesc,
		GMT:            gmt,
		PrivSize:       privSize,
		AuthzTable:     authzTable,
		CommandTable:   commandTable,
		UserTraceLevel: userTraceLevel,
		Flags:          flags,
		states:         make(map[string]*state, len(states)),
		stateOrder:     make([]string, 0, len(states)),
		userLevels:     levels,
	}

	for _, et := range eventTypes {
		gc.EventTypes[et.Name] = et
	}

	for _, s := range states {
		gc.states[s] = &state{name: s, bindings: make(map[string]Binding)}
		gc.stateOrder = append(gc.stateOrder, s)
	}

	reg[name] = gc
	return gc, nil
}

// AddState appends a new, empty state to gc's FSM.
func AddState(gc *GClass, name string) liberr.Error {
	regMu.Lock()
	defer regMu.Unlock()

	if _, exists := gc.states[name]; exists {
		return nil
	}
	gc.states[name] = &state{name: name, bindings: make(map[string]Binding)}
	gc.stateOrder = append(gc.stateOrder, name)
	return nil
}

// AddEvAction binds fn as the action for event within stateName, with no
// associated state transition.
func AddEvAction(gc *GClass, stateName, event string, fn ActionFn) liberr.Error {
	return AddEvActionState(gc, stateName, event, fn, "")
}

// AddEvActionState binds fn as the action for event within stateName, and
// records nextState as the transition to apply (before running fn) when
// this binding fires. An empty nextState means no transition.
func AddEvActionState(gc *GClass, stateName, event string, fn ActionFn, nextState string) liberr.Error {
	regMu.Lock()
	defer regMu.Unlock()

	st, ok := gc.states[stateName]
	if !ok {
		return ErrorUnknownState.Error(nil)
	}
	st.bindings[event] = Binding{Action: fn, NextState: nextState}
	return nil
}

// AddStateWithActionList creates (or replaces the action table of) a state
// in one call, with no state transitions attached.
func AddStateWithActionList(gc *GClass, stateName string, actions map[string]ActionFn) liberr.Error {
	regMu.Lock()
	defer regMu.Unlock()

	st, ok := gc.states[stateName]
	if !ok {
		st = &state{name: stateName}
		gc.states[stateName] = st
		gc.stateOrder = append(gc.stateOrder, stateName)
	}
	bindings := make(map[string]Binding, len(actions))
	for ev, fn := range actions {
		bindings[ev] = Binding{Action: fn}
	}
	st.bindings = bindings
	return nil
}

// Action returns the action bound to event within stateName, if any.
func Action(gc *GClass, stateName, event string) (ActionFn, bool) {
	b, ok := Lookup2(gc, stateName, event)
	if !ok {
		return nil, false
	}
	return b.Action, true
}

// Lookup2 returns the full (action, next-state) binding for (stateName,
// event), if any.
func Lookup2(gc *GClass, stateName, event string) (Binding, bool) {
	regMu.RLock()
	defer regMu.RUnlock()

	st, ok := gc.states[stateName]
	if !ok {
		return Binding{}, false
	}
	b, ok := st.bindings[event]
	return b, ok
}

// HasState reports whether stateName is defined on gc.
func HasState(gc *GClass, stateName string) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	_, ok := gc.states[stateName]
	return ok
}

// States returns the state names in declaration order.
func States(gc *GClass) []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, len(gc.stateOrder))
	copy(out, gc.stateOrder)
	return out
}

// EventTypeByName looks up an event type by its exact name.
func EventTypeByName(gc *GClass, name string) (EventType, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	et, ok := gc.EventTypes[name]
	return et, ok
}

// EventTypeByFlag returns every event type whose flags include bit.
func EventTypeByFlag(gc *GClass, bit EventFlag) []EventType {
	regMu.RLock()
	defer regMu.RUnlock()

	out := make([]EventType, 0)
	for _, et := range gc.EventTypes {
		if et.Flags.Has(bit) {
			out = append(out, et)
		}
	}
	return out
}

func (f EventFlag) Has(bit EventFlag) bool { return f&bit != 0 }

// Lookup returns the registered gclass by name.
func Lookup(name string) (*GClass, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	gc, ok := reg[name]
	return gc, ok
}

// Registered returns the names of every currently registered gclass, in no
// defined order.
func Registered() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(reg))
	for name := range reg {
		out = append(out, name)
	}
	return out
}

// Unregister removes gc from the registry. Refuses with ErrorInstancesAlive
// if any instance has not yet been destroyed.
func Unregister(gc *GClass) liberr.Error {
	regMu.Lock()
	defer regMu.Unlock()

	if atomic.LoadInt32(&gc.instances) > 0 {
		err := ErrorInstancesAlive.Error(nil)
		logCaught("cannot unregister a gclass with live instances", err, gc.Name)
		return err
	}
	delete(reg, gc.Name)
	return nil
}

// UnregisterAll drains the whole registry during runtime teardown
// (gobj_end). Classes with live instances are removed anyway — the caller
// has already destroyed the gobj tree — and their names are returned so the
// teardown can log them as leaks.
func UnregisterAll() []string {
	regMu.Lock()
	defer regMu.Unlock()

	var alive []string
	for name, gc := range reg {
		if atomic.LoadInt32(&gc.instances) > 0 {
			alive = append(alive, name)
		}
		delete(reg, name)
	}
	return alive
}

// IncInstance / DecInstance track live instance count; called by gobj
// around gobj_create_gobj and gobj_destroy.
func IncInstance(gc *GClass) { atomic.AddInt32(&gc.instances, 1) }
func DecInstance(gc *GClass) { atomic.AddInt32(&gc.instances, -1) }

// InstanceCount reports the current live instance count.
func InstanceCount(gc *GClass) int32 { return atomic.LoadInt32(&gc.instances) }
