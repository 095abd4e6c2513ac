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
	"sync"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/gtrace"
)

// EventFlag classifies an event type, matching the OUTPUT/SYSTEM/PUBLIC
// distinction used by event-type lookups.
type EventFlag uint8

const (
	EventOutput EventFlag = 1 << iota
	EventSystem
	EventPublic

	// EventNoWarnSubs suppresses the "published with no subscriber"
	// warning for this event type.
	EventNoWarnSubs
)

// EventType is one entry of a gclass's event-type table.
type EventType struct {
	Name  string
	Flags EventFlag
}

// ActionFn is a state/event action. self is the owning instance, supplied
// as interface{} to keep gclass free of a dependency on gobj; it returns an
// application return code and an optional error.
type ActionFn func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error)

// MTCreate ... MTPublicationFilter are the global method table hooks a
// gclass may define. All are optional; a nil hook is simply skipped.
type (
	MTCreate      func(self interface{}, kw map[string]interface{}) liberr.Error
	MTCreate2     func(self interface{}, kw map[string]interface{}) liberr.Error
	MTDestroy     func(self interface{})
	MTStart       func(self interface{}) liberr.Error
	MTStop        func(self interface{}) liberr.Error
	MTPlay        func(self interface{}) liberr.Error
	MTPause       func(self interface{}) liberr.Error
	MTDisable     func(self interface{}) liberr.Error
	MTWriting     func(self interface{}, attrName string)
	MTChildAdded  func(self interface{}, child interface{})
	MTChildRemoved func(self interface{}, child interface{})
	MTGobjCreated func(self interface{}, child interface{})
	MTStateChanged func(self interface{}, previous, current string)

	// MTInjectEvent handles an (state, event) pair the FSM table has no
	// action for. Return value mirrors a normal action's return code.
	MTInjectEvent func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error)

	// MTPublishEvent lets a publisher override default publication. The
	// returned PublishDecision selects break/skip/continue.
	MTPublishEvent func(self interface{}, event string, kw map[string]interface{}) PublishDecision

	// MTSubscriptionAdded vets a brand-new subscription; a negative
	// return cancels and deletes it silently.
	MTSubscriptionAdded func(self interface{}, sub interface{}) int

	// MTPublicationPreFilter gates one subscription during a publish
	// loop: break stops the whole loop, skip moves to the next
	// subscription, publish lets it proceed.
	MTPublicationPreFilter func(self interface{}, sub interface{}) PublishDecision

	// MTPublicationFilter implements the __filter__ match contract
	// against one subscription's filter dict and the firing kw.
	MTPublicationFilter func(self interface{}, filter map[string]interface{}, kw map[string]interface{}) bool
)

// PublishDecision is the three-way outcome of a publish-time override hook.
type PublishDecision int

const (
	PublishContinue PublishDecision = iota
	PublishSkip
	PublishBreak
)

// GMT bundles every optional lifecycle/override hook of a gclass.
type GMT struct {
	Create               MTCreate
	Create2              MTCreate2
	Destroy              MTDestroy
	Start                MTStart
	Stop                 MTStop
	Play                 MTPlay
	Pause                MTPause
	Disable              MTDisable
	Writing              MTWriting
	ChildAdded           MTChildAdded
	ChildRemoved         MTChildRemoved
	GobjCreated          MTGobjCreated
	StateChanged         MTStateChanged
	InjectEvent          MTInjectEvent
	PublishEvent         MTPublishEvent
	SubscriptionAdded    MTSubscriptionAdded
	PublicationPreFilter MTPublicationPreFilter
	PublicationFilter    MTPublicationFilter
}

// Binding is the per-(state,event) entry of a gclass's FSM table: the
// action function to run and, optionally, the state to transition to
// before running it.
type Binding struct {
	Action    ActionFn
	NextState string
}

// state holds the per-event action table of one named FSM state.
type state struct {
	name     string
	bindings map[string]Binding
}

// GClass is a registered class: its FSM shape, event vocabulary, hooks and
// attribute schema. Instances are tracked only by count, incremented and
// decremented by the gobj package around creation and destruction.
type GClass struct {
	Name             string
	EventTypes       map[string]EventType
	AttrDesc         []gattr.Descriptor
	GMT              GMT
	PrivSize         int
	AuthzTable       []string
	CommandTable     []string
	UserTraceLevel   []string
	Flags            uint32

	states     map[string]*state
	stateOrder []string
	instances  int32
	userLevels *gtrace.UserLevels

	traceMu     sync.RWMutex
	traceMask   gtrace.Mask
	noTraceMask gtrace.Mask
	traceFilter gtrace.Filter
}

// SetTraceLevel sets or clears one bit on gc's class-level trace mask.
func (gc *GClass) SetTraceLevel(bit uint, set bool) {
	gc.traceMu.Lock()
	defer gc.traceMu.Unlock()
	if set {
		gc.traceMask = gc.traceMask.Set(bit)
	} else {
		gc.traceMask = gc.traceMask.Clear(bit)
	}
}

// SetNoTraceLevel sets or clears one bit on gc's class-level no-trace mask,
// which suppresses that level even when set globally or per-gobj.
func (gc *GClass) SetNoTraceLevel(bit uint, set bool) {
	gc.traceMu.Lock()
	defer gc.traceMu.Unlock()
	if set {
		gc.noTraceMask = gc.noTraceMask.Set(bit)
	} else {
		gc.noTraceMask = gc.noTraceMask.Clear(bit)
	}
}

// TraceMask returns a copy of gc's class-level trace mask.
func (gc *GClass) TraceMask() gtrace.Mask {
	gc.traceMu.RLock()
	defer gc.traceMu.RUnlock()
	return gtrace.NewMask().Union(gc.traceMask)
}

// NoTraceMask returns a copy of gc's class-level no-trace mask.
func (gc *GClass) NoTraceMask() gtrace.Mask {
	gc.traceMu.RLock()
	defer gc.traceMu.RUnlock()
	return gtrace.NewMask().Union(gc.noTraceMask)
}

// SetTraceFilter installs gc's trace filter: only gobjs whose attributes
// match the filter are traced. A nil filter matches every instance.
func (gc *GClass) SetTraceFilter(f gtrace.Filter) {
	gc.traceMu.Lock()
	defer gc.traceMu.Unlock()
	gc.traceFilter = f
}

// TraceFilter returns gc's current trace filter.
func (gc *GClass) TraceFilter() gtrace.Filter {
	gc.traceMu.RLock()
	defer gc.traceMu.RUnlock()
	return gc.traceFilter
}

// UserLevelBit resolves one of gc's declared user trace level names to its
// mask bit.
func (gc *GClass) UserLevelBit(name string) (uint, bool) {
	return gc.userLevels.Bit(name)
}
