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
	"sync"
	"sync/atomic"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/glist"
	"github.com/nabbar/yuneta/gtrace"
)

// GObj is one instance of a registered gclass, living somewhere in the
// process-wide gobj tree.
type GObj struct {
	mu sync.RWMutex

	name   string
	class  *gclass.GClass
	attrs  *gattr.Table
	userData interface{}

	parent     *GObj
	parentNode *glist.Node[*GObj]
	children   *glist.List[*GObj]
	bottom     *GObj

	stats map[string]int64

	outSubs *glist.List[*Subscription]
	inSubs  *glist.List[*Subscription]

	state     string
	prevState string

	traceMask   gtrace.Mask
	noTraceMask gtrace.Mask

	flags      Flag
	running    bool
	playing    bool
	disabled   bool
	created    bool
	destroying bool
	destroyed  bool

	inside int32
}

var yunoMu sync.Mutex
var yunoSingleton *GObj

// CreateGObj allocates and wires a new gobj under parent (nil for the
// root), in a fixed order: parameter checks,
// allocation, attribute construction, persistent-attribute load for
// services, service-table registration, insertion into parent's children,
// mt_create/mt_create2, then parent's mt_child_added and the yuno's
// mt_gobj_created. The child is fully initialized before the parent is
// notified.
func CreateGObj(name string, class *gclass.GClass, kw map[string]interface{}, parent *GObj, flags Flag) (*GObj, liberr.Error) {
	if class == nil {
		return nil, ErrorEmptyGClassName.Error(nil)
	}
	if _, ok := gclass.Lookup(class.Name); !ok {
		return nil, ErrorUnknownGClass.Error(nil)
	}

	if flags.Has(FlagYuno) {
		yunoMu.Lock()
		if yunoSingleton != nil {
			yunoMu.Unlock()
			return nil, ErrorYunoAlreadyExists.Error(nil)
		}
		yunoMu.Unlock()
	}

	if flags.Has(FlagService) {
		if _, exists := lookupService(name); exists {
			return nil, ErrorDuplicateService.Error(nil)
		}
	}

	attrs, aerr := gattr.Build(class.AttrDesc, kw)
	if aerr != nil {
		return nil, aerr
	}

	// class-level flags (manual_start, no_check_output_events, ...) apply
	// to every instance; merge them with the caller's per-instance flags.
	flags |= Flag(class.Flags)

	g := &GObj{
		name:     name,
		class:    class,
		attrs:    attrs,
		parent:   parent,
		children: glist.New[*GObj](),
		outSubs:  glist.New[*Subscription](),
		inSubs:   glist.New[*Subscription](),
		stats:    make(map[string]int64),
		flags:    flags,
		disabled: false,
	}

	attrs.SetWritingHook(func(attrName string) {
		if class.GMT.Writing != nil {
			class.GMT.Writing(g, attrName)
		}
	})

	if flags.Has(FlagService) {
		if err := gattr.PersistLoad(name, attrs, nil); err != nil {
			return nil, err
		}
		registerService(name, g)
		if flags.Has(FlagDefaultService) {
			registerService(ServiceDefault, g)
		}
	}

	if flags.Has(FlagYuno) {
		yunoMu.Lock()
		yunoSingleton = g
		yunoMu.Unlock()
	}

	if parent != nil {
		g.parentNode = parent.children.Add(g)
	}

	gclass.IncInstance(class)

	if class.GMT.Create != nil {
		if err := class.GMT.Create(g, kw); err != nil {
			return nil, err
		}
	}
	if class.GMT.Create2 != nil {
		if err := class.GMT.Create2(g, kw); err != nil {
			return nil, err
		}
	}

	g.mu.Lock()
	g.created = true
	g.mu.Unlock()
	attrs.SetLifecycle(true, true)

	if parent != nil && parent.class.GMT.ChildAdded != nil {
		parent.class.GMT.ChildAdded(parent, g)
	}

	if y := Yuno(); y != nil && y != g && y.class.GMT.GobjCreated != nil {
		y.class.GMT.GobjCreated(y, g)
	}

	return g, nil
}

// Yuno returns the singleton yuno gobj, or nil if none has been created.
func Yuno() *GObj {
	yunoMu.Lock()
	defer yunoMu.Unlock()
	return yunoSingleton
}

// Name returns the gobj's instance name.
func (g *GObj) Name() string { g.mu.RLock(); defer g.mu.RUnlock(); return g.name }

// GClass returns the gobj's class.
func (g *GObj) GClass() *gclass.GClass { g.mu.RLock(); defer g.mu.RUnlock(); return g.class }

// Attrs returns the gobj's attribute table.
func (g *GObj) Attrs() *gattr.Table { return g.attrs }

// Parent returns the gobj's parent, or nil at the root.
func (g *GObj) Parent() *GObj { g.mu.RLock(); defer g.mu.RUnlock(); return g.parent }

// SetUserData / UserData hold the application-level payload a gclass would
// otherwise keep in its priv_size private block.
func (g *GObj) SetUserData(v interface{}) { g.mu.Lock(); defer g.mu.Unlock(); g.userData = v }
func (g *GObj) UserData() interface{}     { g.mu.RLock(); defer g.mu.RUnlock(); return g.userData }

// State returns the current FSM state name.
func (g *GObj) State() string { g.mu.RLock(); defer g.mu.RUnlock(); return g.state }

// PrevState returns the state the gobj was in immediately before the last
// transition — actions needing the pre-transition state must read this
// instead of State(), since state changes before the action runs.
func (g *GObj) PrevState() string { g.mu.RLock(); defer g.mu.RUnlock(); return g.prevState }

func (g *GObj) IsRunning() bool    { g.mu.RLock(); defer g.mu.RUnlock(); return g.running }
func (g *GObj) IsPlaying() bool    { g.mu.RLock(); defer g.mu.RUnlock(); return g.playing }
func (g *GObj) IsDisabled() bool   { g.mu.RLock(); defer g.mu.RUnlock(); return g.disabled }
func (g *GObj) IsDestroying() bool { g.mu.RLock(); defer g.mu.RUnlock(); return g.destroying }
func (g *GObj) IsDestroyed() bool  { g.mu.RLock(); defer g.mu.RUnlock(); return g.destroyed }
func (g *GObj) Flags() Flag        { g.mu.RLock(); defer g.mu.RUnlock(); return g.flags }

// incInside / decInside track the __inside__ dispatch-depth counter used
// for trace indentation only.
func (g *GObj) incInside() int32 { return atomic.AddInt32(&g.inside, 1) }
func (g *GObj) decInside() int32 { return atomic.AddInt32(&g.inside, -1) }

// Inside reports the current dispatch nesting depth.
func (g *GObj) Inside() int32 { return atomic.LoadInt32(&g.inside) }

// Destroy tears g down idempotently: notifies the parent,
// deregisters from the service table, pauses/stops if still active,
// cancels every subscription in both directions, destroys children
// recursively, calls mt_destroy, then clears and marks destroyed.
func (g *GObj) Destroy() {
	g.mu.Lock()
	if g.destroying || g.destroyed {
		g.mu.Unlock()
		return
	}
	g.destroying = true
	parent := g.parent
	class := g.class
	flags := g.flags
	name := g.name
	g.mu.Unlock()

	if parent != nil && parent.class.GMT.ChildRemoved != nil {
		parent.class.GMT.ChildRemoved(parent, g)
	}

	if flags.Has(FlagService) {
		unregisterService(name)
		if flags.Has(FlagDefaultService) {
			unregisterService(ServiceDefault)
		}
	}

	if g.IsPlaying() {
		g.logWarning("destroying a playing gobj, auto-pausing")
		_ = g.Pause()
	}
	if g.IsRunning() {
		g.logWarning("destroying a running gobj, auto-stopping")
		_ = g.Stop()
	}

	for _, s := range g.OutSubsSnapshot() {
		cancelSubscription(s)
	}
	for _, s := range g.InSubsSnapshot() {
		cancelSubscription(s)
	}

	for _, child := range g.children.Snapshot() {
		child.Destroy()
	}

	if class.GMT.Destroy != nil {
		class.GMT.Destroy(g)
	}

	if parent != nil {
		parent.children.Delete(g.parentNode)
	}

	yunoMu.Lock()
	if yunoSingleton == g {
		yunoSingleton = nil
	}
	yunoMu.Unlock()

	gclass.DecInstance(class)

	g.attrs.SetLifecycle(true, false)

	g.mu.Lock()
	g.userData = nil
	g.destroying = false
	g.destroyed = true
	g.mu.Unlock()
}

// cancelSubscription detaches s from both its publisher's and subscriber's
// lists, regardless of which side initiated the destroy.
func cancelSubscription(s *Subscription) {
	if s.Publisher != nil {
		s.Publisher.RemoveOutSub(s)
	}
	if s.Subscriber != nil {
		s.Subscriber.RemoveInSub(s)
	}
}
