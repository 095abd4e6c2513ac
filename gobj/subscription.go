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

import "github.com/nabbar/yuneta/glist"

// Subscription is one subscribe_event record, held on both the publisher's
// out-list and the subscriber's in-list.
type Subscription struct {
	Publisher *GObj
	Subscriber *GObj
	Event      string
	Config     map[string]interface{}
	Global     map[string]interface{}
	Local      map[string]interface{}
	Filter     map[string]interface{}
	Hard       bool
	OwnEvent   bool

	outNode *glist.Node[*Subscription]
	inNode  *glist.Node[*Subscription]
}

// samePolicy reports whether two subscriptions carry identical
// publisher/subscriber/event plus all three policy dicts, the duplicate
// test gobj_subscribe_event runs before inserting a new record.
func samePolicy(a, b *Subscription) bool {
	return a.Publisher == b.Publisher &&
		a.Subscriber == b.Subscriber &&
		a.Event == b.Event &&
		mapEqual(a.Config, b.Config) &&
		mapEqual(a.Global, b.Global) &&
		mapEqual(a.Local, b.Local)
}

func mapEqual(a, b map[string]interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || bv != v {
			return false
		}
	}
	return true
}

// AddOutSub appends s to g's outgoing (as publisher) subscription list.
func (g *GObj) AddOutSub(s *Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s.outNode = g.outSubs.Add(s)
}

// AddInSub appends s to g's incoming (as subscriber) subscription list.
func (g *GObj) AddInSub(s *Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s.inNode = g.inSubs.Add(s)
}

// RemoveOutSub detaches s from g's outgoing list.
func (g *GObj) RemoveOutSub(s *Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_ = g.outSubs.Delete(s.outNode)
	s.outNode = nil
}

// RemoveInSub detaches s from g's incoming list.
func (g *GObj) RemoveInSub(s *Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_ = g.inSubs.Delete(s.inNode)
	s.inNode = nil
}

// OutSubsSnapshot copies the current outgoing subscription list, immune to
// concurrent subscribe/unsubscribe during a publish loop.
func (g *GObj) OutSubsSnapshot() []*Subscription {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.outSubs.Snapshot()
}

// InSubsSnapshot copies the current incoming subscription list.
func (g *GObj) InSubsSnapshot() []*Subscription {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inSubs.Snapshot()
}

// FindOutSub returns the first outgoing subscription matching the given
// five-tuple (subscriber, event and the three policy dicts) used by both
// duplicate detection and unsubscribe.
func (g *GObj) FindOutSub(subscriber *GObj, event string, config, global, local map[string]interface{}) *Subscription {
	want := &Subscription{Publisher: g, Subscriber: subscriber, Event: event, Config: config, Global: global, Local: local}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.outSubs.Find(func(s *Subscription) bool { return samePolicy(s, want) })
	if n == nil {
		return nil
	}
	return n.Value()
}
