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
	"github.com/nabbar/yuneta/gtrace"
)

// IncrStat adds delta to the named counter and returns the new value.
func (g *GObj) IncrStat(name string, delta int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stats[name] += delta
	return g.stats[name]
}

// SetStat overwrites the named counter.
func (g *GObj) SetStat(name string, value int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stats[name] = value
}

// Stat returns the named counter, zero when never touched.
func (g *GObj) Stat(name string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.stats[name]
}

// StatsSnapshot copies the full statistics mapping.
func (g *GObj) StatsSnapshot() map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]int64, len(g.stats))
	for k, v := range g.stats {
		out[k] = v
	}
	return out
}

// ResetStats clears every counter.
func (g *GObj) ResetStats() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stats = make(map[string]int64)
}

// SetBottomGobj installs (or, with nil, clears) the downstream peer whose
// attributes back unresolved reads on g, forming the bottom-gobj
// inheritance chain of stacked gobjs.
func (g *GObj) SetBottomGobj(bottom *GObj) {
	g.mu.Lock()
	g.bottom = bottom
	g.mu.Unlock()

	if bottom != nil {
		g.attrs.SetBottom(bottom.attrs)
	} else {
		g.attrs.SetBottom(nil)
	}
}

// BottomGobj returns the current bottom gobj, or nil.
func (g *GObj) BottomGobj() *GObj {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.bottom
}

// SetTraceLevel sets or clears one bit on g's instance trace mask.
func (g *GObj) SetTraceLevel(bit uint, set bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if set {
		g.traceMask = g.traceMask.Set(bit)
	} else {
		g.traceMask = g.traceMask.Clear(bit)
	}
}

// SetNoTraceLevel sets or clears one bit on g's instance no-trace mask.
func (g *GObj) SetNoTraceLevel(bit uint, set bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if set {
		g.noTraceMask = g.noTraceMask.Set(bit)
	} else {
		g.noTraceMask = g.noTraceMask.Clear(bit)
	}
}

// IsTracing decides whether a trace record at bit fires for g, folding the
// global, gclass and instance masks together and applying the gclass trace
// filter against g's attributes.
func (g *GObj) IsTracing(bit uint) bool {
	g.mu.RLock()
	objMask := g.traceMask
	objNoMask := g.noTraceMask
	g.mu.RUnlock()

	if !gtrace.ShouldTrace(bit, g.class.TraceMask(), g.class.NoTraceMask(), objMask, objNoMask) {
		return false
	}

	filter := g.class.TraceFilter()
	if len(filter) == 0 {
		return true
	}

	attrs := make(map[string]interface{})
	for _, name := range g.attrs.Names() {
		if v, ok := g.attrs.Read(name); ok {
			attrs[name] = v
		}
	}
	return filter.Match(attrs)
}
