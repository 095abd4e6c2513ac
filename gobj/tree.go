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
	"fmt"
	"strings"

	liberr "github.com/nabbar/yuneta/errors"
)

// FullName joins the gobj's ancestor chain from the root down, each
// segment written as "gclass^name" and separated by a backtick.
func (g *GObj) FullName() string {
	var segs []string
	for n := g; n != nil; n = n.Parent() {
		segs = append([]string{fmt.Sprintf("%s^%s", n.GClass().Name, n.Name())}, segs...)
	}
	return strings.Join(segs, "`")
}

// FirstChild / LastChild / NextChild / PrevChild mirror the C API's
// doubly-linked child traversal.
func (g *GObj) FirstChild() *GObj {
	n := g.children.First()
	if n == nil {
		return nil
	}
	return n.Value()
}

func (g *GObj) LastChild() *GObj {
	n := g.children.Last()
	if n == nil {
		return nil
	}
	return n.Value()
}

func (g *GObj) NextChild(child *GObj) *GObj {
	n := g.children.Next(child.parentNode)
	if n == nil {
		return nil
	}
	return n.Value()
}

func (g *GObj) PrevChild(child *GObj) *GObj {
	n := g.children.Prev(child.parentNode)
	if n == nil {
		return nil
	}
	return n.Value()
}

// Children returns a snapshot of the immediate children, in order.
func (g *GObj) Children() []*GObj {
	return g.children.Snapshot()
}

// ChildByName returns the first immediate child with the given name.
func (g *GObj) ChildByName(name string) *GObj {
	n := g.children.Find(func(c *GObj) bool { return c.Name() == name })
	if n == nil {
		return nil
	}
	return n.Value()
}

// FindChild matches the filter keys supported by find_child: the six
// reserved selectors plus any attribute name, all compared for equality
// except __prefix_gobj_name__, which matches a name prefix.
func (g *GObj) FindChild(filter map[string]interface{}) *GObj {
	n := g.children.Find(func(c *GObj) bool { return matchesFilter(c, filter) })
	if n == nil {
		return nil
	}
	return n.Value()
}

func matchesFilter(g *GObj, filter map[string]interface{}) bool {
	for k, want := range filter {
		switch k {
		case "__inherited_gclass_name__":
			if g.GClass().Name != want {
				return false
			}
		case "__gclass_name__":
			if g.GClass().Name != want {
				return false
			}
		case "__gobj_name__":
			if g.Name() != want {
				return false
			}
		case "__prefix_gobj_name__":
			prefix, _ := want.(string)
			if !strings.HasPrefix(g.Name(), prefix) {
				return false
			}
		case "__state__":
			if g.State() != want {
				return false
			}
		case "__disabled__":
			if g.IsDisabled() != want {
				return false
			}
		default:
			v, ok := g.attrs.Read(k)
			if !ok || v != want {
				return false
			}
		}
	}
	return true
}

// PathLookup resolves a `-separated path of gclass^name segments starting
// from root. A segment's gclass prefix ("gclass^") is optional; when
// present it must match.
func PathLookup(root *GObj, path string) (*GObj, liberr.Error) {
	cur := root
	for _, seg := range strings.Split(path, "`") {
		if seg == "" {
			continue
		}

		wantClass, wantName := "", seg
		if idx := strings.Index(seg, "^"); idx >= 0 {
			wantClass = seg[:idx]
			wantName = seg[idx+1:]
		}

		child := cur.ChildByName(wantName)
		if child == nil || (wantClass != "" && child.GClass().Name != wantClass) {
			return nil, ErrorPathNotFound.Error(nil)
		}
		cur = child
	}
	return cur, nil
}

// WalkMode selects one of the four tree-walk traversal orders.
type WalkMode int

const (
	WalkTopToBottom WalkMode = iota
	WalkBottomToTop
	WalkLevelFirstToLast
	WalkLevelLastToFirst
)

// WalkFunc is called once per visited gobj. A negative return stops the
// walk, zero continues, and a positive return skips the current branch
// (meaningful only in WalkTopToBottom).
type WalkFunc func(g *GObj) int

// Walk traverses the subtree rooted at g in the given mode.
func (g *GObj) Walk(mode WalkMode, fn WalkFunc) {
	switch mode {
	case WalkTopToBottom:
		walkTopDown(g, fn)
	case WalkBottomToTop:
		nodes := flattenTopDown(g)
		for i := len(nodes) - 1; i >= 0; i-- {
			if fn(nodes[i]) < 0 {
				return
			}
		}
	case WalkLevelFirstToLast:
		walkByLevel(g, fn, false)
	case WalkLevelLastToFirst:
		walkByLevel(g, fn, true)
	}
}

func walkTopDown(g *GObj, fn WalkFunc) int {
	r := fn(g)
	if r < 0 {
		return -1
	}
	if r > 0 {
		return 0
	}
	for _, c := range g.Children() {
		if walkTopDown(c, fn) < 0 {
			return -1
		}
	}
	return 0
}

func flattenTopDown(g *GObj) []*GObj {
	out := []*GObj{g}
	for _, c := range g.Children() {
		out = append(out, flattenTopDown(c)...)
	}
	return out
}

// walkByLevel does a breadth-first traversal (the supplemented BFS
// discipline bounds stack depth compared to a naive recursive per-level
// walk on deep trees), visiting each level's gobjs in forward or reverse
// order per reverse.
func walkByLevel(root *GObj, fn WalkFunc, reverse bool) {
	level := []*GObj{root}
	for len(level) > 0 {
		visit := level
		if reverse {
			visit = make([]*GObj, len(level))
			copy(visit, level)
			for i, j := 0, len(visit)-1; i < j; i, j = i+1, j-1 {
				visit[i], visit[j] = visit[j], visit[i]
			}
		}

		var next []*GObj
		for _, g := range visit {
			if fn(g) < 0 {
				return
			}
			next = append(next, g.Children()...)
		}
		level = next
	}
}
