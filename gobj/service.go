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

	liberr "github.com/nabbar/yuneta/errors"
)

// Well-known service names.
const (
	ServiceYuno    = "__yuno__"
	ServiceRoot    = "__root__"
	ServiceDefault = "__default_service__"
)

var (
	svcMu sync.RWMutex
	svcTbl = make(map[string]*GObj)
)

func registerService(name string, g *GObj) {
	svcMu.Lock()
	defer svcMu.Unlock()
	svcTbl[name] = g
}

func unregisterService(name string) {
	svcMu.Lock()
	defer svcMu.Unlock()
	delete(svcTbl, name)
}

func clearServices() {
	svcMu.Lock()
	defer svcMu.Unlock()
	svcTbl = make(map[string]*GObj)
}

func lookupService(name string) (*GObj, bool) {
	svcMu.RLock()
	defer svcMu.RUnlock()
	g, ok := svcTbl[name]
	return g, ok
}

// FindService resolves a service name to its gobj, recognizing the three
// well-known aliases as well as any service-flagged gobj's own name.
func FindService(name string) (*GObj, liberr.Error) {
	switch name {
	case ServiceYuno:
		if y := Yuno(); y != nil {
			return y, nil
		}
		return nil, ErrorServiceNotFound.Error(nil)
	case ServiceRoot:
		if g, ok := lookupService(ServiceRoot); ok {
			return g, nil
		}
		// with no explicit registration the tree root is the yuno itself
		if y := Yuno(); y != nil {
			return y, nil
		}
		return nil, ErrorServiceNotFound.Error(nil)
	}

	if g, ok := lookupService(name); ok {
		return g, nil
	}
	return nil, ErrorServiceNotFound.Error(nil)
}

// Services returns a snapshot of every registered service gobj.
func Services() []*GObj {
	svcMu.RLock()
	defer svcMu.RUnlock()

	out := make([]*GObj, 0, len(svcTbl))
	for _, g := range svcTbl {
		out = append(out, g)
	}
	return out
}

// AutostartServices starts every registered service (other than the yuno)
// flagged FlagAutostart: gobj_start if the class defines mt_play, otherwise
// gobj_start_tree. A service that fails to start does not block its
// siblings.
func AutostartServices() {
	for _, g := range Services() {
		if g == Yuno() || !g.Flags().Has(FlagAutostart) {
			continue
		}
		if g.class.GMT.Play != nil {
			_ = g.Start()
		} else {
			_ = g.StartTree()
		}
	}
}

// AutoplayServices plays every registered service (other than the yuno)
// flagged FlagAutoplay.
func AutoplayServices() {
	for _, g := range Services() {
		if g == Yuno() || !g.Flags().Has(FlagAutoplay) {
			continue
		}
		_ = g.Play()
	}
}
