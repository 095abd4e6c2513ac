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
	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/logger"
)

// SendEvent dispatches event to dst through its gclass's FSM table.
func SendEvent(dst *GObj, event string, kw map[string]interface{}, src *GObj) (int, liberr.Error) {
	if dst == nil {
		return -1, ErrorNilDestination.Error(nil)
	}
	if dst.IsDestroyed() {
		return -1, ErrorDestroyed.Error(nil)
	}
	if dst.IsDestroying() {
		return -1, ErrorDestroying.Error(nil)
	}

	dst.incInside()
	defer dst.decInside()

	curState := dst.State()
	binding, found := gclass.Lookup2(dst.class, curState, event)

	if !found {
		if dst.class.GMT.InjectEvent != nil {
			return dst.class.GMT.InjectEvent(dst, event, kw)
		}
		err := ErrorNoActionForEvent.Error(nil)
		dst.logCaught(logger.ErrorLevel, "event refused", err, logger.NewFields().
			Add("event", event).
			Add("state", curState))
		return -1, err
	}

	if binding.NextState != "" && binding.NextState != curState {
		if err := dst.changeState(binding.NextState); err != nil {
			return -1, err
		}
	}

	if binding.Action == nil {
		return 0, nil
	}

	ret, err := binding.Action(dst, event, kw)
	return ret, err
}

// changeState refuses unknown target states, skips no-op transitions, and
// publishes STATE_CHANGED via mt_state_changed if the class defines it,
// else through the publisher installed by SetStateChangedPublisher (gsub).
func (g *GObj) changeState(next string) liberr.Error {
	if !gclass.HasState(g.class, next) {
		err := ErrorUnknownState.Error(nil)
		g.logCaught(logger.ErrorLevel, "transition to unknown state", err, logger.NewFields().
			Add("state", next))
		return err
	}

	g.mu.Lock()
	cur := g.state
	if cur == next {
		g.mu.Unlock()
		return nil
	}
	g.prevState = cur
	g.state = next
	g.mu.Unlock()

	if g.class.GMT.StateChanged != nil {
		g.class.GMT.StateChanged(g, cur, next)
	} else if publishStateChanged != nil {
		publishStateChanged(g, cur, next)
	}
	return nil
}

// ChangeState is the exported form of changeState, for callers (e.g.
// initial-state assignment at creation) outside a dispatch.
func (g *GObj) ChangeState(next string) liberr.Error {
	return g.changeState(next)
}

// publishStateChanged is wired by the gsub package (which imports gobj) to
// publish STATE_CHANGED through the pub/sub engine when a gclass has no
// mt_state_changed override. Kept as an indirection to avoid a gobj->gsub
// import cycle.
var publishStateChanged func(g *GObj, previous, current string)

// SetStateChangedPublisher installs the pub/sub-backed STATE_CHANGED
// publisher. Called once from gsub's package init.
func SetStateChangedPublisher(fn func(g *GObj, previous, current string)) {
	publishStateChanged = fn
}

// StateAcceptsEvent reports whether g's current state has any binding for
// event, used by the pub/sub engine's STATE_CHANGED subscriber filter.
func (g *GObj) StateAcceptsEvent(event string) bool {
	_, ok := gclass.Lookup2(g.class, g.State(), event)
	return ok
}
