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

package gloop

import (
	"sync/atomic"
	"time"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gobj"
)

// Timer arms a one-shot or periodic timer event. delay is in
// milliseconds. The callback fires with Result>=0 on every tick; Stop
// delivers exactly one further completion with FlagStopped set and a
// negative Result.
func (l *Loop) Timer(owner *gobj.GObj, delayMS int, periodic bool, cb Callback) *Event {
	ev := &Event{
		id:       newEventID(),
		Kind:     KindTimer,
		Owner:    owner,
		callback: cb,
		delay:    time.Duration(delayMS) * time.Millisecond,
		periodic: periodic,
	}
	if periodic {
		ev.Flags |= FlagPeriodic
	}
	l.register(ev)
	ev.start(l)
	return ev
}

// start arms the underlying timer/ticker. Unexported: a Timer Event is
// always started by Loop.Timer; re-arming after a Stop is not supported —
// destruction only follows a STOPPED completion.
func (ev *Event) start(l *Loop) {
	if !atomic.CompareAndSwapInt32(&ev.armed, 0, 1) {
		return
	}

	if l.ring != nil {
		if err := l.ring.arm(ev); err == nil {
			ev.Flags |= FlagInRing
			return
		}
		// fall through to the portable path if the ring has no free
		// submission entry; the completion contract is unaffected.
	}

	if ev.periodic {
		ev.ticker = time.NewTicker(ev.delay)
		go func(t *time.Ticker) {
			for range t.C {
				if ev.IsStopped() {
					return
				}
				l.postCompletion(ev, 0, 0)
			}
		}(ev.ticker)
		return
	}

	ev.timer = time.AfterFunc(ev.delay, func() {
		if ev.IsStopped() {
			return
		}
		l.postCompletion(ev, 0, 0)
	})
}

// Stop cancels the event. Idempotent: a second call is a no-op and does
// not deliver a second STOPPED completion.
func (ev *Event) Stop() liberr.Error {
	if !atomic.CompareAndSwapInt32(&ev.stopped, 0, 1) {
		return nil
	}

	switch ev.Kind {
	case KindTimer:
		if ev.Flags.Has(FlagInRing) {
			ev.loop.ring.cancel(ev)
		} else if ev.periodic && ev.ticker != nil {
			ev.ticker.Stop()
		} else if ev.timer != nil {
			ev.timer.Stop()
		}
	case KindAccept:
		if ev.listener != nil {
			_ = ev.listener.Close()
		}
	case KindConnect, KindRead, KindWrite:
		if ev.conn != nil {
			_ = ev.conn.Close()
		}
	}

	ev.loop.postCompletion(ev, -1, FlagStopped)
	return nil
}
