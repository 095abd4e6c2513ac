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

//go:build linux

package gloop

import (
	"sync"

	"github.com/pawelgaczynski/giouring"
	"golang.org/x/sys/unix"

	liberr "github.com/nabbar/yuneta/errors"
)

// uringTimerRing backs Timer events with IORING_OP_TIMEOUT submissions on a
// real io_uring instance instead of time.AfterFunc. It is the Linux-only
// fast path; Accept,
// Connect, Read and Write stay on the portable net-package reactor even
// when a uringTimerRing is active, since those already map cleanly onto
// Go's integrated netpoller and gain nothing from a second completion
// queue here.
type uringTimerRing struct {
	mu      sync.Mutex
	ring    *giouring.Ring
	pending map[uint64]*Event
	nextTag uint64
}

func newURingTimerRing(entries uint32) (*uringTimerRing, liberr.Error) {
	ring, err := giouring.CreateRing(entries)
	if err != nil {
		return nil, ErrorRingUnavailable.Error(nil)
	}
	return &uringTimerRing{
		ring:    ring,
		pending: make(map[uint64]*Event),
	}, nil
}

// arm submits an IORING_OP_TIMEOUT SQE for ev and tags it with a fresh
// user_data value so pump can find ev again from the CQE.
func (u *uringTimerRing) arm(ev *Event) liberr.Error {
	u.mu.Lock()
	defer u.mu.Unlock()

	sqe := u.ring.GetSQE()
	if sqe == nil {
		return ErrorRingFull.Error(nil)
	}

	ts := unix.NsecToTimespec(ev.delay.Nanoseconds())
	count := uint32(0)
	if ev.periodic {
		count = ^uint32(0) // repeat indefinitely; cancel() tears it down
	}
	sqe.PrepareTimeout(&ts, count, 0)

	u.nextTag++
	tag := u.nextTag
	sqe.UserData = tag
	u.pending[tag] = ev

	if _, err := u.ring.Submit(); err != nil {
		delete(u.pending, tag)
		return ErrorRingFull.Error(nil)
	}
	return nil
}

// cancel submits IORING_OP_ASYNC_CANCEL for every tag associated with ev.
// Event.Stop calls it before posting the FlagStopped completion; cancel
// only prevents a further in-ring tick from arriving for the timer.
func (u *uringTimerRing) cancel(ev *Event) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for tag, e := range u.pending {
		if e == ev {
			if sqe := u.ring.GetSQE(); sqe != nil {
				sqe.PrepareCancel(tag, 0)
				_, _ = u.ring.Submit()
			}
			delete(u.pending, tag)
		}
	}
}

// pump runs on its own goroutine for the lifetime of the Loop, translating
// io_uring completions into the same Loop.postCompletion path the portable
// reactor uses, so callbacks never need to know which reactor armed them.
func (u *uringTimerRing) pump(l *Loop) {
	for {
		cqe, err := u.ring.WaitCQE()
		if err != nil {
			return
		}

		u.mu.Lock()
		ev, ok := u.pending[cqe.UserData]
		if ok && !ev.periodic {
			delete(u.pending, cqe.UserData)
		}
		u.mu.Unlock()
		u.ring.CQESeen(cqe)

		if !ok || ev.IsStopped() {
			continue
		}
		res := int(cqe.Res)
		if res == -int(unix.ETIME) {
			// an expired IORING_OP_TIMEOUT completes with -ETIME: a normal tick
			res = 0
		}
		l.postCompletion(ev, res, 0)
	}
}

func (u *uringTimerRing) close() {
	u.ring.QueueExit()
}
