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
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nabbar/yuneta/gbuf"
	"github.com/nabbar/yuneta/glist"
	"github.com/nabbar/yuneta/gobj"
)

// Kind tags the five completion-based operation shapes.
type Kind uint8

const (
	KindTimer Kind = iota
	KindAccept
	KindConnect
	KindRead
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindTimer:
		return "timer"
	case KindAccept:
		return "accept"
	case KindConnect:
		return "connect"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	}
	return "unknown"
}

// Flag is the per-event flag bitset.
type Flag uint8

const (
	FlagStopped Flag = 1 << iota
	FlagPeriodic
	FlagInRing
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }

// Callback is invoked on the Loop's own goroutine with the completed Event.
// Callbacks must never block: a blocking callback stalls every other
// pending completion.
type Callback func(ev *Event)

// Event is one yev_event: a tagged completion-based operation bound to an
// owner gobj, optionally carrying a gbuf for Read/Write. Events are created
// by Loop.Timer/Accept/Connect/Read/Write, started implicitly, and must be
// Stopped before being dropped so their STOPPED completion can be drained;
// destruction must be deferred until after that completion.
type Event struct {
	id uuid.UUID

	Kind  Kind
	Fd    int
	Buf   *gbuf.Buffer
	Owner *gobj.GObj
	Flags Flag
	Result int

	loop     *Loop
	callback Callback

	delay    time.Duration
	periodic bool

	url      string
	listener net.Listener
	conn     net.Conn

	mu       sync.Mutex
	timer    *time.Timer
	ticker   *time.Ticker
	cancelCh chan struct{}
	stopped  int32
	armed    int32

	listNode *glist.Node[*Event]
}

func (ev *Event) node() *glist.Node[*Event] { return ev.listNode }

// ID returns the event's correlation id, a UUID assigned when the event is
// created. The io_uring timer ring tags its submissions with its own
// counter, not with this id.
func (ev *Event) ID() uuid.UUID { return ev.id }

// IsStopped reports whether Stop has been called on this event; the
// STOPPED completion that Stop posts may not have been delivered yet.
func (ev *Event) IsStopped() bool { return atomic.LoadInt32(&ev.stopped) == 1 }

// Conn exposes the net.Conn backing an Accept/Connect completion, so the
// caller can hand it to Loop.Read/Loop.Write for the next stage of the
// pipeline.
func (ev *Event) Conn() net.Conn { return ev.conn }
