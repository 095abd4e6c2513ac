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
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/google/uuid"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/glist"
	"github.com/nabbar/yuneta/logger"
)

// Loop is a single-threaded completion reactor: exactly one goroutine (the
// one that calls Run) executes every completion callback, so one OS thread
// per yuno hosts the event loop. All events created against a Loop are
// torn down when the loop stops.
type Loop struct {
	running  int32
	events   *glist.List[*Event]
	pending  chan *Event
	log      logger.Logger
	ring     *uringTimerRing
}

// Option configures a Loop at construction.
type Option func(*Loop)

// WithLogger attaches a diagnostic sink; nil (the default) means silent.
func WithLogger(l logger.Logger) Option {
	return func(lo *Loop) { lo.log = l }
}

// NewLoop builds a Loop using the portable, standard-library reactor for
// every event kind.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		events:  glist.New[*Event](),
		pending: make(chan *Event, 64),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// NewIOURingLoop builds a Loop whose Timer events are armed on a real Linux
// io_uring instance (github.com/pawelgaczynski/giouring) instead of
// time.AfterFunc; every other event kind still uses the portable reactor.
// Returns ErrorRingUnavailable when io_uring cannot be initialized (wrong
// platform, kernel too old, or CAP_SYS_ADMIN-equivalent restrictions).
func NewIOURingLoop(entries uint32, opts ...Option) (*Loop, liberr.Error) {
	l := NewLoop(opts...)
	ring, err := newURingTimerRing(entries)
	if err != nil {
		return nil, err
	}
	l.ring = ring
	return l, nil
}

// IsRunning reports whether Run is currently draining completions.
func (l *Loop) IsRunning() bool { return atomic.LoadInt32(&l.running) == 1 }

// Run polls for completions until Shutdown is called or ctx-equivalent
// stop is requested, invoking each event's callback synchronously on this
// goroutine. It returns once the running flag has been cleared and no
// further completion arrives within the drain window implied by pending
// STOPPED events.
func (l *Loop) Run() {
	if !atomic.CompareAndSwapInt32(&l.running, 0, 1) {
		return
	}

	if l.ring != nil {
		go l.ring.pump(l)
	}

	for atomic.LoadInt32(&l.running) == 1 || len(l.pending) > 0 {
		ev, ok := <-l.pending
		if !ok {
			return
		}
		l.dispatch(ev)
	}
}

// Shutdown clears the running flag and cancels every still-armed
// event so their STOPPED completions drain before Run returns.
func (l *Loop) Shutdown() {
	if !atomic.CompareAndSwapInt32(&l.running, 1, 0) {
		return
	}
	for _, ev := range l.events.Snapshot() {
		_ = ev.Stop()
	}
	if l.ring != nil {
		l.ring.close()
	}
}

// InstallSignalHandler wires SIGINT/SIGQUIT to Shutdown. Installing it is
// the application's decision: the runtime never installs one on its own.
func (l *Loop) InstallSignalHandler() chan<- os.Signal {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		for range ch {
			l.Shutdown()
			return
		}
	}()
	return ch
}

// dispatch runs one event's callback and, for a STOPPED completion,
// unregisters the event from the loop's bookkeeping list.
func (l *Loop) dispatch(ev *Event) {
	if ev.callback != nil {
		ev.callback(ev)
	}
	if ev.Flags.Has(FlagStopped) {
		l.events.Delete(ev.node())
	}
}

// postCompletion enqueues ev for delivery on the Loop goroutine with the
// given result and flags. Safe to call from any goroutine — it is the only
// cross-goroutine hop the portable reactor makes. Blocking (rather than
// dropping) under a completion storm preserves the kernel-reported
// completion order.
func (l *Loop) postCompletion(ev *Event, result int, extra Flag) {
	ev.Result = result
	ev.Flags |= extra
	l.pending <- ev
}

// register tracks ev on the loop's bookkeeping list so Shutdown can find
// and stop every still-armed event.
func (l *Loop) register(ev *Event) {
	ev.loop = l
	ev.listNode = l.events.Add(ev)
}

func newEventID() uuid.UUID { return uuid.New() }
