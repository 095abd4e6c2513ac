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

	"github.com/nabbar/yuneta/gbuf"
	"github.com/nabbar/yuneta/gobj"
)

// Read arms a read event against conn, filling buf's spare capacity up to
// its current cap. The callback may re-arm by calling Start again after
// buf.ResetWrite(); Read itself does not loop internally — one completion
// per kernel read(2).
func (l *Loop) Read(owner *gobj.GObj, conn net.Conn, buf *gbuf.Buffer, cb Callback) *Event {
	ev := &Event{
		id:       newEventID(),
		Kind:     KindRead,
		Owner:    owner,
		callback: cb,
		conn:     conn,
		Buf:      buf,
		Fd:       fdOf(conn),
	}
	l.register(ev)
	ev.Start(l)
	return ev
}

// Start (re-)arms a Read or Write event for one more completion. Calling
// it on a Timer/Accept/Connect event is a no-op — those arm themselves at
// creation.
func (ev *Event) Start(l *Loop) {
	switch ev.Kind {
	case KindRead:
		go ev.runRead(l)
	case KindWrite:
		go ev.runWrite(l)
	}
}

func (ev *Event) runRead(l *Loop) {
	spare := ev.Buf.Spare()
	if len(spare) == 0 {
		l.postCompletion(ev, 0, 0)
		return
	}

	n, err := ev.conn.Read(spare)
	if ev.IsStopped() {
		return
	}
	if err != nil {
		l.postCompletion(ev, -1, 0)
		return
	}

	if cerr := ev.Buf.CommitWrite(n); cerr != nil {
		l.postCompletion(ev, -1, 0)
		return
	}
	l.postCompletion(ev, n, 0)
}

// Write arms a write event flushing buf's unread region to conn. Short
// writes re-arm internally — the callback sees exactly one completion per
// Write call, carrying the total bytes drained or a negative Result on
// error.
func (l *Loop) Write(owner *gobj.GObj, conn net.Conn, buf *gbuf.Buffer, cb Callback) *Event {
	ev := &Event{
		id:       newEventID(),
		Kind:     KindWrite,
		Owner:    owner,
		callback: cb,
		conn:     conn,
		Buf:      buf,
		Fd:       fdOf(conn),
	}
	l.register(ev)
	ev.Start(l)
	return ev
}

func (ev *Event) runWrite(l *Loop) {
	total := 0
	for {
		chunk := ev.Buf.Chunk()
		if len(chunk) == 0 {
			break
		}
		n, err := ev.conn.Write(chunk)
		if n > 0 {
			_, _ = ev.Buf.Get(n)
			total += n
		}
		if ev.IsStopped() {
			return
		}
		if err != nil {
			l.postCompletion(ev, -1, 0)
			return
		}
		if n == 0 {
			break
		}
	}
	l.postCompletion(ev, total, 0)
}
