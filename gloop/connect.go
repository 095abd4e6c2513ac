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
	"syscall"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gobj"
)

// Connect dials url and delivers one completion: Result>=0 and
// Event.Conn set on success, Result<0 on failure. The event is one-shot —
// it is implicitly stopped once the completion fires.
func (l *Loop) Connect(owner *gobj.GObj, rawURL string, cb Callback) (*Event, liberr.Error) {
	ep, perr := ParseEndpoint(rawURL)
	if perr != nil {
		return nil, perr
	}

	ev := &Event{
		id:       newEventID(),
		Kind:     KindConnect,
		Owner:    owner,
		callback: cb,
		url:      rawURL,
	}
	l.register(ev)
	ev.armed = 1

	go func() {
		conn, err := net.Dial(ep.network(), ep.HostPort)
		if ev.IsStopped() {
			if conn != nil {
				_ = conn.Close()
			}
			return
		}
		if err != nil {
			l.postCompletion(ev, -1, FlagStopped)
			return
		}
		ev.conn = conn
		ev.Fd = fdOf(conn)
		l.postCompletion(ev, ev.Fd, FlagStopped)
	}()

	return ev, nil
}

// fdOf best-effort recovers the raw file descriptor behind conn, so the
// Event carries the same Fd a kernel-level reactor would. The descriptor is
// read through SyscallConn().Control, which neither duplicates it nor
// changes its blocking mode; it stays owned by conn. Returns -1 when conn
// exposes no descriptor.
func fdOf(conn net.Conn) int {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return -1
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return -1
	}
	fd := -1
	_ = raw.Control(func(v uintptr) { fd = int(v) })
	return fd
}
