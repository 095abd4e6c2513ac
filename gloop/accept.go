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

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gobj"
)

// Accept binds a listening socket built from url and arms a
// long-lived accept loop: every inbound connection is delivered as one
// completion carrying the accepted net.Conn (Event.Conn) and, best-effort,
// its raw file descriptor in Result. The event stays armed across
// connections until Stop is called — unlike Read/Write, Accept does not
// require the callback to re-arm it.
func (l *Loop) Accept(owner *gobj.GObj, rawURL string, cb Callback) (*Event, liberr.Error) {
	ep, perr := ParseEndpoint(rawURL)
	if perr != nil {
		return nil, perr
	}

	ln, err := net.Listen(ep.network(), ep.HostPort)
	if err != nil {
		return nil, ErrorListenFailed.Error(nil)
	}

	ev := &Event{
		id:       newEventID(),
		Kind:     KindAccept,
		Owner:    owner,
		callback: cb,
		url:      rawURL,
		listener: ln,
	}
	l.register(ev)
	ev.armed = 1

	go func() {
		for {
			conn, aerr := ln.Accept()
			if ev.IsStopped() {
				if conn != nil {
					_ = conn.Close()
				}
				return
			}
			if aerr != nil {
				l.postCompletion(ev, -1, 0)
				return
			}

			accepted := &Event{
				id:       newEventID(),
				Kind:     KindAccept,
				Owner:    owner,
				callback: cb,
				conn:     conn,
				Fd:       fdOf(conn),
			}
			l.postCompletion(accepted, accepted.Fd, 0)
		}
	}()

	return ev, nil
}
