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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nabbar/yuneta/gbuf"
)

// A one-shot timer fires exactly once, then Stop delivers a STOPPED
// completion with a negative Result.
func TestLoop_TimerOnceFiresAndStops(t *testing.T) {
	l := NewLoop()
	go l.Run()
	defer l.Shutdown()

	var fired int32
	var stopped int32
	done := make(chan struct{}, 1)

	ev := l.Timer(nil, 20, false, func(e *Event) {
		if e.Flags.Has(FlagStopped) {
			atomic.StoreInt32(&stopped, 1)
			done <- struct{}{}
			return
		}
		atomic.AddInt32(&fired, 1)
		assert.True(t, e.Result >= 0)
		_ = e.Stop()
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for STOPPED completion")
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.Equal(t, int32(1), atomic.LoadInt32(&stopped))
	assert.True(t, ev.IsStopped())
}

// A periodic timer keeps ticking after an unrelated one-shot timer is
// stopped.
func TestLoop_PeriodicSurvivesOneShotStop(t *testing.T) {
	l := NewLoop()
	go l.Run()
	defer l.Shutdown()

	var oneShotTicks int32
	oneShot := l.Timer(nil, 15, false, func(e *Event) {
		if !e.Flags.Has(FlagStopped) {
			atomic.AddInt32(&oneShotTicks, 1)
		}
	})

	periodicTicks := make(chan struct{}, 8)
	periodic := l.Timer(nil, 10, true, func(e *Event) {
		if !e.Flags.Has(FlagStopped) {
			select {
			case periodicTicks <- struct{}{}:
			default:
			}
		}
	})

	time.Sleep(60 * time.Millisecond)
	_ = oneShot.Stop()

	got := 0
	deadline := time.After(time.Second)
	for got < 3 {
		select {
		case <-periodicTicks:
			got++
		case <-deadline:
			t.Fatal("periodic timer stopped ticking")
		}
	}
	_ = periodic.Stop()
}

// TCP echo: server receives what the client sent and writes it back.
func TestLoop_TCPEcho(t *testing.T) {
	l := NewLoop()
	go l.Run()
	defer l.Shutdown()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	addr := ln.Addr().String()
	_ = ln.Close()

	serverUp := make(chan struct{})
	echoed := make(chan []byte, 1)

	acceptEv, aerr := l.Accept(nil, "tcp://"+addr, func(e *Event) {
		if e.Flags.Has(FlagStopped) || e.Conn() == nil {
			return
		}
		close(serverUp)
		rbuf := gbuf.Create(64, 0)
		l.Read(nil, e.Conn(), rbuf, func(re *Event) {
			if re.Flags.Has(FlagStopped) || re.Result <= 0 {
				return
			}
			wbuf := gbuf.Create(64, 0)
			_ = wbuf.Append(rbuf.Chunk())
			l.Write(nil, e.Conn(), wbuf, func(we *Event) {})
		})
	})
	assert.NoError(t, aerr)
	defer func() { _ = acceptEv.Stop() }()

	conn, derr := net.Dial("tcp", addr)
	assert.NoError(t, derr)
	defer conn.Close()

	clientBuf := gbuf.Create(64, 0)
	l.Read(nil, conn, clientBuf, func(ce *Event) {
		if ce.Flags.Has(FlagStopped) || ce.Result <= 0 {
			return
		}
		out := append([]byte(nil), clientBuf.Chunk()...)
		select {
		case echoed <- out:
		default:
		}
	})

	_, werr := conn.Write([]byte("PING\n"))
	assert.NoError(t, werr)

	select {
	case got := <-echoed:
		assert.Equal(t, "PING\n", string(got))
	case <-time.After(2 * time.Second):
		t.Fatal("did not receive echo")
	}
}

func TestParseEndpoint(t *testing.T) {
	ep, err := ParseEndpoint("tcps://localhost:2222")
	assert.NoError(t, err)
	assert.Equal(t, "tcps", ep.Schema)
	assert.True(t, ep.UseSSL)
	assert.Equal(t, "localhost:2222", ep.HostPort)

	_, err = ParseEndpoint("not a url")
	assert.Error(t, err)
}
