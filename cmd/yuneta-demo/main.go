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

// Command yuneta-demo wires the event loop, pub/sub, FSM and HTTP parser
// adapter together into a minimal running service, as a worked example of
// the packages in this module rather than a product in its own right.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/gconfig"
	"github.com/nabbar/yuneta/gframe"
	"github.com/nabbar/yuneta/ghttp"
	"github.com/nabbar/yuneta/gloop"
	"github.com/nabbar/yuneta/gmem"
	"github.com/nabbar/yuneta/gobj"
	"github.com/nabbar/yuneta/gsub"
	"github.com/nabbar/yuneta/logger"
)

const (
	stIdle    = "ST_IDLE"
	stRunning = "ST_RUNNING"

	evStart   = "EV_START"
	evTick    = "EV_TICK"
	evMessage = "EV_HTTP_MESSAGE"
)

var log = logger.New(os.Stdout)

func registerDemoClass() (*gclass.GClass, liberr.Error) {
	gmt := gclass.GMT{
		StateChanged: func(self interface{}, previous, current string) {
			log.Info(fmt.Sprintf("state %s -> %s", previous, current), nil)
		},
	}

	gc, err := gclass.Create(
		"demo",
		[]gclass.EventType{
			{Name: evStart, Flags: gclass.EventSystem},
			{Name: evTick, Flags: gclass.EventSystem},
			{Name: evMessage, Flags: gclass.EventOutput},
		},
		[]string{stIdle, stRunning},
		gmt,
		[]gattr.Descriptor{
			{Name: "ticks", Type: gattr.TypeInteger, Flags: gattr.FlagReadable | gattr.FlagWritable, Default: "0"},
		},
		0, nil, nil, nil, 0,
	)
	if err != nil {
		return nil, err
	}

	if err := gclass.AddEvActionState(gc, stIdle, evStart, onStart, stRunning); err != nil {
		return nil, err
	}
	if err := gclass.AddEvAction(gc, stRunning, evTick, onTick); err != nil {
		return nil, err
	}
	if err := gclass.AddEvAction(gc, stIdle, evMessage, onMessage); err != nil {
		return nil, err
	}
	if err := gclass.AddEvAction(gc, stRunning, evMessage, onMessage); err != nil {
		return nil, err
	}
	return gc, nil
}

func onStart(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
	log.Info("demo service starting", nil)
	return 0, nil
}

func onTick(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
	g := self.(*gobj.GObj)
	n, _ := g.Attrs().Read("ticks")
	count, _ := n.(int)
	_ = g.Attrs().Write("ticks", count+1)
	log.Info(fmt.Sprintf("tick #%d", count+1), nil)
	return 0, nil
}

func onMessage(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
	log.Info(fmt.Sprintf("received http message: status=%v", kw["response_status_code"]), nil)
	return 0, nil
}

func run() liberr.Error {
	gattr.SetLogger(log)
	gclass.SetLogger(log)
	gobj.SetLogger(log)
	gsub.SetLogger(log)
	gmem.SetLogger(log)
	gframe.SetLogger(log)
	ghttp.SetLogger(log)

	v := viper.New()
	cfg, cerr := gconfig.Load(v)
	if cerr != nil {
		return cerr
	}
	log.Info(fmt.Sprintf("loaded config: max_pkt_size=%d", cfg.MaxPktSize()), nil)

	gc, err := registerDemoClass()
	if err != nil {
		return err
	}

	source, err := gobj.CreateGObj("demo-source", gc, nil, nil, 0)
	if err != nil {
		return err
	}
	if err := source.ChangeState(stIdle); err != nil {
		return err
	}

	watcher, err := gobj.CreateGObj("demo-watcher", gc, nil, nil, 0)
	if err != nil {
		return err
	}
	if err := watcher.ChangeState(stIdle); err != nil {
		return err
	}

	if _, err := gsub.Subscribe(source, evMessage, nil, watcher); err != nil {
		return err
	}

	if _, err := gobj.SendEvent(source, evStart, nil, nil); err != nil {
		return err
	}

	parser := ghttp.Create(source, ghttp.ModeResponse, evMessage, ghttp.DeliverByPublish)
	_ = parser // bound to source; Received below drives it directly

	sample := "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nok"
	if _, err := parser.Received([]byte(sample)); err != nil {
		return err
	}

	l := gloop.NewLoop(gloop.WithLogger(log))
	go l.Run()
	defer l.Shutdown()

	done := make(chan struct{})
	ticks := 0
	l.Timer(source, 200, true, func(ev *gloop.Event) {
		if ev.Flags.Has(gloop.FlagStopped) {
			return
		}
		if _, err := gobj.SendEvent(source, evTick, nil, nil); err != nil {
			log.Error(err.Error(), nil)
		}
		ticks++
		if ticks >= 3 {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
	}

	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "yuneta-demo",
		Short: "runs a minimal gobj service exercising the runtime packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(); err != nil {
				return err
			}
			return nil
		},
	}

	v := viper.New()
	if err := gconfig.RegisterFlags(cmd, v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
