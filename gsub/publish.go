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

package gsub

import (
	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/gobj"
	"github.com/nabbar/yuneta/logger"
)

var pkgLog logger.Logger

// SetLogger installs the sink for this package's subscription and
// publication diagnostics; nil (the default) keeps them silent.
func SetLogger(l logger.Logger) { pkgLog = l }

// DefaultFilterMatch is the process-wide __filter__ matcher used when a
// publisher's gclass defines no mt_publication_filter override: every key
// in filter must equal kw's value at the same key under a simple ==
// comparison (string/int/real/bool).
func DefaultFilterMatch(filter, kw map[string]interface{}) bool {
	for k, want := range filter {
		got, ok := kw[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Publish implements gobj_publish_event: it runs a publisher's out-subscription
// list against event, applying override hooks, filter matching and the
// __local__/__global__ kw transforms before delivering to each subscriber.
func Publish(publisher *gobj.GObj, event string, kw map[string]interface{}) (int, liberr.Error) {
	if publisher == nil {
		return -1, nil
	}

	if event != "" {
		et, ok := gclass.EventTypeByName(publisher.GClass(), event)
		declared := ok && (et.Flags.Has(gclass.EventOutput) || et.Flags.Has(gclass.EventSystem))
		if !declared && !publisher.Flags().Has(gobj.FlagNoCheckOutputEvents) {
			return -1, ErrorEventNotDeclared.Error(nil)
		}
	}

	if hook := publisher.GClass().GMT.PublishEvent; hook != nil {
		switch hook(publisher, event, kw) {
		case gclass.PublishBreak:
			return 0, nil
		case gclass.PublishSkip:
			return 0, nil
		}
	}

	// A pure child's output events go to its parent alone; no subscription
	// record is involved.
	if publisher.Flags().Has(gobj.FlagPureChild) {
		parent := publisher.Parent()
		if parent == nil || parent.IsDestroying() || parent.IsDestroyed() {
			return 0, nil
		}
		ret, _ := gobj.SendEvent(parent, event, kw, publisher)
		return ret, nil
	}

	subs := publisher.OutSubsSnapshot()
	matched := 0

	for _, sub := range subs {
		if preHook := publisher.GClass().GMT.PublicationPreFilter; preHook != nil {
			switch preHook(publisher, sub) {
			case gclass.PublishBreak:
				return 0, nil
			case gclass.PublishSkip:
				continue
			}
		}

		if sub.Subscriber.IsDestroying() || sub.Subscriber.IsDestroyed() {
			continue
		}

		if sub.Event != "" && sub.Event != event {
			continue
		}

		if len(sub.Filter) > 0 {
			var ok2 bool
			if filterHook := publisher.GClass().GMT.PublicationFilter; filterHook != nil {
				ok2 = filterHook(publisher, sub.Filter, kw)
			} else {
				ok2 = DefaultFilterMatch(sub.Filter, kw)
			}
			if !ok2 {
				continue
			}
		}

		if event == gobj.StateChangedEvent && !sub.Subscriber.StateAcceptsEvent(event) {
			continue
		}

		matched++

		deliver := make(map[string]interface{}, len(kw))
		for k, v := range kw {
			if _, local := sub.Local[k]; local {
				continue
			}
			deliver[k] = v
		}
		for k, v := range sub.Global {
			deliver[k] = v
		}

		ret, _ := gobj.SendEvent(sub.Subscriber, event, deliver, publisher)
		if ret == -1 && sub.OwnEvent {
			return -1, ErrorOwnEventStop.Error(nil)
		}
	}

	if matched == 0 && !noWarnSubs(publisher, event, kw) && pkgLog != nil {
		pkgLog.Warning("event published with no subscriber", logger.NewFields().
			Add("gobj", publisher.FullName()).
			Add("event", event))
	}

	return 0, nil
}

// noWarnSubs reports whether the missing-subscriber warning is suppressed,
// either by the event type's NO_WARN_SUBS flag or by the kw override.
func noWarnSubs(publisher *gobj.GObj, event string, kw map[string]interface{}) bool {
	if et, ok := gclass.EventTypeByName(publisher.GClass(), event); ok && et.Flags.Has(gclass.EventNoWarnSubs) {
		return true
	}
	noWarn, _ := kw[gobj.NoWarnSubsFlag].(bool)
	return noWarn
}
