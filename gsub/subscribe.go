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

func init() {
	gobj.SetStateChangedPublisher(func(g *gobj.GObj, previous, current string) {
		_, _ = Publish(g, gobj.StateChangedEvent, map[string]interface{}{
			"previous_state": previous,
			"current_state":  current,
		})
	})
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// Subscribe implements gobj_subscribe_event. kw may carry the
// policy dicts under gobj.ConfigKey/gobj.GlobalKey/gobj.LocalKey and a
// match dict under gobj.FilterKey; the config dict's "hard_subscription"
// and "own_event" booleans set Hard and OwnEvent. Returns (nil, nil) if
// mt_subscription_added vetoed the subscription — rejection is silent by
// contract, not an error.
func Subscribe(publisher *gobj.GObj, event string, kw map[string]interface{}, subscriber *gobj.GObj) (*gobj.Subscription, liberr.Error) {
	if event != "" {
		et, ok := gclass.EventTypeByName(publisher.GClass(), event)
		declared := ok && (et.Flags.Has(gclass.EventOutput) || et.Flags.Has(gclass.EventSystem))
		if !declared && !publisher.Flags().Has(gobj.FlagNoCheckOutputEvents) {
			return nil, ErrorEventNotDeclared.Error(nil)
		}
	}

	config := asMap(kw[gobj.ConfigKey])
	global := asMap(kw[gobj.GlobalKey])
	local := asMap(kw[gobj.LocalKey])
	filter := asMap(kw[gobj.FilterKey])

	if existing := publisher.FindOutSub(subscriber, event, config, global, local); existing != nil {
		if pkgLog != nil {
			pkgLog.Warning("repeated subscription replaced", logger.NewFields().
				Add("publisher", publisher.FullName()).
				Add("subscriber", subscriber.FullName()).
				Add("event", event))
		}
		cancel(existing)
	}

	sub := &gobj.Subscription{
		Publisher:  publisher,
		Subscriber: subscriber,
		Event:      event,
		Config:     config,
		Global:     global,
		Local:      local,
		Filter:     filter,
		Hard:       asBool(config["hard_subscription"]),
		OwnEvent:   asBool(config["own_event"]),
	}

	if hook := publisher.GClass().GMT.SubscriptionAdded; hook != nil {
		if hook(publisher, sub) < 0 {
			return nil, nil
		}
	}

	publisher.AddOutSub(sub)
	subscriber.AddInSub(sub)
	return sub, nil
}

// Unsubscribe locates the subscription matching the five-tuple (publisher,
// subscriber, event and the three policy dicts) and removes it. A hard
// subscription refuses removal unless force is true.
func Unsubscribe(publisher, subscriber *gobj.GObj, event string, kw map[string]interface{}, force bool) liberr.Error {
	config := asMap(kw[gobj.ConfigKey])
	global := asMap(kw[gobj.GlobalKey])
	local := asMap(kw[gobj.LocalKey])

	sub := publisher.FindOutSub(subscriber, event, config, global, local)
	if sub == nil {
		return ErrorSubscriptionNotFound.Error(nil)
	}
	if sub.Hard && !force {
		return ErrorHardSubscription.Error(nil)
	}

	cancel(sub)
	return nil
}

func cancel(s *gobj.Subscription) {
	s.Publisher.RemoveOutSub(s)
	s.Subscriber.RemoveInSub(s)
}
