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

package gsub_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/gobj"
	"github.com/nabbar/yuneta/gsub"
)

// pubSubPair builds a publisher gclass declaring EV_ON_MESSAGE as OUTPUT and
// a subscriber gclass accepting it in its single state, then one instance of
// each. received collects every kw the subscriber's action sees.
func pubSubPair(t *testing.T) (pub, sub *gobj.GObj, received *[]map[string]interface{}) {
	t.Helper()

	var got []map[string]interface{}

	pubName := fmt.Sprintf("test_pub_%s", t.Name())
	pubClass, err := gclass.Create(pubName,
		[]gclass.EventType{{Name: "EV_ON_MESSAGE", Flags: gclass.EventOutput}},
		[]string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)

	subName := fmt.Sprintf("test_sub_%s", t.Name())
	subClass, err := gclass.Create(subName, nil, []string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, gclass.AddEvAction(subClass, "ST_IDLE", "EV_ON_MESSAGE",
		func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
			got = append(got, kw)
			return 0, nil
		}))

	pub, err = gobj.CreateGObj("pub", pubClass, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(pub.Destroy)
	require.NoError(t, pub.ChangeState("ST_IDLE"))

	sub, err = gobj.CreateGObj("sub", subClass, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(sub.Destroy)
	require.NoError(t, sub.ChangeState("ST_IDLE"))

	return pub, sub, &got
}

func TestSubscribe_RejectsUndeclaredEvent(t *testing.T) {
	pub, sub, _ := pubSubPair(t)

	_, err := gsub.Subscribe(pub, "EV_NOT_DECLARED", nil, sub)
	require.Error(t, err)
	require.True(t, err.IsCode(gsub.ErrorEventNotDeclared))
}

func TestSubscribeUnsubscribe_RoundTrip(t *testing.T) {
	pub, sub, _ := pubSubPair(t)

	before := len(pub.OutSubsSnapshot())

	_, err := gsub.Subscribe(pub, "EV_ON_MESSAGE", nil, sub)
	require.NoError(t, err)
	require.Len(t, pub.OutSubsSnapshot(), before+1)
	require.Len(t, sub.InSubsSnapshot(), 1)

	require.NoError(t, gsub.Unsubscribe(pub, sub, "EV_ON_MESSAGE", nil, false))
	require.Len(t, pub.OutSubsSnapshot(), before)
	require.Empty(t, sub.InSubsSnapshot())
}

func TestSubscribe_DuplicateReplaced(t *testing.T) {
	pub, sub, _ := pubSubPair(t)

	_, err := gsub.Subscribe(pub, "EV_ON_MESSAGE", nil, sub)
	require.NoError(t, err)
	_, err = gsub.Subscribe(pub, "EV_ON_MESSAGE", nil, sub)
	require.NoError(t, err)

	require.Len(t, pub.OutSubsSnapshot(), 1)
	require.Len(t, sub.InSubsSnapshot(), 1)
}

func TestUnsubscribe_HardNeedsForce(t *testing.T) {
	pub, sub, _ := pubSubPair(t)

	kw := map[string]interface{}{
		gobj.ConfigKey: map[string]interface{}{"hard_subscription": true},
	}
	_, err := gsub.Subscribe(pub, "EV_ON_MESSAGE", kw, sub)
	require.NoError(t, err)

	err = gsub.Unsubscribe(pub, sub, "EV_ON_MESSAGE", kw, false)
	require.Error(t, err)
	require.True(t, err.IsCode(gsub.ErrorHardSubscription))

	require.NoError(t, gsub.Unsubscribe(pub, sub, "EV_ON_MESSAGE", kw, true))
	require.Empty(t, pub.OutSubsSnapshot())
}

// __filter__ gates on channel, __local__ strips the
// secret, __global__ injects the trace id.
func TestPublish_FilterLocalGlobal(t *testing.T) {
	pub, sub, received := pubSubPair(t)

	kw := map[string]interface{}{
		gobj.FilterKey: map[string]interface{}{"channel": "A"},
		gobj.LocalKey:  map[string]interface{}{"secret": nil},
		gobj.GlobalKey: map[string]interface{}{"trace_id": "X"},
	}
	_, err := gsub.Subscribe(pub, "EV_ON_MESSAGE", kw, sub)
	require.NoError(t, err)

	_, perr := gsub.Publish(pub, "EV_ON_MESSAGE", map[string]interface{}{
		"channel": "A", "secret": "s", "payload": 1,
	})
	require.NoError(t, perr)

	_, perr = gsub.Publish(pub, "EV_ON_MESSAGE", map[string]interface{}{
		"channel": "B", "secret": "s", "payload": 2,
	})
	require.NoError(t, perr)

	require.Len(t, *received, 1)
	got := (*received)[0]
	require.Equal(t, "A", got["channel"])
	require.Equal(t, 1, got["payload"])
	require.Equal(t, "X", got["trace_id"])
	require.NotContains(t, got, "secret")
}

func TestPublish_OwnEventStopsLoop(t *testing.T) {
	pubName := fmt.Sprintf("test_own_pub_%s", t.Name())
	pubClass, err := gclass.Create(pubName,
		[]gclass.EventType{{Name: "EV_ON_MESSAGE", Flags: gclass.EventOutput}},
		[]string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)

	subName := fmt.Sprintf("test_own_sub_%s", t.Name())
	subClass, err := gclass.Create(subName, nil, []string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, gclass.AddEvAction(subClass, "ST_IDLE", "EV_ON_MESSAGE",
		func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
			return -1, nil
		}))

	pub, err := gobj.CreateGObj("pub", pubClass, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(pub.Destroy)
	require.NoError(t, pub.ChangeState("ST_IDLE"))

	owner, err := gobj.CreateGObj("owner", subClass, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(owner.Destroy)
	require.NoError(t, owner.ChangeState("ST_IDLE"))

	kw := map[string]interface{}{
		gobj.ConfigKey: map[string]interface{}{"own_event": true},
	}
	_, serr := gsub.Subscribe(pub, "EV_ON_MESSAGE", kw, owner)
	require.NoError(t, serr)

	ret, perr := gsub.Publish(pub, "EV_ON_MESSAGE", map[string]interface{}{"payload": 1})
	require.Error(t, perr)
	require.Equal(t, -1, ret)
}

func TestPublish_PureChildGoesToParent(t *testing.T) {
	var got []map[string]interface{}

	parentName := fmt.Sprintf("test_parent_%s", t.Name())
	parentClass, err := gclass.Create(parentName, nil, []string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, gclass.AddEvAction(parentClass, "ST_IDLE", "EV_ON_MESSAGE",
		func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
			got = append(got, kw)
			return 0, nil
		}))

	childName := fmt.Sprintf("test_child_%s", t.Name())
	childClass, err := gclass.Create(childName,
		[]gclass.EventType{{Name: "EV_ON_MESSAGE", Flags: gclass.EventOutput}},
		[]string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)

	parent, err := gobj.CreateGObj("parent", parentClass, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(parent.Destroy)
	require.NoError(t, parent.ChangeState("ST_IDLE"))

	child, err := gobj.CreateGObj("child", childClass, nil, parent, gobj.FlagPureChild)
	require.NoError(t, err)
	require.NoError(t, child.ChangeState("ST_IDLE"))

	_, perr := gsub.Publish(child, "EV_ON_MESSAGE", map[string]interface{}{"payload": 1})
	require.NoError(t, perr)
	require.Len(t, got, 1)
}

func TestStateChanged_PublishedThroughEngine(t *testing.T) {
	var transitions []map[string]interface{}

	fsmName := fmt.Sprintf("test_fsm_%s", t.Name())
	fsmClass, err := gclass.Create(fsmName,
		[]gclass.EventType{{Name: gobj.StateChangedEvent, Flags: gclass.EventSystem | gclass.EventNoWarnSubs}},
		[]string{"ST_IDLE", "ST_RUNNING"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, gclass.AddEvActionState(fsmClass, "ST_IDLE", "EV_GO",
		func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
			return 0, nil
		}, "ST_RUNNING"))

	watcherName := fmt.Sprintf("test_watcher_%s", t.Name())
	watcherClass, err := gclass.Create(watcherName, nil, []string{"ST_IDLE"}, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, gclass.AddEvAction(watcherClass, "ST_IDLE", gobj.StateChangedEvent,
		func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
			transitions = append(transitions, kw)
			return 0, nil
		}))

	machine, err := gobj.CreateGObj("machine", fsmClass, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(machine.Destroy)
	require.NoError(t, machine.ChangeState("ST_IDLE"))

	watcher, err := gobj.CreateGObj("watcher", watcherClass, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(watcher.Destroy)
	require.NoError(t, watcher.ChangeState("ST_IDLE"))

	_, serr := gsub.Subscribe(machine, gobj.StateChangedEvent, nil, watcher)
	require.NoError(t, serr)

	ret, derr := gobj.SendEvent(machine, "EV_GO", nil, nil)
	require.NoError(t, derr)
	require.Equal(t, 0, ret)
	require.Equal(t, "ST_RUNNING", machine.State())
	require.Equal(t, "ST_IDLE", machine.PrevState())

	require.Len(t, transitions, 1)
	require.Equal(t, "ST_IDLE", transitions[0]["previous_state"])
	require.Equal(t, "ST_RUNNING", transitions[0]["current_state"])
}
