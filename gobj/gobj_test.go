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

package gobj_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/gobj"
)

func simpleClass(t *testing.T) *gclass.GClass {
	name := fmt.Sprintf("test_simple_%s", t.Name())
	gc, err := gclass.Create(name, nil, []string{"ST_IDLE", "ST_RUNNING"}, gclass.GMT{}, []gattr.Descriptor{
		{Name: "label", Type: gattr.TypeString, Flags: gattr.FlagReadable | gattr.FlagWritable},
	}, 0, nil, nil, nil, 0)
	require.NoError(t, err)

	require.NoError(t, gclass.AddEvAction(gc, "ST_IDLE", "EV_GO", func(self interface{}, event string, kw map[string]interface{}) (int, liberr.Error) {
		return 0, nil
	}))
	return gc
}

func TestCreateGObj_ParentChild(t *testing.T) {
	gc := simpleClass(t)

	parent, err := gobj.CreateGObj("parent", gc, nil, nil, 0)
	require.NoError(t, err)

	child, err := gobj.CreateGObj("child", gc, nil, parent, 0)
	require.NoError(t, err)

	require.Equal(t, parent, child.Parent())
	require.Equal(t, child, parent.FirstChild())
	require.Equal(t, child, parent.ChildByName("child"))
}

func TestDestroy_Idempotent(t *testing.T) {
	gc := simpleClass(t)
	g, err := gobj.CreateGObj("once", gc, nil, nil, 0)
	require.NoError(t, err)

	g.Destroy()
	require.True(t, g.IsDestroyed())

	g.Destroy()
	require.True(t, g.IsDestroyed())
}

func TestStartStopPlayPause(t *testing.T) {
	gc := simpleClass(t)
	g, err := gobj.CreateGObj("lifecycle", gc, nil, nil, 0)
	require.NoError(t, err)

	require.NoError(t, g.Start())
	require.True(t, g.IsRunning())

	require.Error(t, g.Start())

	require.NoError(t, g.Play())
	require.True(t, g.IsPlaying())

	require.NoError(t, g.Pause())
	require.False(t, g.IsPlaying())

	require.NoError(t, g.Stop())
	require.False(t, g.IsRunning())

	// stop is idempotent: a second stop succeeds without error
	require.NoError(t, g.Stop())
}

func TestSendEvent_Dispatch(t *testing.T) {
	gc := simpleClass(t)
	g, err := gobj.CreateGObj("fsm", gc, nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, g.ChangeState("ST_IDLE"))

	ret, serr := gobj.SendEvent(g, "EV_GO", nil, nil)
	require.NoError(t, serr)
	require.Equal(t, 0, ret)
}

func TestSendEvent_UnknownEventFails(t *testing.T) {
	gc := simpleClass(t)
	g, err := gobj.CreateGObj("fsm2", gc, nil, nil, 0)
	require.NoError(t, err)
	require.NoError(t, g.ChangeState("ST_IDLE"))

	_, serr := gobj.SendEvent(g, "EV_MISSING", nil, nil)
	require.Error(t, serr)
}

func TestSendEvent_RejectsDestroyed(t *testing.T) {
	gc := simpleClass(t)
	g, err := gobj.CreateGObj("destroyed", gc, nil, nil, 0)
	require.NoError(t, err)
	g.Destroy()

	_, serr := gobj.SendEvent(g, "EV_GO", nil, nil)
	require.Error(t, serr)
}

func TestWalk_TopToBottomOrder(t *testing.T) {
	gc := simpleClass(t)
	root, err := gobj.CreateGObj("root", gc, nil, nil, 0)
	require.NoError(t, err)
	a, err := gobj.CreateGObj("a", gc, nil, root, 0)
	require.NoError(t, err)
	_, err = gobj.CreateGObj("b", gc, nil, root, 0)
	require.NoError(t, err)
	_, err = gobj.CreateGObj("a1", gc, nil, a, 0)
	require.NoError(t, err)

	var order []string
	root.Walk(gobj.WalkTopToBottom, func(g *gobj.GObj) int {
		order = append(order, g.Name())
		return 0
	})

	require.Equal(t, []string{"root", "a", "a1", "b"}, order)
}

func TestWalk_LevelOrder(t *testing.T) {
	gc := simpleClass(t)
	root, err := gobj.CreateGObj("lvlroot", gc, nil, nil, 0)
	require.NoError(t, err)
	_, err = gobj.CreateGObj("c1", gc, nil, root, 0)
	require.NoError(t, err)
	_, err = gobj.CreateGObj("c2", gc, nil, root, 0)
	require.NoError(t, err)

	var order []string
	root.Walk(gobj.WalkLevelFirstToLast, func(g *gobj.GObj) int {
		order = append(order, g.Name())
		return 0
	})

	require.Equal(t, []string{"lvlroot", "c1", "c2"}, order)
}

func TestFullName(t *testing.T) {
	gc := simpleClass(t)
	root, err := gobj.CreateGObj("top", gc, nil, nil, 0)
	require.NoError(t, err)
	child, err := gobj.CreateGObj("leaf", gc, nil, root, 0)
	require.NoError(t, err)

	require.Contains(t, child.FullName(), "^top`")
	require.Contains(t, child.FullName(), "^leaf")
}
