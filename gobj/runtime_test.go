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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/gmem"
	"github.com/nabbar/yuneta/gobj"
	"github.com/nabbar/yuneta/gtrace"
)

func TestStartUpEnd_InitializedGate(t *testing.T) {
	require.NoError(t, gobj.StartUp(nil))
	require.True(t, gobj.IsInitialized())

	err := gobj.StartUp(nil)
	require.Error(t, err)
	require.True(t, err.IsCode(gobj.ErrorAlreadyInitialized))

	_, _, eerr := gobj.End()
	require.NoError(t, eerr)
	require.False(t, gobj.IsInitialized())

	_, _, eerr = gobj.End()
	require.Error(t, eerr)
}

func TestEnd_ReportsLeaks(t *testing.T) {
	tracker := gmem.New(0, 0, true)
	require.NoError(t, gobj.StartUp(tracker))

	_, lerr := tracker.Alloc(64, "leaky-buffer")
	require.NoError(t, lerr)

	_, blocks, eerr := gobj.End()
	require.NoError(t, eerr)
	require.Len(t, blocks, 1)
	require.Equal(t, "leaky-buffer", blocks[0].Label)
}

func TestStats_Counters(t *testing.T) {
	gc := simpleClass(t)
	g, err := gobj.CreateGObj("stats", gc, nil, nil, 0)
	require.NoError(t, err)
	defer g.Destroy()

	require.Equal(t, int64(1), g.IncrStat("rx_msgs", 1))
	require.Equal(t, int64(3), g.IncrStat("rx_msgs", 2))
	require.Equal(t, int64(3), g.Stat("rx_msgs"))
	require.Equal(t, int64(0), g.Stat("tx_msgs"))

	g.SetStat("tx_msgs", 7)
	snap := g.StatsSnapshot()
	require.Equal(t, int64(7), snap["tx_msgs"])

	g.ResetStats()
	require.Equal(t, int64(0), g.Stat("rx_msgs"))
}

func TestBottomGobj_AttributeInheritance(t *testing.T) {
	gc := simpleClass(t)
	top, err := gobj.CreateGObj("chain_top", gc, nil, nil, 0)
	require.NoError(t, err)
	defer top.Destroy()

	bottom, err := gobj.CreateGObj("chain_bottom", gc,
		map[string]interface{}{"label": "from-bottom"}, nil, 0)
	require.NoError(t, err)
	defer bottom.Destroy()

	top.SetBottomGobj(bottom)
	require.Equal(t, bottom, top.BottomGobj())

	// "label" exists on both tables, so the top value wins; an attribute
	// only the bottom defines resolves through the chain.
	v, ok := top.Attrs().Read("label")
	require.True(t, ok)
	require.Equal(t, "", v)

	top.SetBottomGobj(nil)
	require.Nil(t, top.BottomGobj())
}

func TestIsTracing_FoldsMasksAndFilter(t *testing.T) {
	name := "trace_class_" + t.Name()
	gc, err := gclass.Create(name, nil, []string{"ST_IDLE"}, gclass.GMT{}, []gattr.Descriptor{
		{Name: "channel", Type: gattr.TypeString, Flags: gattr.FlagReadable | gattr.FlagWritable},
	}, 0, nil, nil, []string{"messages"}, 0)
	require.NoError(t, err)

	g, err := gobj.CreateGObj("tracer", gc, map[string]interface{}{"channel": "A"}, nil, 0)
	require.NoError(t, err)
	defer g.Destroy()

	bit, ok := gc.UserLevelBit("messages")
	require.True(t, ok)

	require.False(t, g.IsTracing(bit))

	g.SetTraceLevel(bit, true)
	require.True(t, g.IsTracing(bit))

	// class no-mask suppresses the instance mask
	gc.SetNoTraceLevel(bit, true)
	require.False(t, g.IsTracing(bit))
	gc.SetNoTraceLevel(bit, false)

	// trace filter narrows tracing to matching instances
	gc.SetTraceFilter(gtrace.Filter{"channel": {"B"}})
	require.False(t, g.IsTracing(bit))

	gc.SetTraceFilter(gtrace.Filter{"channel": {"A"}})
	require.True(t, g.IsTracing(bit))
}
