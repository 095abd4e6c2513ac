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

package gattr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/gattr"
)

func descs() []gattr.Descriptor {
	return []gattr.Descriptor{
		{Name: "name", Type: gattr.TypeString, Flags: gattr.FlagReadable | gattr.FlagWritable | gattr.FlagRequired, Default: ""},
		{Name: "count", Type: gattr.TypeInteger, Flags: gattr.FlagReadable | gattr.FlagWritable | gattr.FlagVolatile, Default: "3"},
		{Name: "ro", Type: gattr.TypeBoolean, Flags: gattr.FlagReadable, Default: "true"},
	}
}

func TestBuild_DefaultsAndOverlay(t *testing.T) {
	tbl, err := gattr.Build(descs(), map[string]interface{}{
		"count":   int64(9),
		"unknown": "ignored",
	})
	require.NoError(t, err)

	v, ok := tbl.Read("count")
	require.True(t, ok)
	require.EqualValues(t, 9, v)

	v, ok = tbl.Read("ro")
	require.True(t, ok)
	require.Equal(t, true, v)

	_, ok = tbl.Read("unknown")
	require.False(t, ok)
}

func TestWrite_RejectsWrongType(t *testing.T) {
	tbl, err := gattr.Build(descs(), nil)
	require.NoError(t, err)

	werr := tbl.Write("count", "not-an-int")
	require.Error(t, werr)
}

func TestWrite_RejectsNotWritable(t *testing.T) {
	tbl, err := gattr.Build(descs(), nil)
	require.NoError(t, err)

	werr := tbl.Write("ro", false)
	require.Error(t, werr)
}

func TestWrite_FiresHookOnlyWhenAliveAndCreated(t *testing.T) {
	tbl, err := gattr.Build(descs(), nil)
	require.NoError(t, err)

	var fired []string
	tbl.SetWritingHook(func(name string) { fired = append(fired, name) })

	require.NoError(t, tbl.Write("count", int64(1)))
	require.Empty(t, fired)

	tbl.SetLifecycle(true, true)
	require.NoError(t, tbl.Write("count", int64(2)))
	require.Equal(t, []string{"count"}, fired)
}

func TestCheckRequired(t *testing.T) {
	tbl, err := gattr.Build(descs(), nil)
	require.NoError(t, err)

	require.Error(t, tbl.CheckRequired())

	require.NoError(t, tbl.Write("name", "set"))
	require.NoError(t, tbl.CheckRequired())
}

func TestResetVolatile(t *testing.T) {
	tbl, err := gattr.Build(descs(), nil)
	require.NoError(t, err)

	require.NoError(t, tbl.Write("count", int64(99)))
	require.NoError(t, tbl.ResetVolatile())

	v, _ := tbl.Read("count")
	require.EqualValues(t, 3, v)
}

func TestBottomChainRead(t *testing.T) {
	bottom, err := gattr.Build([]gattr.Descriptor{
		{Name: "inherited", Type: gattr.TypeString, Flags: gattr.FlagReadable, Default: "from-bottom"},
	}, nil)
	require.NoError(t, err)

	top, err := gattr.Build(descs(), nil)
	require.NoError(t, err)
	top.SetBottom(bottom)

	v, ok := top.Read("inherited")
	require.True(t, ok)
	require.Equal(t, "from-bottom", v)
}
