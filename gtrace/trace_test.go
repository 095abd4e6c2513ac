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

package gtrace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/gtrace"
)

func TestMask_Uint32RoundTrip(t *testing.T) {
	m := gtrace.MaskFromUint32(0x8001_0005)
	assert.True(t, m.Test(0))
	assert.True(t, m.Test(2))
	assert.True(t, m.Test(16))
	assert.True(t, m.Test(31))
	assert.False(t, m.Test(1))

	assert.Equal(t, uint32(0x8001_0005), m.Uint32())
}

func TestMask_Union(t *testing.T) {
	a := gtrace.NewMask().Set(1)
	b := gtrace.NewMask().Set(17)

	u := a.Union(b)
	assert.True(t, u.Test(1))
	assert.True(t, u.Test(17))
	assert.False(t, u.Test(2))
}

func TestUserLevels_BitAssignment(t *testing.T) {
	u, err := gtrace.NewUserLevels([]string{"messages", "traffic"})
	require.NoError(t, err)

	b, ok := u.Bit("traffic")
	require.True(t, ok)
	assert.Equal(t, uint(1), b)

	n, ok := u.Name(0)
	require.True(t, ok)
	assert.Equal(t, "messages", n)

	_, ok = u.Bit("nope")
	assert.False(t, ok)
}

func TestUserLevels_RejectsTooMany(t *testing.T) {
	names := make([]string, 17)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	_, err := gtrace.NewUserLevels(names)
	require.Error(t, err)
	assert.True(t, err.IsCode(gtrace.ErrorTooManyUserLevels))
}

func TestGlobalBit_ReservedNames(t *testing.T) {
	b, ok := gtrace.GlobalBit(gtrace.GlobalMachine)
	require.True(t, ok)
	assert.Equal(t, uint(gtrace.GlobalBitBase), b)

	_, ok = gtrace.GlobalBit("not_a_level")
	assert.False(t, ok)
}

func TestShouldTrace_AnySetNoneSuppressed(t *testing.T) {
	defer gtrace.SetDeepTrace(0)

	none := gtrace.NewMask()
	objMask := gtrace.NewMask().Set(3)

	assert.True(t, gtrace.ShouldTrace(3, none, none, objMask, none))
	assert.False(t, gtrace.ShouldTrace(4, none, none, objMask, none))

	// a no-mask on either side wins over any set mask
	noMask := gtrace.NewMask().Set(3)
	assert.False(t, gtrace.ShouldTrace(3, none, noMask, objMask, none))
	assert.False(t, gtrace.ShouldTrace(3, none, none, objMask, noMask))
}

func TestShouldTrace_GlobalLevel(t *testing.T) {
	defer gtrace.ClearGlobalLevel(20)

	none := gtrace.NewMask()
	assert.False(t, gtrace.ShouldTrace(20, none, none, none, none))

	gtrace.SetGlobalLevel(20)
	assert.True(t, gtrace.ShouldTrace(20, none, none, none, none))
}

func TestShouldTrace_DeepTraceKnob(t *testing.T) {
	defer gtrace.SetDeepTrace(0)

	none := gtrace.NewMask()
	noMask := gtrace.NewMask().Set(5)

	gtrace.SetDeepTrace(1)
	assert.True(t, gtrace.ShouldTrace(9, none, none, none, none))
	assert.False(t, gtrace.ShouldTrace(5, none, noMask, none, none))

	gtrace.SetDeepTrace(2)
	assert.True(t, gtrace.ShouldTrace(5, none, noMask, none, none))
}

func TestFilter_Match(t *testing.T) {
	f := gtrace.Filter{"channel": {"A", "B"}}

	assert.True(t, f.Match(map[string]interface{}{"channel": "A"}))
	assert.True(t, f.Match(map[string]interface{}{"channel": "B", "extra": 1}))
	assert.False(t, f.Match(map[string]interface{}{"channel": "C"}))
	assert.False(t, f.Match(map[string]interface{}{}))

	empty := gtrace.Filter{}
	assert.True(t, empty.Match(nil))
}
