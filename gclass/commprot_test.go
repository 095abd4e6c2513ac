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

package gclass_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/gclass"
	"github.com/nabbar/yuneta/gtrace"
)

func TestCommProt_RegisterAndResolve(t *testing.T) {
	t.Cleanup(gclass.CommProtReset)

	name := uniqueName(t)
	gc, err := gclass.Create(name, nil, nil, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = gclass.Unregister(gc) })

	require.NoError(t, gclass.CommProtRegister("tcph", name))
	require.Error(t, gclass.CommProtRegister("tcph", name))

	got, useSSL, ok := gclass.CommProtGClass("tcph")
	require.True(t, ok)
	require.False(t, useSSL)
	require.Equal(t, gc, got)

	schema, ok := gclass.CommProtSchema(name)
	require.True(t, ok)
	require.Equal(t, "tcph", schema)
}

func TestCommProt_SecureSchemaFallsBack(t *testing.T) {
	t.Cleanup(gclass.CommProtReset)

	name := uniqueName(t)
	gc, err := gclass.Create(name, nil, nil, gclass.GMT{}, nil, 0, nil, nil, nil, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = gclass.Unregister(gc) })

	require.NoError(t, gclass.CommProtRegister("tcph", name))

	got, useSSL, ok := gclass.CommProtGClass("tcphs")
	require.True(t, ok)
	require.True(t, useSSL)
	require.Equal(t, gc, got)

	_, _, ok = gclass.CommProtGClass("modbus")
	require.False(t, ok)
}

func TestTraceMasks_PerClass(t *testing.T) {
	name := uniqueName(t)
	gc, err := gclass.Create(name, nil, nil, gclass.GMT{}, nil, 0, nil, nil,
		[]string{"messages", "traffic"}, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = gclass.Unregister(gc) })

	bit, ok := gc.UserLevelBit("traffic")
	require.True(t, ok)
	require.Equal(t, uint(1), bit)

	gc.SetTraceLevel(bit, true)
	require.True(t, gc.TraceMask().Test(bit))

	gc.SetNoTraceLevel(bit, true)
	require.True(t, gc.NoTraceMask().Test(bit))
	require.False(t, gtrace.ShouldTrace(bit, gc.TraceMask(), gc.NoTraceMask(), gtrace.NewMask(), gtrace.NewMask()))

	gc.SetNoTraceLevel(bit, false)
	require.True(t, gtrace.ShouldTrace(bit, gc.TraceMask(), gc.NoTraceMask(), gtrace.NewMask(), gtrace.NewMask()))

	gc.SetTraceFilter(gtrace.Filter{"channel": {"A"}})
	require.True(t, gc.TraceFilter().Match(map[string]interface{}{"channel": "A"}))
}
