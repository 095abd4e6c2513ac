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

package gmem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/gmem"
)

func TestAllocFreeIsEmpty(t *testing.T) {
	tr := gmem.New(0, 0, true)

	id, err := tr.Alloc(128, "buf-a")
	require.NoError(t, err)
	assert.Equal(t, int64(128), tr.Used())
	assert.False(t, tr.IsEmpty())

	require.NoError(t, tr.Free(id, 128))
	assert.True(t, tr.IsEmpty())
	assert.Empty(t, tr.LeakReport())
}

func TestBlockCeiling(t *testing.T) {
	tr := gmem.New(64, 0, true)

	_, err := tr.Alloc(128, "too-big")
	require.Error(t, err)
	assert.True(t, err.IsCode(gmem.ErrorBlockTooLarge))
}

func TestSystemCeiling(t *testing.T) {
	aborted := false
	gmem.SetAbortHandler(func() { aborted = true })
	t.Cleanup(func() { gmem.SetAbortHandler(func() {}) })

	tr := gmem.New(0, 100, true)

	_, err := tr.Alloc(80, "a")
	require.NoError(t, err)

	_, err = tr.Alloc(50, "b")
	require.Error(t, err)
	assert.True(t, err.IsCode(gmem.ErrorSystemCeilingReached))
	assert.True(t, aborted)
	// the failed allocation must not leave a phantom charge against Used.
	assert.Equal(t, int64(80), tr.Used())
}

func TestLeakReportOrdersByAllocation(t *testing.T) {
	tr := gmem.New(0, 0, true)

	id1, _ := tr.Alloc(8, "first")
	_, _ = tr.Alloc(8, "second")

	require.NoError(t, tr.Free(id1, 8))

	report := tr.LeakReport()
	require.Len(t, report, 1)
	assert.Equal(t, "second", report[0].Label)
}

func TestFreeUnknownBlock(t *testing.T) {
	tr := gmem.New(0, 0, true)

	err := tr.Free(999, 8)
	require.Error(t, err)
	assert.True(t, err.IsCode(gmem.ErrorUnknownBlock))
}
