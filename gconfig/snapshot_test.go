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

package gconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nabbar/yuneta/gattr"
)

func testTable(t *testing.T) *gattr.Table {
	tbl, err := gattr.Build([]gattr.Descriptor{
		{Name: "nickname", Type: gattr.TypeString, Flags: gattr.FlagReadable | gattr.FlagWritable | gattr.FlagPersistent, Default: "anon"},
		{Name: "volatile_counter", Type: gattr.TypeInteger, Flags: gattr.FlagReadable | gattr.FlagWritable, Default: "0"},
	}, nil)
	assert.NoError(t, err)
	return tbl
}

func TestFileSnapshot_SaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSnapshot(dir)
	assert.NoError(t, err)

	tbl := testTable(t)
	assert.NoError(t, tbl.Write("nickname", "alice"))

	assert.NoError(t, fs.Save("svc1", tbl, nil))

	tbl2 := testTable(t)
	assert.NoError(t, fs.Load("svc1", tbl2, nil))

	v, ok := tbl2.Read("nickname")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestFileSnapshot_RemoveClearsKey(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSnapshot(dir)
	assert.NoError(t, err)

	tbl := testTable(t)
	assert.NoError(t, tbl.Write("nickname", "bob"))
	assert.NoError(t, fs.Save("svc2", tbl, nil))

	assert.NoError(t, fs.Remove("svc2", "nickname"))

	names, lerr := fs.List("svc2", nil)
	assert.NoError(t, lerr)
	assert.NotContains(t, names, "nickname")
}

func TestFileSnapshot_LoadMissingFileIsNoop(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileSnapshot(dir)
	assert.NoError(t, err)

	tbl := testTable(t)
	assert.NoError(t, fs.Load("nobody", tbl, nil))
}
