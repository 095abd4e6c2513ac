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

package helper_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/gattr"
	"github.com/nabbar/yuneta/helper"
)

func TestSplitTrimDropsEmpties(t *testing.T) {
	got := helper.SplitTrim("a, ,b,,c", ",")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestBacktickRoundTrip(t *testing.T) {
	segs := []string{"root^top", "leaf^child"}
	joined := helper.JoinBacktick(segs)
	assert.Equal(t, "root^top`leaf^child", joined)
	assert.Equal(t, segs, helper.SplitBacktick(joined))
	assert.Nil(t, helper.SplitBacktick(""))
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC)
	s := helper.FormatTimestamp(now)
	back, err := helper.ParseTimestamp(s)
	require.NoError(t, err)
	assert.True(t, now.Equal(back))
}

func TestBase64RoundTrip(t *testing.T) {
	data := []byte("yuneta gobj runtime")
	enc := helper.EncodeBase64(data)
	dec, err := helper.DecodeBase64(enc)
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestJSONFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "value.json")

	type payload struct {
		Name string `json:"name"`
	}

	in := payload{Name: "gobj-test"}
	require.NoError(t, helper.WriteJSONFile(path, in, 0644))

	var out payload
	require.NoError(t, helper.ReadJSONFile(path, &out))
	assert.Equal(t, in, out)
}

func TestPathCheckCreateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "f.txt")

	require.NoError(t, helper.PathCheckCreate(true, path, 0644, 0755))

	inf, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.False(t, inf.IsDir())

	// existing file but wrong requested type is rejected.
	err := helper.PathCheckCreate(false, path, 0644, 0755)
	require.Error(t, err)
	assert.True(t, err.IsCode(helper.ErrorPathWrongType))
}

func TestFileStoreSaveLoadRemoveList(t *testing.T) {
	dir := t.TempDir()
	store := helper.NewFileStore(dir)

	descs := []gattr.Descriptor{
		{Name: "api_key", Type: gattr.TypeString, Flags: gattr.FlagReadable | gattr.FlagWritable | gattr.FlagPersistent},
		{Name: "counter", Type: gattr.TypeInteger, Flags: gattr.FlagReadable | gattr.FlagWritable},
	}
	table, err := gattr.Build(descs, map[string]interface{}{"api_key": "secret", "counter": int64(7)})
	require.NoError(t, err)

	require.NoError(t, store.Save("svc-one", table, nil))

	names, err := store.List("svc-one", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"api_key"}, names)

	fresh, err := gattr.Build(descs, nil)
	require.NoError(t, err)
	require.NoError(t, store.Load("svc-one", fresh, nil))

	v, ok := fresh.Read("api_key")
	require.True(t, ok)
	assert.Equal(t, "secret", v)

	require.NoError(t, store.Remove("svc-one", nil))
	names, err = store.List("svc-one", nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}
