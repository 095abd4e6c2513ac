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

package gbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/gbuf"
)

func TestBuffer_AppendAndGet(t *testing.T) {
	b := gbuf.Create(8, 0)
	require.NoError(t, b.Append([]byte("hello ")))
	require.NoError(t, b.Append([]byte("world")))

	require.Equal(t, 11, b.TotalBytes())
	require.Equal(t, 11, b.LeftBytes())

	got, err := b.Get(5)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))
	require.Equal(t, 6, b.LeftBytes())
}

func TestBuffer_GetLine(t *testing.T) {
	b := gbuf.Create(0, 0)
	require.NoError(t, b.Append([]byte("line1\nline2\nrest")))

	l1, err := b.GetLine('\n')
	require.NoError(t, err)
	require.Equal(t, "line1", string(l1))

	l2, err := b.GetLine('\n')
	require.NoError(t, err)
	require.Equal(t, "line2", string(l2))

	l3, err := b.GetLine('\n')
	require.NoError(t, err)
	require.Equal(t, "rest", string(l3))
	require.Equal(t, 0, b.LeftBytes())
}

func TestBuffer_CeilingReached(t *testing.T) {
	b := gbuf.Create(0, 4)
	err := b.Append([]byte("abcdefgh"))
	require.Error(t, err)
	require.Equal(t, 4, b.TotalBytes())
}

func TestBuffer_Refcount(t *testing.T) {
	b := gbuf.Create(0, 0)
	b.Incref()
	require.EqualValues(t, 2, b.Refcount())

	require.False(t, b.Decref())
	require.True(t, b.Decref())
}

func TestBuffer_SerializeRoundTrip(t *testing.T) {
	b := gbuf.Create(0, 0)
	b.SetLabel("packet")
	b.SetMark(7)
	require.NoError(t, b.Append([]byte("payload-bytes\x00\x01\x02")))

	out, err := b.Serialize()
	require.NoError(t, err)

	rt, err := gbuf.Deserialize(out)
	require.NoError(t, err)
	require.Equal(t, "packet", rt.Label())
	require.Equal(t, 7, rt.Mark())
	require.Equal(t, b.Chunk(), rt.Chunk())
}

func TestDecodeBase64_RejectsBadAlphabet(t *testing.T) {
	_, err := gbuf.DecodeBase64([]byte("not valid base64!!"))
	require.Error(t, err)
}

func TestEncodeDecodeBase64_RoundTrip(t *testing.T) {
	in := []byte("the quick brown fox jumps over the lazy dog, repeated to force line wrap: the quick brown fox jumps over the lazy dog")
	enc := gbuf.EncodeBase64(in)
	dec, err := gbuf.DecodeBase64(enc)
	require.NoError(t, err)
	require.Equal(t, in, dec)
}
