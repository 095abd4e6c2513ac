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

package glist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nabbar/yuneta/glist"
)

func TestList_AddOrder(t *testing.T) {
	l := glist.New[string]()

	a := l.Add("a")
	b := l.Add("b")
	c := l.Add("c")

	require.Equal(t, 3, l.Len())
	require.Equal(t, a, l.First())
	require.Equal(t, c, l.Last())
	require.Equal(t, b, l.Next(a))
	require.Equal(t, b, l.Prev(c))
	require.Equal(t, []string{"a", "b", "c"}, l.Snapshot())
	require.Less(t, a.ID(), b.ID())
	require.Less(t, b.ID(), c.ID())
}

func TestList_DeleteMiddle(t *testing.T) {
	l := glist.New[int]()

	a := l.Add(1)
	b := l.Add(2)
	c := l.Add(3)

	require.NoError(t, l.Delete(b))
	require.Equal(t, 2, l.Len())
	require.Equal(t, c, l.Next(a))
	require.Equal(t, a, l.Prev(c))
	require.Equal(t, []int{1, 3}, l.Snapshot())
}

func TestList_DeleteHeadAndTail(t *testing.T) {
	l := glist.New[int]()

	a := l.Add(1)
	b := l.Add(2)
	c := l.Add(3)

	require.NoError(t, l.Delete(a))
	require.Equal(t, b, l.First())

	require.NoError(t, l.Delete(c))
	require.Equal(t, b, l.Last())
	require.Equal(t, 1, l.Len())
}

func TestList_DeleteNotLinkedFails(t *testing.T) {
	l1 := glist.New[int]()
	l2 := glist.New[int]()

	n := l1.Add(42)

	err := l2.Delete(n)
	require.Error(t, err)

	require.NoError(t, l1.Delete(n))

	err = l1.Delete(n)
	require.Error(t, err)
}

func TestList_DeleteNil(t *testing.T) {
	l := glist.New[int]()
	require.NoError(t, l.Delete(nil))
}

func TestList_Flush(t *testing.T) {
	l := glist.New[int]()
	l.Add(1)
	l.Add(2)
	l.Add(3)

	var freed []int
	l.Flush(func(v int) { freed = append(freed, v) })

	require.Equal(t, []int{1, 2, 3}, freed)
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.First())
	require.Nil(t, l.Last())
}

func TestList_Find(t *testing.T) {
	l := glist.New[string]()
	l.Add("foo")
	n := l.Add("bar")
	l.Add("baz")

	found := l.Find(func(v string) bool { return v == "bar" })
	require.Equal(t, n, found)

	require.Nil(t, l.Find(func(v string) bool { return v == "nope" }))
}
