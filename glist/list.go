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

package glist

import (
	"sync"

	liberr "github.com/nabbar/yuneta/errors"
)

// Node holds one value on a List. List.Add allocates a fresh Node for every
// value and returns it; structs that live on a List keep that *Node for
// O(1) Delete. Add never takes an existing Node, so no method links a Node
// twice and none returns ErrorNodeAlreadyLinked.
type Node[T any] struct {
	id   uint64
	prev *Node[T]
	next *Node[T]
	list *List[T]
	val  T
}

// Value returns the payload stored at this node.
func (n *Node[T]) Value() T { return n.val }

// ID returns the monotonically increasing id assigned when the node was
// added. IDs are unique within one List's lifetime.
func (n *Node[T]) ID() uint64 { return n.id }

// List is a doubly linked, insertion-ordered list with O(1) Delete given a
// live *Node. It is safe for concurrent use; the runtime's single-threaded
// discipline means the lock is normally uncontended, but gloop's portable
// reactor registers events from short-lived completion goroutines.
type List[T any] struct {
	mu     sync.Mutex
	head   *Node[T]
	tail   *Node[T]
	length int
	nextID uint64
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the current element count.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.length
}

// Add appends val at the tail and returns the node that now owns it.
func (l *List[T]) Add(val T) *Node[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	n := &Node[T]{id: l.nextID, list: l, val: val}

	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++

	return n
}

// Delete removes n from the list in O(1). Returns ErrorNodeNotLinked if n
// does not belong to l (including a node already deleted).
func (l *List[T]) Delete(n *Node[T]) liberr.Error {
	if n == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if n.list != l {
		return ErrorNodeNotLinked.Error(nil)
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev, n.next, n.list = nil, nil, nil
	l.length--

	return nil
}

// First returns the head node, or nil if the list is empty.
func (l *List[T]) First() *Node[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.head
}

// Last returns the tail node, or nil if the list is empty.
func (l *List[T]) Last() *Node[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tail
}

// Next returns the node following n, or nil at the tail.
func (l *List[T]) Next(n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return n.next
}

// Prev returns the node preceding n, or nil at the head.
func (l *List[T]) Prev(n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return n.prev
}

// Snapshot copies every value into a slice in list order. Used by gsub to
// take a publication-time snapshot that is immune to concurrent
// subscribe/unsubscribe.
func (l *List[T]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.val)
	}
	return res
}

// Flush empties the list, detaching each node in order and then calling
// free (if non-nil) on its value.
func (l *List[T]) Flush(free func(T)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next, n.list = nil, nil, nil
		if free != nil {
			free(n.val)
		}
		n = next
	}

	l.head, l.tail, l.length = nil, nil, 0
}

// Find returns the first node whose value satisfies match, or nil.
func (l *List[T]) Find(match func(T) bool) *Node[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	for n := l.head; n != nil; n = n.next {
		if match(n.val) {
			return n
		}
	}
	return nil
}
