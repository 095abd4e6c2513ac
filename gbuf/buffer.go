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

package gbuf

import (
	"fmt"
	"sync"
	"sync/atomic"

	liberr "github.com/nabbar/yuneta/errors"
)

// Buffer is a growable, reference-counted byte region with an explicit read
// cursor. Create reserves one byte of capacity beyond the requested size;
// no NUL terminator is written after the stored bytes.
type Buffer struct {
	mu      sync.Mutex
	ref     int32
	label   string
	mark    int
	ceiling int
	data    []byte
	rd      int
}

// Create allocates a Buffer with the given starting capacity and growth
// ceiling. ceiling <= 0 means unbounded.
func Create(capacity, ceiling int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}

	b := &Buffer{
		ref:     1,
		ceiling: ceiling,
		data:    make([]byte, 0, capacity+1),
	}
	return b
}

// Incref bumps the reference count and returns the same buffer, mirroring
// the C API's "gbuffer_incref returns the buffer" idiom.
func (b *Buffer) Incref() *Buffer {
	if b == nil {
		return nil
	}
	atomic.AddInt32(&b.ref, 1)
	return b
}

// Decref drops the reference count. When it reaches zero the buffer's
// backing storage is released and true is returned; callers must not touch
// the buffer again after a true result.
func (b *Buffer) Decref() bool {
	if b == nil {
		return false
	}
	if atomic.AddInt32(&b.ref, -1) > 0 {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = ""
	b.data = nil
	b.rd = 0
	return true
}

// Refcount reports the current reference count, for diagnostics.
func (b *Buffer) Refcount() int32 {
	return atomic.LoadInt32(&b.ref)
}

func (b *Buffer) Label() string { b.mu.Lock(); defer b.mu.Unlock(); return b.label }
func (b *Buffer) SetLabel(l string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.label = l
}

func (b *Buffer) Mark() int { b.mu.Lock(); defer b.mu.Unlock(); return b.mark }
func (b *Buffer) SetMark(m int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mark = m
}

// reserve grows data's capacity by doubling until it can hold extra more
// bytes, refusing to exceed the configured ceiling. Caller must hold b.mu.
func (b *Buffer) reserve(extra int) liberr.Error {
	if b == nil {
		return ErrorNullBuffer.Error(nil)
	}

	need := len(b.data) + extra
	if b.ceiling > 0 && need > b.ceiling {
		return ErrorCeilingReached.Error(nil)
	}

	if cap(b.data) >= need {
		return nil
	}

	newCap := cap(b.data)
	if newCap == 0 {
		newCap = 16
	}
	for newCap < need {
		newCap *= 2
	}
	if b.ceiling > 0 && newCap > b.ceiling {
		newCap = b.ceiling
	}

	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// Append grows the buffer by p, truncating at the ceiling with
// ErrorCeilingReached if p would overflow it.
func (b *Buffer) Append(p []byte) liberr.Error {
	if b == nil {
		return ErrorNullBuffer.Error(nil)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.reserve(len(p)); err != nil {
		room := b.ceiling - len(b.data)
		if room > 0 {
			b.data = append(b.data, p[:room]...)
		}
		return err
	}

	b.data = append(b.data, p...)
	return nil
}

// AppendBuffer appends the unread remainder of src without consuming it.
func (b *Buffer) AppendBuffer(src *Buffer) liberr.Error {
	if src == nil {
		return ErrorNullBuffer.Error(nil)
	}
	src.mu.Lock()
	chunk := append([]byte(nil), src.data[src.rd:]...)
	src.mu.Unlock()

	return b.Append(chunk)
}

// Appendf formats args per format and appends the result.
func (b *Buffer) Appendf(format string, args ...interface{}) liberr.Error {
	return b.Append([]byte(fmt.Sprintf(format, args...)))
}

// AppendChar appends a single byte.
func (b *Buffer) AppendChar(c byte) liberr.Error {
	return b.Append([]byte{c})
}

// Get advances the read cursor by n and returns the consumed region. It
// never returns more than is available; asking for more than LeftBytes
// returns everything remaining without error (EOF-at-cursor is not an
// error condition for a producer/consumer buffer).
func (b *Buffer) Get(n int) ([]byte, liberr.Error) {
	if b == nil {
		return nil, ErrorNullBuffer.Error(nil)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	left := len(b.data) - b.rd
	if n > left {
		n = left
	}
	if n < 0 {
		n = 0
	}

	out := b.data[b.rd : b.rd+n]
	b.rd += n
	return out, nil
}

// GetChar consumes and returns a single byte.
func (b *Buffer) GetChar() (byte, liberr.Error) {
	p, err := b.Get(1)
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	return p[0], nil
}

// GetLine consumes up to and including delim, or the remainder of the
// buffer if delim does not appear. The returned slice excludes delim.
func (b *Buffer) GetLine(delim byte) ([]byte, liberr.Error) {
	if b == nil {
		return nil, ErrorNullBuffer.Error(nil)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	region := b.data[b.rd:]
	for i, c := range region {
		if c == delim {
			line := region[:i]
			b.rd += i + 1
			return line, nil
		}
	}

	b.rd = len(b.data)
	return region, nil
}

// LeftBytes reports how many unread bytes remain.
func (b *Buffer) LeftBytes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data) - b.rd
}

// TotalBytes reports the full logical length, read or not.
func (b *Buffer) TotalBytes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// FreeBytes reports how many more bytes can be appended before the ceiling
// is hit. Returns a negative value to mean "unbounded" when ceiling <= 0.
func (b *Buffer) FreeBytes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ceiling <= 0 {
		return -1
	}
	return b.ceiling - len(b.data)
}

// Chunk returns the unread region without advancing the cursor.
func (b *Buffer) Chunk() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[b.rd:]
}

// Reset rewinds the read cursor to the start without discarding data.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rd = 0
}

// ResetWrite truncates the buffer back to empty, keeping its underlying
// capacity, and rewinds the read cursor. gloop's Read event calls this
// between re-arms so a completed, fully-consumed gbuf can receive the next
// batch of bytes without a fresh allocation.
func (b *Buffer) ResetWrite() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = b.data[:0]
	b.rd = 0
}

// Cap reports the buffer's current backing capacity, the maximum a single
// Read event call can receive into this gbuf without triggering a grow.
func (b *Buffer) Cap() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cap(b.data)
}

// Spare returns the unused tail of the backing array, for a gloop Read
// event to read(2) directly into without an intermediate copy. The slice
// is invalidated by any call that grows the buffer.
func (b *Buffer) Spare() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[len(b.data):cap(b.data)]
}

// CommitWrite records that n bytes were written directly into the slice
// returned by a prior Spare() call, extending the buffer's logical length
// without copying. It is the completion-side counterpart to Spare, used by
// gloop after a successful read(2) into the spare region.
func (b *Buffer) CommitWrite(n int) liberr.Error {
	if b == nil {
		return ErrorNullBuffer.Error(nil)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if n < 0 || len(b.data)+n > cap(b.data) {
		return ErrorCeilingReached.Error(nil)
	}
	b.data = b.data[:len(b.data)+n]
	return nil
}
