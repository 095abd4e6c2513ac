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

package gmem

import (
	"sync"
	"sync/atomic"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/logger"
)

// Block is one live allocation recorded by a Tracker with tracking turned
// on, carrying the same label convention gbuf uses so a leak report can
// point at the gbuf (or other) call site that created it.
type Block struct {
	ID    uint64
	Label string
	Size  int
}

// Tracker enforces the two process-wide memory ceilings: no single
// block may exceed maxBlock, and total outstanding bytes may never exceed
// maxSystem. Allocation beyond maxBlock is a recoverable, logged error;
// beyond maxSystem is fatal — a critical log then the abort handler
// (os.Exit unless SetAbortHandler replaced it). The error return on that
// path only exists for a replaced handler that declines to exit.
type Tracker struct {
	maxBlock  int
	maxSystem int64

	used    int64
	nextID  uint64
	trackOn bool

	mu     sync.Mutex
	blocks map[uint64]Block
}

// New builds a Tracker with the given ceilings. maxBlock <= 0 means no
// per-block limit; maxSystem <= 0 means no total limit. track enables the
// live-block list needed for LeakReport.
func New(maxBlock int, maxSystem int64, track bool) *Tracker {
	t := &Tracker{
		maxBlock:  maxBlock,
		maxSystem: maxSystem,
		trackOn:   track,
	}
	if track {
		t.blocks = make(map[uint64]Block)
	}
	return t
}

// Alloc records a block of size bytes under label, enforcing both
// ceilings. On success it returns an id to pass to Free (0 when tracking is
// off, since there is nothing to look up later).
func (t *Tracker) Alloc(size int, label string) (uint64, liberr.Error) {
	if t.maxBlock > 0 && size > t.maxBlock {
		err := ErrorBlockTooLarge.Error(nil)
		if pkgLog != nil {
			pkgLog.ErrorCaught(logger.ErrorLevel, "allocation refused", err, logger.NewFields().
				Add("label", label).
				Add("size", size).
				Add("max_block", t.maxBlock))
		}
		return 0, err
	}

	used := atomic.AddInt64(&t.used, int64(size))
	if t.maxSystem > 0 && used > t.maxSystem {
		atomic.AddInt64(&t.used, -int64(size))
		err := ErrorSystemCeilingReached.Error(nil)
		if pkgLog != nil {
			pkgLog.ErrorCaught(logger.FatalLevel, "total memory ceiling exceeded", err, logger.NewFields().
				Add("label", label).
				Add("size", size).
				Add("used", used-int64(size)).
				Add("max_system", t.maxSystem))
		}
		abortFn()
		return 0, err
	}

	if !t.trackOn {
		return 0, nil
	}

	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.blocks[id] = Block{ID: id, Label: label, Size: size}
	t.mu.Unlock()

	return id, nil
}

// Free releases a block previously returned by Alloc. Passing id 0 (the
// untracked sentinel) only adjusts the running total by size.
func (t *Tracker) Free(id uint64, size int) liberr.Error {
	atomic.AddInt64(&t.used, -int64(size))

	if !t.trackOn || id == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.blocks[id]; !ok {
		return ErrorUnknownBlock.Error(nil)
	}
	delete(t.blocks, id)
	return nil
}

// Used reports the current outstanding byte count.
func (t *Tracker) Used() int64 { return atomic.LoadInt64(&t.used) }

// LeakReport returns every block still outstanding, in allocation order.
// An empty slice after full teardown means a clean shutdown.
func (t *Tracker) LeakReport() []Block {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Block, 0, len(t.blocks))
	for id := uint64(1); id <= t.nextID; id++ {
		if b, ok := t.blocks[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// IsEmpty reports whether the tracker currently holds no outstanding
// blocks and no outstanding bytes — the condition gobj_end checks before
// reporting a clean shutdown.
func (t *Tracker) IsEmpty() bool {
	if atomic.LoadInt64(&t.used) != 0 {
		return false
	}
	if !t.trackOn {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.blocks) == 0
}
