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

package gtrace

import (
	"github.com/bits-and-blooms/bitset"
)

// maskBits is the width of the trace-level word: 16 user bits plus 16
// global bits.
const maskBits = 32

// GlobalBitBase is the index of the first global trace-level bit; bits
// below it are gclass-declared user levels.
const GlobalBitBase = 16

// Mask is a 32-bit trace-level word backed by a bitset.BitSet so callers
// that need to OR several gclasses' masks together (a global trace dump)
// can do so without hand-rolling uint32 bit math.
type Mask struct {
	bits *bitset.BitSet
}

// NewMask returns an all-clear mask.
func NewMask() Mask {
	return Mask{bits: bitset.New(maskBits)}
}

// MaskFromUint32 rebuilds a Mask from its wire/config representation.
func MaskFromUint32(v uint32) Mask {
	m := NewMask()
	for i := uint(0); i < maskBits; i++ {
		if v&(1<<i) != 0 {
			m.bits.Set(i)
		}
	}
	return m
}

// Uint32 packs the mask back into the wire representation used by
// gconfig snapshots and command-line flags.
func (m Mask) Uint32() uint32 {
	var v uint32
	for i := uint(0); i < maskBits; i++ {
		if m.bits != nil && m.bits.Test(i) {
			v |= 1 << i
		}
	}
	return v
}

// Set, Clear, Test operate on a single bit index in [0, 32).
func (m Mask) Set(bit uint) Mask {
	if m.bits == nil {
		m.bits = bitset.New(maskBits)
	}
	m.bits.Set(bit)
	return m
}

func (m Mask) Clear(bit uint) Mask {
	if m.bits == nil {
		return m
	}
	m.bits.Clear(bit)
	return m
}

func (m Mask) Test(bit uint) bool {
	if m.bits == nil {
		return false
	}
	return m.bits.Test(bit)
}

// Union returns the bitwise OR of m and other, used to fold a gclass
// mask and a gobj mask together before a ShouldTrace check.
func (m Mask) Union(other Mask) Mask {
	out := NewMask()
	if m.bits != nil {
		out.bits.InPlaceUnion(m.bits)
	}
	if other.bits != nil {
		out.bits.InPlaceUnion(other.bits)
	}
	return out
}

// Any reports whether at least one bit is set.
func (m Mask) Any() bool {
	return m.bits != nil && m.bits.Any()
}
