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

// Package gtrace implements the runtime's 32-bit trace-level model: the
// low 16 bits hold up to 16 user trace levels named per
// gclass, the high 16 bits hold the reserved global trace level names.
// A trace fires when any of {global, gclass, gobj} mask has the bit set
// and neither gclass nor gobj's "no-trace" mask has it set, subject to
// the numeric deep-trace override. An optional per-gclass attribute
// filter narrows tracing further to matching gobjs.
//
// Mask storage rides on github.com/bits-and-blooms/bitset (already in
// nabbar-golib's own require block) rather than a raw uint32, so the
// same type scales if a future revision needs to OR many gclasses'
// masks together for a global trace dump without truncating back to 32
// bits at every step.
package gtrace
