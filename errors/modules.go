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

package errors

// Error code ranges reserved per gobj-runtime package. Every package that
// registers codes via RegisterIdFctMessage owns a 100-wide slice so two
// packages can never collide even if they are developed independently.
const (
	MinPkgList    = 100
	MinPkgBuf     = 200
	MinPkgAttr    = 300
	MinPkgClass   = 400
	MinPkgObj     = 500
	MinPkgSub     = 600
	MinPkgLoop    = 700
	MinPkgHttp    = 800
	MinPkgTrace   = 900
	MinPkgMem     = 1000
	MinPkgHelper  = 1100
	MinPkgConfig  = 1200
	MinPkgLogger  = 1300
	MinPkgFrame   = 1400

	MinAvailable = 1500
)
