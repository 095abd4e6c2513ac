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

package helper

import "strings"

// JoinBacktick joins segs with the backtick separator gobj.FullName uses
// for its "gclass^name`gclass^name" path grammar.
func JoinBacktick(segs []string) string {
	return strings.Join(segs, "`")
}

// SplitBacktick reverses JoinBacktick. An empty string yields an empty
// slice rather than a one-element slice holding "".
func SplitBacktick(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "`")
}

// SplitTrim splits s on sep and drops empty segments, the shape every
// caller of strings.Split actually wants when sep-separated lists may
// carry stray blank entries (trailing commas, doubled separators).
func SplitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join is strings.Join, named to sit alongside SplitTrim for symmetry at
// call sites that already import helper for path/JSON utilities.
func Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
