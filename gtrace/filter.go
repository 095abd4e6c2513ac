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

// Filter is the optional per-gclass trace filter: an
// attribute name mapped to the list of values that attribute must hold
// for a gobj to be traced. An empty Filter matches every gobj.
type Filter map[string][]interface{}

// Match reports whether attrs satisfies f: every key f names must be
// present in attrs with a value equal to one of the allowed values.
func (f Filter) Match(attrs map[string]interface{}) bool {
	for key, allowed := range f {
		v, ok := attrs[key]
		if !ok {
			return false
		}
		if !containsValue(allowed, v) {
			return false
		}
	}
	return true
}

func containsValue(allowed []interface{}, v interface{}) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
