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

import (
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"
)

// pkgPrefix identifies this package's own frames so callerFrame can skip
// them and report the raising call site instead.
var pkgPrefix = reflect.TypeOf(CodeError(0)).PkgPath() + "."

// frame is the file:line:function triple recorded when an Error is built.
type frame struct {
	file     string
	line     int
	function string
}

func (f frame) String() string {
	if f.file == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", f.file, f.line)
}

// callerFrame walks up the stack past this package's own frames and returns
// the first caller outside it, so GetTrace points at the raising call site
// rather than at newError.
func callerFrame() frame {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return frame{}
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if fr.File != "" && !strings.HasPrefix(fr.Function, pkgPrefix) {
			return frame{
				file:     shortPath(fr.File),
				line:     fr.Line,
				function: path.Base(fr.Function),
			}
		}
		if !more {
			return frame{}
		}
	}
}

// shortPath keeps the last two path elements, enough to identify the
// package and file without leaking the build host's absolute layout into
// log records.
func shortPath(file string) string {
	dir, base := path.Split(file)
	dir = strings.TrimSuffix(dir, "/")
	return path.Join(path.Base(dir), base)
}
