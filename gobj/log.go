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

package gobj

import (
	"github.com/nabbar/yuneta/logger"
)

var pkgLog logger.Logger

// SetLogger installs the sink for this package's lifecycle and dispatch
// diagnostics; nil (the default) keeps them silent.
func SetLogger(l logger.Logger) { pkgLog = l }

// logCaught writes err at lvl with the gobj's full name attached, the
// shape every lifecycle/dispatch record in this package shares.
func (g *GObj) logCaught(lvl logger.Level, message string, err error, f logger.Fields) {
	if pkgLog == nil {
		return
	}
	if f == nil {
		f = logger.NewFields()
	}
	pkgLog.ErrorCaught(lvl, message, err, f.Add("gobj", g.FullName()))
}

func (g *GObj) logInfo(message string) {
	if pkgLog == nil {
		return
	}
	pkgLog.Info(message, logger.NewFields().Add("gobj", g.FullName()))
}

func (g *GObj) logWarning(message string) {
	if pkgLog == nil {
		return
	}
	pkgLog.Warning(message, logger.NewFields().Add("gobj", g.FullName()))
}
