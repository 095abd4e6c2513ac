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

package gclass

import (
	"strings"
	"sync"

	liberr "github.com/nabbar/yuneta/errors"
)

// The communication-protocol registry maps URL schema tokens ("tcph",
// "http", ...) to the gclass a caller binds to when opening that kind of
// endpoint. A schema ending in "s" shares its gclass with the non-"s" form
// and additionally asks the transport for SSL ("use_ssl" attribute).

var (
	commMu  sync.RWMutex
	commTbl = make(map[string]string)
)

// CommProtRegister binds schema to gclassName. The gclass does not need to
// be registered yet — protocol gclasses commonly bind their schemas from an
// init that runs before gclass_create.
func CommProtRegister(schema, gclassName string) liberr.Error {
	if schema == "" || gclassName == "" {
		return ErrorInvalidName.Error(nil)
	}

	commMu.Lock()
	defer commMu.Unlock()

	if _, dup := commTbl[schema]; dup {
		return ErrorAlreadyRegistered.Error(nil)
	}
	commTbl[schema] = gclassName
	return nil
}

// CommProtSchema returns a schema bound to gclassName. When several schemas
// are bound to the same gclass, which one is returned is not defined.
func CommProtSchema(gclassName string) (string, bool) {
	commMu.RLock()
	defer commMu.RUnlock()

	for schema, name := range commTbl {
		if name == gclassName {
			return schema, true
		}
	}
	return "", false
}

// CommProtGClass resolves schema to its bound gclass. A schema ending in
// "s" falls back to the plain form when the secure one was never bound
// itself. useSSL is true whenever schema ends in "s", whether the secure
// form or its plain fallback was bound, so the caller can set the
// transport's use_ssl attribute from it.
func CommProtGClass(schema string) (gc *GClass, useSSL bool, ok bool) {
	commMu.RLock()
	name, found := commTbl[schema]
	commMu.RUnlock()

	useSSL = strings.HasSuffix(schema, "s")

	if !found && useSSL {
		commMu.RLock()
		name, found = commTbl[strings.TrimSuffix(schema, "s")]
		commMu.RUnlock()
	}
	if !found {
		return nil, useSSL, false
	}

	gc, ok = Lookup(name)
	return gc, useSSL, ok
}

// CommProtReset clears the registry; called by the runtime's end path so a
// test-scoped start_up/end cycle leaves no binding behind.
func CommProtReset() {
	commMu.Lock()
	defer commMu.Unlock()
	commTbl = make(map[string]string)
}
