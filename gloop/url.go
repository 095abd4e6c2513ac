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

package gloop

import (
	"net/url"
	"strings"

	liberr "github.com/nabbar/yuneta/errors"
)

// Endpoint is a parsed schema://host[:port][/path] URL: schema
// selects the transport/protocol gclass a caller would bind to, and
// useSSL is derived from a trailing "s" on the schema (tcps, https, ...).
type Endpoint struct {
	Schema  string
	HostPort string
	Path    string
	UseSSL  bool
}

// ParseEndpoint parses raw. Used by Loop.Accept/Connect
// to build the net.Listen/net.Dial address.
func ParseEndpoint(raw string) (Endpoint, liberr.Error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Endpoint{}, ErrorInvalidURL.Error(nil)
	}

	return Endpoint{
		Schema:   u.Scheme,
		HostPort: u.Host,
		Path:     u.Path,
		UseSSL:   strings.HasSuffix(u.Scheme, "s"),
	}, nil
}

// network maps a schema to the net.Dial/net.Listen network name. Unknown
// schemas default to "tcp".
func (e Endpoint) network() string {
	switch {
	case strings.HasPrefix(e.Schema, "unix"):
		return "unix"
	case strings.HasPrefix(e.Schema, "udp"):
		return "udp"
	default:
		return "tcp"
	}
}
