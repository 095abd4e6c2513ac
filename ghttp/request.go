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

package ghttp

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Version is stamped into the User-Agent header composed by BuildRequest.
const Version = "0.1.0"

// RequestSpec describes one outbound HTTP request the way an application
// issues it through the HTTP-client gclass's event contract: method,
// resource, optional query/form values, optional JSON body and any extra
// headers to merge in.
type RequestSpec struct {
	Method  string
	Host    string
	Port    int
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
	JSON    bool
	Form    bool
}

// BuildRequest composes the wire bytes for r with a fixed header ordering.
// For GET with Form set, query values are appended to the resource instead
// of being sent as a body.
func BuildRequest(r RequestSpec) []byte {
	method := strings.ToUpper(r.Method)
	if method == "" {
		method = "GET"
	}

	resource := r.Path
	if resource == "" {
		resource = "/"
	}

	var body []byte
	if method == "GET" && r.Form && len(r.Query) > 0 {
		resource += "?" + encodeForm(r.Query)
	} else if r.Form && len(r.Query) > 0 {
		body = []byte(encodeForm(r.Query))
	} else if len(r.Body) > 0 {
		body = r.Body
	} else if len(r.Query) > 0 {
		resource += "?" + encodeForm(r.Query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s HTTP/1.1\r\n", method, resource)
	fmt.Fprintf(&b, "User-Agent: yuneta-%s\r\n", Version)

	if len(body) > 0 {
		if r.Form {
			b.WriteString("Content-Type: application/x-www-form-urlencoded\r\n")
		} else if r.JSON {
			b.WriteString("Content-Type: application/json; charset=utf-8\r\n")
		}
	}

	b.WriteString("Connection: keep-alive\r\n")
	b.WriteString("Accept: */*\r\n")

	host := r.Host
	if r.Port != 0 && r.Port != 80 && r.Port != 443 {
		host = fmt.Sprintf("%s:%d", r.Host, r.Port)
	}
	fmt.Fprintf(&b, "Host: %s\r\n", host)

	for _, k := range sortedKeys(r.Headers) {
		fmt.Fprintf(&b, "%s: %s\r\n", k, r.Headers[k])
	}

	if len(body) > 0 {
		fmt.Fprintf(&b, "Content-Length: %d\r\n", len(body))
	}

	b.WriteString("\r\n")
	if len(body) > 0 {
		b.Write(body)
	}

	return []byte(b.String())
}

func encodeForm(kv map[string]string) string {
	v := url.Values{}
	for key, val := range kv {
		v.Set(key, val)
	}
	return v.Encode()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
