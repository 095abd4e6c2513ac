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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRequest_JSONBody(t *testing.T) {
	raw := string(BuildRequest(RequestSpec{
		Method: "POST",
		Host:   "example.com",
		Path:   "/items",
		Body:   []byte(`{"a":1}`),
		JSON:   true,
	}))

	assert.True(t, strings.HasPrefix(raw, "POST /items HTTP/1.1\r\n"))
	assert.Contains(t, raw, "Content-Type: application/json; charset=utf-8\r\n")
	assert.Contains(t, raw, "Content-Length: 7\r\n")
	assert.Contains(t, raw, "Host: example.com\r\n")
	assert.True(t, strings.HasSuffix(raw, `{"a":1}`))
}

func TestBuildRequest_FormGETAppendsQuery(t *testing.T) {
	raw := string(BuildRequest(RequestSpec{
		Method: "GET",
		Host:   "example.com",
		Path:   "/search",
		Query:  map[string]string{"q": "go"},
		Form:   true,
	}))

	assert.Contains(t, raw, "GET /search?q=go HTTP/1.1\r\n")
	assert.NotContains(t, raw, "Content-Length")
}

func TestBuildRequest_PortOmittedForDefault(t *testing.T) {
	raw := string(BuildRequest(RequestSpec{Method: "GET", Host: "example.com", Port: 443}))
	assert.Contains(t, raw, "Host: example.com\r\n")

	raw2 := string(BuildRequest(RequestSpec{Method: "GET", Host: "example.com", Port: 8080}))
	assert.Contains(t, raw2, "Host: example.com:8080\r\n")
}
