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

package gbuf

import (
	"bytes"
	"encoding/base64"
	"io"

	liberr "github.com/nabbar/yuneta/errors"
)

// maxLineChars is the RFC-1521 line-wrap width. encoding/base64 supplies
// the alphabet; the base64LineWrap io.Writer supplies the wrapping, the
// same split nabbar-golib's mail/base64.go makes.
const maxLineChars = 76

type base64LineWrap struct {
	writer       io.Writer
	numLineChars int
}

func (e *base64LineWrap) Write(p []byte) (n int, err error) {
	for len(p)+e.numLineChars > maxLineChars {
		numCharsToWrite := maxLineChars - e.numLineChars
		_, _ = e.writer.Write(p[:numCharsToWrite])
		_, _ = e.writer.Write([]byte("\r\n"))
		e.numLineChars = 0
		p = p[numCharsToWrite:]
		n += numCharsToWrite
	}

	_, _ = e.writer.Write(p)
	e.numLineChars += len(p)
	n += len(p)

	return
}

// EncodeBase64 produces the RFC-1521 (MIME) representation of p: the
// standard alphabet, '=' padding, wrapped at 76 characters per line.
func EncodeBase64(p []byte) []byte {
	buf := &bytes.Buffer{}
	wrap := &base64LineWrap{writer: buf}
	enc := base64.NewEncoder(base64.StdEncoding, wrap)
	_, _ = enc.Write(p)
	_ = enc.Close()
	return buf.Bytes()
}

// DecodeBase64 reverses EncodeBase64. Both CRLF and bare LF line breaks are
// tolerated; any other character outside the RFC-1521 alphabet and its '='
// padding is rejected with ErrorInvalidBase64.
func DecodeBase64(p []byte) ([]byte, liberr.Error) {
	clean := make([]byte, 0, len(p))
	for _, c := range p {
		switch {
		case c == '\r' || c == '\n':
			continue
		case c == '=' || c == '+' || c == '/':
			clean = append(clean, c)
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			clean = append(clean, c)
		default:
			return nil, ErrorInvalidBase64.Error(nil)
		}
	}

	out, err := base64.StdEncoding.DecodeString(string(clean))
	if err != nil {
		return nil, ErrorInvalidBase64.Error(err)
	}
	return out, nil
}
