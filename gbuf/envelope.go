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
	"encoding/json"

	liberr "github.com/nabbar/yuneta/errors"
)

// envelope is the wire shape of Serialize/Deserialize: {label, mark,
// data:base64}. Field names are lower-cased on the wire.
type envelope struct {
	Label string `json:"label"`
	Mark  int    `json:"mark"`
	Data  string `json:"data"`
}

// Serialize encodes the buffer's full logical content (not just the unread
// region) as a JSON object with a base64 payload. Deserialize∘Serialize
// preserves bytes, label and mark.
func (b *Buffer) Serialize() ([]byte, liberr.Error) {
	if b == nil {
		return nil, ErrorNullBuffer.Error(nil)
	}

	b.mu.Lock()
	env := envelope{
		Label: b.label,
		Mark:  b.mark,
		Data:  string(EncodeBase64(b.data)),
	}
	b.mu.Unlock()

	out, err := json.Marshal(env)
	if err != nil {
		return nil, ErrorDecodeEnvelope.Error(err)
	}
	return out, nil
}

// Deserialize builds a fresh Buffer (refcount 1, read cursor at zero) from
// the JSON produced by Serialize.
func Deserialize(p []byte) (*Buffer, liberr.Error) {
	var env envelope
	if err := json.Unmarshal(p, &env); err != nil {
		return nil, ErrorDecodeEnvelope.Error(err)
	}

	data, derr := DecodeBase64([]byte(env.Data))
	if derr != nil {
		return nil, derr
	}

	b := Create(len(data), 0)
	b.label = env.Label
	b.mark = env.Mark
	b.data = append(b.data, data...)
	return b, nil
}
