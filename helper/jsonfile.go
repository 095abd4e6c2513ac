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

import (
	"encoding/json"
	"os"

	liberr "github.com/nabbar/yuneta/errors"
)

// ReadJSONFile decodes the JSON document at path into v.
func ReadJSONFile(path string, v interface{}) liberr.Error {
	b, err := os.ReadFile(path)
	if err != nil {
		return ErrorFileRead.Error(err)
	}
	if err = json.Unmarshal(b, v); err != nil {
		return ErrorJSONDecode.Error(err)
	}
	return nil
}

// WriteJSONFile encodes v as indented JSON and writes it to path,
// creating parent directories as needed via PathCheckCreate.
func WriteJSONFile(path string, v interface{}, perm os.FileMode) liberr.Error {
	if e := PathCheckCreate(true, path, perm, 0755); e != nil {
		return e
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorJSONEncode.Error(err)
	}
	if err = os.WriteFile(path, b, perm); err != nil {
		return ErrorFileWrite.Error(err)
	}
	return nil
}
