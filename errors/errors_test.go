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

package errors_test

import (
	goerr "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	liberr "github.com/nabbar/yuneta/errors"
)

const (
	testCodeBase liberr.CodeError = iota + liberr.MinAvailable + 10
	testCodeNext
)

func init() {
	liberr.RegisterIdFctMessage(testCodeBase, func(code liberr.CodeError) string {
		switch code {
		case testCodeBase:
			return "base failure"
		case testCodeNext:
			return "next failure"
		}
		return liberr.NullMessage
	})
	liberr.Tag(testCodeBase, liberr.KindParameter)
}

func TestCodeError_MessageResolution(t *testing.T) {
	assert.Equal(t, "base failure", testCodeBase.GetMessage())
	assert.Equal(t, "next failure", testCodeNext.GetMessage())
	assert.Equal(t, liberr.UnknownMessage, (testCodeNext + 50).GetMessage())

	assert.True(t, liberr.ExistInMapMessage(testCodeBase))
	assert.False(t, liberr.ExistInMapMessage(testCodeNext+50))
}

func TestError_CodesAndParents(t *testing.T) {
	parent := testCodeNext.Error(nil)
	err := testCodeBase.Error(parent)

	assert.True(t, err.IsCode(testCodeBase))
	assert.False(t, err.IsCode(testCodeNext))
	assert.True(t, err.HasCode(testCodeNext))
	assert.Equal(t, testCodeBase, err.GetCode())
	assert.True(t, err.HasParent())

	assert.Contains(t, err.Error(), "base failure")
	assert.Contains(t, err.Error(), "next failure")
}

func TestError_UnwrapCompat(t *testing.T) {
	root := goerr.New("disk full")
	err := testCodeBase.Error(root)

	assert.True(t, goerr.Is(err, root))
	assert.True(t, liberr.Is(err))
	require.NotNil(t, liberr.Get(err))
}

func TestKindOf_Taxonomy(t *testing.T) {
	err := testCodeBase.Error(nil)
	assert.Equal(t, liberr.KindParameter, liberr.KindOf(err))

	// untagged codes fall back to INTERNAL_ERROR
	assert.Equal(t, liberr.KindInternal, liberr.KindOf(testCodeNext.Error(nil)))
	assert.Equal(t, liberr.KindInternal, liberr.KindOf(goerr.New("plain")))
}

func TestIfError_NilWhenAllNil(t *testing.T) {
	assert.Nil(t, testCodeBase.IfError(nil, nil))

	e := testCodeBase.IfError(nil, goerr.New("boom"))
	require.NotNil(t, e)
	assert.True(t, e.HasParent())
}

func TestError_Trace(t *testing.T) {
	err := testCodeBase.Error(nil)
	assert.Contains(t, err.GetTrace(), "errors_test.go")
}
