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

package gconfig

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	c, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, defaultMaxMemorySize, c.MaxMemorySize())
	assert.Equal(t, defaultMaxBlockSize, c.MaxBlockSize())
	assert.Equal(t, defaultMaxPktSize, c.MaxPktSize())
}

func TestRegisterFlags_OverridesDefault(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	v := viper.New()

	err := RegisterFlags(cmd, v)
	assert.NoError(t, err)

	assert.NoError(t, cmd.PersistentFlags().Set(keyMaxPktSize, "8192"))

	c, lerr := Load(v)
	assert.NoError(t, lerr)
	assert.Equal(t, 8192, c.MaxPktSize())
}

func TestLoad_RejectsZeroCeiling(t *testing.T) {
	v := viper.New()
	v.Set(keyMaxBlockSize, 0)

	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoad_TraceTunables(t *testing.T) {
	v := viper.New()
	v.Set(keyTraceLevels, uint32(1<<3))
	v.Set(keyDeepTrace, 1)

	c, err := Load(v)
	assert.NoError(t, err)
	assert.True(t, c.TraceLevels().Test(3))
	assert.Equal(t, 1, c.DeepTrace())
}
