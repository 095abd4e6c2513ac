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
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/gtrace"
)

const (
	keyMaxMemorySize = "max_memory_size"
	keyMaxBlockSize  = "max_block_size"
	keyMaxPktSize    = "max_pkt_size"
	keyTraceLevels   = "trace_levels"
	keyDeepTrace     = "deep_trace"
)

// defaults sized for a small embedded service; every one of them can be
// overridden per process.
const (
	defaultMaxMemorySize = 64 * 1024 * 1024
	defaultMaxBlockSize  = 1 << 20
	defaultMaxPktSize    = 64 * 1024
)

// Config holds the runtime's process-wide tunables, loaded once from a
// viper source and safe for concurrent reads thereafter.
type Config struct {
	mu sync.RWMutex

	maxMemorySize int
	maxBlockSize  int
	maxPktSize    int
	traceLevels   gtrace.Mask
	deepTrace     int
}

// RegisterFlags adds the runtime's tunables as persistent flags on cmd and
// binds them into v, mirroring nabbar-golib's
// RegisterFlag(Command *cobra.Command, Viper *viper.Viper) shape.
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) liberr.Error {
	cmd.PersistentFlags().Int(keyMaxMemorySize, defaultMaxMemorySize, "ceiling for the gmem memory tracker, in bytes")
	cmd.PersistentFlags().Int(keyMaxBlockSize, defaultMaxBlockSize, "per-gbuf growth ceiling, in bytes")
	cmd.PersistentFlags().Int(keyMaxPktSize, defaultMaxPktSize, "TCP4H frame length ceiling, in bytes")
	cmd.PersistentFlags().Uint32(keyTraceLevels, 0, "initial global trace-level mask")
	cmd.PersistentFlags().Int(keyDeepTrace, 0, "deep-trace knob: 0 off, 1 all-but-suppressed, 2 unconditional")

	if err := v.BindPFlag(keyMaxMemorySize, cmd.PersistentFlags().Lookup(keyMaxMemorySize)); err != nil {
		return ErrorInvalidValue.Error(err)
	}
	if err := v.BindPFlag(keyMaxBlockSize, cmd.PersistentFlags().Lookup(keyMaxBlockSize)); err != nil {
		return ErrorInvalidValue.Error(err)
	}
	if err := v.BindPFlag(keyMaxPktSize, cmd.PersistentFlags().Lookup(keyMaxPktSize)); err != nil {
		return ErrorInvalidValue.Error(err)
	}
	if err := v.BindPFlag(keyTraceLevels, cmd.PersistentFlags().Lookup(keyTraceLevels)); err != nil {
		return ErrorInvalidValue.Error(err)
	}
	if err := v.BindPFlag(keyDeepTrace, cmd.PersistentFlags().Lookup(keyDeepTrace)); err != nil {
		return ErrorInvalidValue.Error(err)
	}

	return nil
}

// Load reads the tunables out of v, applying the same defaults RegisterFlags
// installed when v has no source for a key.
func Load(v *viper.Viper) (*Config, liberr.Error) {
	v.SetDefault(keyMaxMemorySize, defaultMaxMemorySize)
	v.SetDefault(keyMaxBlockSize, defaultMaxBlockSize)
	v.SetDefault(keyMaxPktSize, defaultMaxPktSize)
	v.SetDefault(keyTraceLevels, 0)
	v.SetDefault(keyDeepTrace, 0)

	c := &Config{
		maxMemorySize: v.GetInt(keyMaxMemorySize),
		maxBlockSize:  v.GetInt(keyMaxBlockSize),
		maxPktSize:    v.GetInt(keyMaxPktSize),
		traceLevels:   gtrace.MaskFromUint32(v.GetUint32(keyTraceLevels)),
		deepTrace:     v.GetInt(keyDeepTrace),
	}

	if c.maxMemorySize <= 0 || c.maxBlockSize <= 0 || c.maxPktSize <= 0 {
		return nil, ErrorInvalidValue.Error(nil)
	}

	return c, nil
}

func (c *Config) MaxMemorySize() int { c.mu.RLock(); defer c.mu.RUnlock(); return c.maxMemorySize }
func (c *Config) MaxBlockSize() int  { c.mu.RLock(); defer c.mu.RUnlock(); return c.maxBlockSize }
func (c *Config) MaxPktSize() int    { c.mu.RLock(); defer c.mu.RUnlock(); return c.maxPktSize }

func (c *Config) TraceLevels() gtrace.Mask {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.traceLevels
}

func (c *Config) DeepTrace() int { c.mu.RLock(); defer c.mu.RUnlock(); return c.deepTrace }

// Apply pushes the trace tunables into the process-wide gtrace state:
// every bit of trace_levels is set on the global mask and the deep-trace
// knob is installed. The size ceilings are read by their consumers
// (gmem.New, gbuf.Create, gframe.CreateDecoder) rather than pushed.
func (c *Config) Apply() {
	c.mu.RLock()
	levels := c.traceLevels
	deep := c.deepTrace
	c.mu.RUnlock()

	for bit := uint(0); bit < 32; bit++ {
		if levels.Test(bit) {
			gtrace.SetGlobalLevel(bit)
		}
	}
	gtrace.SetDeepTrace(deep)
}
