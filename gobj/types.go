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

package gobj

// Flag is a per-instance/per-class bitset controlling tree and lifecycle
// behavior (manual_start, service, required_start_to_play, ...).
type Flag uint32

const (
	FlagService Flag = 1 << iota
	FlagYuno
	FlagManualStart
	FlagNoCheckOutputEvents
	FlagRequiredStartToPlay
	FlagAutostart
	FlagAutoplay
	FlagDefaultService
	FlagVolatile
	FlagPureChild
	FlagIgnoreUnknownAttrs
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }

// StateChangedEvent is the reserved system event STATE_CHANGED publishes
// with {previous_state, current_state} whenever a gobj changes state.
const StateChangedEvent = "STATE_CHANGED"

// NoWarnSubsFlag, when set on kw passed to gobj_publish_event, suppresses
// the "no subscriber matched" warning.
const NoWarnSubsFlag = "NO_WARN_SUBS"

// LocalKeyPrefix / GlobalKeyPrefix identify the __local__ and __global__
// kw-transform keys applied during publication.
const (
	LocalKey  = "__local__"
	GlobalKey = "__global__"
	FilterKey = "__filter__"
	ConfigKey = "__config__"
)
