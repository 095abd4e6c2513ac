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

import (
	liberr "github.com/nabbar/yuneta/errors"
	"github.com/nabbar/yuneta/logger"
)

// Start rejects if already running, disabled, or missing a required
// attribute; otherwise resets volatile attributes and invokes mt_start.
func (g *GObj) Start() liberr.Error {
	g.mu.Lock()
	if g.running {
		g.mu.Unlock()
		g.logWarning("start on an already-running gobj")
		return ErrorAlreadyRunning.Error(nil)
	}
	if g.disabled {
		g.mu.Unlock()
		g.logWarning("start on a disabled gobj")
		return ErrorDisabled.Error(nil)
	}
	g.mu.Unlock()

	if err := g.attrs.CheckRequired(); err != nil {
		rerr := ErrorMissingRequiredAttrs.Error(err)
		g.logCaught(logger.ErrorLevel, "cannot start, required attribute unset", rerr, nil)
		return rerr
	}
	if err := g.attrs.ResetVolatile(); err != nil {
		return err
	}

	if g.class.GMT.Start != nil {
		if err := g.class.GMT.Start(g); err != nil {
			return err
		}
	}

	g.mu.Lock()
	g.running = true
	g.mu.Unlock()
	return nil
}

// Stop auto-pauses with a warning if still playing, then invokes mt_stop.
// Idempotent: stopping an already-stopped gobj logs at info level and
// succeeds.
func (g *GObj) Stop() liberr.Error {
	if g.IsPlaying() {
		g.logWarning("stop on a playing gobj, auto-pausing")
		_ = g.Pause()
	}

	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		g.logInfo("stop on a gobj that is not running")
		return nil
	}
	g.mu.Unlock()

	if g.class.GMT.Stop != nil {
		if err := g.class.GMT.Stop(g); err != nil {
			return err
		}
	}

	g.mu.Lock()
	g.running = false
	g.mu.Unlock()

	// a volatile gobj that has a parent destroys itself as soon as it stops
	if g.Flags().Has(FlagVolatile) {
		if p := g.Parent(); p != nil && !g.IsDestroying() && !g.IsDestroyed() {
			g.Destroy()
		}
	}
	return nil
}

// Play is the separate operational phase gating traffic processing. Called
// without a prior Start, it either auto-starts (when the class does not
// carry FlagRequiredStartToPlay) or fails.
func (g *GObj) Play() liberr.Error {
	if !g.IsRunning() {
		if g.Flags().Has(FlagRequiredStartToPlay) {
			err := ErrorNotRunning.Error(nil)
			g.logCaught(logger.ErrorLevel, "play on a gobj that requires start", err, nil)
			return err
		}
		g.logCaught(logger.ErrorLevel, "play without start, auto-starting", ErrorNotRunning.Error(nil), nil)
		if err := g.Start(); err != nil {
			return err
		}
	}

	if g.class.GMT.Play != nil {
		if err := g.class.GMT.Play(g); err != nil {
			return err
		}
	}

	g.mu.Lock()
	g.playing = true
	g.mu.Unlock()
	return nil
}

// Pause without a prior Play logs at info level and succeeds; otherwise it
// invokes mt_pause.
func (g *GObj) Pause() liberr.Error {
	if !g.IsPlaying() {
		g.logInfo("pause on a gobj that is not playing")
		return nil
	}

	if g.class.GMT.Pause != nil {
		if err := g.class.GMT.Pause(g); err != nil {
			return err
		}
	}

	g.mu.Lock()
	g.playing = false
	g.mu.Unlock()
	return nil
}

// Disable marks the gobj so Start is refused; the default behavior with no
// mt_disable hook is StopTree.
func (g *GObj) Disable() liberr.Error {
	g.mu.Lock()
	g.disabled = true
	g.mu.Unlock()

	if g.class.GMT.Disable != nil {
		return g.class.GMT.Disable(g)
	}
	return g.StopTree()
}

// Enable clears the disabled flag, allowing Start again.
func (g *GObj) Enable() {
	g.mu.Lock()
	g.disabled = false
	g.mu.Unlock()
}

// eligibleForAutoWalk reports whether a child should be touched by
// StartChilds/StartTree: not manual_start, not disabled.
func eligibleForAutoWalk(g *GObj) bool {
	return !g.Flags().Has(FlagManualStart) && !g.IsDisabled()
}

// StartChilds starts each immediate child that is not manual_start or
// disabled.
func (g *GObj) StartChilds() liberr.Error {
	for _, child := range g.children.Snapshot() {
		if !eligibleForAutoWalk(child) {
			continue
		}
		_ = child.Start()
	}
	return nil
}

// StartTree starts g itself then recursively starts every eligible
// descendant.
func (g *GObj) StartTree() liberr.Error {
	if eligibleForAutoWalk(g) {
		_ = g.Start()
	}
	for _, child := range g.children.Snapshot() {
		if !eligibleForAutoWalk(child) {
			continue
		}
		_ = child.StartTree()
	}
	return nil
}

// StopChilds stops each immediate child.
func (g *GObj) StopChilds() liberr.Error {
	for _, child := range g.children.Snapshot() {
		_ = child.Stop()
	}
	return nil
}

// StopTree recursively stops every descendant, children before their
// parent, then stops g itself.
func (g *GObj) StopTree() liberr.Error {
	for _, child := range g.children.Snapshot() {
		_ = child.StopTree()
	}
	_ = g.Stop()
	return nil
}
