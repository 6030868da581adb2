// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package director

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/gallery/system"
)

// Frame is the information passed to a [FrameFunc].
type Frame struct {

	// Index is the number of frames run before this one by the loop.
	Index int

	// Elapsed is the time since the first frame of the loop.
	Elapsed time.Duration

	// Delta is the time since the previous frame, zero for the first one.
	Delta time.Duration
}

// Seconds returns [Frame.Elapsed] in seconds.
func (f Frame) Seconds() float32 {
	return float32(f.Elapsed.Seconds())
}

// DeltaSeconds returns [Frame.Delta] in seconds.
func (f Frame) DeltaSeconds() float32 {
	return float32(f.Delta.Seconds())
}

// FrameFunc is called at each frame of the animation loop, before the
// scene is rendered, to update the scene.
type FrameFunc func(f Frame) error

// loop is the state of the animation loop.
type loop struct {
	fn      FrameFunc
	pending system.FrameHandle
	running bool

	started bool
	start   time.Duration
	last    time.Duration
	index   int

	// frames is the number of frames rendered.
	frames int

	err error
}

// Animate starts the animation loop: at each display frame fn is
// called, then the scene is rendered, then the next frame is requested.
// Errors and panics in a frame are logged and the loop goes on, unless
// [Options.FailFast] is set, in which case the loop stops without
// rendering that frame and the error is kept in [Director.Err].
// While the viewport is empty, as for a minimized window, frames are
// run without rendering.
func (d *Director) Animate(fn FrameFunc) error {
	switch {
	case d.state == Uninitialized:
		return ErrNotInitialized
	case d.state == Disposed:
		return ErrAlreadyDisposed
	case d.running:
		return ErrAlreadyAnimating
	}
	d.loop = loop{fn: fn, running: true, frames: d.frames}
	d.pending = d.host.RequestFrame(d.frame)
	return nil
}

// Animating returns whether the animation loop is running.
func (d *Director) Animating() bool {
	return d.running
}

// Frames returns the number of frames rendered by the animation loop.
func (d *Director) Frames() int {
	return d.frames
}

// Err returns the error that stopped the animation loop with [Options.FailFast].
func (d *Director) Err() error {
	return d.err
}

func (d *Director) frame(now time.Duration) {
	d.pending = 0
	if d.state != Running || !d.running {
		return
	}
	if !d.started {
		d.started, d.start, d.last = true, now, now
	}
	f := Frame{Index: d.index, Elapsed: now - d.start, Delta: now - d.last}
	d.index++
	d.last = now

	if err := d.call(f); err != nil && !d.handle(f, err) {
		return
	}
	if d.state != Running {
		return
	}
	if !d.size.Valid() {
		// minimized: nothing to draw until the viewport is back
		if d.running {
			d.pending = d.host.RequestFrame(d.frame)
		}
		return
	}
	if err := d.Render(); err != nil && !d.handle(f, err) {
		return
	}
	d.frames++
	if d.state == Running && d.running {
		d.pending = d.host.RequestFrame(d.frame)
	}
}

// call calls the frame function, turning a panic into an error.
func (d *Director) call(f Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFramePanic, r)
		}
	}()
	if d.fn == nil {
		return nil
	}
	return d.fn(f)
}

// handle applies the error policy and returns whether the frame goes on.
func (d *Director) handle(f Frame, err error) bool {
	if !d.opts.FailFast {
		slog.Error("director: frame error", "frame", f.Index, "err", err)
		return true
	}
	d.err = err
	d.running = false
	slog.Error("director: animation stopped", "frame", f.Index, "err", err)
	if d.opts.OnError != nil {
		d.opts.OnError(err)
	}
	return false
}

// stop cancels the pending frame and stops the loop.
func (d *Director) stop() {
	if d.pending != 0 {
		d.host.CancelFrame(d.pending)
		d.pending = 0
	}
	d.running = false
}
