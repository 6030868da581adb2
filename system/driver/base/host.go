// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the data and logic common to all
// implementations of [system.Host].
package base

import (
	"sync"
	"time"

	"cogentcore.org/gallery/system"
)

// Host contains the data and logic common to all implementations of
// [system.Host]: the viewport size and pixel ratio, the resize observers,
// and the queue of requested frames. Drivers embed it and call
// [Host.SetSize] and [Host.RunFrames] from their event loop.
type Host struct {
	mu sync.Mutex

	size system.Size
	dpr  float32

	observers []observer
	nextObs   int

	frames     []frame
	nextHandle system.FrameHandle

	// requests counts all calls to RequestFrame.
	requests int
}

type observer struct {
	id int
	fn func(system.Size)
}

type frame struct {
	handle system.FrameHandle
	fn     system.FrameFunc
}

// Init sets the initial size and pixel ratio without notifying observers.
func (h *Host) Init(size system.Size, dpr float32) {
	h.mu.Lock()
	h.size = size
	h.dpr = dpr
	h.mu.Unlock()
}

// Size returns the current viewport size.
func (h *Host) Size() system.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

// DevicePixelRatio returns the current device pixel ratio.
func (h *Host) DevicePixelRatio() float32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dpr <= 0 {
		return 1
	}
	return h.dpr
}

// SetSize updates the size and pixel ratio and notifies the resize
// observers if either changed. It returns whether anything changed.
func (h *Host) SetSize(size system.Size, dpr float32) bool {
	h.mu.Lock()
	if h.size == size && h.dpr == dpr {
		h.mu.Unlock()
		return false
	}
	h.size = size
	h.dpr = dpr
	obs := make([]observer, len(h.observers))
	copy(obs, h.observers)
	h.mu.Unlock()

	for _, o := range obs {
		o.fn(size)
	}
	return true
}

// OnResize registers fn as a resize observer.
func (h *Host) OnResize(fn func(system.Size)) (remove func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextObs++
	id := h.nextObs
	h.observers = append(h.observers, observer{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, o := range h.observers {
			if o.id == id {
				h.observers = append(h.observers[:i], h.observers[i+1:]...)
				return
			}
		}
	}
}

// Observers returns the number of registered resize observers.
func (h *Host) Observers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// RequestFrame queues fn for the next call to [Host.RunFrames].
func (h *Host) RequestFrame(fn system.FrameFunc) system.FrameHandle {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextHandle++
	h.requests++
	h.frames = append(h.frames, frame{handle: h.nextHandle, fn: fn})
	return h.nextHandle
}

// CancelFrame removes a pending frame from the queue.
func (h *Host) CancelFrame(handle system.FrameHandle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, f := range h.frames {
		if f.handle == handle {
			h.frames = append(h.frames[:i], h.frames[i+1:]...)
			return
		}
	}
}

// Requests returns the total number of calls to RequestFrame.
func (h *Host) Requests() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.requests
}

// Pending returns the number of frames waiting for the next display frame.
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.frames)
}

// RunFrames calls all of the frames pending at the time of the call
// with the given time, and returns how many were called. Frames
// requested by those calls are left for the next display frame, and
// frames canceled by those calls are not called.
func (h *Host) RunFrames(now time.Duration) int {
	h.mu.Lock()
	last := h.nextHandle
	h.mu.Unlock()

	n := 0
	for {
		h.mu.Lock()
		if len(h.frames) == 0 || h.frames[0].handle > last {
			h.mu.Unlock()
			return n
		}
		f := h.frames[0]
		h.frames = h.frames[1:]
		h.mu.Unlock()

		f.fn(now)
		n++
	}
}
