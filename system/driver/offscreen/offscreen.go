// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements [system.Host] without any display:
// surfaces keep the last presented image in memory, and display
// frames are driven explicitly with [Host.Tick] or by [Host.Run]
// on a simulated clock. It is used for tests, captures and
// headless runs.
package offscreen

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/base"
)

// DefaultFrameInterval is the simulated time between two display frames (60Hz).
const DefaultFrameInterval = time.Second / 60

// Host is the implementation of [system.Host] on the offscreen platform.
type Host struct {
	base.Host

	// FrameInterval is the simulated time between two display frames.
	FrameInterval time.Duration

	// MaxFrames is the number of display frames after which [Host.Run]
	// returns. Zero means no limit.
	MaxFrames int

	mu       sync.Mutex
	surfaces map[string]*Surface
	now      time.Duration
	ticks    int
}

var _ system.Host = &Host{}

// NewHost returns a new offscreen host with the given viewport size and
// device pixel ratio, and an output surface for [system.DefaultSelector].
func NewHost(size system.Size, dpr float32) *Host {
	h := &Host{FrameInterval: DefaultFrameInterval, surfaces: map[string]*Surface{}}
	h.Init(size, dpr)
	h.AddSurface(system.DefaultSelector)
	return h
}

// AddSurface adds an output surface with the given selector, replacing any
// existing one, and returns it.
func (h *Host) AddSurface(selector string) *Surface {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := &Surface{name: selector}
	h.surfaces[selector] = s
	return s
}

// RemoveSurface removes the output surface with the given selector.
func (h *Host) RemoveSurface(selector string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.surfaces, selector)
}

func (h *Host) Surface(selector string) (system.Surface, error) {
	s := h.SurfaceOf(selector)
	if s == nil {
		return nil, fmt.Errorf("offscreen: %q: %w", selector, system.ErrSurfaceNotFound)
	}
	return s, nil
}

// SurfaceOf returns the concrete surface with the given selector, or nil.
func (h *Host) SurfaceOf(selector string) *Surface {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.surfaces[selector]
}

// Resize simulates a window resize, notifying the resize observers
// synchronously as a browser does before the next frame.
func (h *Host) Resize(size system.Size) {
	h.SetSize(size, h.DevicePixelRatio())
}

// SetDevicePixelRatio simulates moving the window to a display
// with a different pixel density.
func (h *Host) SetDevicePixelRatio(dpr float32) {
	h.SetSize(h.Size(), dpr)
}

// Now returns the simulated time of the last display frame.
func (h *Host) Now() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.now
}

// Ticks returns the number of display frames simulated so far.
func (h *Host) Ticks() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ticks
}

// Tick simulates one display frame: the clock advances by
// [Host.FrameInterval] and the pending frames are called.
// It returns the number of frames called.
func (h *Host) Tick() int {
	h.mu.Lock()
	h.ticks++
	h.now += h.FrameInterval
	now := h.now
	h.mu.Unlock()
	return h.RunFrames(now)
}

// TickN simulates n display frames and returns the total number
// of frames called.
func (h *Host) TickN(n int) int {
	total := 0
	for range n {
		total += h.Tick()
	}
	return total
}

// Run simulates display frames as fast as possible until ctx is done,
// [Host.MaxFrames] frames have been simulated, or no frame is pending.
func (h *Host) Run(ctx context.Context) error {
	for n := 0; h.MaxFrames <= 0 || n < h.MaxFrames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if h.Pending() == 0 {
			slog.Debug("offscreen: no pending frames, stopping", "ticks", h.Ticks())
			return nil
		}
		h.Tick()
	}
	return nil
}

// Surface is an in-memory output surface.
type Surface struct {
	name string

	mu       sync.Mutex
	last     *image.RGBA
	presents int
}

func (s *Surface) Name() string {
	return s.name
}

// Present keeps a copy of img as the last presented image.
func (s *Surface) Present(img *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil || s.last.Rect != img.Rect {
		s.last = image.NewRGBA(img.Rect)
	}
	copy(s.last.Pix, img.Pix)
	s.presents++
	return nil
}

// Image returns the last presented image, or nil.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Presents returns the number of images presented so far.
func (s *Surface) Presents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents
}
