// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the interface between the gallery and the
// environment hosting it: the output surface, the viewport size and
// pixel density, resize notifications, and the per-display-frame
// scheduling primitive. Implementations live in system/driver.
package system

import (
	"context"
	"fmt"
	"image"
	"time"

	"cogentcore.org/gallery/base/errors"
)

// DefaultSelector is the selector of the output surface that
// scenes render into when none is specified.
const DefaultSelector = "canvas.webgl"

var (
	// ErrSurfaceNotFound is returned by [Host.Surface] when the
	// requested output surface does not exist in the host environment.
	ErrSurfaceNotFound = errors.New("system: output surface not found")

	// ErrClosed is returned when a host is used after it was closed.
	ErrClosed = errors.New("system: host closed")
)

// Size is the size of a viewport in logical (CSS) pixels.
type Size struct {
	Width  int
	Height int
}

// Sz returns a new [Size].
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Valid returns whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Aspect returns the width / height ratio, or 1 for an invalid size.
func (s Size) Aspect() float32 {
	if !s.Valid() {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// Scale returns the size in physical pixels at the given pixel ratio,
// rounded down, and never smaller than 1x1 for a valid size.
func (s Size) Scale(ratio float32) image.Point {
	if !s.Valid() {
		return image.Point{}
	}
	return image.Pt(max(int(float32(s.Width)*ratio), 1), max(int(float32(s.Height)*ratio), 1))
}

// CapPixelRatio returns the device pixel ratio limited to limit,
// which bounds the memory and fill-rate cost of high-density displays.
// A non-positive dpr is treated as 1 and a non-positive limit disables the cap.
func CapPixelRatio(dpr, limit float32) float32 {
	if dpr <= 0 {
		dpr = 1
	}
	if limit > 0 && dpr > limit {
		return limit
	}
	return dpr
}

// FrameHandle identifies a frame requested with [Host.RequestFrame].
// The zero value is never a valid handle.
type FrameHandle uint64

// FrameFunc is a function called by the host for a requested frame,
// with the host time of the frame since the host started.
type FrameFunc func(now time.Duration)

// Surface is a drawable output surface provided by the host, like
// a canvas element or a window.
type Surface interface {

	// Name returns the selector or title identifying the surface.
	Name() string

	// Present shows the given rendered image on the surface. The image
	// is in physical pixels and is only valid for the duration of the call.
	Present(img *image.RGBA) error
}

// Host is the environment hosting the scenes. All of its callbacks
// (frames and resize notifications) are delivered on a single thread,
// and only one of them runs at a time.
type Host interface {

	// Surface returns the existing output surface matching the given
	// selector, or an error wrapping [ErrSurfaceNotFound].
	Surface(selector string) (Surface, error)

	// Size returns the current viewport size.
	Size() Size

	// DevicePixelRatio returns the ratio of physical to logical pixels.
	DevicePixelRatio() float32

	// OnResize registers fn to be called whenever the viewport size or
	// pixel ratio changes, and returns a function removing it.
	OnResize(fn func(Size)) (remove func())

	// RequestFrame schedules fn to be called once at the next display frame.
	// Frames requested while a frame is running are called at the next one.
	RequestFrame(fn FrameFunc) FrameHandle

	// CancelFrame cancels a pending frame. It does nothing if the frame
	// already ran or was canceled.
	CancelFrame(h FrameHandle)

	// Run runs the host event loop until ctx is done or the host is closed.
	Run(ctx context.Context) error
}
