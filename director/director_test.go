// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package director

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/render"
	"cogentcore.org/gallery/render/raster"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/offscreen"
	"cogentcore.org/gallery/xyz"
)

// recorder is a [render.Renderer] recording the calls made to it.
type recorder struct {
	calls     []string
	sizes     []image.Point
	aspects   []float32
	destroyed int
	size      image.Point
	ratio     float32
	opts      render.Options
	fail      error
}

func (r *recorder) SetSize(width, height int, pixelRatio float32) {
	r.calls = append(r.calls, "resize")
	r.ratio = pixelRatio
	r.size = render.BufferSize(width, height, pixelRatio)
	r.sizes = append(r.sizes, r.size)
}

func (r *recorder) Size() image.Point   { return r.size }
func (r *recorder) PixelRatio() float32 { return r.ratio }

func (r *recorder) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	r.calls = append(r.calls, "render")
	r.aspects = append(r.aspects, cam.ProjectionAspect())
	return r.fail
}

func (r *recorder) Destroy() {
	r.calls = append(r.calls, "destroy")
	r.destroyed++
}

// setup returns an offscreen host of the given size and pixel ratio,
// a director on it and the renderer it creates on init.
func setup(size system.Size, dpr float32) (*offscreen.Host, *Director, *recorder, Options) {
	h := offscreen.NewHost(size, dpr)
	rec := &recorder{}
	opts := DefaultOptions()
	opts.NewRenderer = func(s system.Surface, o render.Options) (render.Renderer, error) {
		rec.opts = o
		return rec, nil
	}
	return h, New(h), rec, opts
}

func TestInit(t *testing.T) {
	_, d, rec, opts := setup(system.Sz(1024, 768), 1)
	opts.Renderer.Alpha = true
	require.NoError(t, d.Init(opts))
	assert.Equal(t, Running, d.State())
	assert.NotNil(t, d.Scene())
	assert.Equal(t, float32(45), d.Camera().FOV)
	assert.Equal(t, float32(1), d.Camera().Near)
	assert.Equal(t, float32(1000), d.Camera().Far)
	assert.InDelta(t, 1024.0/768.0, d.Camera().Aspect, 1e-6)
	assert.Equal(t, []string{"resize"}, rec.calls)
	assert.True(t, rec.opts.Alpha)
	assert.True(t, rec.opts.Antialias)
	assert.Equal(t, system.Sz(1024, 768), d.Size())

	assert.ErrorIs(t, d.Init(opts), ErrAlreadyInitialized)
}

func TestInitCamera(t *testing.T) {
	_, d, _, opts := setup(system.Sz(800, 600), 1)
	opts.Camera = &xyz.CameraConfig{FOV: 75, Position: math32.Vec3(0, 50, 0), Up: math32.Vec3(0, 0, 1), Aspect: 3}
	require.NoError(t, d.Init(opts))
	cfg := d.Camera().Config()
	assert.Equal(t, float32(75), cfg.FOV)
	assert.Equal(t, float32(1000), cfg.Far)
	assert.InDelta(t, 800.0/600.0, cfg.Aspect, 1e-6)
	assert.Equal(t, math32.Vec3(0, 50, 0), cfg.Position)

	_, d, _, opts = setup(system.Sz(800, 600), 1)
	opts.Camera = &xyz.CameraConfig{Near: 10, Far: 5}
	assert.ErrorIs(t, d.Init(opts), xyz.ErrInvalidCamera)
	assert.Equal(t, Uninitialized, d.State())
}

// P4
func TestInitMissingSurface(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(800, 600), 1)
	h.RemoveSurface(system.DefaultSelector)
	err := d.Init(opts)
	assert.ErrorIs(t, err, system.ErrSurfaceNotFound)
	assert.Equal(t, Uninitialized, d.State())
	assert.Nil(t, d.Scene())
	assert.Nil(t, d.Camera())
	assert.Nil(t, d.Renderer())
	assert.Empty(t, rec.calls)
	assert.Equal(t, 0, h.Observers())

	assert.ErrorIs(t, d.Animate(func(Frame) error { return nil }), ErrNotInitialized)
	assert.ErrorIs(t, d.OnResize(), ErrNotInitialized)
	assert.Equal(t, 0, h.Pending())

	// a failed init can be retried once the surface exists
	h.AddSurface(system.DefaultSelector)
	require.NoError(t, d.Init(opts))
	assert.Equal(t, Running, d.State())
}

func TestInitRendererError(t *testing.T) {
	h, d, _, opts := setup(system.Sz(800, 600), 1)
	errGL := errors.New("no context")
	opts.NewRenderer = func(system.Surface, render.Options) (render.Renderer, error) {
		return nil, errGL
	}
	assert.ErrorIs(t, d.Init(opts), errGL)
	assert.Equal(t, Uninitialized, d.State())
	assert.Nil(t, d.Renderer())
	assert.Equal(t, 0, h.Observers())
}

// P5
func TestPixelRatioCap(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(800, 600), 3)
	require.NoError(t, d.Init(opts))
	assert.Equal(t, image.Pt(1600, 1200), rec.Size())
	assert.Equal(t, float32(2), d.PixelRatio())

	h.SetDevicePixelRatio(1.5)
	assert.Equal(t, image.Pt(1200, 900), rec.Size())

	_, d, rec, opts = setup(system.Sz(800, 600), 3)
	opts.MaxPixelRatio = 4
	require.NoError(t, d.Init(opts))
	assert.Equal(t, image.Pt(2400, 1800), rec.Size())
}

// Scenario A and P1
func TestResize(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(1024, 768), 1)
	require.NoError(t, d.Init(opts))
	h.Resize(system.Sz(500, 400))
	assert.Equal(t, system.Sz(500, 400), d.Size())
	assert.True(t, d.Camera().ProjectionDirty())
	require.NoError(t, d.Render())
	assert.InDelta(t, 1.25, rec.aspects[0], 1e-5)
	assert.InDelta(t, 1.25, d.Camera().Aspect, 1e-6)
	assert.False(t, d.Camera().ProjectionDirty())
	assert.Equal(t, image.Pt(500, 400), rec.Size())

	// several resizes between two frames: the last one wins
	require.NoError(t, d.Animate(nil))
	h.Resize(system.Sz(300, 300))
	h.Resize(system.Sz(800, 200))
	h.Tick()
	h.Resize(system.Sz(600, 200))
	h.Tick()
	require.Len(t, rec.aspects, 3)
	assert.InDelta(t, 4, rec.aspects[1], 1e-5)
	assert.InDelta(t, 3, rec.aspects[2], 1e-5)
}

// Scenario B
func TestAnimate(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(800, 600), 1)
	require.NoError(t, d.Init(opts))
	rec.calls = nil
	n := 0
	var frames []Frame
	require.NoError(t, d.Animate(func(f Frame) error {
		n++
		rec.calls = append(rec.calls, "frame")
		frames = append(frames, f)
		return nil
	}))
	assert.ErrorIs(t, d.Animate(nil), ErrAlreadyAnimating)
	assert.True(t, d.Animating())

	h.TickN(10)
	assert.Equal(t, 10, n)
	assert.Equal(t, 10, d.Frames())
	require.Len(t, rec.calls, 20)
	for i := 0; i < 20; i += 2 {
		assert.Equal(t, []string{"frame", "render"}, rec.calls[i:i+2])
	}
	assert.Equal(t, 0, frames[0].Index)
	assert.Zero(t, frames[0].Elapsed)
	assert.Zero(t, frames[0].Delta)
	assert.Equal(t, 9, frames[9].Index)
	assert.Equal(t, 9*offscreen.DefaultFrameInterval, frames[9].Elapsed)
	assert.Equal(t, offscreen.DefaultFrameInterval, frames[9].Delta)
	assert.Equal(t, 1, h.Pending())
}

// P2, P3 and Scenario C
func TestDispose(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(800, 600), 1)
	require.NoError(t, d.Init(opts))
	mt := xyz.NewMaterial("red", color.NRGBA{255, 0, 0, 255})
	ms := xyz.NewBox("box", 1, 1, 1)
	xyz.NewSolid(d.Scene(), "a", ms, mt)
	xyz.NewSolid(d.Scene(), "b", ms, mt)

	n := 0
	require.NoError(t, d.Animate(func(Frame) error { n++; return nil }))
	h.TickN(2)
	requests := h.Requests()

	require.NoError(t, d.Dispose())
	assert.Equal(t, Disposed, d.State())
	assert.True(t, ms.Destroyed())
	assert.True(t, mt.Destroyed())
	assert.Equal(t, 1, rec.destroyed)
	assert.Equal(t, 0, h.Observers())
	assert.Equal(t, 0, h.Pending())

	require.NoError(t, d.Dispose())
	assert.Equal(t, 1, rec.destroyed)

	h.TickN(5)
	assert.Equal(t, 2, n)
	assert.Equal(t, requests, h.Requests())

	rec.calls = nil
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, d.OnResize(), ErrAlreadyDisposed)
		h.Resize(system.Sz(100, 100))
	})
	assert.Empty(t, rec.calls)
	assert.ErrorIs(t, d.Animate(nil), ErrAlreadyDisposed)
	assert.ErrorIs(t, d.Init(opts), ErrAlreadyDisposed)
	assert.ErrorIs(t, d.Render(), ErrAlreadyDisposed)
}

func TestDisposeDuringFrame(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(800, 600), 1)
	require.NoError(t, d.Init(opts))
	rec.calls = nil
	require.NoError(t, d.Animate(func(Frame) error {
		return d.Dispose()
	}))
	h.TickN(3)
	assert.Equal(t, []string{"destroy"}, rec.calls)
	assert.Equal(t, 0, h.Pending())
}

func TestDisposeUninitialized(t *testing.T) {
	_, d, _, opts := setup(system.Sz(800, 600), 1)
	require.NoError(t, d.Dispose())
	assert.Equal(t, Disposed, d.State())
	assert.ErrorIs(t, d.Init(opts), ErrAlreadyDisposed)
}

func TestResilientFrames(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(800, 600), 1)
	require.NoError(t, d.Init(opts))
	n := 0
	require.NoError(t, d.Animate(func(f Frame) error {
		n++
		switch f.Index {
		case 1:
			return errors.New("bad frame")
		case 2:
			panic("worse frame")
		}
		return nil
	}))
	h.TickN(5)
	assert.Equal(t, 5, n)
	assert.Len(t, rec.aspects, 5)
	assert.Equal(t, 5, d.Frames())
	assert.NoError(t, d.Err())
	assert.True(t, d.Animating())
}

func TestFailFast(t *testing.T) {
	h, d, rec, opts := setup(system.Sz(800, 600), 1)
	opts.FailFast = true
	var got error
	opts.OnError = func(err error) { got = err }
	require.NoError(t, d.Init(opts))
	n := 0
	require.NoError(t, d.Animate(func(f Frame) error {
		n++
		if f.Index == 2 {
			panic("bad frame")
		}
		return nil
	}))
	h.TickN(5)
	assert.Equal(t, 3, n)
	assert.Len(t, rec.aspects, 2)
	assert.ErrorIs(t, d.Err(), ErrFramePanic)
	assert.Equal(t, d.Err(), got)
	assert.False(t, d.Animating())
	assert.Equal(t, 0, h.Pending())

	// a render error stops the loop too
	rec.fail = errors.New("lost context")
	require.NoError(t, d.Animate(nil))
	h.TickN(3)
	assert.ErrorIs(t, d.Err(), rec.fail)
	assert.Len(t, rec.aspects, 3)
}

func TestEmptyViewport(t *testing.T) {
	h := offscreen.NewHost(system.Sz(64, 48), 1)
	d := New(h)
	opts := DefaultOptions()
	opts.FailFast = true
	require.NoError(t, d.Init(opts))
	n := 0
	require.NoError(t, d.Animate(func(Frame) error { n++; return nil }))
	h.TickN(2)

	h.Resize(system.Sz(0, 0))
	h.TickN(3)
	assert.NoError(t, d.Err())
	assert.True(t, d.Animating())
	assert.Equal(t, 5, n)
	assert.Equal(t, 2, d.Frames())

	h.Resize(system.Sz(32, 16))
	h.TickN(2)
	assert.True(t, d.Animating())
	assert.Equal(t, 4, d.Frames())
	assert.Equal(t, image.Rect(0, 0, 32, 16), h.SurfaceOf(system.DefaultSelector).Image().Bounds())
	assert.InDelta(t, 2, d.Camera().Aspect, 1e-6)
	require.NoError(t, d.Dispose())
}

func TestSceneCamera(t *testing.T) {
	_, d, rec, opts := setup(system.Sz(800, 600), 1)
	require.NoError(t, d.Init(opts))
	sc := d.Scene()
	assert.Same(t, d.Camera(), sc.Camera)

	sc.SaveCamera("home")
	require.Len(t, sc.SavedCams, 1)
	d.Camera().Pose.Pos = math32.Vec3(0, 10, 0)
	require.NoError(t, sc.SetCamera("home"))
	assert.Same(t, d.Camera(), sc.Camera)
	assert.Equal(t, math32.Vec3(0, 0, 1), d.Camera().Pose.Pos)
	assert.True(t, d.Camera().ProjectionDirty())
	require.NoError(t, d.Render())
	assert.Len(t, rec.aspects, 1)
}

func TestRaster(t *testing.T) {
	h := offscreen.NewHost(system.Sz(64, 48), 1)
	d := New(h)
	require.NoError(t, d.Init(DefaultOptions()))
	_, ok := d.Renderer().(*raster.Renderer)
	assert.True(t, ok)
	d.Scene().Background = color.RGBA{0, 0, 255, 255}
	require.NoError(t, d.Animate(nil))
	h.TickN(2)
	img := h.SurfaceOf(system.DefaultSelector).Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(10, 10))
	require.NoError(t, d.Dispose())
}

func TestStates(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "States(7)", States(7).String())
}
