// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package director provides [Director], which brings a scene online
// on a [system.Host]: it creates the scene root, the camera and the
// renderer bound to an output surface, keeps them sized to the
// viewport, runs the animation loop, and tears everything down.
// Demos hold a Director and delegate to it.
package director

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/render"
	"cogentcore.org/gallery/render/raster"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/xyz"
)

var (
	// ErrAlreadyDisposed is returned by operations on a disposed [Director].
	ErrAlreadyDisposed = errors.New("director: already disposed")

	// ErrNotInitialized is returned by operations that need a successful [Director.Init].
	ErrNotInitialized = errors.New("director: not initialized")

	// ErrAlreadyInitialized is returned by [Director.Init] on a running [Director].
	ErrAlreadyInitialized = errors.New("director: already initialized")

	// ErrAlreadyAnimating is returned by [Director.Animate] when the loop is running.
	ErrAlreadyAnimating = errors.New("director: already animating")

	// ErrFramePanic wraps the value of a panic in a frame function.
	ErrFramePanic = errors.New("director: frame function panicked")
)

// DefaultMaxPixelRatio is the default limit of the pixel ratio of the renderer.
const DefaultMaxPixelRatio = 2

// Options are the options of [Director.Init].
type Options struct {

	// Selector is the selector of the output surface;
	// defaults to [system.DefaultSelector].
	Selector string

	// Renderer are the options passed through to the renderer.
	// Use [DefaultOptions] to get antialiasing.
	Renderer render.Options

	// NewRenderer creates the renderer; defaults to [raster.New].
	NewRenderer render.NewFunc

	// Camera overrides the fields of the default camera configuration
	// that are set in it. The aspect ratio always comes from the viewport.
	// Zero fields are not applied: an override cannot move Position or
	// LookAt to the origin or turn Ortho off. Set those on [Director.Camera]
	// after Init instead.
	Camera *xyz.CameraConfig

	// MaxPixelRatio is the limit of the pixel ratio of the renderer;
	// defaults to [DefaultMaxPixelRatio].
	MaxPixelRatio float32

	// FailFast stops the animation loop at the first error of a frame,
	// instead of logging it and going on.
	FailFast bool

	// OnError is called with the error that stopped the animation
	// loop when FailFast is set.
	OnError func(err error)
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{Renderer: render.DefaultOptions()}
}

func (o *Options) defaults() {
	if o.Selector == "" {
		o.Selector = system.DefaultSelector
	}
	if o.NewRenderer == nil {
		o.NewRenderer = raster.New
	}
	if o.MaxPixelRatio <= 0 {
		o.MaxPixelRatio = DefaultMaxPixelRatio
	}
}

// Director owns the scene root, camera and renderer of one scene on a host.
// All of its methods must be called from the thread delivering the
// host callbacks.
type Director struct {
	host system.Host
	opts Options

	state    States
	scene    *xyz.Scene
	camera   *xyz.Camera
	renderer render.Renderer

	size  system.Size
	ratio float32

	removeResize func()

	loop
}

// New returns a new uninitialized [Director] on the given host.
func New(host system.Host) *Director {
	return &Director{host: host}
}

// Init creates, in order, the scene root, the camera, the renderer bound
// to the output surface and sized to the viewport, and registers the
// resize observer. On failure nothing is kept and the director stays
// uninitialized; a missing surface gives an error matching
// [system.ErrSurfaceNotFound].
func (d *Director) Init(opts Options) error {
	switch d.state {
	case Running:
		return ErrAlreadyInitialized
	case Disposed:
		return ErrAlreadyDisposed
	}
	opts.defaults()
	size := d.host.Size()

	sc := xyz.NewScene("scene")

	cfg := xyz.DefaultCameraConfig(size.Aspect())
	if err := cfg.Merge(opts.Camera); err != nil {
		return fmt.Errorf("director: init camera: %w", err)
	}
	cfg.Aspect = size.Aspect()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("director: init camera: %w", err)
	}
	cam := xyz.NewCamera(cfg)
	sc.Camera = cam

	surf, err := d.host.Surface(opts.Selector)
	if err != nil {
		return fmt.Errorf("director: init: %w", err)
	}
	ratio := system.CapPixelRatio(d.host.DevicePixelRatio(), opts.MaxPixelRatio)
	rend, err := opts.NewRenderer(surf, opts.Renderer)
	if err != nil {
		return fmt.Errorf("director: init renderer: %w", err)
	}
	rend.SetSize(size.Width, size.Height, ratio)

	d.opts = opts
	d.scene, d.camera, d.renderer = sc, cam, rend
	d.size, d.ratio = size, ratio
	d.removeResize = d.host.OnResize(func(system.Size) {
		errors.Log(d.OnResize())
	})
	d.state = Running
	slog.Debug("director: initialized", "surface", surf.Name(), "size", size, "ratio", ratio)
	return nil
}

// OnResize updates the viewport size from the host, resizes the renderer
// at the capped pixel ratio and updates the aspect ratio of the camera,
// whose projection is then recomputed before the next render.
// It is called by the resize observer registered by [Director.Init].
func (d *Director) OnResize() error {
	switch d.state {
	case Uninitialized:
		return ErrNotInitialized
	case Disposed:
		return ErrAlreadyDisposed
	}
	size := d.host.Size()
	d.size = size
	d.ratio = system.CapPixelRatio(d.host.DevicePixelRatio(), d.opts.MaxPixelRatio)
	d.renderer.SetSize(size.Width, size.Height, d.ratio)
	if size.Valid() {
		d.camera.SetAspect(size.Aspect())
	}
	slog.Debug("director: resized", "size", size, "ratio", d.ratio)
	return nil
}

// Render updates the camera and world matrices and renders the scene once.
func (d *Director) Render() error {
	switch d.state {
	case Uninitialized:
		return ErrNotInitialized
	case Disposed:
		return ErrAlreadyDisposed
	}
	d.camera.UpdateMatrix()
	d.scene.UpdateNodes()
	return d.renderer.Render(d.scene, d.camera)
}

// Dispose cancels the pending frame, destroys the meshes and materials
// of the scene and the renderer, and removes the resize observer. A frame
// being run finishes without scheduling the next one. Calling it again
// does nothing.
func (d *Director) Dispose() error {
	switch d.state {
	case Disposed:
		return nil
	case Uninitialized:
		d.state = Disposed
		return nil
	}
	d.state = Disposed
	d.stop()
	d.removeResize()
	d.removeResize = nil
	n := d.scene.Destroy()
	d.renderer.Destroy()
	slog.Debug("director: disposed", "resources", n, "frames", d.frames)
	return nil
}

// Host returns the host of the director.
func (d *Director) Host() system.Host {
	return d.host
}

// Scene returns the scene root, or nil before [Director.Init].
func (d *Director) Scene() *xyz.Scene {
	return d.scene
}

// Camera returns the camera, or nil before [Director.Init].
func (d *Director) Camera() *xyz.Camera {
	return d.camera
}

// Renderer returns the renderer, or nil before [Director.Init].
func (d *Director) Renderer() render.Renderer {
	return d.renderer
}

// Size returns the viewport size at the last init or resize.
func (d *Director) Size() system.Size {
	return d.size
}

// PixelRatio returns the capped pixel ratio of the renderer.
func (d *Director) PixelRatio() float32 {
	return d.ratio
}

// State returns the state of the director.
func (d *Director) State() States {
	return d.state
}
