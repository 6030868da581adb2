// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package desktop implements [system.Host] on desktop platforms using a
// glfw window. Rendered images are presented with an OpenGL 2.1 context.
package desktop

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/base"
)

func init() {
	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Host is the implementation of [system.Host] on the desktop platform.
// It must be created and run on the main thread.
type Host struct {
	base.Host

	// Title is the title of the window.
	Title string

	win     *glfw.Window
	surface *Surface
	start   time.Time
	closed  bool
}

var _ system.Host = &Host{}

// NewHost opens a new window with the given title and size in
// screen coordinates, and returns a host for it.
// IMPORTANT: must be called on the main initial thread!
func NewHost(title string, size system.Size) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(size.Width, size.Height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("desktop: creating window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("desktop: initializing OpenGL: %w", err)
	}
	glfw.SwapInterval(1)

	h := &Host{Title: title, win: win, start: time.Now()}
	h.surface = &Surface{host: h}
	w, ht := win.GetSize()
	h.Init(system.Sz(w, ht), contentScale(win))

	win.SetSizeCallback(h.resized)
	win.SetContentScaleCallback(h.rescaled)
	win.SetKeyCallback(h.keyEvent)
	slog.Debug("desktop: window opened", "title", title, "size", h.Size(), "dpr", h.DevicePixelRatio())
	return h, nil
}

func contentScale(win *glfw.Window) float32 {
	sx, _ := win.GetContentScale()
	if sx <= 0 || sx != sx { // NaN on some platforms
		return 1
	}
	return sx
}

func (h *Host) resized(win *glfw.Window, width, height int) {
	h.SetSize(system.Sz(width, height), contentScale(win))
}

func (h *Host) rescaled(win *glfw.Window, x, y float32) {
	h.SetSize(h.Size(), contentScale(win))
}

// Surface returns the window surface, which answers to any selector
// while the window is open.
func (h *Host) Surface(selector string) (system.Surface, error) {
	if h.closed {
		return nil, fmt.Errorf("desktop: %q: window closed: %w", selector, system.ErrSurfaceNotFound)
	}
	return h.surface, nil
}

// Run polls window events and calls the requested frames, presenting
// at the display refresh rate, until the window is closed or ctx is done.
// The window is closed when Run returns.
func (h *Host) Run(ctx context.Context) error {
	if h.closed {
		return system.ErrClosed
	}
	defer h.Close()
	for !h.win.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		glfw.PollEvents()
		if h.Pending() == 0 {
			glfw.WaitEventsTimeout(1.0 / 60)
			continue
		}
		presents := h.surface.presents
		h.RunFrames(time.Since(h.start))
		if h.surface.presents != presents {
			h.win.SwapBuffers() // blocks until the next vertical refresh
		}
	}
	return nil
}

// Close destroys the window. It is safe to call more than once.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.win.Destroy()
	glfw.Terminate()
}

// Surface is the drawable area of the window.
type Surface struct {
	host     *Host
	presents int
}

func (s *Surface) Name() string {
	return s.host.Title
}

// Present draws img stretched over the whole framebuffer.
func (s *Surface) Present(img *image.RGBA) error {
	if s.host.closed {
		return system.ErrClosed
	}
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	fbw, fbh := s.host.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	// rows are top-down in img and bottom-up in OpenGL, so draw from
	// the top left corner with a negative vertical zoom
	gl.RasterPos2f(-1, 1)
	gl.PixelZoom(float32(fbw)/float32(b.Dx()), -float32(fbh)/float32(b.Dy()))
	gl.DrawPixels(int32(b.Dx()), int32(b.Dy()), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	s.presents++
	return nil
}
