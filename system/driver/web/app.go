// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package web implements [system.Host] on the web through WASM:
// surfaces are canvas elements found with a CSS selector, display
// frames come from requestAnimationFrame and resizes from the
// window resize event.
package web

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"syscall/js"
	"time"

	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/base"
)

// Host is the implementation of [system.Host] on the web platform.
type Host struct {
	base.Host

	window js.Value
	doc    js.Value

	rafFunc    js.Func
	resizeFunc js.Func
	rafID      js.Value
	scheduled  bool
}

var _ system.Host = &Host{}

// NewHost returns a new host for the current browser window.
func NewHost() *Host {
	h := &Host{window: js.Global(), doc: js.Global().Get("document")}
	h.Init(h.windowSize(), h.pixelRatio())

	h.rafFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		h.scheduled = false
		now := time.Duration(args[0].Float() * float64(time.Millisecond))
		h.RunFrames(now)
		h.schedule()
		return nil
	})
	h.resizeFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		h.SetSize(h.windowSize(), h.pixelRatio())
		return nil
	})
	h.window.Call("addEventListener", "resize", h.resizeFunc)
	return h
}

func (h *Host) windowSize() system.Size {
	return system.Sz(h.window.Get("innerWidth").Int(), h.window.Get("innerHeight").Int())
}

func (h *Host) pixelRatio() float32 {
	dpr := h.window.Get("devicePixelRatio")
	if dpr.IsUndefined() {
		return 1
	}
	return float32(dpr.Float())
}

func (h *Host) Surface(selector string) (system.Surface, error) {
	el := h.doc.Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("web: %q: %w", selector, system.ErrSurfaceNotFound)
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, fmt.Errorf("web: %q: no 2d context (the canvas already has another context type)", selector)
	}
	return &Surface{host: h, name: selector, canvas: el, ctx: ctx}, nil
}

func (h *Host) RequestFrame(fn system.FrameFunc) system.FrameHandle {
	handle := h.Host.RequestFrame(fn)
	h.schedule()
	return handle
}

func (h *Host) CancelFrame(handle system.FrameHandle) {
	h.Host.CancelFrame(handle)
	if h.scheduled && h.Pending() == 0 {
		h.window.Call("cancelAnimationFrame", h.rafID)
		h.scheduled = false
	}
}

func (h *Host) schedule() {
	if h.scheduled || h.Pending() == 0 {
		return
	}
	h.scheduled = true
	h.rafID = h.window.Call("requestAnimationFrame", h.rafFunc)
}

// Run blocks until ctx is done: the browser drives the display frames.
// The event listeners are released when it returns.
func (h *Host) Run(ctx context.Context) error {
	<-ctx.Done()
	if h.scheduled {
		h.window.Call("cancelAnimationFrame", h.rafID)
		h.scheduled = false
	}
	h.window.Call("removeEventListener", "resize", h.resizeFunc)
	h.resizeFunc.Release()
	h.rafFunc.Release()
	slog.Debug("web: host stopped")
	return ctx.Err()
}

// Surface is a canvas element.
type Surface struct {
	host   *Host
	name   string
	canvas js.Value
	ctx    js.Value
	buf    js.Value
}

func (s *Surface) Name() string {
	return s.name
}

// Present sets the canvas backing store to the size of img, keeps
// its CSS size at the viewport size, and draws img into it.
func (s *Surface) Present(img *image.RGBA) error {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	w, h := b.Dx(), b.Dy()
	if s.canvas.Get("width").Int() != w || s.canvas.Get("height").Int() != h {
		s.canvas.Set("width", w)
		s.canvas.Set("height", h)
		sz := s.host.Size()
		style := s.canvas.Get("style")
		style.Set("width", fmt.Sprintf("%dpx", sz.Width))
		style.Set("height", fmt.Sprintf("%dpx", sz.Height))
	}
	n := len(img.Pix)
	if s.buf.IsUndefined() || s.buf.Get("length").Int() != n {
		s.buf = js.Global().Get("Uint8ClampedArray").New(n)
	}
	js.CopyBytesToJS(s.buf, img.Pix)
	data := js.Global().Get("ImageData").New(s.buf, w, h)
	s.ctx.Call("putImageData", data, 0, 0)
	return nil
}
