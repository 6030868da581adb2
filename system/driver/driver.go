// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver provides the [system.Host] implementation for the
// current platform.
package driver

import "cogentcore.org/gallery/system"

// Options are the options for [NewHost].
type Options struct {

	// Title is the window title on desktop.
	Title string

	// Size is the initial viewport size on desktop and offscreen.
	Size system.Size

	// PixelRatio is the device pixel ratio of offscreen hosts.
	PixelRatio float32

	// Offscreen forces an offscreen host.
	Offscreen bool

	// MaxFrames limits the number of display frames of offscreen hosts.
	MaxFrames int
}

// Defaults fills in the unset fields.
func (o *Options) Defaults() {
	if o.Title == "" {
		o.Title = "Gallery"
	}
	if !o.Size.Valid() {
		o.Size = system.Sz(1024, 768)
	}
	if o.PixelRatio <= 0 {
		o.PixelRatio = 1
	}
}
