// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen && !js

package driver

import (
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/offscreen"
)

// NewHost returns an offscreen host: this build has no display support.
func NewHost(opts Options) (system.Host, error) {
	opts.Defaults()
	return newOffscreen(opts), nil
}

func newOffscreen(opts Options) *offscreen.Host {
	h := offscreen.NewHost(opts.Size, opts.PixelRatio)
	h.MaxFrames = opts.MaxFrames
	return h
}
