// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(js || offscreen)

package driver

import (
	"os"
	"slices"
	"testing"

	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/desktop"
	"cogentcore.org/gallery/system/driver/offscreen"
)

// NewHost returns a desktop window host, or an offscreen host when
// running tests, when [Options.Offscreen] is set or when the program
// was started with -nogui.
func NewHost(opts Options) (system.Host, error) {
	opts.Defaults()
	if opts.Offscreen || testing.Testing() || slices.Contains(os.Args, "-nogui") {
		return newOffscreen(opts), nil
	}
	return desktop.NewHost(opts.Title, opts.Size)
}

func newOffscreen(opts Options) *offscreen.Host {
	h := offscreen.NewHost(opts.Size, opts.PixelRatio)
	h.MaxFrames = opts.MaxFrames
	return h
}
