// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package driver

import (
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/web"
)

// NewHost returns a host for the current browser window.
// Only [Options.Offscreen] is used; the browser decides the
// size and pixel ratio.
func NewHost(opts Options) (system.Host, error) {
	opts.Defaults()
	return web.NewHost(), nil
}
