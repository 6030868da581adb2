// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gallery runs the demo scenes of the gallery.
package main

import (
	"os"

	"cogentcore.org/gallery/base/logx"
)

func main() {
	logx.SetDefault(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
