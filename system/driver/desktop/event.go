// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// keyEvent closes the window on Escape and Control+Q / Command+Q.
func (h *Host) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	quit := ky == glfw.KeyEscape || (ky == glfw.KeyQ && mod&(glfw.ModControl|glfw.ModSuper) != 0)
	if quit {
		slog.Debug("desktop: close requested", "key", ky)
		gw.SetShouldClose(true)
		glfw.PostEmptyEvent()
	}
}
