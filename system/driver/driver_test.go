// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/system/driver/offscreen"
)

func TestNewHostOffscreen(t *testing.T) {
	h, err := NewHost(Options{MaxFrames: 10})
	require.NoError(t, err)
	oh, ok := h.(*offscreen.Host)
	require.True(t, ok, "tests always get an offscreen host")
	assert.Equal(t, system.Sz(1024, 768), oh.Size())
	assert.Equal(t, float32(1), oh.DevicePixelRatio())
	assert.Equal(t, 10, oh.MaxFrames)
}
