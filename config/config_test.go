// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/gallery/system"
)

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	data := `
demo = "galaxy"
width = 320
height = 200
fail_fast = true

[renderer]
antialias = false

[camera]
fov = 60
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))
	c, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "galaxy", c.Demo)
	assert.Equal(t, system.Sz(320, 200), c.Size())
	assert.Equal(t, "auto", c.Driver)
	assert.False(t, c.Renderer.Antialias)

	opts := c.Director()
	assert.True(t, opts.FailFast)
	require.NotNil(t, opts.Camera)
	assert.Equal(t, float32(60), opts.Camera.FOV)
	assert.Equal(t, float32(2), opts.MaxPixelRatio)
}

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Nil(t, c.Director().Camera)
}

func TestLoadHome(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	c.Capture = "~/frame.png"
	require.NoError(t, c.Expand())
	assert.True(t, filepath.IsAbs(c.Capture))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		set  func(c *Config)
	}{
		{"driver", func(c *Config) { c.Driver = "vulkan" }},
		{"size", func(c *Config) { c.Width = 0 }},
		{"ratio", func(c *Config) { c.PixelRatio = -1 }},
		{"frames", func(c *Config) { c.Frames = -3 }},
		{"watch", func(c *Config) { c.Watch = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			require.NoError(t, c.Validate())
			tt.set(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("width = \"wide\""), 0o644))
	_, err := Load(file)
	assert.Error(t, err)
}
