// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the gallery command,
// read from a TOML file and overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/gallery/base/tomlx"
	"cogentcore.org/gallery/director"
	"cogentcore.org/gallery/render"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/xyz"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "~/.config/gallery/config.toml"

// Drivers are the valid values of [Config.Driver].
var Drivers = []string{"auto", "offscreen"}

// Config is the configuration of the gallery command.
type Config struct {

	// Demo is the name of the demo run by default.
	Demo string `toml:"demo"`

	// Driver is the host driver: auto picks the one of the platform.
	Driver string `toml:"driver"`

	// Width and Height are the viewport size in logical pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// PixelRatio is the device pixel ratio of offscreen hosts.
	PixelRatio float32 `toml:"pixel_ratio"`

	// MaxPixelRatio caps the pixel ratio used for rendering.
	MaxPixelRatio float32 `toml:"max_pixel_ratio"`

	// Frames is the number of frames rendered offscreen before
	// exiting. Zero runs until interrupted.
	Frames int `toml:"frames"`

	// Capture is an image file the last offscreen frame is saved to.
	Capture string `toml:"capture"`

	// Params is a TOML file of demo parameter values.
	Params string `toml:"params"`

	// Watch reloads the parameter file whenever it changes.
	Watch bool `toml:"watch"`

	// FailFast stops the animation at the first frame error.
	FailFast bool `toml:"fail_fast"`

	// Renderer are the options of the renderer.
	Renderer render.Options `toml:"renderer"`

	// Camera overrides the camera of the demo.
	Camera xyz.CameraConfig `toml:"camera"`

	// Assets is the directory of the files loaded by demos.
	Assets string `toml:"assets"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Demo:          "hello-cube",
		Driver:        "auto",
		Width:         1024,
		Height:        768,
		PixelRatio:    1,
		MaxPixelRatio: director.DefaultMaxPixelRatio,
		Renderer:      render.DefaultOptions(),
		Assets:        "assets",
	}
}

// Load returns the default configuration overridden by the given file.
// A missing file is not an error.
func Load(filename string) (*Config, error) {
	c := Default()
	if filename == "" {
		return c, nil
	}
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	if err := tomlx.Open(c, fn); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Expand(); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// Expand expands the home directory in the file and directory paths.
func (c *Config) Expand() error {
	for _, p := range []*string{&c.Capture, &c.Params, &c.Assets} {
		v, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// Validate returns an error for values that cannot be used.
func (c *Config) Validate() error {
	switch {
	case !slices.Contains(Drivers, c.Driver):
		return fmt.Errorf("config: unknown driver %q, want one of %v", c.Driver, Drivers)
	case !c.Size().Valid():
		return fmt.Errorf("config: invalid size %v", c.Size())
	case c.PixelRatio <= 0:
		return fmt.Errorf("config: invalid pixel ratio %g", c.PixelRatio)
	case c.Frames < 0:
		return fmt.Errorf("config: negative frame count %d", c.Frames)
	case c.Watch && c.Params == "":
		return errors.New("config: watch needs a parameter file")
	}
	return nil
}

// Size returns the viewport size.
func (c *Config) Size() system.Size {
	return system.Sz(c.Width, c.Height)
}

// Director returns the options of the director.
func (c *Config) Director() director.Options {
	opts := director.DefaultOptions()
	opts.Renderer = c.Renderer
	opts.MaxPixelRatio = c.MaxPixelRatio
	opts.FailFast = c.FailFast
	if c.Camera != (xyz.CameraConfig{}) {
		cam := c.Camera
		opts.Camera = &cam
	}
	return opts
}
