// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the interface between scenes and the engines
// that draw them onto a [system.Surface].
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/xyz"
)

// ErrDestroyed is returned when rendering with a destroyed renderer.
var ErrDestroyed = errors.New("render: renderer destroyed")

// Options are the options passed through to a renderer when it is created.
type Options struct {

	// Alpha keeps the alpha channel of the clear color, making the
	// background transparent where nothing is drawn.
	Alpha bool `toml:"alpha"`

	// Antialias smooths the edges of primitives.
	Antialias bool `toml:"antialias"`

	// ClearColor is the color the image is cleared to.
	// If it is zero, the scene background is used.
	ClearColor color.RGBA `toml:"-"`
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{Antialias: true}
}

// Renderer draws a scene through a camera onto the surface it is bound to.
// Its backing buffer is sized to the logical viewport size times the
// pixel ratio.
type Renderer interface {

	// SetSize sets the logical size and pixel ratio of the viewport,
	// resizing the backing buffer.
	SetSize(width, height int, pixelRatio float32)

	// Size returns the size of the backing buffer in device pixels.
	Size() image.Point

	// PixelRatio returns the pixel ratio set by SetSize.
	PixelRatio() float32

	// Render draws the scene through the camera and presents the
	// result on the surface. The world matrices of the scene and the
	// camera matrices must be up to date.
	Render(sc *xyz.Scene, cam *xyz.Camera) error

	// Destroy releases the backing buffer and all data kept for
	// the resources of scenes. Calling it again does nothing.
	Destroy()
}

// NewFunc creates a renderer bound to the given surface.
type NewFunc func(s system.Surface, opts Options) (Renderer, error)

// BufferSize returns the size of the backing buffer for the given
// logical size and pixel ratio.
func BufferSize(width, height int, pixelRatio float32) image.Point {
	return system.Sz(width, height).Scale(pixelRatio)
}

// SaveImage saves the image to the given file, in the format given by
// its extension: png, jpg / jpeg or bmp.
func SaveImage(img image.Image, filename string) error {
	var enc imgio.Encoder
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		enc = imgio.PNGEncoder()
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(90)
	case ".bmp":
		enc = imgio.BMPEncoder()
	default:
		return fmt.Errorf("render.SaveImage: unsupported image format %q for %q", ext, filename)
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return imgio.Save(filename, img, enc)
}
