// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads the files used by scenes in the background.
// A load returns a [Pending] that frame functions poll, so that a
// scene renders without the asset until it is there, and forever
// if it fails.
package assets

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/h2non/filetype"

	"cogentcore.org/gallery/base/errors"
)

var (
	// ErrNotImage is returned when loading an image from a file of another type.
	ErrNotImage = errors.New("assets: not an image")

	// ErrUnsupported is returned for an image format that cannot be decoded.
	ErrUnsupported = errors.New("assets: unsupported image format")
)

// ImageFormats are the extensions of the image formats that can be decoded.
var ImageFormats = []string{"png", "jpg", "bmp"}

// Pending is the result of a load running in the background.
type Pending[T any] struct {
	done chan struct{}

	mu     sync.Mutex
	value  T
	err    error
	polled bool
}

// Go runs fn in a new goroutine and returns its pending result.
func Go[T any](fn func() (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		v, err := fn()
		p.mu.Lock()
		p.value, p.err = v, err
		p.mu.Unlock()
		close(p.done)
	}()
	return p
}

// Poll returns the value and error of the load and whether it is done,
// without blocking. The value is the zero value until done.
func (p *Pending[T]) Poll() (value T, done bool, err error) {
	select {
	case <-p.done:
	default:
		return value, false, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, true, p.err
}

// Wait waits for the load to be done or ctx to be done.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	v, _, err := p.Poll()
	return v, err
}

// Take returns the value once when the load is done without error,
// logging the error once if it failed. It is meant to be called at
// each frame: ok is true only at the first call after a successful load.
func (p *Pending[T]) Take() (value T, ok bool) {
	v, done, err := p.Poll()
	if !done {
		return value, false
	}
	p.mu.Lock()
	first := !p.polled
	p.polled = true
	p.mu.Unlock()
	if !first {
		return value, false
	}
	if err != nil {
		slog.Warn("assets: load failed, going on without it", "err", err)
		return value, false
	}
	return v, true
}

// LoadImage decodes the image file in the background.
func LoadImage(filename string) *Pending[image.Image] {
	return Go(func() (image.Image, error) {
		return OpenImage(filename)
	})
}

// OpenImage checks the type of the file from its content and decodes it.
func OpenImage(filename string) (image.Image, error) {
	kind, err := filetype.MatchFile(filename)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotImage, filename, kindName(kind.MIME.Value))
	}
	if !slices.Contains(ImageFormats, kind.Extension) {
		return nil, fmt.Errorf("%w: %q is %s", ErrUnsupported, filename, kind.MIME.Value)
	}
	img, err := imgio.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", filename, err)
	}
	slog.Debug("assets: loaded image", "file", filename, "type", kind.MIME.Value, "size", img.Bounds().Size())
	return img, nil
}

func kindName(mime string) string {
	if mime == "" {
		return "of unknown type"
	}
	return mime
}
