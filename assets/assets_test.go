// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/render"
)

func writeImage(t *testing.T, name string) string {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(1, 1, color.RGBA{255, 0, 0, 255})
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, render.SaveImage(img, file))
	return file
}

func TestOpenImage(t *testing.T) {
	for _, name := range []string{"a.png", "a.jpg", "a.bmp"} {
		img, err := OpenImage(writeImage(t, name))
		require.NoError(t, err, name)
		assert.Equal(t, image.Pt(8, 4), img.Bounds().Size(), name)
	}

	text := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(text, []byte("not an image at all"), 0o644))
	_, err := OpenImage(text)
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = OpenImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestPending(t *testing.T) {
	release := make(chan struct{})
	p := Go(func() (int, error) {
		<-release
		return 3, nil
	})
	v, done, err := p.Poll()
	assert.False(t, done)
	assert.Zero(t, v)
	assert.NoError(t, err)
	_, ok := p.Take()
	assert.False(t, ok)

	close(release)
	v, err = p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, ok = p.Take()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = p.Take()
	assert.False(t, ok, "taken once")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = Go(func() (int, error) { select {} }).Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoadImage(t *testing.T) {
	p := LoadImage(writeImage(t, "pano.png"))
	img, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 4), img.Bounds().Size())

	errBad := errors.New("bad")
	bad := Go(func() (image.Image, error) { return nil, errBad })
	_, err = bad.Wait(context.Background())
	assert.ErrorIs(t, err, errBad)
	_, ok := bad.Take()
	assert.False(t, ok)
}
