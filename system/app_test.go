// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	sz := Sz(800, 600)
	assert.True(t, sz.Valid())
	assert.InDelta(t, 4.0/3.0, sz.Aspect(), 1e-6)
	assert.Equal(t, image.Pt(1600, 1200), sz.Scale(2))
	assert.Equal(t, image.Pt(1200, 900), sz.Scale(1.5))
	assert.Equal(t, "800x600", sz.String())

	assert.False(t, Sz(0, 600).Valid())
	assert.Equal(t, float32(1), Sz(0, 600).Aspect())
	assert.Equal(t, image.Point{}, Sz(10, 0).Scale(2))
	assert.Equal(t, image.Pt(1, 1), Sz(1, 1).Scale(0.25))
}

func TestCapPixelRatio(t *testing.T) {
	tests := []struct {
		dpr, limit, want float32
	}{
		{3, 2, 2},
		{1.5, 2, 1.5},
		{2, 2, 2},
		{0, 2, 1},
		{3, 0, 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, CapPixelRatio(test.dpr, test.limit), "dpr %g limit %g", test.dpr, test.limit)
	}
}
