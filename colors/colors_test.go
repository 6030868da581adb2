// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#ff6030", color.RGBA{255, 96, 48, 255}},
		{"1b3984", color.RGBA{27, 57, 132, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{"#11223380", color.RGBA{17, 34, 51, 128}},
	}
	for _, test := range tests {
		c, err := FromHex(test.hex)
		require.NoError(t, err, test.hex)
		assert.Equal(t, test.want, c, test.hex)
	}
	_, err := FromHex("#ff60")
	assert.Error(t, err)
	_, err = FromHex("#zzzzzz")
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromHex("nope") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#ff6030", AsHex(color.RGBA{255, 96, 48, 255}))
	assert.Equal(t, "#11223380", AsHex(color.RGBA{17, 34, 51, 128}))
	assert.Equal(t, "nil", AsHex(nil))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, color.RGBA{0x44, 0xaa, 0x88, 255}, FromNumber(0x44aa88))
	assert.Equal(t, color.NRGBA{0x22, 0x33, 0xff, 255}, NRGBA(0x2233ff))
}

func TestLerp(t *testing.T) {
	a, b := NRGBA(0xff6030), NRGBA(0x1b3984)
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	mid := Lerp(color.NRGBA{0, 0, 0, 255}, color.NRGBA{255, 255, 255, 255}, 0.5)
	// linear blending is brighter than the srgb midpoint
	assert.Greater(t, mid.R, uint8(128))
	assert.Equal(t, mid.R, mid.G)
}
