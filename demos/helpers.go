// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"cogentcore.org/gallery/colors"
	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/xyz"
)

// newRand returns the random source of a demo, seeded so that
// scenes are the same on each run.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// hsl returns the opaque color of a hue in [0, 1], saturation and lightness.
func hsl(h, s, l float64) color.NRGBA {
	r, g, b := colorful.Hsl(h*360, s, l).Clamped().RGB255()
	return color.NRGBA{r, g, b, 255}
}

// lambert returns a lit material of the 0xRRGGBB color.
func lambert(name string, clr uint32) *xyz.Material {
	return xyz.NewMaterial(name, colors.NRGBA(clr))
}

// basic returns an unlit material of the 0xRRGGBB color.
func basic(name string, clr uint32) *xyz.Material {
	mt := lambert(name, clr)
	mt.Unlit = true
	return mt
}

// newGrid returns a lines mesh of a square grid in the XZ plane,
// centered at the origin, of the given number of unit cells per side.
func newGrid(name string, units int) *xyz.Mesh {
	h := float32(units) / 2
	var pos []math32.Vector3
	var idx []uint32
	for i := 0; i <= units; i++ {
		c := -h + float32(i)
		n := uint32(len(pos))
		pos = append(pos, math32.Vec3(c, 0, -h), math32.Vec3(c, 0, h), math32.Vec3(-h, 0, c), math32.Vec3(h, 0, c))
		idx = append(idx, n, n+1, n+2, n+3)
	}
	return xyz.NewLines(name, pos, idx)
}

// axesGrid is a helper showing the axes and a grid in the local
// space of a node, hidden by default.
type axesGrid struct {
	*xyz.Group
}

func newAxesGrid(parent xyz.Node, name string, units int, axes, grid *xyz.Mesh, axesMat, gridMat *xyz.Material) *axesGrid {
	gp := xyz.NewGroup(parent, name)
	gp.Invisible = true
	xyz.NewSolid(gp, "grid", grid, gridMat).SetScale(float32(units)/10, 1, float32(units)/10)
	xyz.NewSolid(gp, "axes", axes, axesMat)
	return &axesGrid{gp}
}

// SetVisible shows or hides the helper.
func (ag *axesGrid) SetVisible(v bool) {
	ag.Invisible = !v
}
