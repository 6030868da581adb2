// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/gallery/math32"
)

// NewBox returns a box mesh centered at the origin with the given
// width (X), height (Y) and depth (Z).
func NewBox(name string, width, height, depth float32) *Mesh {
	ms := &Mesh{Name: name}
	hw, hh, hd := width/2, height/2, depth/2
	faces := []struct{ n, u, v math32.Vector3 }{
		{math32.Vec3(hw, 0, 0), math32.Vec3(0, 0, -hd), math32.Vec3(0, hh, 0)},
		{math32.Vec3(-hw, 0, 0), math32.Vec3(0, 0, hd), math32.Vec3(0, hh, 0)},
		{math32.Vec3(0, hh, 0), math32.Vec3(hw, 0, 0), math32.Vec3(0, 0, -hd)},
		{math32.Vec3(0, -hh, 0), math32.Vec3(hw, 0, 0), math32.Vec3(0, 0, hd)},
		{math32.Vec3(0, 0, hd), math32.Vec3(hw, 0, 0), math32.Vec3(0, hh, 0)},
		{math32.Vec3(0, 0, -hd), math32.Vec3(-hw, 0, 0), math32.Vec3(0, hh, 0)},
	}
	for _, f := range faces {
		ms.addQuad(f.n, f.u, f.v, f.n.Normal())
	}
	return ms
}

// NewPlane returns a plane mesh in the XY plane facing +Z,
// centered at the origin.
func NewPlane(name string, width, height float32) *Mesh {
	ms := &Mesh{Name: name}
	ms.addQuad(math32.Vector3{}, math32.Vec3(width/2, 0, 0), math32.Vec3(0, height/2, 0), math32.Vector3Z)
	return ms
}

// NewSphere returns a UV sphere mesh centered at the origin with the
// given radius and number of width (around Y) and height segments.
func NewSphere(name string, radius float32, widthSegs, heightSegs int) *Mesh {
	widthSegs = max(widthSegs, 3)
	heightSegs = max(heightSegs, 2)
	ms := &Mesh{Name: name}
	for iy := 0; iy <= heightSegs; iy++ {
		phi := float32(iy) / float32(heightSegs) * math32.Pi
		for ix := 0; ix <= widthSegs; ix++ {
			theta := float32(ix) / float32(widthSegs) * 2 * math32.Pi
			n := math32.Vec3(-math32.Cos(theta)*math32.Sin(phi), math32.Cos(phi), math32.Sin(theta)*math32.Sin(phi))
			ms.addVertex(n.MulScalar(radius), n)
		}
	}
	row := uint32(widthSegs + 1)
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1
			if iy != 0 {
				ms.Indexes = append(ms.Indexes, a, b, d)
			}
			if iy != heightSegs-1 {
				ms.Indexes = append(ms.Indexes, b, c, d)
			}
		}
	}
	return ms
}

// NewCylinder returns a cylinder mesh along the Y axis centered at the
// origin. A zero top or bottom radius makes a cone, without that cap.
func NewCylinder(name string, radiusTop, radiusBottom, height float32, radialSegs int) *Mesh {
	radialSegs = max(radialSegs, 3)
	ms := &Mesh{Name: name}
	hh := height / 2
	slope := (radiusBottom - radiusTop) / height
	for iy, r := range []float32{radiusTop, radiusBottom} {
		y := hh - float32(iy)*height
		for ix := 0; ix <= radialSegs; ix++ {
			theta := float32(ix) / float32(radialSegs) * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			ms.addVertex(math32.Vec3(r*sin, y, r*cos), math32.Vec3(sin, slope, cos).Normal())
		}
	}
	row := uint32(radialSegs + 1)
	for ix := uint32(0); ix < uint32(radialSegs); ix++ {
		a, b, c, d := ix, row+ix, row+ix+1, ix+1
		ms.Indexes = append(ms.Indexes, a, b, d, b, c, d)
	}
	addCap := func(r, y float32, top bool) {
		if r <= 0 {
			return
		}
		norm := math32.Vec3(0, math32.Sign(y), 0)
		center := ms.addVertex(math32.Vec3(0, y, 0), norm)
		first := uint32(len(ms.Positions))
		for ix := 0; ix <= radialSegs; ix++ {
			theta := float32(ix) / float32(radialSegs) * 2 * math32.Pi
			ms.addVertex(math32.Vec3(r*math32.Sin(theta), y, r*math32.Cos(theta)), norm)
		}
		for ix := uint32(0); ix < uint32(radialSegs); ix++ {
			if top {
				ms.Indexes = append(ms.Indexes, center, first+ix, first+ix+1)
			} else {
				ms.Indexes = append(ms.Indexes, center, first+ix+1, first+ix)
			}
		}
	}
	addCap(radiusTop, hh, true)
	addCap(radiusBottom, -hh, false)
	return ms
}

// NewPoints returns a [Points] mesh with n vertices at the origin,
// with per-vertex colors if colors is true.
func NewPoints(name string, n int, colors bool) *Mesh {
	ms := &Mesh{Name: name, Kind: Points, Positions: make([]math32.Vector3, n)}
	if colors {
		ms.Colors = make([]color.NRGBA, n)
	}
	return ms
}

// NewLines returns a [Lines] mesh drawing a segment between
// each pair of indexes.
func NewLines(name string, positions []math32.Vector3, indexes []uint32) *Mesh {
	return &Mesh{Name: name, Kind: Lines, Positions: positions, Indexes: indexes}
}

// NewAxes returns a [Lines] mesh for the X, Y and Z axes from the
// origin with the given length, colored red, green and blue.
func NewAxes(name string, size float32) *Mesh {
	var o math32.Vector3
	ms := NewLines(name, []math32.Vector3{
		o, math32.Vec3(size, 0, 0),
		o, math32.Vec3(0, size, 0),
		o, math32.Vec3(0, 0, size),
	}, []uint32{0, 1, 2, 3, 4, 5})
	red, green, blue := color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 255, 0, 255}, color.NRGBA{0, 0, 255, 255}
	ms.Colors = []color.NRGBA{red, red, green, green, blue, blue}
	return ms
}
