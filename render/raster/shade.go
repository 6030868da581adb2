// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"

	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/xyz"
)

// lighting is the light of a scene gathered for one frame.
type lighting struct {
	ambient math32.Vector3
	dirs    []dirLight
	points  []*xyz.PointLight
}

type dirLight struct {
	dir       math32.Vector3
	intensity math32.Vector3
}

func newLighting(sc *xyz.Scene) *lighting {
	lt := &lighting{}
	for _, l := range sc.Lights {
		switch l := l.(type) {
		case *xyz.AmbientLight:
			lt.ambient = lt.ambient.Add(l.Intensity())
		case *xyz.DirLight:
			if l.On {
				lt.dirs = append(lt.dirs, dirLight{dir: l.Dir(), intensity: l.Intensity()})
			}
		case *xyz.PointLight:
			if l.On {
				lt.points = append(lt.points, l)
			}
		}
	}
	return lt
}

// shade returns the Lambert shaded color of a surface with the given
// base and emissive colors at world position pos with normal n.
func (lt *lighting) shade(base, emissive, pos, n math32.Vector3) math32.Vector3 {
	light := lt.ambient
	for _, d := range lt.dirs {
		if ndl := n.Dot(d.dir); ndl > 0 {
			light = light.Add(d.intensity.MulScalar(ndl))
		}
	}
	for _, p := range lt.points {
		to := p.Pos.Sub(pos)
		dist := to.Length()
		if dist == 0 {
			continue
		}
		if ndl := n.Dot(to.MulScalar(1 / dist)); ndl > 0 {
			light = light.Add(p.Intensity().MulScalar(ndl * p.Attenuation(dist)))
		}
	}
	return base.Mul(light).Add(emissive)
}

// colorVector returns the color components in [0, 1].
func colorVector(c color.NRGBA) math32.Vector3 {
	return math32.Vec3(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
}

// toNRGBA returns the color of components v, clamped to [0, 1].
func toNRGBA(v math32.Vector3, a uint8) color.NRGBA {
	ch := func(x float32) uint8 {
		return uint8(math32.Clamp(x, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{ch(v.X), ch(v.Y), ch(v.Z), a}
}

// vertexColor returns the base color of a primitive with the given
// vertices: the material color, or the mean of the vertex colors.
func vertexColor(ms *xyz.Mesh, mt *xyz.Material, idx ...uint32) math32.Vector3 {
	base := colorVector(mt.Color)
	if !mt.VertexColors || len(ms.Colors) == 0 {
		return base
	}
	var sum math32.Vector3
	for _, i := range idx {
		sum = sum.Add(colorVector(ms.Colors[i]))
	}
	return base.Mul(sum.MulScalar(1 / float32(len(idx))))
}
