// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"cogentcore.org/gallery/colors"
	"cogentcore.org/gallery/director"
	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/xyz"
)

// Primitives is a grid of the built-in meshes, slowly rotating.
var Primitives = Register(&Demo{
	Name:   "primitives",
	Title:  "Catalog of the built-in meshes",
	Camera: &xyz.CameraConfig{FOV: 75, Near: 0.1, Position: math32.Vec3(0, 0, 120)},
	Setup:  setupPrimitives,
})

// primitiveSpread is the distance between two cells of the grid.
const primitiveSpread = 15

func setupPrimitives(s *Scene) (director.FrameFunc, error) {
	sc := s.Director.Scene()
	sc.Background = colors.FromNumber(0xaaaaaa)
	xyz.NewDirLight(sc, "light1", 1, xyz.DirectSun).Pos = math32.Vec3(-1, 2, 4)
	xyz.NewDirLight(sc, "light2", 1, xyz.DirectSun).Pos = math32.Vec3(1, -2, -4)

	speed := s.Params.AddFloat("speed", 1, 0, 10, 0.1)
	rnd := newRand(11)
	var objects []*xyz.Solid
	add := func(x, y int, ms *xyz.Mesh, mt *xyz.Material) {
		sld := xyz.NewSolid(sc, ms.Name, ms, mt)
		sld.SetPos(float32(x*primitiveSpread), float32(y*primitiveSpread), 0)
		objects = append(objects, sld)
	}
	solid := func(x, y int, ms *xyz.Mesh) {
		mt := xyz.NewMaterial(ms.Name, hsl(rnd.Float64(), 1, 0.5))
		mt.CullBack = false
		add(x, y, ms, mt)
	}
	line := func(x, y int, ms *xyz.Mesh) {
		add(x, y, ms, basic(ms.Name, 0x000000))
	}

	solid(-2, 2, xyz.NewBox("box", 8, 8, 8))
	solid(-1, 2, xyz.NewCylinder("disc", 7, 7, 0.01, 24))
	solid(0, 2, xyz.NewCylinder("cone", 0, 6, 8, 16))
	solid(1, 2, xyz.NewCylinder("cylinder", 4, 4, 12, 12))
	solid(2, 2, xyz.NewSphere("lowSphere", 7, 5, 3))
	solid(-2, 1, xyz.NewPlane("plane", 9, 9))
	solid(-1, 1, xyz.NewSphere("sphere", 7, 12, 8))
	solid(0, 1, xyz.NewCylinder("frustum", 2, 5, 8, 10))
	solid(1, 1, xyz.NewCylinder("prism", 5, 5, 8, 3))
	solid(2, 1, xyz.NewBox("slab", 12, 2, 6))

	wire := basic("wireframe", 0x000000)
	wire.Wireframe = true
	wire.CullBack = false
	add(1, -2, xyz.NewBox("wireframe", 8, 8, 8), wire)
	line(-1, -2, boxEdges("edges", 8, 8, 8))

	dots := xyz.NewMaterial("points", colors.NRGBA(0x000000))
	dots.PointSize = 3
	dots.SizeAttenuation = false
	pts := xyz.NewSphere("pointsSphere", 7, 12, 8)
	pts.Kind = xyz.Points
	pts.Indexes, pts.Normals = nil, nil
	add(0, -2, pts, dots)

	return func(f director.Frame) error {
		t := f.Seconds() * speed.Float32()
		for i, o := range objects {
			rot := t * (1 + float32(i)*0.1) * 0.05
			o.Pose.Quat.SetFromEuler(math32.Vec3(rot, rot, 0))
		}
		return nil
	}, nil
}

// boxEdges returns a lines mesh of the 12 edges of a box.
func boxEdges(name string, width, height, depth float32) *xyz.Mesh {
	w, h, d := width/2, height/2, depth/2
	var pos []math32.Vector3
	for _, z := range []float32{-d, d} {
		pos = append(pos, math32.Vec3(-w, -h, z), math32.Vec3(w, -h, z), math32.Vec3(w, h, z), math32.Vec3(-w, h, z))
	}
	idx := []uint32{
		0, 1, 1, 2, 2, 3, 3, 0,
		4, 5, 5, 6, 6, 7, 7, 4,
		0, 4, 1, 5, 2, 6, 3, 7,
	}
	return xyz.NewLines(name, pos, idx)
}
