// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"cogentcore.org/gallery/colors"
	"cogentcore.org/gallery/director"
	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/params"
	"cogentcore.org/gallery/xyz"
)

// SolarSystem is a sun, earth and moon where each body rotates in the
// local space of its parent.
var SolarSystem = Register(&Demo{
	Name:  "solar-system",
	Title: "Scene graph of a sun, an earth and a moon, seen from above",
	Camera: &xyz.CameraConfig{
		FOV:      75,
		Near:     0.1,
		Position: math32.Vec3(0, 50, 0),
		Up:       math32.Vec3(0, 0, 1),
	},
	Setup: setupSolarSystem,
})

func setupSolarSystem(s *Scene) (director.FrameFunc, error) {
	sc := s.Director.Scene()
	sc.Background = colors.FromNumber(0xaaaaaa)
	light := xyz.NewPointLight(sc, "light", 1, xyz.DirectSun)
	light.Pos = math32.Vector3{}
	light.LinDecay, light.QuadDecay = 0, 0

	sphere := xyz.NewSphere("sphere", 1, 6, 6)

	solar := xyz.NewGroup(sc, "solarSystem")

	sunMat := lambert("sun", 0xffffff)
	sunMat.Emissive = colors.NRGBA(0xffff00)
	sun := xyz.NewSolid(solar, "sunMesh", sphere, sunMat).SetScale(5, 5, 5)

	earthOrbit := xyz.NewGroup(solar, "earthOrbit").SetPos(10, 0, 0)
	earthMat := lambert("earth", 0x2233ff)
	earthMat.Emissive = colors.NRGBA(0x112244)
	earth := xyz.NewSolid(earthOrbit, "earthMesh", sphere, earthMat)

	moonOrbit := xyz.NewGroup(earthOrbit, "moonOrbit").SetPos(2, 0, 0)
	moonMat := lambert("moon", 0x888888)
	moonMat.Emissive = colors.NRGBA(0x222222)
	moon := xyz.NewSolid(moonOrbit, "moonMesh", sphere, moonMat).SetScale(0.5, 0.5, 0.5)

	axes, grid := xyz.NewAxes("axes", 1), newGrid("grid", 10)
	axesMat := basic("axes", 0xffffff)
	axesMat.VertexColors = true
	gridMat := basic("grid", 0x000000)
	sc.Track(axes, grid, axesMat, gridMat)
	helpers := []struct {
		node  xyz.Node
		units int
	}{{solar, 26}, {sun, 10}, {earthOrbit, 10}, {earth, 10}, {moonOrbit, 10}, {moon, 10}}
	for _, h := range helpers {
		name := h.node.AsNodeBase().Name
		ag := newAxesGrid(h.node, name+"Helper", h.units, axes, grid, axesMat, gridMat)
		s.Params.AddBool(name, false).OnChange(func(p *params.Param) {
			ag.SetVisible(p.Bool())
		})
	}

	rotating := []*xyz.NodeBase{solar.AsNodeBase(), sun.AsNodeBase(), earthOrbit.AsNodeBase(), earth.AsNodeBase(), moon.AsNodeBase()}
	return func(f director.Frame) error {
		t := f.Seconds()
		for _, nb := range rotating {
			nb.Pose.Quat.SetFromEuler(math32.Vec3(0, t, 0))
		}
		return nil
	}, nil
}
