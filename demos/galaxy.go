// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"

	"cogentcore.org/gallery/colors"
	"cogentcore.org/gallery/director"
	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/params"
	"cogentcore.org/gallery/xyz"
)

// Galaxy is a spiral galaxy of points, generated again whenever
// one of its parameters changes.
var Galaxy = Register(&Demo{
	Name:   "galaxy",
	Title:  "Parametric spiral galaxy of colored points",
	Camera: &xyz.CameraConfig{Near: 0.1, Far: 100, Position: math32.Vec3(2, 2, 3)},
	Setup:  setupGalaxy,
})

// galaxy holds the generated galaxy and its parameters.
type galaxy struct {
	scene *xyz.Scene
	rand  *rand.Rand

	count, size, radius, branches, spin *params.Param
	randomness, randomnessPower         *params.Param
	insideColor, outsideColor, rotation *params.Param

	points   *xyz.Solid
	mesh     *xyz.Mesh
	material *xyz.Material
	dirty    bool
}

func setupGalaxy(s *Scene) (director.FrameFunc, error) {
	sc := s.Director.Scene()
	xyz.NewAmbientLight(sc, "ambient", 0.5, xyz.DirectSun)
	xyz.NewDirLight(sc, "sun", 0.5, xyz.DirectSun).Pos = math32.Vec3(1, 1, 0)
	axesMat := basic("axes", 0xffffff)
	axesMat.VertexColors = true
	xyz.NewSolid(sc, "axes", xyz.NewAxes("axes", 1), axesMat)

	p := s.Params
	g := &galaxy{scene: sc, rand: newRand(3)}
	g.count = p.AddInt("count", 100000, 100, 100000, 100)
	g.size = p.AddFloat("size", 0.01, 0.001, 0.1, 0.001)
	g.radius = p.AddFloat("radius", 5, 0.01, 20, 0.01)
	g.branches = p.AddInt("branches", 3, 2, 20, 1)
	g.spin = p.AddFloat("spin", 1, -5, 5, 0.001)
	g.randomness = p.AddFloat("randomness", 0.2, 0, 2, 0.001)
	g.randomnessPower = p.AddFloat("randomnessPower", 3, 1, 10, 0.001)
	g.insideColor = p.AddColor("insideColor", colors.MustFromHex("#ff6030"))
	g.outsideColor = p.AddColor("outsideColor", colors.MustFromHex("#1b3984"))
	g.rotation = p.AddFloat("rotation", 0, -1, 1, 0.01)
	for _, pr := range p.Params() {
		if pr != g.rotation {
			pr.OnChange(func(*params.Param) { g.dirty = true })
		}
	}
	g.generate()

	return func(f director.Frame) error {
		if g.dirty {
			g.generate()
		}
		if r := g.rotation.Float32(); r != 0 {
			g.points.Pose.RotateOnAxisRad(0, 1, 0, r*f.DeltaSeconds())
		}
		return nil
	}, nil
}

// generate makes the points of the galaxy, releasing the previous ones.
func (g *galaxy) generate() {
	g.dirty = false
	if g.points != nil {
		g.scene.RemoveChild(g.points)
		g.scene.Release(g.mesh, g.material)
	}
	n := g.count.Int()
	radius := g.radius.Float()
	branches := g.branches.Int()
	spin := g.spin.Float()
	power := g.randomnessPower.Float()
	randomness := g.randomness.Float()
	inside, outside := g.insideColor.NRGBA(), g.outsideColor.NRGBA()

	ms := xyz.NewPoints("galaxy", n, true)
	rnd := func() float64 {
		v := math.Pow(g.rand.Float64(), power) * randomness * radius
		if g.rand.Float64() < 0.5 {
			return -v
		}
		return v
	}
	for i := range n {
		r := g.rand.Float64() * radius
		angle := float64(i%branches)/float64(branches)*2*math.Pi + r*spin
		ms.Positions[i] = math32.Vec3(
			float32(math.Cos(angle)*r+rnd()),
			float32(rnd()),
			float32(math.Sin(angle)*r+rnd()),
		)
		ms.Colors[i] = colors.Lerp(inside, outside, float32(r/radius))
	}

	mt := xyz.NewMaterial("galaxy", color.NRGBA{255, 255, 255, 255})
	mt.VertexColors = true
	mt.PointSize = g.size.Float32()
	mt.SizeAttenuation = true

	var pose xyz.Pose
	if g.points != nil {
		pose = g.points.Pose
	}
	g.mesh, g.material = ms, mt
	g.points = xyz.NewSolid(g.scene, "galaxy", ms, mt)
	g.points.Pose = pose
	g.scene.Track(ms, mt)
	slog.Debug("galaxy: generated", "count", n, "branches", branches)
}
