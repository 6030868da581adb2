// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"image/color"
	"math/rand/v2"

	"cogentcore.org/gallery/colors"
	"cogentcore.org/gallery/director"
	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/params"
	"cogentcore.org/gallery/xyz"
)

// Rain is falling drops under a layer of clouds lit by lightning.
var Rain = Register(&Demo{
	Name:   "rain",
	Title:  "Rain drops falling from clouds, with lightning",
	Camera: &xyz.CameraConfig{FOV: 60},
	Setup:  setupRain,
})

const (
	rainTop    = 200
	rainBottom = -200
)

// rain holds the drops and clouds of the rain demo.
type rain struct {
	scene *xyz.Scene
	rand  *rand.Rand

	drops    *xyz.Solid
	velocity []float32
	clouds   []*xyz.Solid

	lightning *xyz.PointLight
	power     float32

	cloudMesh *xyz.Mesh
	cloudMat  *xyz.Material
}

func setupRain(s *Scene) (director.FrameFunc, error) {
	sc := s.Director.Scene()
	sc.Background = color.RGBA{0, 0, 0, 255}
	cam := s.Director.Camera()
	cam.Pose.Quat.SetFromEuler(math32.Vec3(1.16, -0.12, 0.27))

	r := &rain{scene: sc, rand: newRand(7)}
	amb := xyz.NewAmbientLight(sc, "ambient", 1, xyz.DirectSun)
	amb.Color = colors.FromNumber(0x555555)
	dir := xyz.NewDirLight(sc, "direction", 1, xyz.DirectSun)
	dir.Color = colors.FromNumber(0xffeedd)
	dir.Pos = math32.Vec3(0, 0, 1)
	r.lightning = xyz.NewPointLight(sc, "lightning", 0, xyz.DirectSun)
	r.lightning.Color = colors.FromNumber(0x062d89)
	r.lightning.Pos = math32.Vec3(200, 300, 100)
	r.lightning.LinDecay, r.lightning.QuadDecay = 0.002, 0

	r.cloudMesh = xyz.NewPlane("cloud", 564, 300)
	r.cloudMat = xyz.NewMaterial("cloud", color.NRGBA{200, 200, 200, 153})
	r.cloudMat.CullBack = false
	sc.Track(r.cloudMesh, r.cloudMat)

	drops := s.Params.AddInt("drops", 8000, 100, 20000, 100)
	clouds := s.Params.AddInt("clouds", 20, 0, 500, 1)
	flashes := s.Params.AddBool("lightning", true)
	drops.OnChange(func(p *params.Param) { r.makeDrops(p.Int()) })
	clouds.OnChange(func(p *params.Param) { r.makeClouds(p.Int()) })
	r.makeDrops(drops.Int())
	r.makeClouds(clouds.Int())

	return func(f director.Frame) error {
		r.fall()
		for _, c := range r.clouds {
			c.Pose.RotateOnAxisRad(0, 0, 1, -0.003)
		}
		if flashes.Bool() {
			r.flash()
		} else {
			r.lightning.On = false
		}
		return nil
	}, nil
}

// makeDrops replaces the drops with n new ones.
func (r *rain) makeDrops(n int) {
	var pose xyz.Pose
	if r.drops != nil {
		pose = r.drops.Pose
		r.scene.RemoveChild(r.drops)
		r.scene.Release(r.drops.Mesh, r.drops.Material)
	}
	ms := xyz.NewPoints("drops", n, false)
	r.velocity = make([]float32, n)
	for i := range n {
		ms.Positions[i] = math32.Vec3(r.rand.Float32()*400-200, r.rand.Float32()*500-250, r.rand.Float32()*400-200)
		r.velocity[i] = 0.5 + r.rand.Float32()/2
	}
	mt := xyz.NewMaterial("drops", color.NRGBA{170, 190, 220, 220})
	mt.Unlit = true
	mt.PointSize = 0.2
	r.drops = xyz.NewSolid(r.scene, "drops", ms, mt)
	r.drops.Pose = pose
	r.scene.Track(ms, mt)
}

// makeClouds replaces the clouds with n new ones, sharing one mesh and material.
func (r *rain) makeClouds(n int) {
	for _, c := range r.clouds {
		r.scene.RemoveChild(c)
	}
	r.clouds = r.clouds[:0]
	for range n {
		c := xyz.NewSolid(r.scene, "cloud", r.cloudMesh, r.cloudMat)
		c.SetPos(r.rand.Float32()*1000-460, 600, r.rand.Float32()*500-400)
		c.Pose.Quat.SetFromEuler(math32.Vec3(1.16, -0.12, r.rand.Float32()*360))
		r.clouds = append(r.clouds, c)
	}
}

// fall moves the drops down, accelerating, and brings the ones
// below the floor back to the top.
func (r *rain) fall() {
	ms := r.drops.Mesh
	for i := range ms.Positions {
		r.velocity[i] += r.rand.Float32() * 0.5
		ms.Positions[i].Y -= r.velocity[i]
		if ms.Positions[i].Y < rainBottom {
			ms.Positions[i].Y = rainTop
			r.velocity[i] = 0.5 + r.rand.Float32()/2
		}
	}
	ms.Changed()
	r.drops.Pose.RotateOnAxisRad(0, 1, 0, 0.002)
}

// flash randomly moves and powers the lightning.
func (r *rain) flash() {
	if r.rand.Float32() > 0.93 || r.power > 100 {
		if r.power < 100 {
			r.lightning.Pos = math32.Vec3(r.rand.Float32()*400, 300+r.rand.Float32()*200, 100)
		}
		r.power = 50 + r.rand.Float32()*500
	}
	r.lightning.On = true
	r.lightning.Lumens = r.power / 100
}
