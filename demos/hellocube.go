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

// HelloCube is three cubes of the same mesh spinning at different speeds.
var HelloCube = Register(&Demo{
	Name:   "hello-cube",
	Title:  "Three spinning cubes lit by a directional light",
	Camera: &xyz.CameraConfig{FOV: 40, Near: 0.1, Position: math32.Vec3(0, 0, 7)},
	Setup:  setupHelloCube,
})

func setupHelloCube(s *Scene) (director.FrameFunc, error) {
	sc := s.Director.Scene()
	sc.Background = colors.FromNumber(0xaaaaaa)
	sun := xyz.NewDirLight(sc, "sun", 1, xyz.DirectSun)
	sun.Pos = math32.Vec3(-1, 2, 4)
	xyz.NewAmbientLight(sc, "ambient", 0.1, xyz.DirectSun)

	speed := s.Params.AddFloat("speed", 1, 0, 5, 0.1)

	box := xyz.NewBox("box", 1, 1, 1)
	cubes := []*xyz.Solid{
		xyz.NewSolid(sc, "cube0", box, lambert("cube0", 0x44aa88)).SetPos(0, 0, 0),
		xyz.NewSolid(sc, "cube1", box, lambert("cube1", 0x8844aa)).SetPos(-2, 0, 0),
		xyz.NewSolid(sc, "cube2", box, lambert("cube2", 0xaa8844)).SetPos(2, 0, 0),
	}
	return func(f director.Frame) error {
		t := f.Seconds() * speed.Float32()
		for i, c := range cubes {
			rot := t * (1 + float32(i)*0.1)
			c.Pose.Quat.SetFromEuler(math32.Vec3(rot, rot, 0))
		}
		return nil
	}, nil
}
