// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"image"
	"image/color"
	"path/filepath"

	"cogentcore.org/gallery/assets"
	"cogentcore.org/gallery/director"
	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/xyz"
)

// PanoramaFile is the equirectangular image of the panorama demo,
// relative to the asset directory.
const PanoramaFile = "panorama.jpg"

// Panorama shows an equirectangular image on the inside of a sphere
// around the camera. A coarse placeholder is shown until the image is
// loaded, and stays if it cannot be.
var Panorama = Register(&Demo{
	Name:   "panorama",
	Title:  "Panoramic view from inside a sphere, with a background image load",
	Camera: &xyz.CameraConfig{FOV: 75, Far: 1100},
	Setup:  setupPanorama,
})

const (
	panoramaRadius = 500
	panoramaSegs   = 60
)

func setupPanorama(s *Scene) (director.FrameFunc, error) {
	sc := s.Director.Scene()
	cam := s.Director.Camera()

	ms := xyz.NewSphere("panorama", panoramaRadius, panoramaSegs, panoramaSegs)
	ms.Colors = make([]color.NRGBA, len(ms.Positions))
	paintSphere(ms, placeholder())
	mt := xyz.NewMaterial("panorama", color.NRGBA{255, 255, 255, 255})
	mt.Unlit = true
	mt.VertexColors = true
	// seen from the inside
	xyz.NewSolid(sc, "panorama", ms, mt).SetScale(1, 1, -1)

	lon := s.Params.AddFloat("lon", 0, -360, 360, 0.1)
	lat := s.Params.AddFloat("lat", 0, -85, 85, 0.1)
	speed := s.Params.AddFloat("speed", 6, -90, 90, 0.1)

	file := filepath.Join(s.AssetDir, PanoramaFile)
	pending := assets.LoadImage(file)

	return func(f director.Frame) error {
		if img, ok := pending.Take(); ok {
			paintSphere(ms, img)
		}
		l := float32(lon.Float()) + speed.Float32()*f.Seconds()
		phi := math32.DegToRad(90 - math32.Clamp(lat.Float32(), -85, 85))
		theta := math32.DegToRad(l)
		target := math32.Vec3(
			panoramaRadius*math32.Sin(phi)*math32.Cos(theta),
			panoramaRadius*math32.Cos(phi),
			panoramaRadius*math32.Sin(phi)*math32.Sin(theta),
		)
		cam.LookAt(target, math32.Vec3(0, 1, 0))
		return nil
	}, nil
}

// paintSphere sets the vertex colors of a sphere made by [xyz.NewSphere]
// with panoramaSegs segments from an equirectangular image.
func paintSphere(ms *xyz.Mesh, img image.Image) {
	b := img.Bounds()
	row := panoramaSegs + 1
	for i := range ms.Colors {
		ix, iy := i%row, i/row
		x := b.Min.X + min(ix*b.Dx()/panoramaSegs, b.Dx()-1)
		y := b.Min.Y + min(iy*b.Dy()/panoramaSegs, b.Dy()-1)
		ms.Colors[i] = color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		ms.Colors[i].A = 255
	}
	ms.Changed()
}

// placeholder returns a coarse sky and ground image.
func placeholder() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			c := color.NRGBA{90, 140, 200, 255}
			if y >= 4 {
				c = color.NRGBA{70, 90, 50, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
