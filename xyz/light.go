// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/gallery/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the tree.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light, which matters since lights are accessed by name.
	Name string

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// Intensity returns the color multiplied by Lumens as linear 0-1 RGB,
// or zero if the light is off.
func (lb *LightBase) Intensity() math32.Vector3 {
	if !lb.On {
		return math32.Vector3{}
	}
	return math32.Vec3(float32(lb.Color.R), float32(lb.Color.G), float32(lb.Color.B)).MulScalar(lb.Lumens / 255)
}

func (lb *LightBase) init(name string, lumens float32, clr LightColors) {
	lb.Name = name
	lb.On = true
	lb.Color = LightColorMap[clr]
	lb.Lumens = lumens
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds Ambient to given scene, with given name, standard color, and lumens (0-1 normalized)
func NewAmbientLight(sc *Scene, name string, lumens float32, clr LightColors) *AmbientLight {
	lt := &AmbientLight{}
	lt.init(name, lumens, clr)
	sc.AddLight(lt)
	return lt
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
type DirLight struct {
	LightBase

	// Pos is the position of the light; it is assumed to point at the
	// origin so this determines the direction.
	Pos math32.Vector3
}

// NewDirLight adds direct light to given scene, with given name, standard color, and lumens (0-1 normalized)
// By default it is located overhead and toward the default camera (0, 1, 1); change Pos otherwise.
func NewDirLight(sc *Scene, name string, lumens float32, clr LightColors) *DirLight {
	lt := &DirLight{}
	lt.init(name, lumens, clr)
	lt.Pos.Set(0, 1, 1)
	sc.AddLight(lt)
	return lt
}

// Dir returns the normalized direction from surfaces toward the light.
func (dl *DirLight) Dir() math32.Vector3 {
	return dl.Pos.Normal()
}

// PointLight is an omnidirectional light with a position
// and associated decay factors, which divide the light intensity as a function of
// linear and quadratic distance. The quadratic factor dominates at longer distances.
type PointLight struct {
	LightBase

	// Pos is the position of the light in world coordinates.
	Pos math32.Vector3

	// LinDecay is the distance linear decay factor; defaults to .1
	LinDecay float32

	// QuadDecay is the distance quadratic decay factor; defaults to .01
	QuadDecay float32
}

// NewPointLight adds point light to given scene, with given name, standard color, and lumens (0-1 normalized)
// By default it is located at 0,5,5 (up and between default camera and origin); set Pos to change.
func NewPointLight(sc *Scene, name string, lumens float32, clr LightColors) *PointLight {
	lt := &PointLight{}
	lt.init(name, lumens, clr)
	lt.LinDecay = .1
	lt.QuadDecay = .01
	lt.Pos.Set(0, 5, 5)
	sc.AddLight(lt)
	return lt
}

// Attenuation returns the intensity factor at the given distance.
func (pl *PointLight) Attenuation(dist float32) float32 {
	return 1 / (1 + pl.LinDecay*dist + pl.QuadDecay*dist*dist)
}

// http://planetpixelemporium.com/tutorialpages/light.html

// LightColors are standard light colors for different light sources
type LightColors int32

const (
	DirectSun LightColors = iota
	Halogen
	Tungsten100W
	Candle
	Overcast
	FluorCool
)

// LightColorMap provides a map of named light colors
var LightColorMap = map[LightColors]color.RGBA{
	DirectSun:    {255, 255, 255, 255},
	Halogen:      {255, 241, 224, 255},
	Tungsten100W: {255, 214, 170, 255},
	Candle:       {255, 147, 41, 255},
	Overcast:     {201, 226, 255, 255},
	FluorCool:    {212, 235, 255, 255},
}
