// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "image/color"

// Material describes the material properties of a surface.
// The Color is used for both ambient and diffuse color, and its alpha
// component is used for opacity. The Emissive color is only for glowing
// objects.
type Material struct {
	resource

	// Name is the name of the material.
	Name string

	// Color is the main color of the surface, used for both ambient and diffuse color.
	// The alpha component determines transparency.
	Color color.NRGBA

	// Emissive is the color that surface emits independent of any lighting, i.e., glow.
	Emissive color.NRGBA

	// Unlit surfaces are drawn with Color only, ignoring the lights.
	Unlit bool

	// VertexColors uses the per-vertex colors of the mesh instead of Color,
	// keeping the alpha of Color.
	VertexColors bool

	// PointSize is the size of [Points] in world units when
	// SizeAttenuation is set, and in pixels otherwise.
	PointSize float32

	// SizeAttenuation scales points with their distance to the camera.
	SizeAttenuation bool

	// Wireframe draws the edges of triangles instead of filling them.
	Wireframe bool

	// CullBack indicates to cull the back-facing surfaces.
	CullBack bool
}

var _ Resource = &Material{}

// NewMaterial returns a new material with default parameters and the given color.
func NewMaterial(name string, clr color.NRGBA) *Material {
	mt := &Material{Name: name}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// Defaults sets default surface parameters.
func (mt *Material) Defaults() {
	mt.Color = color.NRGBA{128, 128, 128, 255}
	mt.Emissive = color.NRGBA{}
	mt.PointSize = 1
	mt.SizeAttenuation = true
	mt.CullBack = true
}

// IsTransparent returns whether the material is partially transparent,
// in which case it is drawn after all opaque surfaces.
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255
}

// Destroy releases the material.
func (mt *Material) Destroy() {
	mt.release()
}
