// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "fmt"

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
// Meshes and materials can be shared among solids.
type Solid struct {
	NodeBase

	// Mesh is the shape of the solid.
	Mesh *Mesh

	// Material contains the material properties of the surface.
	Material *Material
}

// NewSolid adds a new solid with the given name, mesh and material to
// the given parent.
func NewSolid(parent Node, name string, ms *Mesh, mt *Material) *Solid {
	sld := &Solid{Mesh: ms, Material: mt}
	sld.init(sld, name)
	parent.AsNodeBase().AddChild(sld)
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the [Pose.Scale] scale of the solid
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// SetAxisRotation sets the [Pose.Quat] rotation of the solid,
// from local axis and angle in degrees.
func (sld *Solid) SetAxisRotation(x, y, z, angle float32) *Solid {
	sld.Pose.SetAxisRotation(x, y, z, angle)
	return sld
}

// Validate checks that the solid has a usable mesh and material.
func (sld *Solid) Validate() error {
	switch {
	case sld.Mesh == nil:
		return fmt.Errorf("xyz.Solid %q: no mesh", sld.Path())
	case sld.Material == nil:
		return fmt.Errorf("xyz.Solid %q: no material", sld.Path())
	case sld.Material.Destroyed():
		return fmt.Errorf("xyz.Solid %q: material %q used after Destroy", sld.Path(), sld.Material.Name)
	}
	return sld.Mesh.Validate()
}
