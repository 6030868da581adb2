// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/gallery/math32"

// UpdateWorldMatrix updates the local and world matrices for the node
// and everything inside it, the node being the root.
func UpdateWorldMatrix(n Node) {
	n.AsNodeBase().WalkDown(func(cn Node) bool {
		nb := cn.AsNodeBase()
		nb.Pose.UpdateMatrix()
		if nb.parent == nil {
			nb.Pose.UpdateWorldMatrix(nil)
		} else {
			nb.Pose.UpdateWorldMatrix(&nb.parent.AsNodeBase().Pose.WorldMatrix)
		}
		return Continue
	})
}

// UpdateNodes updates the world matrices of all nodes. The pose of
// the scene root itself is reset to the identity.
func (sc *Scene) UpdateNodes() {
	sc.Pose = Pose{}
	sc.Pose.Defaults()
	UpdateWorldMatrix(sc)
}

// RenderClasses define the different classes of rendering
type RenderClasses int32

const (
	RClassNone RenderClasses = iota
	RClassOpaque
	RClassTransparent
)

// RenderClass returns the class of the solid: transparent ones
// are drawn after all opaque ones.
func (sld *Solid) RenderClass() RenderClasses {
	switch {
	case sld.Mesh == nil || sld.Material == nil:
		return RClassNone
	case sld.Material.IsTransparent():
		return RClassTransparent
	}
	return RClassOpaque
}

// RenderSolids returns the visible solids to render, opaque ones first.
// Solids of invisible nodes, without mesh or material, or with destroyed
// resources are skipped.
func (sc *Scene) RenderSolids() []*Solid {
	var opaque, trans []*Solid
	sc.WalkDown(func(n Node) bool {
		if n.AsNodeBase().Invisible {
			return Break
		}
		sld, ok := n.(*Solid)
		if !ok {
			return Continue
		}
		if sld.Mesh != nil && sld.Mesh.Destroyed() || sld.Material != nil && sld.Material.Destroyed() {
			return Continue
		}
		switch sld.RenderClass() {
		case RClassOpaque:
			opaque = append(opaque, sld)
		case RClassTransparent:
			trans = append(trans, sld)
		}
		return Continue
	})
	return append(opaque, trans...)
}

// ModelViewProjection sets m to the full transform from the local
// coordinates of the node to clip space through the camera.
func (cm *Camera) ModelViewProjection(nb *NodeBase, m *math32.Matrix4) {
	m.MulMatrices(&cm.ViewMatrix, &nb.Pose.WorldMatrix)
	m.MulMatrices(&cm.ProjectionMatrix, m)
}
