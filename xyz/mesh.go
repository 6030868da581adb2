// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/gallery/math32"
)

// MeshKinds are the kinds of primitives a [Mesh] is made of.
type MeshKinds int32

const (
	// Triangles are filled triangles, three indexes each.
	Triangles MeshKinds = iota

	// Points are individual points, drawn as squares of
	// [Material.PointSize]. Indexes are not used.
	Points

	// Lines are line segments, two indexes each.
	Lines
)

// Mesh holds the vertex data of a shape used for rendering a [Solid].
// Any change to the data after the first render must be followed
// by a call to [Mesh.Changed] so that renderers update their copy.
type Mesh struct {
	resource

	// Name is the name of the mesh.
	Name string

	// Kind is the kind of primitives.
	Kind MeshKinds

	// Positions are the vertex positions.
	Positions []math32.Vector3

	// Normals are the per-vertex normals of [Triangles] meshes.
	// They are computed by [Mesh.ComputeNormals] if empty.
	Normals []math32.Vector3

	// Colors are optional per-vertex colors, used when
	// [Material.VertexColors] is set.
	Colors []color.NRGBA

	// Indexes of the vertices of each primitive.
	Indexes []uint32

	version int
}

var _ Resource = &Mesh{}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	return len(ms.Positions)
}

// NumPrimitives returns the number of triangles, lines or points.
func (ms *Mesh) NumPrimitives() int {
	switch ms.Kind {
	case Triangles:
		return len(ms.Indexes) / 3
	case Lines:
		return len(ms.Indexes) / 2
	default:
		return len(ms.Positions)
	}
}

// Changed signals that the vertex data was modified.
func (ms *Mesh) Changed() {
	ms.version++
}

// Version returns a number that increases on each call to [Mesh.Changed].
func (ms *Mesh) Version() int {
	return ms.version
}

// Destroy releases the mesh and its vertex data.
func (ms *Mesh) Destroy() {
	if ms.release() {
		ms.Positions, ms.Normals, ms.Colors, ms.Indexes = nil, nil, nil, nil
	}
}

// Validate checks that the indexes and per-vertex data are consistent
// with the number of vertices.
func (ms *Mesh) Validate() error {
	if ms.destroyed {
		return fmt.Errorf("xyz.Mesh %q: used after Destroy", ms.Name)
	}
	n := len(ms.Positions)
	if len(ms.Colors) > 0 && len(ms.Colors) != n {
		return fmt.Errorf("xyz.Mesh %q: %d colors for %d vertices", ms.Name, len(ms.Colors), n)
	}
	if ms.Kind == Triangles && len(ms.Normals) > 0 && len(ms.Normals) != n {
		return fmt.Errorf("xyz.Mesh %q: %d normals for %d vertices", ms.Name, len(ms.Normals), n)
	}
	per := 3
	if ms.Kind == Lines {
		per = 2
	}
	if ms.Kind != Points && len(ms.Indexes)%per != 0 {
		return fmt.Errorf("xyz.Mesh %q: %d indexes is not a multiple of %d", ms.Name, len(ms.Indexes), per)
	}
	for _, ix := range ms.Indexes {
		if int(ix) >= n {
			return fmt.Errorf("xyz.Mesh %q: index %d out of range for %d vertices", ms.Name, ix, n)
		}
	}
	return nil
}

// ComputeNormals sets the normals to [Mesh.VertexNormals].
func (ms *Mesh) ComputeNormals() {
	if ms.Kind != Triangles {
		return
	}
	ms.Normals = ms.VertexNormals()
	ms.Changed()
}

// VertexNormals returns the normal of each vertex computed as the
// average of the normals of the triangles that use it, weighted
// by their area.
func (ms *Mesh) VertexNormals() []math32.Vector3 {
	norms := make([]math32.Vector3, len(ms.Positions))
	for i := 0; i+2 < len(ms.Indexes); i += 3 {
		a, b, c := ms.Indexes[i], ms.Indexes[i+1], ms.Indexes[i+2]
		pa, pb, pc := ms.Positions[a], ms.Positions[b], ms.Positions[c]
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		norms[a].SetAdd(n)
		norms[b].SetAdd(n)
		norms[c].SetAdd(n)
	}
	for i := range norms {
		norms[i] = norms[i].Normal()
	}
	return norms
}

// addVertex appends a vertex with the given position and normal
// and returns its index.
func (ms *Mesh) addVertex(pos, norm math32.Vector3) uint32 {
	ms.Positions = append(ms.Positions, pos)
	ms.Normals = append(ms.Normals, norm)
	return uint32(len(ms.Positions) - 1)
}

// addQuad appends a quad centered on c spanning ±u and ±v, facing
// u × v, as two counter-clockwise triangles.
func (ms *Mesh) addQuad(c, u, v, norm math32.Vector3) {
	a := ms.addVertex(c.Sub(u).Sub(v), norm)
	b := ms.addVertex(c.Add(u).Sub(v), norm)
	d := ms.addVertex(c.Add(u).Add(v), norm)
	e := ms.addVertex(c.Sub(u).Add(v), norm)
	ms.Indexes = append(ms.Indexes, a, b, d, a, d, e)
}
