// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/math32"
)

const tol = 1e-4

func TestWalkDown(t *testing.T) {
	sc := NewScene("scene")
	a := NewGroup(sc, "a")
	NewGroup(a, "a1")
	b := NewGroup(sc, "b")
	NewGroup(b, "b1")

	var names []string
	sc.WalkDown(func(n Node) bool {
		names = append(names, n.AsNodeBase().Name)
		return n.AsNodeBase().Name != "b"
	})
	assert.Equal(t, []string{"scene", "a", "a1", "b"}, names)
	assert.Equal(t, "/scene/b/b1", b.Children()[0].AsNodeBase().Path())

	assert.True(t, sc.RemoveChild(a))
	assert.False(t, sc.RemoveChild(a))
	assert.Nil(t, a.Parent())
	assert.Equal(t, 1, sc.NumChildren())

	// moving a node removes it from its previous parent
	sc.AddChild(b.Children()[0])
	assert.Equal(t, 0, b.NumChildren())
	assert.Equal(t, 2, sc.NumChildren())
}

func TestWorldMatrix(t *testing.T) {
	sc := NewScene("scene")
	sun := NewGroup(sc, "solar-system")
	sun.SetScale(5, 5, 5)
	orbit := NewGroup(sun, "earth-orbit").SetPos(2, 0, 0)
	mat := NewMaterial("earth", color.NRGBA{34, 51, 255, 255})
	earth := NewSolid(orbit, "earth", NewSphere("sphere", 1, 6, 6), mat)
	earth.SetPos(0, 1, 0)

	sc.UpdateNodes()
	pos := earth.Pose.WorldPos()
	assert.InDelta(t, 10, pos.X, tol)
	assert.InDelta(t, 5, pos.Y, tol)

	sun.SetAxisRotation(0, 1, 0, 90)
	sc.UpdateNodes()
	pos = earth.Pose.WorldPos()
	assert.InDelta(t, 0, pos.X, tol)
	assert.InDelta(t, -10, pos.Z, tol)
}

func TestCameraConfig(t *testing.T) {
	cfg := DefaultCameraConfig(2)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(45), cfg.FOV)
	assert.Equal(t, math32.Vec3(0, 0, 1), cfg.Position)

	require.NoError(t, cfg.Merge(&CameraConfig{FOV: 75, Position: math32.Vec3(2, 2, 3)}))
	assert.Equal(t, float32(75), cfg.FOV)
	assert.Equal(t, float32(1000), cfg.Far)
	assert.Equal(t, float32(2), cfg.Aspect)
	assert.Equal(t, math32.Vec3(2, 2, 3), cfg.Position)
	require.NoError(t, cfg.Merge(nil))

	// zero fields are never applied
	cfg.Ortho = true
	require.NoError(t, cfg.Merge(&CameraConfig{Near: 0.5}))
	assert.Equal(t, float32(0.5), cfg.Near)
	assert.Equal(t, math32.Vec3(2, 2, 3), cfg.Position)
	assert.True(t, cfg.Ortho)
	cfg.Ortho = false

	bad := []CameraConfig{
		{FOV: 180, Aspect: 1, Near: 1, Far: 10, Position: math32.Vector3Z},
		{FOV: 45, Aspect: 0, Near: 1, Far: 10, Position: math32.Vector3Z},
		{FOV: 45, Aspect: 1, Near: 0, Far: 10, Position: math32.Vector3Z},
		{FOV: 45, Aspect: 1, Near: 10, Far: 10, Position: math32.Vector3Z},
		{FOV: 45, Aspect: 1, Near: 1, Far: 10},
	}
	for i, c := range bad {
		assert.True(t, errors.Is(c.Validate(), ErrInvalidCamera), "config %d", i)
	}
}

func TestCameraProjection(t *testing.T) {
	cm := NewCamera(DefaultCameraConfig(4.0 / 3.0))
	assert.False(t, cm.ProjectionDirty())
	assert.Equal(t, 1, cm.ProjectionUpdates())
	assert.InDelta(t, 4.0/3.0, cm.ProjectionAspect(), tol)

	cm.UpdateMatrix()
	assert.Equal(t, 1, cm.ProjectionUpdates(), "clean projection is not recomputed")

	cm.SetAspect(1.25)
	assert.True(t, cm.ProjectionDirty())
	assert.InDelta(t, 4.0/3.0, cm.ProjectionAspect(), tol)
	cm.UpdateMatrix()
	assert.InDelta(t, 1.25, cm.ProjectionAspect(), tol)
	assert.Equal(t, 2, cm.ProjectionUpdates())

	cm.Ortho = true
	cm.SetProjectionDirty()
	cm.UpdateMatrix()
	assert.InDelta(t, 1.25, cm.ProjectionAspect(), tol)

	// the view matrix puts the target in front of the camera
	p := math32.Vector3{}.MulMatrix4AsPoint(&cm.ViewMatrix)
	assert.InDelta(t, -1, p.Z, tol)
}

func TestCameraOrbit(t *testing.T) {
	cfg := DefaultCameraConfig(1)
	cfg.Position = math32.Vec3(0, 0, 10)
	cm := NewCamera(cfg)
	cm.Orbit(90, 0)
	assert.InDelta(t, 10, cm.ViewVector().Length(), tol)
	assert.InDelta(t, 10, math32.Abs(cm.Pose.Pos.X), tol)

	cm.Zoom(-0.5)
	assert.InDelta(t, 5, cm.ViewVector().Length(), tol)

	cm.Pan(1, 0)
	assert.InDelta(t, 5, cm.ViewVector().Length(), tol)
	assert.InDelta(t, 1, cm.Target.Length(), tol)
}

func TestSavedCameras(t *testing.T) {
	sc := NewScene("scene")
	sc.Camera = NewCamera(DefaultCameraConfig(1))
	sc.SaveCamera("default")
	sc.Camera.Zoom(5)
	require.NoError(t, sc.SetCamera("default"))
	assert.Equal(t, math32.Vec3(0, 0, 1), sc.Camera.Pose.Pos)
	assert.True(t, sc.Camera.ProjectionDirty())
	assert.Error(t, sc.SetCamera("missing"))
}

func TestSceneDestroy(t *testing.T) {
	sc := NewScene("scene")
	box := NewBox("box", 1, 1, 1)
	red := NewMaterial("red", color.NRGBA{255, 0, 0, 255})
	NewSolid(sc, "a", box, red)
	NewSolid(sc, "b", box, red) // shared resources are released once
	spare := NewMaterial("spare", color.NRGBA{})
	sc.Track(spare, box)

	released := 0
	box.OnDestroy(func() { released++ })
	assert.Len(t, sc.Resources(), 3)
	assert.Equal(t, 3, sc.Destroy())
	assert.Equal(t, 1, released)
	assert.True(t, box.Destroyed())
	assert.True(t, red.Destroyed())
	assert.True(t, spare.Destroyed())
	assert.Nil(t, box.Positions)

	assert.Equal(t, 0, sc.Destroy())
	assert.Equal(t, 1, released)
	assert.Empty(t, sc.RenderSolids())
}

func TestSceneRelease(t *testing.T) {
	sc := NewScene("scene")
	pts := NewPoints("stars", 10, true)
	mat := NewMaterial("stars", color.NRGBA{255, 255, 255, 255})
	sc.Track(pts, mat)
	sc.Release(pts, mat)
	assert.True(t, pts.Destroyed())
	assert.Empty(t, sc.Resources())
}

func TestRenderSolids(t *testing.T) {
	sc := NewScene("scene")
	glass := NewMaterial("glass", color.NRGBA{255, 255, 255, 128})
	solid := NewMaterial("solid", color.NRGBA{255, 255, 255, 255})
	box := NewBox("box", 1, 1, 1)
	t1 := NewSolid(sc, "glass", box, glass)
	o1 := NewSolid(sc, "solid", box, solid)
	hidden := NewGroup(sc, "hidden")
	hidden.Invisible = true
	NewSolid(hidden, "inside", box, solid)
	NewSolid(sc, "empty", nil, solid)

	assert.Equal(t, []*Solid{o1, t1}, sc.RenderSolids())
	require.NoError(t, o1.Validate())
	assert.Error(t, sc.Validate(), "solid without mesh")
}

func TestShapes(t *testing.T) {
	meshes := []*Mesh{
		NewBox("box", 1, 2, 3),
		NewPlane("plane", 2, 2),
		NewSphere("sphere", 1, 8, 6),
		NewCylinder("cylinder", 1, 1, 2, 8),
		NewCylinder("cone", 0, 1, 2, 8),
		NewPoints("points", 5, true),
		NewAxes("axes", 10),
	}
	for _, ms := range meshes {
		require.NoError(t, ms.Validate(), ms.Name)
	}
	box := meshes[0]
	assert.Equal(t, 24, box.NumVertex())
	assert.Equal(t, 12, box.NumPrimitives())
	assert.Equal(t, 3, meshes[6].NumPrimitives())

	// counter-clockwise triangles face their normals
	for _, ms := range meshes[:5] {
		for i := 0; i < len(ms.Indexes); i += 3 {
			a, b, c := ms.Positions[ms.Indexes[i]], ms.Positions[ms.Indexes[i+1]], ms.Positions[ms.Indexes[i+2]]
			fn := b.Sub(a).Cross(c.Sub(a))
			if fn.LengthSquared() < 1e-10 {
				continue // degenerate triangles at the poles
			}
			n := ms.Normals[ms.Indexes[i]].Add(ms.Normals[ms.Indexes[i+1]]).Add(ms.Normals[ms.Indexes[i+2]])
			assert.Greater(t, fn.Dot(n), float32(0), "%s triangle %d", ms.Name, i/3)
		}
	}

	v := box.Version()
	box.ComputeNormals()
	assert.Equal(t, v+1, box.Version())

	bad := &Mesh{Name: "bad", Positions: make([]math32.Vector3, 3), Indexes: []uint32{0, 1, 3}}
	assert.Error(t, bad.Validate())
}
