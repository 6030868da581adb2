// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func assertVector3InDelta(t *testing.T, want, have Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, have.X, standardTol, "X")
	assert.InDelta(t, want.Y, have.Y, standardTol, "Y")
	assert.InDelta(t, want.Z, have.Z, standardTol, "Z")
}

func TestMatrix4Identity(t *testing.T) {
	m := Identity4()
	assert.True(t, m.IsIdentity())
	p := Vec3(1, 2, 3)
	assert.Equal(t, p, p.MulMatrix4AsPoint(m))
}

func TestMatrix4Transform(t *testing.T) {
	var m Matrix4
	m.SetTransform(Vec3(1, 2, 3), QuatIdentity(), Vec3(2, 2, 2))
	assertVector3InDelta(t, Vec3(3, 4, 5), Vec3(1, 1, 1).MulMatrix4AsPoint(&m))
	assertVector3InDelta(t, Vec3(2, 2, 2), Vec3(1, 1, 1).MulMatrix4AsDirection(&m))
	assert.Equal(t, Vec3(1, 2, 3), m.Position())

	m.SetTransform(Vector3{}, NewQuatAxisAngle(Vector3Y, DegToRad(90)), Vector3Scalar(1))
	assertVector3InDelta(t, Vec3(0, 0, -1), Vector3X.MulMatrix4AsPoint(&m))
}

func TestMatrix4Inverse(t *testing.T) {
	var m Matrix4
	m.SetTransform(Vec3(4, -2, 7), NewQuatEuler(Vec3(0.3, 1.1, -0.4)), Vec3(1, 2, 0.5))
	inv := m.Inverse()
	prod := m.Mul(inv)
	id := Identity4()
	for i := range prod {
		assert.InDelta(t, id[i], prod[i], standardTol, "element %d", i)
	}

	var zero Matrix4
	assert.False(t, zero.SetInverse(&Matrix4{}))
}

func TestMatrix4Perspective(t *testing.T) {
	var m Matrix4
	m.SetPerspective(90, 2, 1, 100)
	assert.InDelta(t, 0.5, m[0], standardTol)
	assert.InDelta(t, 1, m[5], standardTol)
	assert.InDelta(t, 2, m[5]/m[0], standardTol) // aspect ratio is recoverable

	// a point on the near plane maps to ndc z = -1, on the far plane to +1
	assert.InDelta(t, -1, Vec3(0, 0, -1).MulMatrix4AsPoint(&m).Z, standardTol)
	assert.InDelta(t, 1, Vec3(0, 0, -100).MulMatrix4AsPoint(&m).Z, 1e-4)
}

func TestMatrix4LookAt(t *testing.T) {
	var m Matrix4
	m.SetLookAt(Vec3(0, 0, 10), Vector3{}, Vector3Y)
	assert.True(t, m.IsIdentity())

	var q Quat
	m.SetLookAt(Vec3(10, 0, 0), Vector3{}, Vector3Y)
	q.SetFromRotationMatrix(&m)
	// the camera looks down its local -Z axis, which must now point at -X
	assertVector3InDelta(t, Vec3(-1, 0, 0), Vec3(0, 0, -1).MulQuat(q))
}

func TestQuatMul(t *testing.T) {
	q1 := NewQuatAxisAngle(Vector3Z, DegToRad(45))
	q := q1.Mul(q1)
	assertVector3InDelta(t, Vector3Y, Vector3X.MulQuat(q))

	q.Normalize()
	assert.InDelta(t, 1, q.Length(), standardTol)

	var nq Quat
	assert.True(t, nq.IsNil())
	nq.Normalize()
	assert.Equal(t, QuatIdentity(), nq)
}

func TestVector3(t *testing.T) {
	v := Vec3(3, 0, 4)
	assert.Equal(t, float32(5), v.Length())
	assertVector3InDelta(t, Vec3(0.6, 0, 0.8), v.Normal())
	assert.Equal(t, Vector3Z, Vector3X.Cross(Vector3Y))
	assert.Equal(t, Vec3(1.5, 0, 2), Vector3{}.Lerp(v, 0.5))
	assert.True(t, Vector3{}.Normal().IsZero())
}
