// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"github.com/jinzhu/copier"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/math32"
)

// ErrInvalidCamera is returned by [CameraConfig.Validate].
var ErrInvalidCamera = errors.New("xyz: invalid camera config")

// CameraConfig holds the projection parameters and initial placement
// of a [Camera].
type CameraConfig struct {

	// FOV is the vertical field of view in degrees, in (0, 180).
	FOV float32 `toml:"fov"`

	// Aspect is the aspect ratio (width/height).
	Aspect float32 `toml:"aspect"`

	// Near is the distance of the near clipping plane.
	Near float32 `toml:"near"`

	// Far is the distance of the far clipping plane, beyond Near.
	Far float32 `toml:"far"`

	// Position is the position of the camera.
	Position math32.Vector3 `toml:"position"`

	// LookAt is the point the camera looks at.
	LookAt math32.Vector3 `toml:"look_at"`

	// Up is the up direction; the Y axis if zero.
	Up math32.Vector3 `toml:"up"`

	// Ortho makes an orthographic camera showing, at the LookAt
	// distance, the same area as the perspective one.
	Ortho bool `toml:"ortho"`
}

// DefaultCameraConfig returns the default camera config for the given
// aspect ratio: a 45° perspective camera at (0, 0, 1) looking at the
// origin, with near and far planes at 1 and 1000.
func DefaultCameraConfig(aspect float32) CameraConfig {
	return CameraConfig{
		FOV:      45,
		Aspect:   aspect,
		Near:     1,
		Far:      1000,
		Position: math32.Vec3(0, 0, 1),
		Up:       math32.Vector3Y,
	}
}

// Merge sets the non-zero fields of other on the config.
// Zero fields of other keep the current values, so a merge cannot set a
// vector to the origin or Ortho to false.
func (cc *CameraConfig) Merge(other *CameraConfig) error {
	if other == nil {
		return nil
	}
	return copier.CopyWithOption(cc, other, copier.Option{IgnoreEmpty: true})
}

// Validate returns an error wrapping [ErrInvalidCamera] if the
// parameters cannot produce a projection.
func (cc *CameraConfig) Validate() error {
	switch {
	case cc.FOV <= 0 || cc.FOV >= 180:
		return fmt.Errorf("%w: field of view %g not in (0, 180)", ErrInvalidCamera, cc.FOV)
	case cc.Aspect <= 0 || cc.Aspect != cc.Aspect:
		return fmt.Errorf("%w: aspect ratio %g", ErrInvalidCamera, cc.Aspect)
	case cc.Near <= 0:
		return fmt.Errorf("%w: near plane %g", ErrInvalidCamera, cc.Near)
	case cc.Far <= cc.Near:
		return fmt.Errorf("%w: far plane %g not beyond near plane %g", ErrInvalidCamera, cc.Far, cc.Near)
	case cc.Position == cc.LookAt:
		return fmt.Errorf("%w: position and look-at point are both %v", ErrInvalidCamera, cc.Position)
	}
	return nil
}

// Camera defines the properties of the camera.
// The view matrix is recomputed on every [Camera.UpdateMatrix]; the
// projection matrix only when it has been marked dirty, which the
// setters do. After changing FOV, Aspect, Near, Far or Ortho directly,
// call [Camera.SetProjectionDirty].
type Camera struct {

	// Pose is the overall orientation and direction of the camera, relative to
	// pointing at negative Z axis with up (positive Y) direction.
	Pose Pose

	// Target is the target location for the camera, where it is pointing at.
	// It moves with panning movements and is reset by [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction for the camera, which is reset by [Camera.LookAt].
	UpDir math32.Vector3

	// Ortho makes this an orthographic camera instead of a perspective one.
	Ortho bool

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near plane distance.
	Near float32

	// Far is the far plane distance.
	Far float32

	// ViewMatrix is the view matrix (inverse of the Pose.Matrix).
	ViewMatrix math32.Matrix4 `display:"-"`

	// ProjectionMatrix is the projection matrix, defining the camera perspective / ortho transform.
	ProjectionMatrix math32.Matrix4 `display:"-"`

	projDirty   bool
	projUpdates int
}

// NewCamera returns a camera with the given config, which should be valid.
func NewCamera(cfg CameraConfig) *Camera {
	cm := &Camera{}
	cm.Configure(cfg)
	return cm
}

// Configure sets all of the camera parameters from the config.
func (cm *Camera) Configure(cfg CameraConfig) {
	cm.FOV = cfg.FOV
	cm.Aspect = cfg.Aspect
	cm.Near = cfg.Near
	cm.Far = cfg.Far
	cm.Ortho = cfg.Ortho
	cm.Pose = Pose{}
	cm.Pose.Defaults()
	cm.Pose.Pos = cfg.Position
	cm.LookAt(cfg.LookAt, cfg.Up)
	cm.projDirty = true
	cm.UpdateMatrix()
}

// Config returns the current camera parameters as a config.
func (cm *Camera) Config() CameraConfig {
	return CameraConfig{
		FOV:      cm.FOV,
		Aspect:   cm.Aspect,
		Near:     cm.Near,
		Far:      cm.Far,
		Position: cm.Pose.Pos,
		LookAt:   cm.Target,
		Up:       cm.UpDir,
		Ortho:    cm.Ortho,
	}
}

// SetAspect sets the aspect ratio and marks the projection dirty.
func (cm *Camera) SetAspect(aspect float32) {
	cm.Aspect = aspect
	cm.projDirty = true
}

// SetFOV sets the field of view in degrees and marks the projection dirty.
func (cm *Camera) SetFOV(fov float32) {
	cm.FOV = fov
	cm.projDirty = true
}

// SetProjectionDirty marks the projection as needing to be recomputed
// by the next [Camera.UpdateMatrix].
func (cm *Camera) SetProjectionDirty() {
	cm.projDirty = true
}

// ProjectionDirty returns whether the projection needs to be recomputed.
func (cm *Camera) ProjectionDirty() bool {
	return cm.projDirty
}

// ProjectionUpdates returns the number of times the projection matrix
// has been computed.
func (cm *Camera) ProjectionUpdates() int {
	return cm.projUpdates
}

// UpdateMatrix updates the view matrix, and the projection matrix if it is dirty.
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	if !cm.ViewMatrix.SetInverse(&cm.Pose.Matrix) {
		cm.ViewMatrix.SetIdentity()
	}
	if cm.projDirty {
		cm.UpdateProjectionMatrix()
	}
}

// UpdateProjectionMatrix recomputes the projection matrix and clears the dirty flag.
func (cm *Camera) UpdateProjectionMatrix() {
	if cm.Ortho {
		dist := cm.ViewVector().Length()
		if dist == 0 {
			dist = 1
		}
		height := 2 * dist * math32.Tan(math32.DegToRad(cm.FOV*0.5))
		cm.ProjectionMatrix.SetOrthographic(cm.Aspect*height, height, cm.Near, cm.Far)
	} else {
		cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	}
	cm.projDirty = false
	cm.projUpdates++
}

// ProjectionAspect returns the aspect ratio encoded in the current
// projection matrix, which is the one used for rendering.
func (cm *Camera) ProjectionAspect() float32 {
	if cm.ProjectionMatrix[0] == 0 {
		return 0
	}
	return cm.ProjectionMatrix[5] / cm.ProjectionMatrix[0]
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsZero() {
		upDir = math32.Vector3Y
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
}

// LookAtTarget points the camera at current target using current up direction
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir.IsZero() {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq) // this is only one that affects up

	cm.LookAtTarget()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current window view), and it moves the target by the same increment.
func (cm *Camera) Pan(delX, delY float32) {
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	td := dx.Add(dy)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
}

// Zoom moves along axis given pct closer or further from the target.
// It also moves the target back if its distance is < 1.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis.IsZero() {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
	if cm.Ortho {
		cm.projDirty = true
	}
}
