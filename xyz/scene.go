// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a 3D scene graph: a [Scene] root holding [Group] and
// [Solid] nodes positioned by their [Pose], lights, and the [Camera]
// it is viewed through. Meshes and materials are [Resource]s that
// renderers keep data for until they are destroyed.
package xyz

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"cogentcore.org/gallery/base/errors"
)

// Scene is the overall scenegraph containing nodes as children.
// The scene itself is the root and its own Pose is ignored.
type Scene struct {
	NodeBase

	// Camera determines the view onto the scene.
	// It is referenced from the root so that view transforms always resolve.
	Camera *Camera

	// Background is the color the image is cleared to.
	Background color.RGBA

	// BackgroundImage, if set, is drawn stretched over the whole
	// image instead of the Background color.
	BackgroundImage image.Image

	// Lights are all the lights used in the scene.
	Lights []Light

	// SavedCams are saved cameras: Save and Set these to view the scene from different angles.
	SavedCams map[string]Camera

	resources []Resource
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := &Scene{Background: color.RGBA{0, 0, 0, 255}}
	sc.init(sc, name)
	return sc
}

// AddLight adds given light to lights, replacing any light of the same name.
// See NewX for convenience methods to add specific lights.
func (sc *Scene) AddLight(lt Light) {
	name := lt.AsLightBase().Name
	for i, l := range sc.Lights {
		if l.AsLightBase().Name == name {
			sc.Lights[i] = lt
			return
		}
	}
	sc.Lights = append(sc.Lights, lt)
}

// Light returns the light with the given name, or nil.
func (sc *Scene) Light(name string) Light {
	for _, l := range sc.Lights {
		if l.AsLightBase().Name == name {
			return l
		}
	}
	return nil
}

// Track registers resources as owned by the scene, so that [Scene.Destroy]
// releases them even if no solid of the scene uses them anymore.
func (sc *Scene) Track(res ...Resource) {
	for _, r := range res {
		if r != nil && !slices.Contains(sc.resources, r) {
			sc.resources = append(sc.resources, r)
		}
	}
}

// Release destroys the given resources now and stops tracking them.
// It is used when a part of the scene is regenerated.
func (sc *Scene) Release(res ...Resource) {
	for _, r := range res {
		if r == nil {
			continue
		}
		r.Destroy()
		if i := slices.Index(sc.resources, r); i >= 0 {
			sc.resources = slices.Delete(sc.resources, i, i+1)
		}
	}
}

// Resources returns all the resources of the scene that are not destroyed:
// the tracked ones and the meshes and materials of its solids.
func (sc *Scene) Resources() []Resource {
	var res []Resource
	add := func(r Resource) {
		if r != nil && !r.Destroyed() && !slices.Contains(res, r) {
			res = append(res, r)
		}
	}
	for _, r := range sc.resources {
		add(r)
	}
	sc.WalkDown(func(n Node) bool {
		if sld, ok := n.(*Solid); ok {
			if sld.Mesh != nil {
				add(sld.Mesh)
			}
			if sld.Material != nil {
				add(sld.Material)
			}
		}
		return Continue
	})
	return res
}

// Destroy releases all the resources of the scene and returns how many
// were released. Shared and already destroyed resources are released
// at most once. The nodes stay in place.
func (sc *Scene) Destroy() int {
	res := sc.Resources()
	for _, r := range res {
		r.Destroy()
	}
	sc.resources = nil
	return len(res)
}

// SaveCamera saves the current camera with given name; it can be restored later with SetCamera.
func (sc *Scene) SaveCamera(name string) {
	if sc.Camera == nil {
		return
	}
	if sc.SavedCams == nil {
		sc.SavedCams = make(map[string]Camera)
	}
	sc.SavedCams[name] = *sc.Camera
}

// SetCamera sets the current camera to that of given name; error if not found.
// The projection is recomputed on the next update.
func (sc *Scene) SetCamera(name string) error {
	cam, ok := sc.SavedCams[name]
	if !ok {
		return fmt.Errorf("xyz.Scene: %v saved camera of name: %v not found", sc.Name, name)
	}
	if sc.Camera == nil {
		sc.Camera = &Camera{}
	}
	*sc.Camera = cam
	sc.Camera.SetProjectionDirty()
	return nil
}

// Validate traverses the scene and validates all the visible solids.
// It returns all of the errors found joined together.
func (sc *Scene) Validate() error {
	var errs []error
	sc.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		if nb.Invisible {
			return Break
		}
		if sld, ok := n.(*Solid); ok {
			if err := sld.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
		return Continue
	})
	return errors.Join(errs...)
}
