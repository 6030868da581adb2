// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Resource is an object whose data is held by the renderer
// (vertex buffers, uniforms) and must be released explicitly
// with Destroy when it is no longer used. [Mesh] and [Material]
// are resources.
type Resource interface {

	// Destroy releases the resource. Calling it again does nothing.
	Destroy()

	// Destroyed returns whether Destroy has been called.
	Destroyed() bool
}

// resource implements the bookkeeping of [Resource].
type resource struct {
	destroyed bool
	onDestroy []func()
}

func (rs *resource) Destroyed() bool {
	return rs.destroyed
}

// OnDestroy registers fn to be called when the resource is destroyed.
// Renderers use it to release the data they cache for the resource.
// It is called immediately if the resource is already destroyed.
func (rs *resource) OnDestroy(fn func()) {
	if rs.destroyed {
		fn()
		return
	}
	rs.onDestroy = append(rs.onDestroy, fn)
}

// release marks the resource destroyed and runs the OnDestroy functions.
// It returns false if the resource was already destroyed.
func (rs *resource) release() bool {
	if rs.destroyed {
		return false
	}
	rs.destroyed = true
	fns := rs.onDestroy
	rs.onDestroy = nil
	for _, fn := range fns {
		fn()
	}
	return true
}
