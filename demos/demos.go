// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demos contains the scenes of the gallery. Each [Demo] builds
// its scene on a [director.Director] and returns the function updating
// it at each frame, reading its tweakable values from a [params.Set].
package demos

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/director"
	"cogentcore.org/gallery/params"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/xyz"
)

// ErrUnknownDemo is returned by [Get] for a name that is not registered.
var ErrUnknownDemo = errors.New("demos: unknown demo")

// Demo is one scene of the gallery.
type Demo struct {

	// Name is the unique name used to run the demo.
	Name string

	// Title is a one-line description.
	Title string

	// Camera overrides the default camera configuration.
	Camera *xyz.CameraConfig

	// Setup builds the scene and parameters of s, and returns the
	// frame function, which can be nil for a still scene.
	Setup func(s *Scene) (director.FrameFunc, error)
}

var registry = map[string]*Demo{}

// Register adds a demo to the registry. It panics if the name is taken.
func Register(dm *Demo) *Demo {
	if _, has := registry[dm.Name]; has {
		panic("demos.Register: duplicate demo " + dm.Name)
	}
	registry[dm.Name] = dm
	return dm
}

// Get returns the registered demo with the given name.
func Get(name string) (*Demo, error) {
	dm, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownDemo, name, Names())
	}
	return dm, nil
}

// Names returns the sorted names of the registered demos.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// All returns the registered demos sorted by name.
func All() []*Demo {
	return slices.SortedFunc(maps.Values(registry), func(a, b *Demo) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// Options are the options of [Start].
type Options struct {

	// Director are the options of the director.
	// Their camera overrides the camera of the demo.
	Director director.Options

	// ParamsFile is a TOML file of parameter values set after setup.
	ParamsFile string

	// AssetDir is the directory of the files loaded by demos.
	AssetDir string
}

// Scene is a running demo.
type Scene struct {
	Demo     *Demo
	Director *director.Director
	Params   *params.Set

	// AssetDir is the directory of the files loaded by the demo.
	AssetDir string
}

// Start initializes a director on the host for the demo, sets the demo
// up and starts its animation loop. Queued parameter values are applied
// at each frame before the frame function of the demo is called.
func Start(host system.Host, dm *Demo, opts Options) (*Scene, error) {
	dopts := opts.Director
	if dm.Camera != nil {
		cam := *dm.Camera
		if err := cam.Merge(dopts.Camera); err != nil {
			return nil, err
		}
		dopts.Camera = &cam
	}
	d := director.New(host)
	if err := d.Init(dopts); err != nil {
		return nil, fmt.Errorf("demos: start %s: %w", dm.Name, err)
	}
	s := &Scene{Demo: dm, Director: d, Params: params.NewSet(dm.Name), AssetDir: opts.AssetDir}
	fn, err := dm.Setup(s)
	if err != nil {
		errors.Log(d.Dispose())
		return nil, fmt.Errorf("demos: setup %s: %w", dm.Name, err)
	}
	if opts.ParamsFile != "" {
		if _, err := s.Params.Open(opts.ParamsFile); err != nil {
			errors.Log(d.Dispose())
			return nil, err
		}
	}
	err = d.Animate(func(f director.Frame) error {
		s.Params.Apply()
		if fn == nil {
			return nil
		}
		return fn(f)
	})
	if err != nil {
		errors.Log(d.Dispose())
		return nil, err
	}
	slog.Info("demos: started", "demo", dm.Name, "size", d.Size(), "ratio", d.PixelRatio(), "params", len(s.Params.Params()))
	return s, nil
}

// Stop disposes of the director of the scene.
func (s *Scene) Stop() error {
	return s.Director.Dispose()
}
