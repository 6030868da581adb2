// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cogentcore.org/gallery/base/errors"
	"cogentcore.org/gallery/base/tomlx"
)

// Read reads the values of a TOML file.
func Read(filename string) (map[string]any, error) {
	vals := map[string]any{}
	if err := tomlx.Open(&vals, filename); err != nil {
		return nil, err
	}
	return vals, nil
}

// Open sets the values of the parameters from a TOML file, and
// returns how many changed. It must be called from the frame thread.
func (s *Set) Open(filename string) (int, error) {
	vals, err := Read(filename)
	if err != nil {
		return 0, err
	}
	s.Queue(vals)
	return s.Apply(), nil
}

// Save saves the values of the parameters to a TOML file.
func (s *Set) Save(filename string) error {
	return tomlx.Save(s.Values(), filename)
}

// Watch watches the given TOML file until ctx is done, queueing its
// values with [Set.Queue] whenever it is written. The values are then
// set by the next call to [Set.Apply]. The file is watched through its
// directory so that editors replacing it are supported.
func (s *Set) Watch(ctx context.Context, filename string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("params: watch: %w", err)
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("params: watch %q: %w", filename, err)
	}
	slog.Debug("params: watching", "file", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			vals, err := Read(abs)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("params: reloaded", "file", abs, "values", len(vals))
			s.Queue(vals)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
