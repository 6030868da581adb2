// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galaxy() *Set {
	s := NewSet("galaxy")
	s.AddInt("count", 100000, 100, 100000, 100)
	s.AddFloat("size", 0.01, 0.001, 0.1, 0.001)
	s.AddFloat("spin", 1, -5, 5, 0.001)
	s.AddBool("axes", true)
	s.AddColor("insideColor", color.RGBA{0xff, 0x60, 0x30, 0xff})
	s.AddChoice("blending", "additive", ChoiceItem{"normal", 1}, ChoiceItem{"additive", 2})
	return s
}

func TestValues(t *testing.T) {
	s := galaxy()
	assert.Equal(t, 100000, s.Param("count").Int())
	assert.InDelta(t, 0.01, s.Param("size").Float(), 1e-9)
	assert.True(t, s.Param("axes").Bool())
	assert.Equal(t, color.RGBA{0xff, 0x60, 0x30, 0xff}, s.Param("insideColor").Color())
	assert.Equal(t, "additive", s.Param("blending").Choice())
	assert.Equal(t, float64(2), s.Param("blending").Float())
	assert.Nil(t, s.Param("nope"))

	vals := s.Values()
	assert.Equal(t, int64(100000), vals["count"])
	assert.Equal(t, "#ff6030", vals["insideColor"])
	assert.Equal(t, "additive", vals["blending"])
	assert.Equal(t, true, vals["axes"])
}

func TestSet(t *testing.T) {
	s := galaxy()
	var changes []string
	for _, p := range s.Params() {
		p.OnChange(func(p *Param) { changes = append(changes, p.Name) })
	}
	require.NoError(t, s.Set("count", 250))
	assert.Equal(t, 300, s.Param("count").Int(), "rounded to the step")
	require.NoError(t, s.Set("count", 5e6))
	assert.Equal(t, 100000, s.Param("count").Int(), "clamped")
	require.NoError(t, s.Set("spin", -9.0))
	assert.Equal(t, float64(-5), s.Param("spin").Float())
	require.NoError(t, s.Set("spin", -5))
	require.NoError(t, s.Set("blending", "normal"))
	require.NoError(t, s.Set("insideColor", "#1b3984"))
	assert.Equal(t, []string{"count", "count", "spin", "blending", "insideColor"}, changes)

	assert.ErrorIs(t, s.Set("nope", 1), ErrUnknown)
	assert.Error(t, s.Set("blending", "screen"))
	assert.Error(t, s.Set("blending", 3))
	assert.Error(t, s.Set("size", "big"))
	assert.Error(t, s.Set("insideColor", "#12"))
	assert.Equal(t, "normal", s.Param("blending").Choice())
}

func TestApply(t *testing.T) {
	s := galaxy()
	n := 0
	s.Param("size").OnChange(func(*Param) { n++ })
	s.Queue(map[string]any{"size": 0.05, "axes": false, "other": 1})
	s.Queue(map[string]any{"size": 0.02})
	assert.Equal(t, 0, n)
	assert.Equal(t, 2, s.Apply())
	assert.Equal(t, 1, n)
	assert.InDelta(t, 0.02, s.Param("size").Float(), 1e-9)
	assert.False(t, s.Param("axes").Bool())
	assert.Equal(t, 0, s.Apply())
}

func TestSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "galaxy.toml")
	s := galaxy()
	require.NoError(t, s.Set("spin", 2.5))
	require.NoError(t, s.Set("insideColor", "#112233"))
	require.NoError(t, s.Save(file))

	o := galaxy()
	n, err := o.Open(file)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, s.Values(), o.Values())

	_, err = o.Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "galaxy.toml")
	require.NoError(t, os.WriteFile(file, []byte("spin = 1.0\n"), 0o644))
	s := galaxy()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.Watch(ctx, file) }()
	// give the watcher time to start
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(file, []byte("spin = 3.0\nbranches = 4\n"), 0o644))
	assert.Eventually(t, func() bool {
		s.Apply()
		return s.Param("spin").Float() == 3
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
