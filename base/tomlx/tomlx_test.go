// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name   string
	Frames int
	Ratio  float64
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.toml")
	in := testStruct{Name: "galaxy", Frames: 10, Ratio: 1.5}
	require.NoError(t, Save(&in, fn))

	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	over := filepath.Join(dir, "over.toml")
	require.NoError(t, os.WriteFile(base, []byte("Name = \"rain\"\nFrames = 5\n"), 0666))
	require.NoError(t, os.WriteFile(over, []byte("Frames = 7\n"), 0666))

	var out testStruct
	require.NoError(t, OpenFiles(&out, base, over))
	assert.Equal(t, "rain", out.Name)
	assert.Equal(t, 7, out.Frames)
}

func TestOpenErrors(t *testing.T) {
	var out testStruct
	assert.Error(t, Open(&out, filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, ReadBytes(&out, []byte("Frames = = 3")))

	b, err := WriteBytes(testStruct{Name: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(b), "Name = 'x'")
}
