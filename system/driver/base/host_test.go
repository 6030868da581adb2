// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/gallery/system"
)

func TestHostFrames(t *testing.T) {
	h := &Host{}
	var calls []int
	h.RequestFrame(func(now time.Duration) {
		calls = append(calls, 1)
		h.RequestFrame(func(now time.Duration) { calls = append(calls, 3) })
	})
	h2 := h.RequestFrame(func(now time.Duration) { calls = append(calls, 2) })
	h.CancelFrame(h2)
	h.CancelFrame(h2) // no-op

	assert.Equal(t, 1, h.RunFrames(0))
	assert.Equal(t, []int{1}, calls)
	assert.Equal(t, 1, h.Pending())
	assert.Equal(t, 1, h.RunFrames(time.Millisecond))
	assert.Equal(t, []int{1, 3}, calls)
	assert.Equal(t, 3, h.Requests())
	assert.Equal(t, 0, h.RunFrames(2*time.Millisecond))
}

func TestHostCancelDuringFrame(t *testing.T) {
	h := &Host{}
	ran := false
	var second system.FrameHandle
	h.RequestFrame(func(now time.Duration) { h.CancelFrame(second) })
	second = h.RequestFrame(func(now time.Duration) { ran = true })
	assert.Equal(t, 1, h.RunFrames(0))
	assert.False(t, ran)
}

func TestHostResize(t *testing.T) {
	h := &Host{}
	h.Init(system.Sz(100, 50), 1)
	var got []system.Size
	remove := h.OnResize(func(sz system.Size) { got = append(got, sz) })
	assert.Equal(t, 1, h.Observers())

	assert.False(t, h.SetSize(system.Sz(100, 50), 1))
	assert.True(t, h.SetSize(system.Sz(200, 50), 1))
	assert.True(t, h.SetSize(system.Sz(200, 50), 2))
	assert.Equal(t, []system.Size{system.Sz(200, 50), system.Sz(200, 50)}, got)
	assert.Equal(t, float32(2), h.DevicePixelRatio())

	remove()
	assert.Equal(t, 0, h.Observers())
	h.SetSize(system.Sz(300, 50), 2)
	assert.Len(t, got, 2)
}
