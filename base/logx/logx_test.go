// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	h := newHandler(buf, termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii)))
	return slog.New(h)
}

func TestHandler(t *testing.T) {
	defer SetLevel(UserLevel)
	SetLevel(slog.LevelInfo)

	var buf bytes.Buffer
	log := newTestLogger(&buf)
	log.Info("frame rendered", "index", 3, "demo", "hello cube")
	out := buf.String()
	assert.Contains(t, out, "INFO frame rendered index=3 demo=\"hello cube\"\n")

	buf.Reset()
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	log.With("scene", "galaxy").WithGroup("camera").Warn("stale", "aspect", 1.25)
	assert.Contains(t, buf.String(), "WARN stale scene=galaxy camera.aspect=1.25\n")
}

func TestSetLevel(t *testing.T) {
	defer SetLevel(UserLevel)
	SetLevel(slog.LevelDebug)

	var buf bytes.Buffer
	newTestLogger(&buf).Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG shown")
	assert.Equal(t, slog.LevelDebug, UserLevel)
}
