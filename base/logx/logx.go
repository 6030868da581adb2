// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the structured logging setup shared by the
// gallery commands: a user log level that depends on the build tags,
// and a compact [slog.Handler] that colors levels on terminals.
package logx

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the -v and -q flags of the gallery command, and it
// defaults to Info, Debug with the debug build tag and Warn with the
// release build tag.
var UserLevel = defaultUserLevel

// level is the dynamic level consulted by every [Handler]
// made with [NewHandler], so that [SetLevel] applies to them.
var level slog.LevelVar

func init() {
	level.Set(UserLevel)
}

// SetLevel sets [UserLevel] and the level of all handlers.
func SetLevel(l slog.Level) {
	UserLevel = l
	level.Set(l)
}

// SetDefault installs a [Handler] writing to w as the default slog logger.
func SetDefault(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored according to its severity when
// the output supports it.
type Handler struct {
	w     io.Writer
	out   *termenv.Output
	mu    *sync.Mutex
	attrs []byte
	group string
}

// NewHandler returns a new [Handler] writing to w, detecting the
// color profile of w.
func NewHandler(w io.Writer) *Handler {
	return newHandler(w, termenv.NewOutput(w))
}

func newHandler(w io.Writer, out *termenv.Output) *Handler {
	return &Handler{w: w, out: out, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 128)
	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, "15:04:05.000")
		buf = append(buf, ' ')
	}
	buf = append(buf, h.levelString(r.Level)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]byte{}, h.attrs...)
	for _, a := range attrs {
		nh.attrs = appendAttr(nh.attrs, h.group, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

// levelString returns the level name, colored for terminals.
func (h *Handler) levelString(l slog.Level) string {
	var clr string
	switch {
	case l >= slog.LevelError:
		clr = "1" // red
	case l >= slog.LevelWarn:
		clr = "3" // yellow
	case l >= slog.LevelInfo:
		clr = "4" // blue
	default:
		clr = "8" // gray
	}
	return h.out.String(l.String()).Foreground(h.out.Color(clr)).String()
}

func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, prefix, ga)
		}
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, group...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	s := a.Value.String()
	if strings.ContainsAny(s, " \t\n\"=") || s == "" {
		s = strconv.Quote(s)
	}
	return append(buf, s...)
}
