// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import "image/color"

// point is a position in device pixels.
type point struct {
	X, Y float32
}

// primitive is a convex polygon to fill, of up to four points.
type primitive struct {
	pts   [4]point
	n     int
	depth float32
	color color.NRGBA
}

// clipPolygon appends to dst the convex polygon pts clipped to the
// rectangle [0, w] x [0, h] (Sutherland-Hodgman), and returns it.
func clipPolygon(dst, pts []point, w, h float32) []point {
	var a, b [8]point
	in := append(a[:0], pts...)
	edges := []struct {
		inside func(p point) bool
		cross  func(p, q point) point
	}{
		{func(p point) bool { return p.X >= 0 }, func(p, q point) point { return lerpX(p, q, 0) }},
		{func(p point) bool { return p.X <= w }, func(p, q point) point { return lerpX(p, q, w) }},
		{func(p point) bool { return p.Y >= 0 }, func(p, q point) point { return lerpY(p, q, 0) }},
		{func(p point) bool { return p.Y <= h }, func(p, q point) point { return lerpY(p, q, h) }},
	}
	out := b[:0]
	for _, e := range edges {
		out = out[:0]
		for i, p := range in {
			q := in[(i+1)%len(in)]
			pin, qin := e.inside(p), e.inside(q)
			if pin {
				out = append(out, p)
			}
			if pin != qin {
				out = append(out, e.cross(p, q))
			}
		}
		if len(out) == 0 {
			return dst
		}
		in, out = out, in
	}
	return append(dst, in...)
}

func lerpX(p, q point, x float32) point {
	t := (x - p.X) / (q.X - p.X)
	return point{x, p.Y + t*(q.Y-p.Y)}
}

func lerpY(p, q point, y float32) point {
	t := (y - p.Y) / (q.Y - p.Y)
	return point{p.X + t*(q.X-p.X), y}
}
