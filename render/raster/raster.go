// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a software [render.Renderer]: it projects the
// solids of a scene through the camera, shades them with the scene
// lights and fills them back to front with [vector.Rasterizer]
// into an image presented on the surface.
package raster

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"cogentcore.org/gallery/math32"
	"cogentcore.org/gallery/render"
	"cogentcore.org/gallery/system"
	"cogentcore.org/gallery/xyz"
)

// minW is the smallest clip-space w of a drawn vertex: anything closer
// is at or behind the camera plane.
const minW = 1e-5

// Stats are counts about rendering.
type Stats struct {

	// Frames is the total number of frames rendered.
	Frames int

	// Solids is the number of solids drawn in the last frame.
	Solids int

	// Triangles is the number of triangles drawn in the last frame.
	Triangles int

	// Culled is the number of triangles skipped in the last frame
	// because they were back-facing or behind the camera.
	Culled int

	// Points is the number of points drawn in the last frame.
	Points int

	// Lines is the number of line segments drawn in the last frame.
	Lines int
}

// Renderer is the software implementation of [render.Renderer].
type Renderer struct {
	surface system.Surface
	opts    render.Options

	size  image.Point
	ratio float32
	img   *image.RGBA

	ras    vector.Rasterizer
	prims  []primitive
	clip   []point
	meshes map[*xyz.Mesh]*meshData
	bg     background
	stats  Stats

	destroyed bool
}

var _ render.Renderer = &Renderer{}

// New returns a new [Renderer] bound to the given surface.
// It is a [render.NewFunc].
func New(s system.Surface, opts render.Options) (render.Renderer, error) {
	r, err := NewRenderer(s, opts)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// NewRenderer returns a new [Renderer] bound to the given surface.
func NewRenderer(s system.Surface, opts render.Options) (*Renderer, error) {
	if s == nil {
		return nil, fmt.Errorf("raster.New: nil surface")
	}
	return &Renderer{surface: s, opts: opts, ratio: 1, meshes: map[*xyz.Mesh]*meshData{}}, nil
}

func (r *Renderer) SetSize(width, height int, pixelRatio float32) {
	if r.destroyed {
		return
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	r.ratio = pixelRatio
	sz := render.BufferSize(width, height, pixelRatio)
	if sz == r.size && r.img != nil {
		return
	}
	r.size = sz
	if sz == (image.Point{}) {
		r.img = nil
		return
	}
	r.img = image.NewRGBA(image.Rectangle{Max: sz})
	slog.Debug("raster: resized", "size", sz, "ratio", pixelRatio)
}

func (r *Renderer) Size() image.Point {
	return r.size
}

func (r *Renderer) PixelRatio() float32 {
	return r.ratio
}

// Stats returns the rendering counts.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// CachedMeshes returns the number of meshes data is kept for.
func (r *Renderer) CachedMeshes() int {
	return len(r.meshes)
}

// Image returns a copy of the last rendered image, or nil.
func (r *Renderer) Image() *image.RGBA {
	if r.img == nil {
		return nil
	}
	return clone.AsRGBA(r.img)
}

func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	r.meshes = nil
	r.img = nil
	r.prims = nil
	r.bg = background{}
}

func (r *Renderer) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	switch {
	case r.destroyed:
		return render.ErrDestroyed
	case r.img == nil:
		return fmt.Errorf("raster: render with an empty size %v", r.size)
	case sc == nil || cam == nil:
		return fmt.Errorf("raster: render needs a scene and a camera")
	}
	r.stats = Stats{Frames: r.stats.Frames + 1}
	r.clear(sc)

	lt := newLighting(sc)
	r.prims = r.prims[:0]
	for _, sld := range sc.RenderSolids() {
		r.addSolid(sld, cam, lt)
	}
	// painter's algorithm: far to near, keeping scene order for ties
	slices.SortStableFunc(r.prims, func(a, b primitive) int {
		return cmp.Compare(b.depth, a.depth)
	})
	for i := range r.prims {
		r.fill(&r.prims[i])
	}
	return r.surface.Present(r.img)
}

func (r *Renderer) clear(sc *xyz.Scene) {
	if sc.BackgroundImage != nil {
		draw.Draw(r.img, r.img.Bounds(), r.bg.scaled(sc.BackgroundImage, r.size, r.opts.Antialias), image.Point{}, draw.Src)
		return
	}
	bg := r.opts.ClearColor
	if bg == (color.RGBA{}) {
		bg = sc.Background
	}
	if !r.opts.Alpha {
		bg.A = 255
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// background caches the background image scaled to the buffer size.
type background struct {
	src  image.Image
	size image.Point
	img  *image.RGBA
}

func (bg *background) scaled(src image.Image, size image.Point, smooth bool) *image.RGBA {
	if bg.img != nil && bg.src == src && bg.size == size {
		return bg.img
	}
	filter := transform.NearestNeighbor
	if smooth {
		filter = transform.Linear
	}
	bg.src, bg.size = src, size
	bg.img = transform.Resize(src, size.X, size.Y, filter)
	return bg.img
}

// meshData is the data kept for a mesh between frames.
type meshData struct {
	version int
	warned  bool

	// normals are computed for triangle meshes without normals.
	normals []math32.Vector3

	// clip and world are the vertices in clip space and world space.
	clip  []math32.Vector4
	world []math32.Vector3
}

func (r *Renderer) meshData(ms *xyz.Mesh) *meshData {
	md, ok := r.meshes[ms]
	if !ok {
		md = &meshData{version: -1}
		r.meshes[ms] = md
		ms.OnDestroy(func() {
			delete(r.meshes, ms)
		})
	}
	if md.version != ms.Version() {
		md.version = ms.Version()
		md.warned = false
		md.normals = nil
	}
	return md
}

func (md *meshData) project(ms *xyz.Mesh, mvp, world *math32.Matrix4) {
	n := len(ms.Positions)
	md.clip = slices.Grow(md.clip[:0], n)[:n]
	md.world = slices.Grow(md.world[:0], n)[:n]
	for i, p := range ms.Positions {
		md.clip[i] = math32.Vector4FromVector3(p, 1).MulMatrix4(mvp)
		md.world[i] = p.MulMatrix4AsPoint(world)
	}
}

func (r *Renderer) addSolid(sld *xyz.Solid, cam *xyz.Camera, lt *lighting) {
	ms, mt := sld.Mesh, sld.Material
	md := r.meshData(ms)
	if err := ms.Validate(); err != nil {
		if !md.warned {
			md.warned = true
			slog.Warn("raster: skipping solid", "solid", sld.Path(), "err", err)
		}
		return
	}
	r.stats.Solids++
	var mvp math32.Matrix4
	cam.ModelViewProjection(sld.AsNodeBase(), &mvp)
	world := &sld.Pose.WorldMatrix
	md.project(ms, &mvp, world)

	switch ms.Kind {
	case xyz.Triangles:
		if len(ms.Normals) == 0 && md.normals == nil {
			md.normals = ms.VertexNormals()
		}
		r.addTriangles(ms, mt, md, world, lt)
	case xyz.Points:
		r.addPoints(ms, mt, md)
	case xyz.Lines:
		r.addLines(ms, mt, md)
	}
}

// toScreen returns the position in device pixels of a clip-space
// vertex, and its normalized depth.
func (r *Renderer) toScreen(c math32.Vector4) (point, float32) {
	inv := 1 / c.W
	x := (c.X*inv + 1) / 2 * float32(r.size.X)
	y := (1 - c.Y*inv) / 2 * float32(r.size.Y)
	if !r.opts.Antialias {
		x, y = math32.Floor(x+0.5), math32.Floor(y+0.5)
	}
	return point{x, y}, c.Z * inv
}

func (r *Renderer) addTriangles(ms *xyz.Mesh, mt *xyz.Material, md *meshData, world *math32.Matrix4, lt *lighting) {
	norms := ms.Normals
	if len(norms) == 0 {
		norms = md.normals
	}
	for i := 0; i+2 < len(ms.Indexes); i += 3 {
		ia, ib, ic := ms.Indexes[i], ms.Indexes[i+1], ms.Indexes[i+2]
		ca, cb, cc := md.clip[ia], md.clip[ib], md.clip[ic]
		if ca.W <= minW || cb.W <= minW || cc.W <= minW {
			r.stats.Culled++
			continue
		}
		pa, za := r.toScreen(ca)
		pb, zb := r.toScreen(cb)
		pc, zc := r.toScreen(cc)
		// screen y points down, so counter-clockwise triangles have a negative area
		area := (pb.X-pa.X)*(pc.Y-pa.Y) - (pc.X-pa.X)*(pb.Y-pa.Y)
		front := area < 0
		if !front && mt.CullBack {
			r.stats.Culled++
			continue
		}
		depth := (za + zb + zc) / 3
		base := vertexColor(ms, mt, ia, ib, ic)
		var clr color.NRGBA
		if mt.Unlit {
			clr = toNRGBA(base.Add(colorVector(mt.Emissive)), mt.Color.A)
		} else {
			n := norms[ia].Add(norms[ib]).Add(norms[ic]).MulMatrix4AsDirection(world).Normal()
			if !front {
				n = n.Negate()
			}
			pos := md.world[ia].Add(md.world[ib]).Add(md.world[ic]).MulScalar(1.0 / 3)
			clr = toNRGBA(lt.shade(base, colorVector(mt.Emissive), pos, n), mt.Color.A)
		}
		if mt.Wireframe {
			r.addLine(pa, pb, depth, clr)
			r.addLine(pb, pc, depth, clr)
			r.addLine(pc, pa, depth, clr)
			continue
		}
		if area == 0 {
			continue
		}
		r.prims = append(r.prims, primitive{pts: [4]point{pa, pb, pc}, n: 3, depth: depth, color: clr})
		r.stats.Triangles++
	}
}

func (r *Renderer) addPoints(ms *xyz.Mesh, mt *xyz.Material, md *meshData) {
	for i, c := range md.clip {
		if c.W <= minW {
			continue
		}
		p, depth := r.toScreen(c)
		size := mt.PointSize * r.ratio
		if mt.SizeAttenuation {
			size = mt.PointSize * float32(r.size.Y) / 2 / c.W
		}
		clr := toNRGBA(vertexColor(ms, mt, uint32(i)), mt.Color.A)
		r.addSquare(p, max(size, 1)/2, depth, clr)
		r.stats.Points++
	}
}

func (r *Renderer) addLines(ms *xyz.Mesh, mt *xyz.Material, md *meshData) {
	for i := 0; i+1 < len(ms.Indexes); i += 2 {
		ia, ib := ms.Indexes[i], ms.Indexes[i+1]
		ca, cb := md.clip[ia], md.clip[ib]
		if ca.W <= minW || cb.W <= minW {
			continue
		}
		pa, za := r.toScreen(ca)
		pb, zb := r.toScreen(cb)
		r.addLine(pa, pb, (za+zb)/2, toNRGBA(vertexColor(ms, mt, ia, ib), mt.Color.A))
	}
}

// addLine adds a line as a quad one device pixel wide at a pixel ratio of 1.
func (r *Renderer) addLine(a, b point, depth float32, clr color.NRGBA) {
	hw := max(r.ratio, 1) / 2
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math32.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		r.addSquare(a, hw, depth, clr)
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	r.prims = append(r.prims, primitive{
		pts:   [4]point{{a.X + nx, a.Y + ny}, {b.X + nx, b.Y + ny}, {b.X - nx, b.Y - ny}, {a.X - nx, a.Y - ny}},
		n:     4,
		depth: depth,
		color: clr,
	})
	r.stats.Lines++
}

func (r *Renderer) addSquare(c point, half, depth float32, clr color.NRGBA) {
	r.prims = append(r.prims, primitive{
		pts:   [4]point{{c.X - half, c.Y - half}, {c.X + half, c.Y - half}, {c.X + half, c.Y + half}, {c.X - half, c.Y + half}},
		n:     4,
		depth: depth,
		color: clr,
	})
}

// fill draws the primitive over the image, rasterizing only its
// bounding box clipped to the image.
func (r *Renderer) fill(p *primitive) {
	r.clip = clipPolygon(r.clip[:0], p.pts[:p.n], float32(r.size.X), float32(r.size.Y))
	if len(r.clip) < 3 {
		return
	}
	minX, minY := r.clip[0].X, r.clip[0].Y
	maxX, maxY := minX, minY
	for _, pt := range r.clip[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	bb := image.Rect(int(math32.Floor(minX)), int(math32.Floor(minY)), int(math32.Floor(maxX))+1, int(math32.Floor(maxY))+1)
	bb = bb.Intersect(r.img.Bounds())
	if bb.Empty() {
		return
	}
	ox, oy := float32(bb.Min.X), float32(bb.Min.Y)
	r.ras.Reset(bb.Dx(), bb.Dy())
	r.ras.DrawOp = draw.Over
	r.ras.MoveTo(r.clip[0].X-ox, r.clip[0].Y-oy)
	for _, pt := range r.clip[1:] {
		r.ras.LineTo(pt.X-ox, pt.Y-oy)
	}
	r.ras.ClosePath()
	r.ras.Draw(r.img, bb, image.NewUniform(p.color), image.Point{})
}
