// Package raster draws stick-figure previews of skeleton poses and encodes
// them to image files.
package raster

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"biped-anim/internal/mathutil"
	"biped-anim/internal/postprocess"
	sk "biped-anim/internal/skeleton"
)

// HiddenBeyond is the distance from the origin past which a joint counts as
// hidden. Objects hidden by displacement land far outside it.
const HiddenBeyond = 1e6

// Options control a preview render.
type Options struct {
	Size        int
	Supersample int
	// Margin is the empty border around the fitted figure, in output pixels.
	Margin int
	// Stroke is the bone line width in output pixels.
	Stroke float64
}

// DefaultOptions returns the settings used by the preview tools.
func DefaultOptions() Options {
	return Options{Size: 256, Supersample: 2, Margin: 16, Stroke: 3}
}

// segment is one parent-to-child bone line in screen space.
type segment struct {
	bone  sk.BoneID
	a, b  [2]float64
	depth float64
	dir   mathutil.Vec3
}

// RenderPose draws s as lit bone strokes on a transparent square canvas.
// The figure is fitted to the canvas from its visible joints only.
func RenderPose(s sk.Skeleton, opt Options) *image.NRGBA {
	if opt.Supersample < 1 {
		opt.Supersample = 1
	}
	renderSize := opt.Size * opt.Supersample
	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))

	joints := sk.Joints(s)
	view := make([]mathutil.Vec3, len(joints))
	visible := make([]bool, len(joints))

	// Bounding box of the visible joints in view space
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	found := false
	for i, j := range joints {
		if !j.IsFinite() || j.Len() > HiddenBeyond {
			continue
		}
		visible[i] = true
		found = true
		v := mathutil.PreviewView.MulVec3(j)
		view[i] = v
		p := r3.Vec{X: v[0], Y: v[1], Z: v[2]}
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	if !found {
		return finish(img, opt)
	}

	center := r3.Scale(0.5, r3.Add(lo, hi))
	extent := r3.Sub(hi, lo)
	span := math.Max(extent.X, extent.Y)
	if span < 0.001 {
		span = 0.001
	}
	margin := float64(opt.Margin * opt.Supersample)
	scale := (float64(renderSize) - 2*margin) / span
	depthSpan := math.Max(extent.Z, 0.001)

	project := func(v mathutil.Vec3) [2]float64 {
		return [2]float64{
			float64(renderSize)/2 + (v[0]-center.X)*scale,
			float64(renderSize)/2 - (v[1]-center.Y)*scale,
		}
	}

	var segs []segment
	for _, id := range sk.AllBones() {
		p, ok := id.Parent()
		if !ok || !visible[id] || !visible[p] {
			continue
		}
		mid := (view[id][2] + view[p][2]) / 2
		segs = append(segs, segment{
			bone:  id,
			a:     project(view[p]),
			b:     project(view[id]),
			depth: (hi.Z - mid) / depthSpan,
			dir:   view[id].Sub(view[p]),
		})
	}

	// Painter's order: farthest first
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].depth > segs[j].depth })

	lc := DefaultLightConfig()
	r := vector.NewRasterizer(renderSize, renderSize)
	width := opt.Stroke * float64(opt.Supersample)
	for _, sg := range segs {
		base := boneColor(sg.bone)
		shade := lc.ComputeShade(sg.dir, sg.depth)
		col := color.NRGBA{
			R: lc.Shade(base.R, shade),
			G: lc.Shade(base.G, shade),
			B: lc.Shade(base.B, shade),
			A: base.A,
		}
		stroke(r, img, sg.a, sg.b, width, col)
		disk(r, img, sg.b, width*0.8, col)
	}

	return finish(img, opt)
}

func finish(img *image.NRGBA, opt Options) *image.NRGBA {
	if opt.Supersample > 1 {
		return postprocess.Downsample(img, opt.Size, opt.Size)
	}
	return img
}

// stroke fills the quad of the given width around segment a-b.
func stroke(r *vector.Rasterizer, dst draw.Image, a, b [2]float64, width float64, col color.Color) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Hypot(dx, dy)
	if l < 1e-6 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	b0 := dst.Bounds()
	r.Reset(b0.Dx(), b0.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(float32(a[0]+nx), float32(a[1]+ny))
	r.LineTo(float32(b[0]+nx), float32(b[1]+ny))
	r.LineTo(float32(b[0]-nx), float32(b[1]-ny))
	r.LineTo(float32(a[0]-nx), float32(a[1]-ny))
	r.ClosePath()
	r.Draw(dst, b0, image.NewUniform(col), image.Point{})
}

// disk fills a 12-gon joint marker centered on c.
func disk(r *vector.Rasterizer, dst draw.Image, c [2]float64, radius float64, col color.Color) {
	const sides = 12
	b0 := dst.Bounds()
	r.Reset(b0.Dx(), b0.Dy())
	r.DrawOp = draw.Over
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / sides
		x := float32(c[0] + radius*math.Cos(theta))
		y := float32(c[1] + radius*math.Sin(theta))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
	r.Draw(dst, b0, image.NewUniform(col), image.Point{})
}
