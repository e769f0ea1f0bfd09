package preview

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/sticker"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// drawBorder strokes the transformed bounds with the border color.
func (r *Renderer) drawBorder(dst draw.Image, e *sticker.Element) {
	z := newRasterizer(dst)
	c := e.Geometry().Corners()
	for i := range c {
		strokeSegment(z, dst, c[i], c[(i+1)%len(c)], r.borderWidth)
	}
	fill(z, dst, e.BorderColor())
}

// drawHandles fills a disc for every visible handle and marks it: a cross
// for close, a bar along the element's x axis for resize.
func (r *Renderer) drawHandles(dst draw.Image, e *sticker.Element) {
	g := e.Geometry()
	axis := g.Transform.TransformVector(sticker.Pt(1, 0))
	if l := axis.Length(); l > 0 {
		axis = axis.Mul(1 / l)
	}
	radius := e.HandleSize() * 0.4
	for _, h := range e.Handles() {
		if !h.Visible {
			continue
		}

		z := newRasterizer(dst)
		circle(z, dst, h.Position, radius)
		fill(z, dst, e.BorderColor())

		z = newRasterizer(dst)
		arm := radius * 0.5
		if h.Kind == sticker.HandleClose {
			d1 := axis.Rotate(math.Pi / 4).Mul(arm)
			d2 := axis.Rotate(-math.Pi / 4).Mul(arm)
			strokeSegment(z, dst, h.Position.Sub(d1), h.Position.Add(d1), r.borderWidth)
			strokeSegment(z, dst, h.Position.Sub(d2), h.Position.Add(d2), r.borderWidth)
		} else {
			d := axis.Mul(arm)
			strokeSegment(z, dst, h.Position.Sub(d), h.Position.Add(d), r.borderWidth)
		}
		fill(z, dst, sticker.White)
	}
}

func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func fill(z *vector.Rasterizer, dst draw.Image, c sticker.RGBA) {
	z.Draw(dst, dst.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

// local converts a parent-space point to rasterizer coordinates.
func local(dst draw.Image, p sticker.Point) (float32, float32) {
	o := dst.Bounds().Min
	return float32(p.X - float64(o.X)), float32(p.Y - float64(o.Y))
}

// strokeSegment adds the quad covering the segment a-b at width w.
func strokeSegment(z *vector.Rasterizer, dst draw.Image, a, b sticker.Point, w float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := sticker.Pt(-d.Y, d.X).Mul(w / 2 / l)
	z.MoveTo(local(dst, a.Add(n)))
	z.LineTo(local(dst, b.Add(n)))
	z.LineTo(local(dst, b.Sub(n)))
	z.LineTo(local(dst, a.Sub(n)))
	z.ClosePath()
}

// circle adds a circle of radius rad around c as four cubic arcs.
func circle(z *vector.Rasterizer, dst draw.Image, c sticker.Point, rad float64) {
	k := rad * kappa
	pt := func(x, y float64) (float32, float32) { return local(dst, c.Add(sticker.Pt(x, y))) }
	cubic := func(x1, y1, x2, y2, x3, y3 float64) {
		ax, ay := pt(x1, y1)
		bx, by := pt(x2, y2)
		cx, cy := pt(x3, y3)
		z.CubeTo(ax, ay, bx, by, cx, cy)
	}
	z.MoveTo(pt(rad, 0))
	cubic(rad, k, k, rad, 0, rad)
	cubic(-k, rad, -rad, k, -rad, 0)
	cubic(-rad, -k, -k, -rad, 0, -rad)
	cubic(k, -rad, rad, -k, rad, 0)
	z.ClosePath()
}
