package sticker

import "math"

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromSize returns a rectangle of the given size anchored at the origin.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsDegenerate reports whether the rectangle has no area or is malformed.
func (r Rect) IsDegenerate() bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() &&
		p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// ContainsRect reports whether o lies entirely within r, allowing a small
// tolerance for floating-point error.
func (r Rect) ContainsRect(o Rect) bool {
	const eps = 1e-9
	return o.MinX() >= r.MinX()-eps && o.MaxX() <= r.MaxX()+eps &&
		o.MinY() >= r.MinY()-eps && o.MaxY() <= r.MaxY()+eps
}

// boundingRect returns the smallest rectangle containing all points.
func boundingRect(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
