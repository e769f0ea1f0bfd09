package sticker

// Geometry is the placement of an element in its parent's coordinate space.
//
// Bounds is the untransformed content rectangle (its origin is normally
// zero). Transform is applied about the center of Bounds, and the result is
// positioned so that the center of Bounds lands on Center:
//
//	parent = Center + Transform(p - Bounds.Center())
type Geometry struct {
	Transform Matrix
	Center    Point
	Bounds    Rect
}

// DefaultGeometry returns an identity-transformed geometry of the given size
// centered on c.
func DefaultGeometry(c Point, s Size) Geometry {
	return Geometry{
		Transform: Identity(),
		Center:    c,
		Bounds:    RectFromSize(s),
	}
}

// Valid reports whether the bounds have area, the transform is invertible
// and the center is finite.
func (g Geometry) Valid() bool {
	return !g.Bounds.IsDegenerate() && g.Transform.IsInvertible() && g.Center.IsFinite()
}

// ToParent maps a point in bounds space to the parent space.
func (g Geometry) ToParent(p Point) Point {
	return g.Center.Add(g.Transform.TransformPoint(p.Sub(g.Bounds.Center())))
}

// ToLocal maps a point in the parent space back into bounds space.
func (g Geometry) ToLocal(p Point) Point {
	return g.Transform.Invert().TransformPoint(p.Sub(g.Center)).Add(g.Bounds.Center())
}

// Corners returns the transformed corners of the bounds in the parent space,
// clockwise from the top-left corner.
func (g Geometry) Corners() [4]Point {
	b := g.Bounds
	return [4]Point{
		g.ToParent(Pt(b.MinX(), b.MinY())),
		g.ToParent(Pt(b.MaxX(), b.MinY())),
		g.ToParent(Pt(b.MaxX(), b.MaxY())),
		g.ToParent(Pt(b.MinX(), b.MaxY())),
	}
}

// Frame returns the axis-aligned bounding box of the transformed bounds.
func (g Geometry) Frame() Rect {
	c := g.Corners()
	return boundingRect(c[:])
}

// Contains reports whether the parent-space point p hits the transformed
// bounds.
func (g Geometry) Contains(p Point) bool {
	return g.Bounds.Contains(g.ToLocal(p))
}

// clampInto returns g with its center moved so the frame lies inside area.
// When the frame is larger than area along an axis, it is centered on that
// axis instead.
func (g Geometry) clampInto(area Rect) Geometry {
	f := g.Frame()
	dx := clampShift(f.MinX(), f.MaxX(), area.MinX(), area.MaxX())
	dy := clampShift(f.MinY(), f.MaxY(), area.MinY(), area.MaxY())
	g.Center = g.Center.Add(Pt(dx, dy))
	return g
}

// clampShift returns the offset that moves [lo, hi] inside [min, max].
func clampShift(lo, hi, minV, maxV float64) float64 {
	switch {
	case hi-lo > maxV-minV:
		return (minV+maxV)/2 - (lo+hi)/2
	case lo < minV:
		return minV - lo
	case hi > maxV:
		return maxV - hi
	}
	return 0
}
