package sticker

import "math"

// gestureTarget is what a pan gesture grabbed at touch-down.
type gestureTarget uint8

const (
	targetNone gestureTarget = iota
	targetBody
	targetHandle
)

// gesture tracks one pan from touch-down to release.
type gesture struct {
	target     gestureTarget
	handle     HandleKind
	moved      bool
	start      Geometry
	startFont  float64
	startPoint Point
}

// Tap handles a classified tap at p in the parent space.
//
//   - Idle: a tap on the body shows the handles.
//   - HandlesVisible: the close handle closes the element (if enabled), the
//     resize handles ignore taps, the body gains input focus, anything else
//     hides the handles.
//   - Editing: a tap outside the body ends editing.
func (e *Element) Tap(p Point) {
	switch e.state {
	case StateIdle:
		if e.geom.Contains(p) {
			e.ShowEditingHandles()
		}
	case StateHandlesVisible:
		if k, ok := e.handles.HandleAt(e.geom, p); ok {
			if !e.handles.enabled(k) {
				Logger().Debug("sticker: tap on disabled handle ignored", "element", e.id, "handle", k)
				return
			}
			if k == HandleClose {
				e.close()
			}
			return
		}
		if e.geom.Contains(p) {
			_ = e.BeginTextEditing()
			return
		}
		e.HideEditingHandles()
	case StateEditing:
		if !e.geom.Contains(p) {
			e.EndTextEditing()
		}
	}
}

// PanBegin records the touch-down of a pan at p. No event fires until the
// first movement, so a pan that never moves is indistinguishable from no
// input at all. A pan on the body of an idle element selects it first.
func (e *Element) PanBegin(p Point) {
	switch e.state {
	case StateIdle:
		if !e.geom.Contains(p) {
			return
		}
		e.ShowEditingHandles()
	case StateHandlesVisible:
	default:
		// Editing owns its own drags; a second pan cannot start mid-gesture.
		return
	}

	e.gesture = gesture{
		start:      e.geom,
		startFont:  e.fontSize,
		startPoint: p,
	}
	if k, ok := e.handles.HandleAt(e.geom, p); ok {
		if k == HandleClose {
			return
		}
		if !e.handles.IsResizeEnabled() {
			Logger().Debug("sticker: drag on disabled handle ignored", "element", e.id, "handle", k)
			return
		}
		e.gesture.target = targetHandle
		e.gesture.handle = k
		return
	}
	if e.geom.Contains(p) {
		e.gesture.target = targetBody
	}
}

// PanUpdate applies one movement of the pan. delta is the translation since
// the previous event; p is the current touch position. The first movement
// enters Moving or Resizing and fires EventDidBeginEditing; every movement
// fires EventDidChangeEditing after the geometry is updated. A movement that
// would produce invalid geometry is dropped without any event.
func (e *Element) PanUpdate(p, delta Point) {
	gs := &e.gesture
	if gs.target == targetNone || e.state == StateClosed {
		return
	}
	if !gs.moved && delta.IsZero() && p == gs.startPoint {
		return
	}

	var (
		g    Geometry
		font float64
		ok   bool
	)
	if gs.target == targetBody {
		g, font, ok = e.moveBy(delta)
	} else {
		g, font, ok = e.resizeRotateTo(p)
	}
	if !ok {
		return
	}

	if !gs.moved {
		gs.moved = true
		if gs.target == targetBody {
			e.state = StateMoving
		} else {
			e.state = StateResizing
		}
		e.events.emit(EventDidBeginEditing, e)
	}
	e.geom = g
	e.fontSize = font
	e.events.emit(EventDidChangeEditing, e)
}

// RotateScaleUpdate drags side handle k to p, for gesture layers that
// classify handle drags themselves. The first call starts a resize gesture
// from the handle's current position; finish it with PanEnd or PanCancel.
// Calls are ignored unless the handles are shown and resizing is enabled.
func (e *Element) RotateScaleUpdate(k HandleKind, p Point) {
	if k != HandleLeft && k != HandleRight {
		return
	}
	gs := &e.gesture
	if gs.target != targetHandle || gs.handle != k {
		if e.state != StateHandlesVisible {
			return
		}
		if !e.handles.IsResizeEnabled() {
			Logger().Debug("sticker: drag on disabled handle ignored", "element", e.id, "handle", k)
			return
		}
		e.gesture = gesture{
			target:     targetHandle,
			handle:     k,
			start:      e.geom,
			startFont:  e.fontSize,
			startPoint: e.handles.PositionsFor(e.geom).At(k),
		}
	}
	e.PanUpdate(p, p.Sub(gs.startPoint))
}

// PanEnd finishes the pan. A non-zero final delta is applied first.
func (e *Element) PanEnd(p, delta Point) {
	if !delta.IsZero() {
		e.PanUpdate(p, delta)
	}
	e.finishGesture()
}

// PanCancel aborts the pan. The element keeps the geometry of the last
// update; rolling back is up to the host, typically by applying a Snapshot
// captured at EventDidBeginEditing.
func (e *Element) PanCancel() {
	e.finishGesture()
}

// finishGesture returns from Moving or Resizing to HandlesVisible.
func (e *Element) finishGesture() {
	moved := e.gesture.moved
	e.gesture = gesture{}
	if !moved || !e.state.inGesture() {
		return
	}
	e.state = StateHandlesVisible
	e.events.emit(EventDidEndEditing, e)
}

// moveBy returns the geometry translated by delta. Rotation and scale are
// untouched.
func (e *Element) moveBy(delta Point) (Geometry, float64, bool) {
	g := e.geom
	g.Center = g.Center.Add(delta)
	return e.settle(g, e.fontSize)
}

// resizeRotateTo derives size and rotation jointly from the dragged handle
// at p. The center stays fixed, so the opposite handle is the mirror image
// of the dragged one: the span between them scales with the distance from
// p to the center, and the rotation follows the angle of p around it.
func (e *Element) resizeRotateTo(p Point) (Geometry, float64, bool) {
	gs := &e.gesture
	c := gs.start.Center
	r0 := gs.startPoint.Sub(c)
	r1 := p.Sub(c)
	if !p.IsFinite() || r0.Length() < 1e-6 || r1.Length() < 1e-6 {
		return Geometry{}, 0, false
	}

	scale := r1.Length() / r0.Length()
	b := gs.start.Bounds
	minScale := math.Max(MinFontSize/gs.startFont, e.handles.Size()/b.Width)
	scale = math.Max(scale, minScale)

	rotation := gs.start.Transform.Rotation() + r1.Angle() - r0.Angle()

	g := gs.start
	g.Bounds.Width = b.Width * scale
	g.Bounds.Height = b.Height * scale
	g.Transform = gs.start.Transform.WithRotation(rotation)
	return e.settle(g, gs.startFont*scale)
}
