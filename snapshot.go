package sticker

import "github.com/google/uuid"

// Snapshot is an immutable capture of an element's geometry, meant for a
// host's undo/redo stack. It shares no state with the element, so a stack
// can hold any number of them.
//
// Resizing scales the bounds and the font size together, so the font size
// is captured with the geometry.
type Snapshot struct {
	element  uuid.UUID
	geom     Geometry
	fontSize float64
}

// Capture records the current transform, center, bounds and font size of e.
func Capture(e *Element) Snapshot {
	return Snapshot{element: e.id, geom: e.geom, fontSize: e.fontSize}
}

// ElementID returns the id of the element the snapshot was taken from.
func (s Snapshot) ElementID() uuid.UUID { return s.element }

// Geometry returns the captured geometry.
func (s Snapshot) Geometry() Geometry { return s.geom }

// Transform returns the captured transform.
func (s Snapshot) Transform() Matrix { return s.geom.Transform }

// Center returns the captured center.
func (s Snapshot) Center() Point { return s.geom.Center }

// Bounds returns the captured bounds.
func (s Snapshot) Bounds() Rect { return s.geom.Bounds }

// FontSize returns the captured font size.
func (s Snapshot) FontSize() float64 { return s.fontSize }

// Apply overwrites the transform, center, bounds and font size of e with the
// captured values, all together. An invalid snapshot (such as the zero
// value) or a closed element leaves e untouched. No event fires.
func (s Snapshot) Apply(e *Element) error {
	if e.state == StateClosed {
		return ErrClosed
	}
	if !s.geom.Valid() || !validFontSize(s.fontSize) {
		Logger().Debug("sticker: snapshot rejected",
			"element", e.id, "snapshot", s.element)
		return ErrInvalidGeometry
	}
	e.geom = s.geom
	e.fontSize = s.fontSize
	return nil
}
