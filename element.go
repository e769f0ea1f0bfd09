package sticker

import (
	"math"

	"github.com/google/uuid"

	"github.com/gogpu/sticker/text"
)

// Element is an editable text annotation placed on a canvas.
//
// It owns its text, appearance, geometry and editing handles, and drives the
// interaction state machine:
//
//	Idle --ShowEditingHandles--> HandlesVisible --tap body--> Editing
//	  ^                            |    ^   |                    |
//	  +----HideEditingHandles------+    |   +--pan--> Moving /   |
//	                                    |             Resizing   |
//	                                    +--focus lost------------+
//
// Tapping the close handle moves any visible element to the terminal
// Closed state.
//
// Element is not safe for concurrent use. All input must be delivered from
// one goroutine, the way a UI event loop delivers it.
type Element struct {
	id uuid.UUID

	text        string
	textColor   RGBA
	borderColor RGBA
	fontName    string
	fontSize    float64
	alpha       float64
	shadow      bool

	geom     Geometry
	area     Rect
	restrict bool

	state   State
	handles *HandleSet
	fit     AutoFit
	events  Notifier
	gesture gesture
}

// NewElement creates an element with default geometry: identity transform,
// centered on the origin (or the WithCenter point), sized to its text.
func NewElement(opts ...Option) *Element {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.measurer == nil {
		o.measurer = text.Default()
	}

	e := &Element{
		id:          uuid.New(),
		text:        normalizeText(o.text),
		textColor:   o.textColor,
		borderColor: o.borderColor,
		fontName:    o.fontName,
		fontSize:    o.fontSize,
		alpha:       1,
		shadow:      true,
		area:        o.area,
		restrict:    o.restrict,
		handles:     NewHandleSet(o.handleSize),
		fit:         AutoFit{Measurer: o.measurer, Insets: o.insets},
	}
	for k, icon := range o.icons {
		e.handles.SetIcon(k, icon)
	}

	size := e.fit.IdealSize(e.text, e.fontName, e.fontSize)
	if !e.commit(DefaultGeometry(o.center, size), e.fontSize) {
		// A measurer returning garbage must not leave the element degenerate.
		e.geom = DefaultGeometry(o.center, Size{Width: MinContentWidth, Height: e.fontSize})
	}
	return e
}

// ID returns the element's identity.
func (e *Element) ID() uuid.UUID { return e.id }

// Events returns the notifier through which the element reports changes.
func (e *Element) Events() *Notifier { return &e.events }

// State returns the current interaction state.
func (e *Element) State() State { return e.state }

// IsEditing reports whether the text content has input focus.
func (e *Element) IsEditing() bool { return e.state == StateEditing }

// HandlesVisible reports whether the border and handles are shown.
func (e *Element) HandlesVisible() bool { return e.handles.Visible() }

// IsClosed reports whether the close handle was tapped.
func (e *Element) IsClosed() bool { return e.state == StateClosed }

// Text returns the current content.
func (e *Element) Text() string { return e.text }

// TextColor returns the text color.
func (e *Element) TextColor() RGBA { return e.textColor }

// SetTextColor sets the text color.
func (e *Element) SetTextColor(c RGBA) { e.textColor = c }

// BorderColor returns the border stroke color.
func (e *Element) BorderColor() RGBA { return e.borderColor }

// SetBorderColor sets the border stroke color.
func (e *Element) SetBorderColor(c RGBA) { e.borderColor = c }

// FontName returns the font name.
func (e *Element) FontName() string { return e.fontName }

// FontSize returns the font size.
func (e *Element) FontSize() float64 { return e.fontSize }

// TextAlpha returns the text opacity in [0, 1].
func (e *Element) TextAlpha() float64 { return e.alpha }

// SetTextAlpha sets the text opacity, clamped to [0, 1]. Border and handle
// opacity are unaffected.
func (e *Element) SetTextAlpha(v float64) { e.alpha = clamp01(v) }

// ShowsContentShadow reports whether the text is drawn with a shadow.
func (e *Element) ShowsContentShadow() bool { return e.shadow }

// SetShowsContentShadow toggles the text shadow.
func (e *Element) SetShowsContentShadow(v bool) { e.shadow = v }

// CloseEnabled reports whether the close handle is enabled.
func (e *Element) CloseEnabled() bool { return e.handles.IsCloseEnabled() }

// SetCloseEnabled enables or disables the close handle.
func (e *Element) SetCloseEnabled(v bool) { e.handles.SetCloseEnabled(v) }

// ResizingEnabled reports whether the resize/rotate handles are enabled.
func (e *Element) ResizingEnabled() bool { return e.handles.IsResizeEnabled() }

// SetResizingEnabled enables or disables the resize/rotate handles.
func (e *Element) SetResizingEnabled(v bool) { e.handles.SetResizeEnabled(v) }

// SetHandleIcons replaces the icons of the three handles.
func (e *Element) SetHandleIcons(closeIcon, left, right Icon) {
	e.handles.SetIcon(HandleClose, closeIcon)
	e.handles.SetIcon(HandleLeft, left)
	e.handles.SetIcon(HandleRight, right)
}

// HandleSize returns the diameter of the handles.
func (e *Element) HandleSize() float64 { return e.handles.Size() }

// Handles returns the three handles at their current positions.
func (e *Element) Handles() []Handle { return e.handles.Handles(e.geom) }

// Geometry returns the element's placement.
func (e *Element) Geometry() Geometry { return e.geom }

// Transform returns the element's affine transform.
func (e *Element) Transform() Matrix { return e.geom.Transform }

// Center returns the element's center in the parent space.
func (e *Element) Center() Point { return e.geom.Center }

// Bounds returns the untransformed content rectangle.
func (e *Element) Bounds() Rect { return e.geom.Bounds }

// MoveRestricted reports whether moves and resizes are kept inside the
// reference area.
func (e *Element) MoveRestricted() bool { return e.restrict }

// SetMoveRestriction toggles move restriction. Turning it on clamps the
// current geometry at once.
func (e *Element) SetMoveRestriction(v bool) {
	e.restrict = v
	if v {
		e.commit(e.geom, e.fontSize)
	}
}

// ReferenceArea returns the parent region used by move restriction.
func (e *Element) ReferenceArea() Rect { return e.area }

// SetReferenceArea sets the parent region used by move restriction.
func (e *Element) SetReferenceArea(r Rect) error {
	if r.IsDegenerate() {
		Logger().Debug("sticker: reference area rejected", "element", e.id, "rect", r)
		return ErrInvalidGeometry
	}
	e.area = r
	if e.restrict {
		e.commit(e.geom, e.fontSize)
	}
	return nil
}

// SetFontName changes the font and refits the bounds. An empty name selects
// the system font.
func (e *Element) SetFontName(name string) {
	if name == "" {
		name = text.SystemFontName
	}
	e.fontName = name
	e.fitSize()
}

// SetFontSize changes the font size and refits the bounds. Non-positive
// sizes are rejected and the previous size is kept.
func (e *Element) SetFontSize(size float64) error {
	if !validFontSize(size) {
		Logger().Debug("sticker: font size rejected", "element", e.id, "size", size)
		return ErrInvalidFontSize
	}
	e.fontSize = size
	e.fitSize()
	return nil
}

// ShowEditingHandles shows the border and enabled handles. It does nothing
// if they are already shown, while the text is being edited, or after the
// element was closed.
func (e *Element) ShowEditingHandles() {
	if e.state != StateIdle {
		if e.state == StateEditing {
			Logger().Debug("sticker: handles stay hidden while editing", "element", e.id)
		}
		return
	}
	e.events.emit(EventWillShowHandles, e)
	e.handles.Show()
	e.state = StateHandlesVisible
	e.events.emit(EventDidShowHandles, e)
}

// HideEditingHandles hides the border and handles. A running move or resize
// gesture is ended first. It does nothing if the handles are already hidden.
func (e *Element) HideEditingHandles() {
	if e.state.inGesture() {
		e.finishGesture()
	}
	if e.state != StateHandlesVisible {
		return
	}
	e.handles.Hide()
	e.state = StateIdle
	e.events.emit(EventDidHideHandles, e)
}

// ResizeInRect lays the element out so its untransformed content exactly
// fills r, centered on r's center, keeping the current rotation. If the text
// no longer fits, the font size shrinks until it does. The interaction state
// is unchanged and no handle events fire.
func (e *Element) ResizeInRect(r Rect) error {
	if e.state == StateClosed {
		return ErrClosed
	}
	if r.IsDegenerate() {
		Logger().Debug("sticker: resize rect rejected", "element", e.id, "rect", r)
		return ErrInvalidGeometry
	}
	g := Geometry{
		Transform: Rotate(e.geom.Transform.Rotation()),
		Center:    r.Center(),
		Bounds:    RectFromSize(r.Size()),
	}
	size := e.fontSize
	if !e.fit.Fits(e.text, e.fontName, size, r.Size()) {
		size = e.fit.FitFontSize(e.text, e.fontName, size, r.Size())
	}
	if !e.commit(g, size) {
		return ErrInvalidGeometry
	}
	return nil
}

// close moves the element to the terminal state.
func (e *Element) close() {
	e.gesture = gesture{}
	e.handles.Hide()
	e.state = StateClosed
	Logger().Info("sticker: element closed", "element", e.id)
	e.events.emit(EventDidClose, e)
}

// commit installs g and fontSize as the new geometry, clamping them into the
// reference area when move restriction is on. Invalid geometry is rejected
// and the previous state kept.
func (e *Element) commit(g Geometry, fontSize float64) bool {
	g, fontSize, ok := e.settle(g, fontSize)
	if ok {
		e.geom = g
		e.fontSize = fontSize
	}
	return ok
}

// settle returns g and fontSize as commit would install them, reporting
// false if they must be rejected.
func (e *Element) settle(g Geometry, fontSize float64) (Geometry, float64, bool) {
	if e.restrict && !e.area.IsDegenerate() {
		g, fontSize = constrain(g, fontSize, e.area)
	}
	if !g.Valid() || !validFontSize(fontSize) {
		Logger().Debug("sticker: geometry rejected", "element", e.id,
			"bounds", g.Bounds, "center", g.Center)
		return g, fontSize, false
	}
	return g, fontSize, true
}

// constrain shrinks g (and the font with it) until its frame fits area, then
// moves it inside.
func constrain(g Geometry, fontSize float64, area Rect) (Geometry, float64) {
	f := g.Frame()
	k := 1.0
	if f.Width > area.Width {
		k = area.Width / f.Width
	}
	if f.Height > area.Height {
		k = math.Min(k, area.Height/f.Height)
	}
	if k < 1 {
		g.Bounds.Width *= k
		g.Bounds.Height *= k
		fontSize = math.Max(MinFontSize, fontSize*k)
		Logger().Debug("sticker: frame scaled into reference area", "factor", k)
	}
	return g.clampInto(area), fontSize
}

func validFontSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 0) && !math.IsNaN(size)
}
