package sticker

import "golang.org/x/text/unicode/norm"

// BeginTextEditing gives the text content input focus, hiding the handles
// first. A running gesture is ended before focus moves. It does nothing if
// the element is already being edited.
func (e *Element) BeginTextEditing() error {
	switch {
	case e.state == StateClosed:
		return ErrClosed
	case e.state == StateEditing:
		return nil
	case e.state.inGesture():
		e.finishGesture()
	}
	if e.state == StateHandlesVisible {
		e.handles.Hide()
		e.state = StateIdle
		e.events.emit(EventDidHideHandles, e)
	}
	e.state = StateEditing
	e.events.emit(EventDidStartEditing, e)
	return nil
}

// EndTextEditing takes input focus away from the text and shows the handles
// again. It does nothing unless the element is being edited.
func (e *Element) EndTextEditing() {
	if e.state != StateEditing {
		return
	}
	e.state = StateIdle
	e.ShowEditingHandles()
}

// EditText replaces the content while the element is being edited and
// refits the width to the new text, keeping the left edge in place.
// Empty text is allowed.
func (e *Element) EditText(s string) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.text = normalizeText(s)
	e.fitWidth()
	return nil
}

// fitWidth resizes the bounds width to the ideal width of the current text.
func (e *Element) fitWidth() {
	w := e.fit.IdealWidth(e.text, e.fontName, e.fontSize)
	if w == e.geom.Bounds.Width {
		return
	}
	e.resizeAnchoredLeft(Size{Width: w, Height: e.geom.Bounds.Height})
}

// fitSize resizes the bounds to the ideal size of the current text and font.
func (e *Element) fitSize() {
	s := e.fit.IdealSize(e.text, e.fontName, e.fontSize)
	if s == e.geom.Bounds.Size() {
		return
	}
	e.resizeAnchoredLeft(s)
}

// resizeAnchoredLeft changes the bounds size so the midpoint of the left
// edge stays where it is in the parent space.
func (e *Element) resizeAnchoredLeft(s Size) {
	g := e.geom
	dw := s.Width - g.Bounds.Width
	g.Center = g.Center.Add(g.Transform.TransformVector(Pt(dw/2, 0)))
	g.Bounds.Width = s.Width
	g.Bounds.Height = s.Height
	e.commit(g, e.fontSize)
}

// normalizeText returns s in Unicode NFC so that equal text measures equally.
func normalizeText(s string) string {
	return norm.NFC.String(s)
}
