package sticker

import (
	"errors"
	"math"
	"slices"
	"testing"
	"unicode/utf8"
)

// fakeMeasurer measures every rune as half an em and a line as one em.
type fakeMeasurer struct{}

func (fakeMeasurer) Measure(s, _ string, size float64) (float64, float64) {
	return 0.5 * size * float64(utf8.RuneCountInString(s)), size
}

// eventLog records every event an element emits.
type eventLog struct {
	events []Event
}

func (l *eventLog) reset() { l.events = nil }

func watch(e *Element) *eventLog {
	l := &eventLog{}
	e.Events().OnAny(func(ev Event, _ *Element) { l.events = append(l.events, ev) })
	return l
}

// newTestElement returns a 208x32 element centered on (200, 150):
// close handle at (96, 134), left at (96, 150), right at (304, 150).
func newTestElement(t *testing.T, opts ...Option) *Element {
	t.Helper()
	base := []Option{
		WithMeasurer(fakeMeasurer{}),
		WithText("Hello annotation"),
		WithCenter(Pt(200, 150)),
	}
	e := NewElement(append(base, opts...)...)
	if got := e.Bounds().Size(); got != (Size{Width: 208, Height: 32}) {
		t.Fatalf("test element bounds = %+v, want 208x32", got)
	}
	return e
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearPt(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func wantEvents(t *testing.T, l *eventLog, want ...Event) {
	t.Helper()
	if !slices.Equal(l.events, want) {
		t.Errorf("events = %v, want %v", l.events, want)
	}
}

func TestNewElementDefaults(t *testing.T) {
	e := NewElement(WithMeasurer(fakeMeasurer{}))

	if e.Text() != "" {
		t.Errorf("Text() = %q, want empty", e.Text())
	}
	if e.TextColor() != White || e.BorderColor() != Red {
		t.Errorf("colors = %v / %v, want white text and red border", e.TextColor(), e.BorderColor())
	}
	if e.FontName() != "Go Regular" || e.FontSize() != DefaultFontSize {
		t.Errorf("font = %s %v, want system font at %d", e.FontName(), e.FontSize(), DefaultFontSize)
	}
	if e.TextAlpha() != 1 {
		t.Errorf("TextAlpha() = %v, want 1", e.TextAlpha())
	}
	if !e.ShowsContentShadow() || !e.CloseEnabled() || !e.ResizingEnabled() || e.MoveRestricted() {
		t.Error("want shadow, close and resizing on, move restriction off")
	}
	if e.State() != StateIdle || e.HandlesVisible() || e.IsEditing() {
		t.Errorf("new element state = %v, want Idle with hidden handles", e.State())
	}
	if !e.Transform().IsIdentity() || !e.Center().IsZero() {
		t.Error("want identity transform centered on the origin")
	}
	// Empty text keeps a selectable minimum width.
	if got := e.Bounds().Size(); got != (Size{Width: MinContentWidth + 16, Height: 32}) {
		t.Errorf("empty element bounds = %+v", got)
	}
	if e.ID().String() == NewElement(WithMeasurer(fakeMeasurer{})).ID().String() {
		t.Error("elements should get distinct ids")
	}
}

func TestNewElementUsesBundledMeasurer(t *testing.T) {
	short := NewElement(WithText("abc"))
	long := NewElement(WithText("abcdef"))
	if short.Bounds().Width > long.Bounds().Width {
		t.Errorf("width(abc) = %v > width(abcdef) = %v", short.Bounds().Width, long.Bounds().Width)
	}
	if short.Bounds().IsDegenerate() {
		t.Error("bundled measurer produced degenerate bounds")
	}
}

// Scenario A.
func TestShowEditingHandles(t *testing.T) {
	e := newTestElement(t)
	l := watch(e)

	e.ShowEditingHandles()

	wantEvents(t, l, EventWillShowHandles, EventDidShowHandles)
	if e.State() != StateHandlesVisible || !e.HandlesVisible() {
		t.Errorf("state = %v, want HandlesVisible", e.State())
	}
}

func TestWillShowFiresBeforeHandlesAppear(t *testing.T) {
	e := newTestElement(t)
	var visibleAtWill, visibleAtDid bool
	e.Events().On(EventWillShowHandles, func(e *Element) { visibleAtWill = e.HandlesVisible() })
	e.Events().On(EventDidShowHandles, func(e *Element) { visibleAtDid = e.HandlesVisible() })

	e.ShowEditingHandles()

	if visibleAtWill || !visibleAtDid {
		t.Errorf("visible at will/did = %v/%v, want false/true", visibleAtWill, visibleAtDid)
	}
}

func TestShowHideIdempotent(t *testing.T) {
	e := newTestElement(t)
	l := watch(e)

	e.HideEditingHandles()
	wantEvents(t, l)
	if e.State() != StateIdle {
		t.Errorf("hide on hidden changed state to %v", e.State())
	}

	e.ShowEditingHandles()
	l.reset()
	e.ShowEditingHandles()
	wantEvents(t, l)

	e.HideEditingHandles()
	wantEvents(t, l, EventDidHideHandles)
	if e.State() != StateIdle || e.HandlesVisible() {
		t.Errorf("state = %v, want Idle", e.State())
	}
}

// Scenario B.
func TestTapBodyStartsEditing(t *testing.T) {
	e := newTestElement(t)
	e.ShowEditingHandles()
	l := watch(e)

	e.Tap(Pt(200, 150))

	wantEvents(t, l, EventDidHideHandles, EventDidStartEditing)
	if !e.IsEditing() || e.HandlesVisible() {
		t.Errorf("IsEditing/HandlesVisible = %v/%v, want true/false", e.IsEditing(), e.HandlesVisible())
	}
}

func TestShowIgnoredWhileEditing(t *testing.T) {
	e := newTestElement(t)
	if err := e.BeginTextEditing(); err != nil {
		t.Fatal(err)
	}
	l := watch(e)

	e.ShowEditingHandles()

	wantEvents(t, l)
	if e.HandlesVisible() {
		t.Error("handles must not show while editing")
	}
}

func TestFocusLossReshowsHandles(t *testing.T) {
	e := newTestElement(t)
	e.ShowEditingHandles()
	e.Tap(Pt(200, 150))
	l := watch(e)

	e.Tap(Pt(10, 10)) // outside: focus lost

	wantEvents(t, l, EventWillShowHandles, EventDidShowHandles)
	if e.State() != StateHandlesVisible {
		t.Errorf("state = %v, want HandlesVisible", e.State())
	}
}

func TestTapInsideWhileEditingKeepsFocus(t *testing.T) {
	e := newTestElement(t)
	_ = e.BeginTextEditing()
	l := watch(e)

	e.Tap(Pt(210, 150))

	wantEvents(t, l)
	if !e.IsEditing() {
		t.Error("tap inside the text should keep focus")
	}
}

func TestTapIdleBodySelects(t *testing.T) {
	e := newTestElement(t)
	l := watch(e)

	e.Tap(Pt(0, 0)) // miss
	wantEvents(t, l)

	e.Tap(Pt(200, 150))
	wantEvents(t, l, EventWillShowHandles, EventDidShowHandles)
}

func TestTapOutsideHidesHandles(t *testing.T) {
	e := newTestElement(t)
	e.ShowEditingHandles()
	l := watch(e)

	e.Tap(Pt(500, 500))

	wantEvents(t, l, EventDidHideHandles)
	if e.State() != StateIdle {
		t.Errorf("state = %v, want Idle", e.State())
	}
}

func TestTapResizeHandleDoesNothing(t *testing.T) {
	e := newTestElement(t)
	e.ShowEditingHandles()
	l := watch(e)

	e.Tap(Pt(304, 150))

	wantEvents(t, l)
	if e.State() != StateHandlesVisible {
		t.Errorf("state = %v, want HandlesVisible", e.State())
	}
}

func TestTapCloseHandle(t *testing.T) {
	e := newTestElement(t)
	e.ShowEditingHandles()
	l := watch(e)

	e.Tap(Pt(96, 134))

	wantEvents(t, l, EventDidClose)
	if !e.IsClosed() || e.HandlesVisible() {
		t.Errorf("state = %v, want Closed with hidden handles", e.State())
	}

	// Closed is terminal.
	l.reset()
	e.ShowEditingHandles()
	e.Tap(Pt(200, 150))
	e.PanBegin(Pt(200, 150))
	e.PanUpdate(Pt(210, 150), Pt(10, 0))
	if err := e.BeginTextEditing(); !errors.Is(err, ErrClosed) {
		t.Errorf("BeginTextEditing() after close = %v, want ErrClosed", err)
	}
	if err := e.ResizeInRect(Rect{Width: 50, Height: 50}); !errors.Is(err, ErrClosed) {
		t.Errorf("ResizeInRect() after close = %v, want ErrClosed", err)
	}
	wantEvents(t, l)
	if e.Center() != Pt(200, 150) {
		t.Errorf("closed element moved to %v", e.Center())
	}
}

// Scenario D.
func TestTapDisabledCloseHandle(t *testing.T) {
	e := newTestElement(t)
	e.SetCloseEnabled(false)
	e.ShowEditingHandles()
	l := watch(e)

	e.Tap(Pt(96, 134))

	wantEvents(t, l)
	if e.State() != StateHandlesVisible {
		t.Errorf("state = %v, want HandlesVisible", e.State())
	}
}

func TestCloseNeedsVisibleHandles(t *testing.T) {
	e := newTestElement(t)
	l := watch(e)

	e.Tap(Pt(96, 134)) // Idle: this is a tap on the body corner

	if e.IsClosed() || slices.Contains(l.events, EventDidClose) {
		t.Error("close handle must not respond while hidden")
	}
}

// Scenario E.
func TestSetFontSizeRejectsNonPositive(t *testing.T) {
	e := newTestElement(t)
	l := watch(e)
	before := e.Geometry()

	for _, size := range []float64{-5, 0, math.NaN(), math.Inf(1)} {
		if err := e.SetFontSize(size); !errors.Is(err, ErrInvalidFontSize) {
			t.Errorf("SetFontSize(%v) = %v, want ErrInvalidFontSize", size, err)
		}
	}

	if e.FontSize() != DefaultFontSize {
		t.Errorf("FontSize() = %v, want %d", e.FontSize(), DefaultFontSize)
	}
	if e.Geometry() != before {
		t.Error("rejected font size changed the geometry")
	}
	wantEvents(t, l)
}

func TestSetFontSizeRefits(t *testing.T) {
	e := newTestElement(t)
	left := e.Geometry().ToParent(Pt(0, 16))

	if err := e.SetFontSize(12); err != nil {
		t.Fatal(err)
	}

	if got := e.Bounds().Size(); got != (Size{Width: 96 + 16, Height: 12 + 8}) {
		t.Errorf("bounds after SetFontSize(12) = %+v", got)
	}
	b := e.Bounds()
	if got := e.Geometry().ToParent(Pt(b.MinX(), b.Center().Y)); !nearPt(got, left) {
		t.Errorf("left edge moved from %v to %v", left, got)
	}
}

func TestSetFontName(t *testing.T) {
	e := newTestElement(t)
	e.SetFontName("Go Mono")
	if e.FontName() != "Go Mono" {
		t.Errorf("FontName() = %q", e.FontName())
	}
	e.SetFontName("")
	if e.FontName() != "Go Regular" {
		t.Errorf("empty font name should select the system font, got %q", e.FontName())
	}
}

func TestTextAlphaClamped(t *testing.T) {
	e := newTestElement(t)
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		e.SetTextAlpha(tt.in)
		if got := e.TextAlpha(); got != tt.want {
			t.Errorf("SetTextAlpha(%v): TextAlpha() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Scenario F.
func TestTypingGrowsFromLeftEdge(t *testing.T) {
	for _, angle := range []float64{0, 0.7} {
		e := newTestElement(t)
		e.geom.Transform = Rotate(angle)
		leftEdge := func() Point {
			b := e.Bounds()
			return e.Geometry().ToParent(Pt(b.MinX(), b.Center().Y))
		}
		before := leftEdge()

		if err := e.BeginTextEditing(); err != nil {
			t.Fatal(err)
		}
		long := "Hello annotation, typed a lot longer"
		if err := e.EditText(long); err != nil {
			t.Fatal(err)
		}

		want := e.fit.IdealWidth(long, e.FontName(), e.FontSize())
		if e.Bounds().Width != want || want <= 208 {
			t.Errorf("angle %v: width = %v, want ideal width %v", angle, e.Bounds().Width, want)
		}
		if e.Bounds().Height != 32 {
			t.Errorf("angle %v: height changed to %v", angle, e.Bounds().Height)
		}
		if got := leftEdge(); !nearPt(got, before) {
			t.Errorf("angle %v: left edge moved from %v to %v", angle, before, got)
		}
		if e.Transform().Rotation() != Rotate(angle).Rotation() {
			t.Errorf("angle %v: typing changed the rotation", angle)
		}

		// Shrinking works the same way.
		if err := e.EditText(""); err != nil {
			t.Fatal(err)
		}
		if e.Text() != "" || e.Bounds().Width != MinContentWidth+16 {
			t.Errorf("empty text: width = %v", e.Bounds().Width)
		}
		if got := leftEdge(); !nearPt(got, before) {
			t.Errorf("angle %v: left edge moved to %v after shrink", angle, got)
		}
	}
}

func TestEditTextRequiresFocus(t *testing.T) {
	e := newTestElement(t)
	if err := e.EditText("nope"); !errors.Is(err, ErrNotEditing) {
		t.Errorf("EditText() = %v, want ErrNotEditing", err)
	}
	if e.Text() != "Hello annotation" {
		t.Errorf("Text() = %q changed without focus", e.Text())
	}
}

func TestEditTextNormalizes(t *testing.T) {
	e := newTestElement(t)
	_ = e.BeginTextEditing()
	_ = e.EditText("cafe\u0301")
	if e.Text() != "caf\u00e9" {
		t.Errorf("Text() = %q, want NFC form", e.Text())
	}
}

func TestResizeInRect(t *testing.T) {
	e := newTestElement(t)
	e.geom.Transform = Rotate(0.3)
	e.ShowEditingHandles()
	l := watch(e)

	r := Rect{X: 0, Y: 0, Width: 100, Height: 20}
	if err := e.ResizeInRect(r); err != nil {
		t.Fatal(err)
	}

	if e.Bounds().Size() != r.Size() || e.Center() != r.Center() {
		t.Errorf("geometry = %+v, want bounds of %+v", e.Geometry(), r)
	}
	if !near(e.Transform().Rotation(), 0.3) {
		t.Errorf("rotation = %v, want 0.3", e.Transform().Rotation())
	}
	// "Hello annotation" needs 8*size+16 <= 100, so the font shrinks to ~10.5.
	if fs := e.FontSize(); fs > 10.5 || fs < 10.25 {
		t.Errorf("FontSize() = %v, want shrunk to fit", fs)
	}
	if e.State() != StateHandlesVisible {
		t.Errorf("state = %v, ResizeInRect must not change state", e.State())
	}
	wantEvents(t, l)
}

func TestResizeInRectKeepsFontWhenItFits(t *testing.T) {
	e := newTestElement(t)
	if err := e.ResizeInRect(Rect{X: 10, Y: 10, Width: 400, Height: 60}); err != nil {
		t.Fatal(err)
	}
	if e.FontSize() != DefaultFontSize {
		t.Errorf("FontSize() = %v, want unchanged", e.FontSize())
	}
}

func TestResizeInRectRejectsDegenerate(t *testing.T) {
	e := newTestElement(t)
	before := e.Geometry()
	for _, r := range []Rect{{Width: 0, Height: 10}, {Width: 10, Height: -1}, {Width: math.NaN(), Height: 1}} {
		if err := e.ResizeInRect(r); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("ResizeInRect(%+v) = %v, want ErrInvalidGeometry", r, err)
		}
	}
	if e.Geometry() != before {
		t.Error("rejected rect changed the geometry")
	}
}

func TestReferenceArea(t *testing.T) {
	e := newTestElement(t)
	if err := e.SetReferenceArea(Rect{Width: 0, Height: 10}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("SetReferenceArea(degenerate) = %v", err)
	}

	area := Rect{X: 0, Y: 0, Width: 250, Height: 200}
	if err := e.SetReferenceArea(area); err != nil {
		t.Fatal(err)
	}
	if e.ReferenceArea() != area {
		t.Errorf("ReferenceArea() = %+v", e.ReferenceArea())
	}

	e.SetMoveRestriction(true)
	if !area.ContainsRect(e.Geometry().Frame()) {
		t.Errorf("enabling restriction should clamp, frame = %+v", e.Geometry().Frame())
	}
}

func TestHandlesReflectGeometry(t *testing.T) {
	e := newTestElement(t, WithHandleIcons(Icon{Name: "x"}, Icon{Name: "l"}, Icon{Name: "r"}))
	hs := e.Handles()
	if len(hs) != 3 {
		t.Fatalf("Handles() len = %d", len(hs))
	}
	for _, h := range hs {
		if h.Visible {
			t.Errorf("%v handle visible while Idle", h.Kind)
		}
	}
	if hs[0].Icon.Name != "x" || hs[2].Position != Pt(304, 150) {
		t.Errorf("handles = %+v", hs)
	}

	e.ShowEditingHandles()
	e.SetResizingEnabled(false)
	for _, h := range e.Handles() {
		if want := h.Kind == HandleClose; h.Visible != want {
			t.Errorf("%v handle Visible = %v, want %v", h.Kind, h.Visible, want)
		}
	}

	e.SetHandleIcons(Icon{Name: "a"}, Icon{Name: "b"}, Icon{Name: "c"})
	if got := e.Handles()[1].Icon.Name; got != "b" {
		t.Errorf("left icon = %q, want b", got)
	}
}

func TestAppearanceSetters(t *testing.T) {
	e := newTestElement(t, WithTextColor(Black), WithBorderColor(White))
	if e.TextColor() != Black || e.BorderColor() != White {
		t.Error("color options not applied")
	}
	e.SetTextColor(Red)
	e.SetBorderColor(Black)
	e.SetShowsContentShadow(false)
	if e.TextColor() != Red || e.BorderColor() != Black || e.ShowsContentShadow() {
		t.Error("setters not applied")
	}
}
