package sticker

// DefaultHandleSize is the default diameter of a handle in parent units.
const DefaultHandleSize = 30

// HandleKind identifies one of the three editing handles.
type HandleKind uint8

const (
	// HandleClose dismisses the element.
	HandleClose HandleKind = iota
	// HandleLeft resizes and rotates from the left edge.
	HandleLeft
	// HandleRight resizes and rotates from the right edge.
	HandleRight
)

// String returns the handle name.
func (k HandleKind) String() string {
	switch k {
	case HandleClose:
		return "close"
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	default:
		return "unknown"
	}
}

// Icon is an opaque reference to the image a renderer draws for a handle.
// Loading the image is the host's business.
type Icon struct {
	Name string
}

// Handle describes one handle as a renderer needs it.
type Handle struct {
	Kind     HandleKind
	Position Point
	Icon     Icon
	Visible  bool
}

// HandlePositions holds the parent-space anchor of each handle.
type HandlePositions struct {
	Close, Left, Right Point
}

// At returns the position of the handle of kind k.
func (hp HandlePositions) At(k HandleKind) Point {
	switch k {
	case HandleLeft:
		return hp.Left
	case HandleRight:
		return hp.Right
	default:
		return hp.Close
	}
}

// HandleSet holds the visibility and enable flags of the close and
// resize/rotate handles. It has no geometry of its own: positions are
// derived from the owner's Geometry on every call.
type HandleSet struct {
	visible       bool
	closeEnabled  bool
	resizeEnabled bool
	size          float64
	icons         [3]Icon
}

// NewHandleSet returns a hidden handle set with every handle enabled.
func NewHandleSet(size float64) *HandleSet {
	if size <= 0 {
		size = DefaultHandleSize
	}
	return &HandleSet{
		closeEnabled:  true,
		resizeEnabled: true,
		size:          size,
		icons: [3]Icon{
			HandleClose: {Name: "close"},
			HandleLeft:  {Name: "resize-left"},
			HandleRight: {Name: "resize-right"},
		},
	}
}

// Show makes the set visible.
func (hs *HandleSet) Show() { hs.visible = true }

// Hide makes the set invisible.
func (hs *HandleSet) Hide() { hs.visible = false }

// Visible reports whether the set is shown.
func (hs *HandleSet) Visible() bool { return hs.visible }

// SetCloseEnabled gates the close handle.
func (hs *HandleSet) SetCloseEnabled(v bool) { hs.closeEnabled = v }

// IsCloseEnabled reports whether the close handle responds to input.
func (hs *HandleSet) IsCloseEnabled() bool { return hs.closeEnabled }

// SetResizeEnabled gates both resize/rotate handles.
func (hs *HandleSet) SetResizeEnabled(v bool) { hs.resizeEnabled = v }

// IsResizeEnabled reports whether the resize/rotate handles respond to input.
func (hs *HandleSet) IsResizeEnabled() bool { return hs.resizeEnabled }

// Size returns the handle diameter.
func (hs *HandleSet) Size() float64 { return hs.size }

// SetIcon replaces the icon of one handle.
func (hs *HandleSet) SetIcon(k HandleKind, icon Icon) {
	if k <= HandleRight {
		hs.icons[k] = icon
	}
}

// Icon returns the icon of one handle.
func (hs *HandleSet) Icon(k HandleKind) Icon {
	if k <= HandleRight {
		return hs.icons[k]
	}
	return Icon{}
}

// enabled reports whether handle k would respond to input in a shown set.
func (hs *HandleSet) enabled(k HandleKind) bool {
	if k == HandleClose {
		return hs.closeEnabled
	}
	return hs.resizeEnabled
}

// PositionsFor returns the parent-space anchors of the handles for g:
// close at the top-left corner, left and right at the side midpoints.
func (hs *HandleSet) PositionsFor(g Geometry) HandlePositions {
	b := g.Bounds
	midY := b.Center().Y
	return HandlePositions{
		Close: g.ToParent(Pt(b.MinX(), b.MinY())),
		Left:  g.ToParent(Pt(b.MinX(), midY)),
		Right: g.ToParent(Pt(b.MaxX(), midY)),
	}
}

// HandleAt returns the handle under the parent-space point p, whether or
// not it is enabled. A hidden set never matches. When handles overlap, the
// close handle wins, then the nearest resize handle.
func (hs *HandleSet) HandleAt(g Geometry, p Point) (HandleKind, bool) {
	if !hs.visible {
		return 0, false
	}
	pos := hs.PositionsFor(g)
	r := hs.size / 2

	if pos.Close.Distance(p) <= r {
		return HandleClose, true
	}
	dl, dr := pos.Left.Distance(p), pos.Right.Distance(p)
	switch {
	case dl <= r && dl <= dr:
		return HandleLeft, true
	case dr <= r:
		return HandleRight, true
	}
	return 0, false
}

// HitTest is HandleAt restricted to handles that respond to input.
func (hs *HandleSet) HitTest(g Geometry, p Point) (HandleKind, bool) {
	k, ok := hs.HandleAt(g, p)
	if !ok || !hs.enabled(k) {
		return 0, false
	}
	return k, true
}

// Handles returns every handle with its position and effective visibility.
func (hs *HandleSet) Handles(g Geometry) []Handle {
	pos := hs.PositionsFor(g)
	out := make([]Handle, 0, 3)
	for _, k := range [...]HandleKind{HandleClose, HandleLeft, HandleRight} {
		out = append(out, Handle{
			Kind:     k,
			Position: pos.At(k),
			Icon:     hs.icons[k],
			Visible:  hs.visible && hs.enabled(k),
		})
	}
	return out
}
