package sticker

import "github.com/gogpu/sticker/text"

// DefaultFontSize is the font size of a new element.
const DefaultFontSize = 24

// Option configures an Element during creation.
//
// Example:
//
//	e := sticker.NewElement(
//	    sticker.WithText("Hello"),
//	    sticker.WithCenter(sticker.Pt(200, 120)),
//	    sticker.WithReferenceArea(sticker.Rect{Width: 800, Height: 600}),
//	    sticker.WithMoveRestriction(true),
//	)
type Option func(*options)

// options holds optional configuration for Element creation.
type options struct {
	text        string
	center      Point
	fontName    string
	fontSize    float64
	textColor   RGBA
	borderColor RGBA
	measurer    Measurer
	insets      Insets
	area        Rect
	restrict    bool
	handleSize  float64
	icons       map[HandleKind]Icon
}

// defaultOptions returns the default element options.
func defaultOptions() options {
	return options{
		fontName:    text.SystemFontName,
		fontSize:    DefaultFontSize,
		textColor:   White,
		borderColor: Red,
		insets:      DefaultInsets,
		handleSize:  DefaultHandleSize,
	}
}

// WithText sets the initial text content.
func WithText(s string) Option {
	return func(o *options) {
		o.text = s
	}
}

// WithCenter places the element's center in the parent space.
func WithCenter(p Point) Option {
	return func(o *options) {
		o.center = p
	}
}

// WithFont sets the initial font. An empty name selects the system font;
// a non-positive size keeps DefaultFontSize.
func WithFont(name string, size float64) Option {
	return func(o *options) {
		if name != "" {
			o.fontName = name
		}
		if validFontSize(size) {
			o.fontSize = size
		}
	}
}

// WithTextColor sets the text color.
func WithTextColor(c RGBA) Option {
	return func(o *options) {
		o.textColor = c
	}
}

// WithBorderColor sets the border stroke color.
func WithBorderColor(c RGBA) Option {
	return func(o *options) {
		o.borderColor = c
	}
}

// WithMeasurer injects the text measurement service. By default the
// element measures with text.Default(), which knows the Go fonts.
func WithMeasurer(m Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithInsets sets the padding between the bounds and the text.
func WithInsets(in Insets) Option {
	return func(o *options) {
		o.insets = in
	}
}

// WithReferenceArea sets the parent region used by move restriction.
// Degenerate rectangles are ignored.
func WithReferenceArea(r Rect) Option {
	return func(o *options) {
		if !r.IsDegenerate() {
			o.area = r
		}
	}
}

// WithMoveRestriction keeps the element inside the reference area.
func WithMoveRestriction(v bool) Option {
	return func(o *options) {
		o.restrict = v
	}
}

// WithHandleSize sets the diameter of the handles, which is also their
// touch target.
func WithHandleSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.handleSize = size
		}
	}
}

// WithHandleIcons sets the icons drawn for the close and resize handles.
func WithHandleIcons(closeIcon, left, right Icon) Option {
	return func(o *options) {
		o.icons = map[HandleKind]Icon{
			HandleClose: closeIcon,
			HandleLeft:  left,
			HandleRight: right,
		}
	}
}
