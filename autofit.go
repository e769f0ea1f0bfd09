package sticker

import "math"

const (
	// MinFontSize is the smallest font size AutoFit and resize gestures produce.
	MinFontSize = 6

	// MinContentWidth keeps an empty element wide enough to be tapped.
	MinContentWidth = 8
)

// Measurer measures a single line of text. It is supplied by the host; the
// text subpackage provides one backed by real fonts.
//
// Implementations must be pure: the same input always yields the same size.
type Measurer interface {
	Measure(text, fontName string, fontSize float64) (width, height float64)
}

// Insets is the padding between the bounds and the text.
type Insets struct {
	Horizontal, Vertical float64
}

// DefaultInsets is the padding used by new elements.
var DefaultInsets = Insets{Horizontal: 8, Vertical: 4}

// AutoFit sizes an element to its text. It holds no state of its own.
type AutoFit struct {
	Measurer Measurer
	Insets   Insets
}

// IdealWidth returns the width of bounds that exactly contains text set in
// the given font, including horizontal insets.
//
// Width grows with the text: extending a string never yields a smaller
// width, so resizing on every keystroke cannot oscillate.
func (af AutoFit) IdealWidth(text, fontName string, fontSize float64) float64 {
	w, _ := af.Measurer.Measure(text, fontName, fontSize)
	return math.Max(MinContentWidth, math.Ceil(w)) + 2*af.Insets.Horizontal
}

// IdealHeight returns the height of bounds for one line in the given font.
// It does not depend on the text.
func (af AutoFit) IdealHeight(fontName string, fontSize float64) float64 {
	_, h := af.Measurer.Measure("", fontName, fontSize)
	return math.Ceil(h) + 2*af.Insets.Vertical
}

// IdealSize combines IdealWidth and IdealHeight.
func (af AutoFit) IdealSize(text, fontName string, fontSize float64) Size {
	return Size{
		Width:  af.IdealWidth(text, fontName, fontSize),
		Height: af.IdealHeight(fontName, fontSize),
	}
}

// Fits reports whether text at fontSize fits inside box.
func (af AutoFit) Fits(text, fontName string, fontSize float64, box Size) bool {
	s := af.IdealSize(text, fontName, fontSize)
	return s.Width <= box.Width && s.Height <= box.Height
}

// FitFontSize returns the largest font size not above maxSize at which text
// fits inside box. It never returns less than MinFontSize, even when nothing
// fits.
func (af AutoFit) FitFontSize(text, fontName string, maxSize float64, box Size) float64 {
	if maxSize <= MinFontSize {
		return MinFontSize
	}
	if af.Fits(text, fontName, maxSize, box) {
		return maxSize
	}
	lo, hi := float64(MinFontSize), maxSize
	if !af.Fits(text, fontName, lo, box) {
		return lo
	}
	// Width and height grow with the font size; bisect to a quarter point.
	for hi-lo > 0.25 {
		mid := (lo + hi) / 2
		if af.Fits(text, fontName, mid, box) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
