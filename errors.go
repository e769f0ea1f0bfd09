package sticker

import "errors"

// Sentinel errors. None of them is fatal: the element keeps its previous
// valid state whenever one is returned.
var (
	// ErrInvalidGeometry is returned when a rectangle has no area or a
	// transform cannot be inverted.
	ErrInvalidGeometry = errors.New("sticker: invalid geometry")

	// ErrInvalidFontSize is returned for a non-positive or non-finite font size.
	ErrInvalidFontSize = errors.New("sticker: font size must be positive")

	// ErrNotEditing is returned when text is edited while the element does
	// not have input focus.
	ErrNotEditing = errors.New("sticker: element is not being edited")

	// ErrClosed is returned by operations on a closed element.
	ErrClosed = errors.New("sticker: element is closed")
)
