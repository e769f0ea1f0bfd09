package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFontName is returned when a font is registered without a name.
	ErrEmptyFontName = errors.New("text: empty font name")

	// ErrNilSource is returned when a nil FontSource is registered.
	ErrNilSource = errors.New("text: nil font source")
)
