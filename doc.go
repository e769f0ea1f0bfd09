// Package sticker provides an interactive text annotation element for Go.
//
// # Overview
//
// A sticker is a single line of text placed on top of a canvas or image.
// The user taps it to reveal a border and three editing handles, taps the
// text to type, drags the body to move it, and drags a side handle to
// resize and rotate it in one gesture. The close handle dismisses it.
//
// The package is headless: it owns the state and the geometry, while the
// host delivers classified input (taps and pans) and draws whatever the
// element reports. The preview subpackage rasterizes an element for tests
// and tools.
//
// # Quick Start
//
//	import "github.com/gogpu/sticker"
//
//	e := sticker.NewElement(
//	    sticker.WithText("Hello"),
//	    sticker.WithCenter(sticker.Pt(200, 120)),
//	)
//	e.Events().On(sticker.EventDidClose, func(e *sticker.Element) {
//	    // remove e from the canvas
//	})
//
//	e.Tap(sticker.Pt(200, 120))         // show the handles
//	e.PanBegin(sticker.Pt(200, 120))    // drag the body
//	e.PanUpdate(sticker.Pt(230, 120), sticker.Pt(30, 0))
//	e.PanEnd(sticker.Pt(230, 120), sticker.Point{})
//
// # Geometry
//
// An element is placed by a Geometry: an untransformed content rectangle
// (Bounds), an affine Matrix applied about its center, and the Center
// point in the parent space. Resizing changes Bounds and the font size
// together, so the Matrix only ever carries rotation.
//
// # Sizing
//
// The width follows the text as it is typed, growing to the right of a
// fixed left edge. Measurement is injected through the Measurer interface;
// by default the text subpackage measures with the Go fonts.
//
// # Undo
//
// Capture returns an immutable Snapshot of an element's geometry and
// Snapshot.Apply restores it, so a host can build an undo stack around the
// EventDidBeginEditing and EventDidEndEditing notifications.
//
// # Logging
//
// The package is silent by default. Call SetLogger with an *slog.Logger to
// receive debug records for rejected input and info records for closes.
//
// # Concurrency
//
// An Element is driven from a single goroutine, like a UI event loop. The
// text.Measurer behind it is safe for concurrent use.
package sticker

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
