// Package text measures single lines of text for sticker elements.
//
// The pipeline mirrors how fonts are used on a canvas:
//
//   - FontSource: a parsed TTF/OTF file, shared by every size
//   - Registry: fonts by name, with the Go fonts built in and
//     "Go Regular" as the system font
//   - Measurer: width and line height of a string at a font and size,
//     cached, safe for concurrent use
//
// Advances come from golang.org/x/image/font/sfnt, including kerning.
// WithShaping switches to HarfBuzz shaping from go-text/typesetting, which
// also applies ligatures and contextual forms.
//
// # Example usage
//
//	m := text.NewMeasurer()
//	w, h := m.Measure("Hello", text.SystemFontName, 24)
//
// Custom fonts are registered by name:
//
//	src, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := text.NewRegistry()
//	_ = reg.Register("Roboto", src)
//	m := text.NewMeasurer(text.WithRegistry(reg))
package text
