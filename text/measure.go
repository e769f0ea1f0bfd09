package text

import (
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sticker/internal/cache"
)

// DefaultCacheSize is the number of measurements a Measurer remembers.
const DefaultCacheSize = 1024

// measureKey identifies one measurement. The font name is lowercased, as
// Registry lookups are, so that names differing only in case share an entry.
type measureKey struct {
	text string
	font string
	size float64
}

// extent is a measured width and line height.
type extent struct {
	width, height float64
}

// Measurer measures single lines of text. It implements the measurement
// capability sticker elements consume.
//
// Measurer is safe for concurrent use and may be shared between elements.
type Measurer struct {
	registry *Registry
	shaper   *shaper
	results  *cache.Cache[measureKey, extent]
	bufs     sync.Pool
}

// MeasurerOption configures a Measurer.
type MeasurerOption func(*measurerConfig)

type measurerConfig struct {
	registry  *Registry
	shaping   bool
	cacheSize int
}

// WithRegistry selects the fonts a Measurer resolves names against.
// The default is DefaultRegistry().
func WithRegistry(r *Registry) MeasurerOption {
	return func(c *measurerConfig) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithShaping measures with HarfBuzz shaping (go-text/typesetting) instead
// of summing glyph advances and kerning pairs.
func WithShaping(enabled bool) MeasurerOption {
	return func(c *measurerConfig) {
		c.shaping = enabled
	}
}

// WithCacheSize sets how many measurements are remembered.
func WithCacheSize(n int) MeasurerOption {
	return func(c *measurerConfig) {
		c.cacheSize = n
	}
}

// NewMeasurer creates a Measurer.
func NewMeasurer(opts ...MeasurerOption) *Measurer {
	cfg := measurerConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}

	m := &Measurer{
		registry: cfg.registry,
		results:  cache.New[measureKey, extent](cfg.cacheSize),
		bufs: sync.Pool{
			New: func() any { return new(sfnt.Buffer) },
		},
	}
	if cfg.shaping {
		m.shaper = newShaper()
	}
	return m
}

var defaultMeasurer = sync.OnceValue(func() *Measurer { return NewMeasurer() })

// Default returns a shared Measurer over DefaultRegistry.
func Default() *Measurer {
	return defaultMeasurer()
}

// Registry returns the fonts the Measurer resolves names against.
func (m *Measurer) Registry() *Registry {
	return m.registry
}

// Measure returns the advance width of s and the line height of the font,
// both in the same units as fontSize. Unknown font names fall back to the
// system font. A non-positive size, or a registry without any usable font,
// measures as zero.
//
// Line breaks and tabs are measured as spaces: an element holds one line.
func (m *Measurer) Measure(s, fontName string, fontSize float64) (width, height float64) {
	if !(fontSize > 0) || math.IsInf(fontSize, 0) {
		return 0, 0
	}
	s = singleLine(norm.NFC.String(s))
	key := measureKey{text: s, font: strings.ToLower(fontName), size: fontSize}
	ext := m.results.GetOrCreate(key, func() extent {
		return m.measure(s, fontName, fontSize)
	})
	return ext.width, ext.height
}

// Stats reports the measurement cache statistics.
func (m *Measurer) Stats() cache.Stats {
	return m.results.Stats()
}

func (m *Measurer) measure(s, fontName string, size float64) extent {
	src := m.registry.Resolve(fontName)
	if src == nil {
		return extent{}
	}
	buf := m.bufs.Get().(*sfnt.Buffer)
	defer m.bufs.Put(buf)

	ppem := floatToFixed(size)
	var ext extent
	if met, err := src.font.Metrics(buf, ppem, font.HintingNone); err == nil {
		ext.height = fixedToFloat(met.Ascent + met.Descent)
	}
	if s == "" {
		return ext
	}

	if m.shaper != nil {
		if w, err := m.shaper.advance(src, s, size); err == nil {
			ext.width = w
			return ext
		}
	}
	ext.width = sfntAdvance(src.font, buf, s, ppem)
	return ext
}

// sfntAdvance sums glyph advances and pair kerning.
func sfntAdvance(f *sfnt.Font, buf *sfnt.Buffer, s string, ppem fixed.Int26_6) float64 {
	var (
		total fixed.Int26_6
		prev  sfnt.GlyphIndex
		first = true
	)
	for _, r := range s {
		gid, err := f.GlyphIndex(buf, r)
		if err != nil {
			gid = 0
		}
		if !first {
			if kern, err := f.Kern(buf, prev, gid, ppem, font.HintingNone); err == nil {
				total += kern
			}
		}
		if adv, err := f.GlyphAdvance(buf, gid, ppem, font.HintingNone); err == nil {
			total += adv
		}
		prev, first = gid, false
	}
	return math.Max(0, fixedToFloat(total))
}

// singleLine replaces line breaks and tabs with spaces.
func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t':
			return ' '
		}
		return r
	}, s)
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
