package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaper measures text with HarfBuzz shaping from go-text/typesetting,
// which applies kerning, ligatures and contextual alternates.
//
// It caches parsed font.Font objects (which are thread-safe) and creates a
// lightweight font.Face per call (font.Face is NOT safe for concurrent use).
// HarfbuzzShaper instances are pooled since they are not concurrent-safe
// either.
type shaper struct {
	pool sync.Pool

	mu    sync.RWMutex
	fonts map[*FontSource]*font.Font
}

func newShaper() *shaper {
	return &shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[*FontSource]*font.Font),
	}
}

// advance returns the shaped advance width of s at size.
func (s *shaper) advance(src *FontSource, str string, size float64) (float64, error) {
	f, err := s.fontFor(src)
	if err != nil {
		return 0, err
	}
	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	var total float64
	for _, g := range out.Glyphs {
		total += fixedToFloat(g.Advance)
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}

// fontFor returns the cached go-text font for src, parsing it on first use.
func (s *shaper) fontFor(src *FontSource) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fonts[src]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fonts[src]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}
	s.fonts[src] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
