package text

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// SystemFontName is the font used when no font, or an unknown one, is named.
const SystemFontName = "Go Regular"

// Names of the other built-in Go fonts.
const (
	BoldFontName   = "Go Bold"
	ItalicFontName = "Go Italic"
	MonoFontName   = "Go Mono"
)

// Registry maps font names to sources. Lookups ignore case.
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*FontSource
	names map[string]string // folded name -> name as registered
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[string]*FontSource),
		names: make(map[string]string),
	}
}

// defaultRegistry holds the Go fonts. They are embedded, so parsing them
// cannot fail short of a broken x/image build.
var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	builtin := []struct {
		name string
		ttf  []byte
	}{
		{SystemFontName, goregular.TTF},
		{BoldFontName, gobold.TTF},
		{ItalicFontName, goitalic.TTF},
		{MonoFontName, gomono.TTF},
	}
	for _, b := range builtin {
		src, err := NewFontSource(b.ttf)
		if err != nil {
			panic("text: built-in font " + b.name + ": " + err.Error())
		}
		_ = r.Register(b.name, src)
	}
	return r
})

// DefaultRegistry returns the shared registry of built-in Go fonts.
// Fonts registered on it are visible to every default measurer.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Register adds src under name, replacing any font with the same name.
func (r *Registry) Register(name string, src *FontSource) error {
	if name == "" {
		return ErrEmptyFontName
	}
	if src == nil {
		return ErrNilSource
	}
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[key] = src
	r.names[key] = name
	return nil
}

// Lookup returns the font registered under name.
func (r *Registry) Lookup(name string) (*FontSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.fonts[strings.ToLower(name)]
	return src, ok
}

// Resolve returns the font registered under name, falling back to the
// system font. It returns nil only if neither is registered.
func (r *Registry) Resolve(name string) *FontSource {
	if src, ok := r.Lookup(name); ok {
		return src
	}
	src, _ := r.Lookup(SystemFontName)
	return src
}

// Names returns the registered font names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Values(r.names))
}
