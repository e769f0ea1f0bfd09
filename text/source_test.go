package text

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(goregular) error = %v", err)
	}
	if !strings.HasPrefix(src.Name(), "Go") {
		t.Errorf("Name() = %q, want a Go font family", src.Name())
	}
	if src.Font() == nil {
		t.Error("Font() returned nil")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("definitely not a font")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewFontSource(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if src != nil {
				t.Error("expected nil source on error")
			}
		})
	}

	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	src, err := NewFontSource(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := range data {
		data[i] = 0
	}

	pristine, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := NewMeasurer(WithRegistry(registryWith(t, "Go", pristine))).Measure("abc", "Go", 24)
	got, _ := NewMeasurer(WithRegistry(registryWith(t, "Copy", src))).Measure("abc", "Copy", 24)
	if got <= 0 || got != want {
		t.Errorf("width after caller reused its buffer = %v, want %v", got, want)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFontSourceFromFile(path); err != nil {
		t.Errorf("NewFontSourceFromFile() error = %v", err)
	}
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied FontSource")
		}
	}()
	cp := *src //nolint:govet // deliberate copy
	_ = cp.Name()
}

func registryWith(t *testing.T, name string, src *FontSource) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := r.Register(name, src); err != nil {
		t.Fatal(err)
	}
	return r
}
