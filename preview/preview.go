package preview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sticker"
	"github.com/gogpu/sticker/internal/parallel"
	"github.com/gogpu/sticker/text"
)

// ErrNoFont is returned when no font can be resolved for an element.
var ErrNoFont = errors.New("preview: no font available")

// DefaultBorderWidth is the stroke width of the element border in pixels.
const DefaultBorderWidth = 2

// shadowAlpha is the opacity of the content shadow relative to the text.
const shadowAlpha = 0.6

// Option configures a Renderer.
type Option func(*Renderer)

// WithRegistry sets the fonts used to set element text.
// By default text.DefaultRegistry() is used.
func WithRegistry(reg *text.Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithBorderWidth sets the border stroke width.
func WithBorderWidth(w float64) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.borderWidth = w
		}
	}
}

// WithWorkers sets how many elements Images renders at once.
// By default one per GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.pool = parallel.New(n)
	}
}

// WithBackground fills images created by Renderer.Image with c.
func WithBackground(c color.Color) Option {
	return func(r *Renderer) {
		r.background = c
	}
}

// Renderer draws elements. It holds no per-element state and is safe for
// concurrent use.
type Renderer struct {
	registry    *text.Registry
	borderWidth float64
	background  color.Color
	pool        *parallel.Pool
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		registry:    text.DefaultRegistry(),
		borderWidth: DefaultBorderWidth,
		background:  color.Transparent,
		pool:        parallel.New(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Image renders e into a new width x height image.
func (r *Renderer) Image(e *sticker.Element, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	if err := r.Draw(img, e); err != nil {
		return nil, err
	}
	return img, nil
}

// Images renders every element into its own width x height image, several
// at a time. The elements must not receive input until Images returns.
func (r *Renderer) Images(ctx context.Context, elems []*sticker.Element, width, height int) ([]*image.RGBA, error) {
	out := make([]*image.RGBA, len(elems))
	err := r.pool.Run(ctx, len(elems), func(i int) error {
		img, err := r.Image(elems[i], width, height)
		if err != nil {
			return fmt.Errorf("preview: element %s: %w", elems[i].ID(), err)
		}
		out[i] = img
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Draw renders e onto dst, whose coordinate space is the element's parent
// space. The text is drawn first, then the border and handles when they
// are visible. A closed element draws nothing.
func (r *Renderer) Draw(dst draw.Image, e *sticker.Element) error {
	if e.IsClosed() {
		return nil
	}
	if err := r.drawText(dst, e); err != nil {
		return err
	}
	if e.HandlesVisible() {
		r.drawBorder(dst, e)
		r.drawHandles(dst, e)
	}
	return nil
}

// drawText sets the text into a layer the size of the bounds and maps the
// layer into dst through the element's geometry.
func (r *Renderer) drawText(dst draw.Image, e *sticker.Element) error {
	g := e.Geometry()
	b := g.Bounds
	w, h := int(math.Ceil(b.Width)), int(math.Ceil(b.Height))
	if w <= 0 || h <= 0 || e.Text() == "" {
		return nil
	}

	src := r.registry.Resolve(e.FontName())
	if src == nil {
		return fmt.Errorf("%w: %q", ErrNoFont, e.FontName())
	}
	face, err := opentype.NewFace(src.Font(), &opentype.FaceOptions{
		Size:    e.FontSize(),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return fmt.Errorf("preview: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{Dst: layer, Face: face}

	// Center the line in the bounds.
	m := face.Metrics()
	adv := fixedToFloat(d.MeasureString(e.Text()))
	lineH := fixedToFloat(m.Ascent + m.Descent)
	x := (b.Width - adv) / 2
	y := (b.Height-lineH)/2 + fixedToFloat(m.Ascent)

	alpha := e.TextAlpha()
	if e.ShowsContentShadow() && alpha > 0 {
		off := math.Max(1, e.FontSize()/20)
		d.Src = image.NewUniform(sticker.Black.WithAlpha(shadowAlpha * alpha).Color())
		d.Dot = toFixedPoint(x+off, y+off)
		d.DrawString(e.Text())
	}
	d.Src = image.NewUniform(e.TextColor().WithAlpha(alpha).Color())
	d.Dot = toFixedPoint(x, y)
	d.DrawString(e.Text())

	xdraw.BiLinear.Transform(dst, layerToParent(g), layer, layer.Bounds(), xdraw.Over, nil)
	return nil
}

// layerToParent maps layer pixels, whose origin is the top-left corner of
// the bounds, into the parent space.
func layerToParent(g sticker.Geometry) f64.Aff3 {
	m := g.Transform
	o := g.ToParent(sticker.Pt(g.Bounds.X, g.Bounds.Y))
	return f64.Aff3{
		m.A, m.B, o.X,
		m.D, m.E, o.Y,
	}
}

// SavePNG encodes img as PNG into the file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func toFixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
