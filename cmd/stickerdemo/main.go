// Command stickerdemo plays a scripted editing session on a text sticker
// and saves a preview of the result.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/sticker"
	"github.com/gogpu/sticker/preview"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "sticker.png", "output file")
		label   = flag.String("text", "Hello, sticker!", "text typed into the sticker")
		angle   = flag.Float64("angle", 20, "rotation applied by the resize gesture, in degrees")
		undo    = flag.Bool("undo", false, "undo the drag and resize before saving")
		verbose = flag.Bool("v", false, "log debug records")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sticker.SetLogger(logger)

	area := sticker.Rect{Width: float64(*width), Height: float64(*height)}
	e := sticker.NewElement(
		sticker.WithText("Tap to edit"),
		sticker.WithCenter(area.Center()),
		sticker.WithReferenceArea(area),
		sticker.WithMoveRestriction(true),
	)
	e.Events().OnAny(func(ev sticker.Event, e *sticker.Element) {
		logger.Info("event", "event", ev, "state", e.State(),
			"center", e.Center(), "bounds", e.Bounds().Size())
	})

	before := play(e, *label, *angle*math.Pi/180)
	if *undo {
		if err := before.Apply(e); err != nil {
			log.Fatalf("Failed to undo: %v", err)
		}
		logger.Info("undone", "center", e.Center(), "bounds", e.Bounds().Size())
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	drawBackground(img)
	if err := preview.New().Draw(img, e); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := preview.SavePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Sticker saved to %s (%dx%d)\n", *output, *width, *height)
}

// play drives e through a typical session: select, type, move, then
// resize and rotate with the right handle, leaving the handles visible.
// It returns the geometry from before the gestures.
func play(e *sticker.Element, label string, rotation float64) sticker.Snapshot {
	c := e.Center()

	// Select and focus.
	e.Tap(c)
	e.Tap(c)
	// One keystroke at a time.
	for i := range label {
		_ = e.EditText(label[:i])
	}
	if err := e.EditText(label); err != nil {
		log.Fatalf("Failed to type: %v", err)
	}
	// Tapping outside ends editing and shows the handles again.
	e.Tap(sticker.Pt(1, 1))

	before := sticker.Capture(e)

	// Drag up and to the left in a few steps.
	c = e.Center()
	e.PanBegin(c)
	for range 4 {
		d := sticker.Pt(-25, -15)
		c = c.Add(d)
		e.PanUpdate(c, d)
	}
	e.PanEnd(c, sticker.Point{})

	// Grow by half and rotate with the right handle.
	start := e.Handles()[sticker.HandleRight].Position
	center := e.Center()
	end := center.Add(start.Sub(center).Rotate(rotation).Mul(1.5))
	e.PanBegin(start)
	e.PanEnd(end, end.Sub(start))

	return before
}

func drawBackground(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(b.Dy())
		c := color.NRGBA{
			R: uint8(255 * (0.1 + t*0.4)),
			G: uint8(255 * (0.2 + t*0.3)),
			B: uint8(255 * (0.4 + t*0.2)),
			A: 255,
		}
		draw.Draw(img, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}
