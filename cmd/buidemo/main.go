// Command buidemo lays out a string with a vector font, fits it into a
// placement area, and writes a PNG preview of the resulting primitives.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/vectorui/bui"
	"github.com/vectorui/bui/blockfont"
	"github.com/vectorui/bui/internal/preview"
	"github.com/vectorui/bui/render"
	"github.com/vectorui/bui/text"
)

// defaultCaption names the library version in block letters.
const defaultCaption = "BUI " + bui.Version

type options struct {
	text     string
	caption  string
	font     string
	backend  string
	width    int
	height   int
	curves   int
	maxLines int
	output   string
	verbose  bool
}

func main() {
	var o options
	flag.StringVar(&o.text, "text", "Hello, bui", "string to lay out")
	flag.StringVar(&o.caption, "caption", defaultCaption, "block font caption")
	flag.StringVar(&o.font, "font", "", "TrueType/OpenType font file (default: Go Regular)")
	flag.StringVar(&o.backend, "backend", "sfnt", "font decoder: sfnt or gotext")
	flag.IntVar(&o.width, "width", 800, "image width")
	flag.IntVar(&o.height, "height", 450, "image height")
	flag.IntVar(&o.curves, "curves", 10, "lines per flattened curve")
	flag.IntVar(&o.maxLines, "max-lines", 1<<16, "line buffer capacity")
	flag.StringVar(&o.output, "output", "buidemo.png", "output file")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	bui.SetLogger(log)

	if err := run(o, log); err != nil {
		log.Error("buidemo failed", "err", err)
		os.Exit(1)
	}
}

func run(o options, log *slog.Logger) error {
	face, err := loadFace(o.font, o.backend)
	if err != nil {
		return err
	}
	cached := text.NewCachedFace(face, text.WithCapacityHint(len(o.text)))

	resX, resY := float32(o.width), float32(o.height)
	title := text.FillText{
		Face:           cached,
		Text:           o.text,
		PlacementArea:  bui.SizeAndCenter{SX: 0.9, SY: 0.4, CX: 0, CY: 0.3},
		CurveLineCount: o.curves,
		ResX:           resX,
		ResY:           resY,
	}.Layout()

	lines := render.NewLineBatch(o.maxLines)
	if err := lines.Set(title.Lines); err != nil {
		var ce *render.CapacityError
		if errors.As(err, &ce) {
			return fmt.Errorf("raise -max-lines to at least %d: %w", ce.Got, err)
		}
		return err
	}

	if !blockfont.Default.Covers(o.caption) {
		log.Warn("caption has characters without block glyphs", "caption", o.caption)
	}
	caption := blockfont.FillText{
		Text:          o.caption,
		PlacementArea: bui.SizeAndCenter{SX: 0.6, SY: 0.15, CX: 0, CY: -0.6},
		ResX:          resX,
		ResY:          resY,
	}.Rects()
	rects := render.NewRectBatch(len(caption) + 1)
	panel := bui.NewRect(title.Bounds.SizeAndCenter(), bui.RGB(0.15, 0.15, 0.2)).Raw()
	if err := rects.Set(append([]bui.RectRaw{panel}, caption...)); err != nil {
		return err
	}

	underline := underlineOf(title.Bounds)
	capsules := render.NewCapsuleBatch(1)
	if err := capsules.Set(underline); err != nil {
		return err
	}

	c := preview.New(o.width, o.height, color.RGBA{A: 255})
	c.FillRects(append([]bui.RectRaw{panel}, caption...))
	c.FillCapsules(underline)
	c.FillOutline(title.Lines, color.White)

	if err := writePNG(o.output, c); err != nil {
		return err
	}

	stats := cached.Stats()
	log.Info("wrote preview",
		"output", o.output,
		"glyphs", len(title.CharBounds),
		"lines", lines.Len(),
		"line_bytes", lines.Size(),
		"rects", rects.Len(),
		"cache_hit_rate", stats.HitRate(),
	)
	return nil
}

func loadFace(path, backend string) (text.Face, error) {
	b, err := text.ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return text.LoadFace(goregular.TTF, b)
	}
	return text.LoadFaceFile(path, b)
}

// underlineOf returns a capsule just below the string bounds. Empty bounds
// get no underline.
func underlineOf(b bui.Points) []bui.CapsuleRaw {
	if b.Width() <= 0 {
		return nil
	}
	y := b.P2Y - 0.05
	return []bui.CapsuleRaw{
		bui.NewCapsule(bui.LineDescriptor{P1X: b.P1X, P1Y: y, P2X: b.P2X, P2Y: y}, 0.01, bui.RGB(0.9, 0.4, 0.2)),
	}
}

func writePNG(path string, c *preview.Canvas) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
