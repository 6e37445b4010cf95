package blockfont

import (
	"deedles.dev/xiter"

	"github.com/vectorui/bui"
)

const (
	// Thick is the default stroke thickness in cell units.
	Thick = 0.25

	// Spacing is the default gap between character cells in cell units.
	Spacing = 0.25

	// cellAdvance is the width of a character cell.
	cellAdvance = 2

	// cellHeight is the height of every cell and of the whole block.
	cellHeight = 2
)

// Config holds configuration for a block font.
type Config struct {
	// Thick is the stroke thickness in cell units.
	// Default: 0.25
	Thick float32

	// Spacing is the gap between adjacent cells in cell units.
	// Default: 0.25
	Spacing float32

	// Color is the color of every stroke.
	// Default: white
	Color bui.RGBA
}

// DefaultConfig returns the default block font configuration.
func DefaultConfig() Config {
	return Config{
		Thick:   Thick,
		Spacing: Spacing,
		Color:   bui.White,
	}
}

// Font is a block font with its stroke tables generated for one thickness.
// A Font is immutable and safe for concurrent use.
type Font struct {
	cfg         Config
	glyphs      map[rune][]bui.Points
	placeholder []bui.Points
}

// Default is the block font with the default configuration.
var Default = New(DefaultConfig())

// New builds the stroke tables for cfg. A non-positive thickness is
// replaced by [Thick].
func New(cfg Config) *Font {
	if cfg.Thick <= 0 {
		cfg.Thick = Thick
	}

	f := &Font{
		cfg:         cfg,
		glyphs:      make(map[rune][]bui.Points, len(charset)),
		placeholder: placeholder(cfg.Thick),
	}
	for _, r := range charset {
		f.glyphs[r] = strokes(r, cfg.Thick)
	}
	return f
}

// Config returns the font configuration.
func (f *Font) Config() Config {
	return f.cfg
}

// HasGlyph reports whether r has its own strokes rather than the
// placeholder square.
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Strokes returns the stroke rectangles of r in its cell, as corner pairs.
// The returned slice must not be modified.
func (f *Font) Strokes(r rune) []bui.Points {
	if s, ok := f.glyphs[r]; ok {
		return s
	}
	return f.placeholder
}

// Block is a string laid out in cell units, before fitting.
type Block struct {
	// Strokes holds the stroke rectangles of every character.
	Strokes []bui.Points

	// Cells holds the cell box of every character, in order.
	Cells []bui.Points

	// Width is the total width of the block. The block spans
	// [-1, Width-1] horizontally and [-1, 1] vertically.
	Width float32
}

// Covers reports whether every character of s has its own glyph.
func (f *Font) Covers(s string) bool {
	return xiter.All(xiter.Runes(s), f.HasGlyph)
}

// Layout places the characters of s left to right. Each character takes a
// cell 2 units wide; cells after the first are preceded by the spacing.
func (f *Font) Layout(s string) Block {
	var b Block
	pitch := cellAdvance + f.cfg.Spacing

	for i, r := range xiter.Enumerate(xiter.Runes(s)) {
		// Cells are centered on the origin; shift by the advance so far.
		x := float32(i) * pitch
		for _, p := range f.Strokes(r) {
			b.Strokes = append(b.Strokes, bui.Points{
				P1X: p.P1X + x,
				P1Y: p.P1Y,
				P2X: p.P2X + x,
				P2Y: p.P2Y,
			})
		}
		b.Cells = append(b.Cells, bui.Points{P1X: x - 1, P1Y: 1, P2X: x + 1, P2Y: -1})
	}

	if n := len(b.Cells); n > 0 {
		b.Width = float32(n)*pitch - f.cfg.Spacing
	}
	return b
}

// Fitted is a block fitted into unit space.
type Fitted struct {
	// Rects holds one rectangle per stroke.
	Rects []bui.RectRaw

	// Cells holds the fitted cell box of every character.
	Cells []bui.Points

	// Target is the box the block was fitted into.
	Target bui.SizeAndCenter
}

// Fit lays out s and fits the block into the largest box of the block's
// aspect ratio inside area. An empty string yields an empty result.
func (f *Font) Fit(s string, area bui.SizeAndCenter, resX, resY float32) Fitted {
	b := f.Layout(s)
	if len(b.Cells) == 0 {
		return Fitted{}
	}

	target := bui.FillAspect{
		PlacementArea: area,
		ResX:          resX,
		ResY:          resY,
		Aspect:        b.Width / cellHeight,
	}.SizeAndCenter()
	tr := bui.FitTransform(target, -1, -1, b.Width, cellHeight)

	bui.TransformPointsSlice(b.Strokes, tr)
	bui.TransformPointsSlice(b.Cells, tr)

	color := f.cfg.Color.Array()
	rects := make([]bui.RectRaw, len(b.Strokes))
	for i, p := range b.Strokes {
		sc := p.SizeAndCenter()
		rects[i] = bui.RectRaw{
			Scale:       [2]float32{sc.SX, sc.SY},
			Translation: [2]float32{sc.CX, sc.CY},
			Color:       color,
		}
	}

	return Fitted{
		Rects:  rects,
		Cells:  b.Cells,
		Target: target,
	}
}

// FillText lays out s and returns one rectangle per stroke, fitted into
// area.
func (f *Font) FillText(s string, area bui.SizeAndCenter, resX, resY float32) []bui.RectRaw {
	fitted := f.Fit(s, area, resX, resY)
	bui.Logger().Debug("blockfont: filled text", "text", s, "rects", len(fitted.Rects))
	return fitted.Rects
}

// FillText describes a string drawn with the default block font so that it
// fills a placement area.
type FillText struct {
	Text          string
	PlacementArea bui.SizeAndCenter
	ResX, ResY    float32
}

// Rects returns the fitted stroke rectangles.
func (t FillText) Rects() []bui.RectRaw {
	return Default.FillText(t.Text, t.PlacementArea, t.ResX, t.ResY)
}
