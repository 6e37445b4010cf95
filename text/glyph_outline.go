package text

import "github.com/vectorui/bui"

// IsOnLine classifies a straight segment from (x1, y1) to (x2, y2).
//
// A segment is "on" when it runs leftward or upward: x1 > x2 or y1 < y2.
// Every other segment, including degenerate ones, is "off". Both kinds are
// part of the outline; the split only groups them for the stencil renderer.
func IsOnLine(x1, y1, x2, y2 float32) bool {
	return x1 > x2 || y1 < y2
}

// GlyphOutlineBuilder accumulates outline commands into the segment lists
// of a [Glyph]. It implements [OutlineBuilder].
//
// The zero value is ready to use.
type GlyphOutlineBuilder struct {
	// opening point of the current contour
	openX, openY float32
	// current point
	x, y float32

	onLines    []bui.LineDescriptor
	offLines   []bui.LineDescriptor
	quadCurves []bui.QuadCurve
	cubeCurves []bui.CubeCurve
}

var _ OutlineBuilder = (*GlyphOutlineBuilder)(nil)

// MoveTo implements OutlineBuilder.MoveTo.
func (b *GlyphOutlineBuilder) MoveTo(x, y float32) {
	b.openX, b.openY = x, y
	b.x, b.y = x, y
}

// LineTo implements OutlineBuilder.LineTo.
func (b *GlyphOutlineBuilder) LineTo(x, y float32) {
	line := bui.LineDescriptor{P1X: b.x, P1Y: b.y, P2X: x, P2Y: y}
	if IsOnLine(b.x, b.y, x, y) {
		b.onLines = append(b.onLines, line)
	} else {
		b.offLines = append(b.offLines, line)
	}
	b.x, b.y = x, y
}

// QuadTo implements OutlineBuilder.QuadTo.
func (b *GlyphOutlineBuilder) QuadTo(x1, y1, x, y float32) {
	b.quadCurves = append(b.quadCurves, bui.QuadCurve{
		P1X: b.x, P1Y: b.y,
		C1X: x1, C1Y: y1,
		P2X: x, P2Y: y,
	})
	b.x, b.y = x, y
}

// CurveTo implements OutlineBuilder.CurveTo.
func (b *GlyphOutlineBuilder) CurveTo(x1, y1, x2, y2, x, y float32) {
	b.cubeCurves = append(b.cubeCurves, bui.CubeCurve{
		P1X: b.x, P1Y: b.y,
		C1X: x1, C1Y: y1,
		C2X: x2, C2Y: y2,
		P2X: x, P2Y: y,
	})
	b.x, b.y = x, y
}

// Close implements OutlineBuilder.Close. A closing line back to the
// contour's opening point is added when the current point is elsewhere.
func (b *GlyphOutlineBuilder) Close() {
	if b.x == b.openX && b.y == b.openY {
		return
	}
	slogger().Debug("text: creating closing line",
		"from_x", b.x, "from_y", b.y, "to_x", b.openX, "to_y", b.openY)
	b.LineTo(b.openX, b.openY)
}

// Glyph returns the accumulated segments as a glyph with the given bounds.
// The builder keeps no reference to the returned slices after Reset.
func (b *GlyphOutlineBuilder) Glyph(bounds bui.Points) *Glyph {
	return &Glyph{
		Bounds:     bounds,
		OnLines:    b.onLines,
		OffLines:   b.offLines,
		QuadCurves: b.quadCurves,
		CubeCurves: b.cubeCurves,
	}
}

// Reset clears the builder for reuse.
func (b *GlyphOutlineBuilder) Reset() {
	*b = GlyphOutlineBuilder{}
}
