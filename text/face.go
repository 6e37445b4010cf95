package text

import "github.com/vectorui/bui"

// GlyphID is a glyph index within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint32

// Face is the font-face capability the glyph cache runs against.
//
// Coordinates are font design units with the Y axis pointing up.
type Face interface {
	// GlyphIndex resolves a rune to a glyph id. ok is false when the font
	// has no glyph for r.
	GlyphIndex(r rune) (gid GlyphID, ok bool)

	// Outline replays the glyph's contours into b and returns the glyph's
	// bounding box in the corner convention (P1 top-left, P2 bottom-right).
	// ok is false when the glyph has no outline.
	//
	// Every contour starts with MoveTo and ends with Close.
	Outline(gid GlyphID, b OutlineBuilder) (bounds bui.Points, ok bool)
}

// OutlineBuilder receives the drawing commands of a glyph outline.
type OutlineBuilder interface {
	// MoveTo starts a new contour at (x, y).
	MoveTo(x, y float32)

	// LineTo adds a straight segment from the current point to (x, y).
	LineTo(x, y float32)

	// QuadTo adds a quadratic curve with control point (x1, y1) ending at
	// (x, y).
	QuadTo(x1, y1, x, y float32)

	// CurveTo adds a cubic curve with control points (x1, y1) and (x2, y2)
	// ending at (x, y).
	CurveTo(x1, y1, x2, y2, x, y float32)

	// Close ends the current contour.
	Close()
}
