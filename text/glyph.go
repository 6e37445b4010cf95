package text

import (
	"slices"

	"github.com/vectorui/bui"
)

// Glyph is the outline of one character, split by segment kind.
//
// All coordinates are font design units, Y up.
type Glyph struct {
	// Bounds is the glyph's bounding box.
	Bounds bui.Points

	// OnLines and OffLines hold the straight segments, classified by
	// [IsOnLine].
	OnLines  []bui.LineDescriptor
	OffLines []bui.LineDescriptor

	// QuadCurves and CubeCurves hold the curved segments unflattened.
	QuadCurves []bui.QuadCurve
	CubeCurves []bui.CubeCurve
}

// IsEmpty reports whether the glyph has no segments at all.
func (g *Glyph) IsEmpty() bool {
	return len(g.OnLines) == 0 && len(g.OffLines) == 0 &&
		len(g.QuadCurves) == 0 && len(g.CubeCurves) == 0
}

// SegmentCount returns the number of segments in the glyph.
func (g *Glyph) SegmentCount() int {
	return len(g.OnLines) + len(g.OffLines) + len(g.QuadCurves) + len(g.CubeCurves)
}

// LineCount returns the number of line segments the glyph flattens to when
// every curve is split into curveLineCount lines.
func (g *Glyph) LineCount(curveLineCount int) int {
	if curveLineCount < 0 {
		curveLineCount = 0
	}
	return len(g.OnLines) + len(g.OffLines) + (len(g.QuadCurves)+len(g.CubeCurves))*curveLineCount
}

// Clone creates a deep copy of the glyph.
func (g *Glyph) Clone() *Glyph {
	if g == nil {
		return nil
	}

	return &Glyph{
		Bounds:     g.Bounds,
		OnLines:    slices.Clone(g.OnLines),
		OffLines:   slices.Clone(g.OffLines),
		QuadCurves: slices.Clone(g.QuadCurves),
		CubeCurves: slices.Clone(g.CubeCurves),
	}
}
