package text

import (
	"golang.org/x/text/unicode/norm"

	"github.com/vectorui/bui"
)

// LayoutConfig holds configuration for glyph-sequence layout.
// All distances are font design units.
type LayoutConfig struct {
	// CurveLineCount is the number of lines each curve is flattened into.
	// Default: 10
	CurveLineCount int

	// Spacing is the gap inserted between the right edge of the text so far
	// and the left edge of the next glyph.
	// Default: 50
	Spacing float32

	// SpaceAdvance is the width of the box that stands in for a space when
	// the face has no outline for it.
	// Default: 200
	SpaceAdvance float32

	// Normalize runs the text through Unicode NFC before layout so that
	// decomposed sequences resolve to precomposed glyphs.
	// Default: false
	Normalize bool
}

// DefaultLayoutConfig returns the default layout configuration.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		CurveLineCount: 10,
		Spacing:        50,
		SpaceAdvance:   200,
		Normalize:      false,
	}
}

// UnfitText is a string laid out in font design units, before fitting.
type UnfitText struct {
	// Lines holds the flattened outline of every placed glyph: each glyph's
	// on-lines, then its off-lines, then its flattened quadratic and cubic
	// curves.
	Lines []bui.LineRaw

	// Bounds covers every placed glyph. It is the zero box when nothing was
	// placed.
	Bounds bui.Points

	// CharBounds holds one box per placed glyph, in placement order.
	CharBounds []bui.Points
}

// ComputeUnfitChars lays out s left to right with the default spacing and
// space advance. See [Layout].
func ComputeUnfitChars(face *CachedFace, s string, curveLineCount int) (lines []bui.LineRaw, bounds bui.Points, charBounds []bui.Points) {
	cfg := DefaultLayoutConfig()
	cfg.CurveLineCount = curveLineCount
	u := Layout(face, s, cfg)
	return u.Lines, u.Bounds, u.CharBounds
}

// Layout lays out s as a single block in font design units.
//
// Each glyph is shifted right so that its left bound sits cfg.Spacing past
// the rightmost bound placed so far. Only X advances: glyphs keep their
// design Y coordinates. A space the face cannot outline is replaced by an
// empty glyph cfg.SpaceAdvance wide and zero high. Any other rune the face
// cannot outline is skipped and takes no room.
func Layout(face *CachedFace, s string, cfg LayoutConfig) UnfitText {
	if cfg.Normalize {
		s = norm.NFC.String(s)
	}

	var (
		out    UnfitText
		placed bool

		minX, maxX float32
		minY, maxY float32
	)

	for _, r := range s {
		g, ok := face.Glyph(r)
		if !ok {
			if r != ' ' {
				slogger().Warn("text: skipping rune without outline", "rune", string(r))
				continue
			}
			g = &Glyph{
				Bounds: bui.Points{P1X: 0, P1Y: 0, P2X: cfg.SpaceAdvance, P2Y: 0},
			}
		}

		var prevMaxX float32
		if placed {
			prevMaxX = maxX
		}
		offsetX := prevMaxX - g.Bounds.P1X + cfg.Spacing

		out.Lines = appendGlyphLines(out.Lines, g, offsetX, cfg.CurveLineCount)

		charMinX := offsetX + g.Bounds.P1X
		charMaxX := offsetX + g.Bounds.P2X
		charMinY := g.Bounds.P2Y
		charMaxY := g.Bounds.P1Y

		if !placed {
			minX, maxX = charMinX, charMaxX
			minY, maxY = charMinY, charMaxY
			placed = true
		} else {
			minX = min(minX, charMinX)
			maxX = max(maxX, charMaxX)
			minY = min(minY, charMinY)
			maxY = max(maxY, charMaxY)
		}

		out.CharBounds = append(out.CharBounds, bui.Points{
			P1X: charMinX,
			P1Y: charMaxY,
			P2X: charMaxX,
			P2Y: charMinY,
		})
	}

	if !placed {
		return UnfitText{}
	}

	out.Bounds = bui.Points{P1X: minX, P1Y: maxY, P2X: maxX, P2Y: minY}
	return out
}

// appendGlyphLines appends the glyph's lines and flattened curves, shifted
// right by offsetX.
func appendGlyphLines(dst []bui.LineRaw, g *Glyph, offsetX float32, curveLineCount int) []bui.LineRaw {
	for _, l := range g.OnLines {
		dst = append(dst, l.Translate(offsetX, 0).Raw())
	}
	for _, l := range g.OffLines {
		dst = append(dst, l.Translate(offsetX, 0).Raw())
	}
	for _, q := range g.QuadCurves {
		for _, l := range q.SplitAsLines(curveLineCount) {
			dst = append(dst, l.Translate(offsetX, 0).Raw())
		}
	}
	for _, c := range g.CubeCurves {
		for _, l := range c.SplitAsLines(curveLineCount) {
			dst = append(dst, l.Translate(offsetX, 0).Raw())
		}
	}
	return dst
}

// ComputeSquareTransform returns the transform that fits bounds into the
// largest box with the same on-screen aspect ratio inside placementArea,
// centered in the area.
//
// Bounds with zero width or height yield infinite or NaN factors.
func ComputeSquareTransform(bounds bui.Points, placementArea bui.SizeAndCenter, resX, resY float32) bui.PointTransform {
	width := bounds.Width()
	height := bounds.Height()

	target := bui.FillAspect{
		PlacementArea: placementArea,
		ResX:          resX,
		ResY:          resY,
		Aspect:        width / height,
	}.SizeAndCenter()

	return bui.FitTransform(target, bounds.P1X, bounds.P2Y, width, height)
}
