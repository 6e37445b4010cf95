package text

import "github.com/vectorui/bui"

// FillText describes a string drawn with a vector font so that it fills a
// placement area while keeping its proportions on screen.
type FillText struct {
	Face           *CachedFace
	Text           string
	PlacementArea  bui.SizeAndCenter
	CurveLineCount int
	ResX, ResY     float32
}

// FittedText is a string laid out and fitted into unit space.
type FittedText struct {
	// Lines is the flattened outline of the string.
	Lines []bui.LineRaw

	// Bounds covers the whole string.
	Bounds bui.Points

	// CharBounds holds one box per placed glyph, in placement order.
	CharBounds []bui.Points

	// Transform maps design units to unit space.
	Transform bui.PointTransform
}

// CharAt returns the index into CharBounds of the glyph box containing
// (x, y), or -1.
func (f *FittedText) CharAt(x, y float32) int {
	for i, b := range f.CharBounds {
		if b.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Lines returns the fitted line segments of the string.
func (t FillText) Lines() []bui.LineRaw {
	return t.Layout().Lines
}

// Layout lays the string out and fits it into the placement area.
//
// A string with no visible extent (empty, unresolvable, or spaces only)
// produces no lines, and its boxes collapse onto the center of the
// placement area.
func (t FillText) Layout() FittedText {
	cfg := DefaultLayoutConfig()
	cfg.CurveLineCount = t.CurveLineCount
	u := Layout(t.Face, t.Text, cfg)

	if u.Bounds.Width() <= 0 || u.Bounds.Height() <= 0 {
		return collapsed(u, t.PlacementArea)
	}

	tr := ComputeSquareTransform(u.Bounds, t.PlacementArea, t.ResX, t.ResY)
	bui.TransformLines(u.Lines, tr)
	bui.TransformPoints(&u.Bounds, tr)
	bui.TransformPointsSlice(u.CharBounds, tr)

	return FittedText{
		Lines:      u.Lines,
		Bounds:     u.Bounds,
		CharBounds: u.CharBounds,
		Transform:  tr,
	}
}

// collapsed maps a layout without area onto the center of area.
func collapsed(u UnfitText, area bui.SizeAndCenter) FittedText {
	tr := bui.PointTransform{OffsetX: area.CX, OffsetY: area.CY}
	bui.TransformLines(u.Lines, tr)
	bui.TransformPoints(&u.Bounds, tr)
	bui.TransformPointsSlice(u.CharBounds, tr)

	return FittedText{
		Lines:      u.Lines,
		Bounds:     u.Bounds,
		CharBounds: u.CharBounds,
		Transform:  tr,
	}
}
