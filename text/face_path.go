package text

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/vectorui/bui"
)

// PathFace is a Face whose glyphs are given as paths, in design units with
// Y up. It suits icon sets and hand-made glyphs that do not come from a
// font file.
//
// Glyph ids are assigned in the order runes are first added, starting at 1.
type PathFace struct {
	ids   map[rune]GlyphID
	paths []path.Path
}

var _ Face = (*PathFace)(nil)

// NewPathFace creates an empty path face.
func NewPathFace() *PathFace {
	return &PathFace{
		ids: make(map[rune]GlyphID),
	}
}

// Set defines the outline of r, replacing any previous definition.
func (f *PathFace) Set(r rune, p path.Path) {
	if gid, ok := f.ids[r]; ok {
		f.paths[gid-1] = p
		return
	}
	f.paths = append(f.paths, p)
	f.ids[r] = GlyphID(len(f.paths))
}

// Len returns the number of defined glyphs.
func (f *PathFace) Len() int {
	return len(f.paths)
}

// GlyphIndex implements Face.GlyphIndex.
func (f *PathFace) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := f.ids[r]
	return gid, ok
}

// Outline implements Face.Outline.
func (f *PathFace) Outline(gid GlyphID, b OutlineBuilder) (bui.Points, bool) {
	if gid == 0 || int(gid) > len(f.paths) || f.paths[gid-1] == nil {
		return bui.Points{}, false
	}

	r := contourReplayer{b: b}
	for cmd, pts := range f.paths[gid-1] {
		switch cmd {
		case path.CmdMoveTo:
			r.moveTo(vecToUnits(pts[0]))
		case path.CmdLineTo:
			r.lineTo(vecToUnits(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := vecToUnits(pts[0])
			x, y := vecToUnits(pts[1])
			r.quadTo(x1, y1, x, y)
		case path.CmdCubeTo:
			x1, y1 := vecToUnits(pts[0])
			x2, y2 := vecToUnits(pts[1])
			x, y := vecToUnits(pts[2])
			r.curveTo(x1, y1, x2, y2, x, y)
		case path.CmdClose:
			r.close()
		}
	}
	return r.finish()
}

func vecToUnits(v vec.Vec2) (x, y float32) {
	return float32(v.X), float32(v.Y)
}
