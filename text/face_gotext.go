package text

import (
	"bytes"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/vectorui/bui"
)

// GoTextFace is a Face backed by github.com/go-text/typesetting/font.
//
// Only vector outlines are supported; bitmap and SVG glyphs report no
// outline.
type GoTextFace struct {
	face *font.Face
}

var _ Face = (*GoTextFace)(nil)

// NewGoTextFace parses TrueType or OpenType font data.
func NewGoTextFace(data []byte) (*GoTextFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Backend: BackendGoText, Err: err}
	}
	return &GoTextFace{face: face}, nil
}

// UnitsPerEm returns the number of design units per em.
func (f *GoTextFace) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements Face.GlyphIndex.
func (f *GoTextFace) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// Outline implements Face.Outline.
func (f *GoTextFace) Outline(gid GlyphID, b OutlineBuilder) (bui.Points, bool) {
	outline, ok := f.face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return bui.Points{}, false
	}

	r := contourReplayer{b: b}
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			r.moveTo(a[0].X, a[0].Y)
		case ot.SegmentOpLineTo:
			r.lineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			r.quadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			r.curveTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	return r.finish()
}
