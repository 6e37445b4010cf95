package text

import (
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vectorui/bui"
)

// SFNTFace is a Face backed by golang.org/x/image/font/sfnt.
//
// Outlines are loaded at one pixel per font unit so that coordinates come
// out in design units.
type SFNTFace struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
}

var _ Face = (*SFNTFace)(nil)

// NewSFNTFace parses TrueType or OpenType font data.
func NewSFNTFace(data []byte) (*SFNTFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontError{Backend: BackendSFNT, Err: err}
	}

	return &SFNTFace{
		font: f,
		ppem: fixed.I(int(f.UnitsPerEm())),
	}, nil
}

// Name returns the font family name, or "" if the font has none.
func (f *SFNTFace) Name() string {
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// UnitsPerEm returns the number of design units per em.
func (f *SFNTFace) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements Face.GlyphIndex.
func (f *SFNTFace) GlyphIndex(r rune) (GlyphID, bool) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// Outline implements Face.Outline.
func (f *SFNTFace) Outline(gid GlyphID, b OutlineBuilder) (bui.Points, bool) {
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil || len(segments) == 0 {
		return bui.Points{}, false
	}

	r := contourReplayer{b: b}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.moveTo(fixedToUnits(seg.Args[0]))

		case sfnt.SegmentOpLineTo:
			r.lineTo(fixedToUnits(seg.Args[0]))

		case sfnt.SegmentOpQuadTo:
			x1, y1 := fixedToUnits(seg.Args[0]) // Control
			x, y := fixedToUnits(seg.Args[1])   // Target
			r.quadTo(x1, y1, x, y)

		case sfnt.SegmentOpCubeTo:
			x1, y1 := fixedToUnits(seg.Args[0]) // Control 1
			x2, y2 := fixedToUnits(seg.Args[1]) // Control 2
			x, y := fixedToUnits(seg.Args[2])   // Target
			r.curveTo(x1, y1, x2, y2, x, y)
		}
	}
	return r.finish()
}

// fixedToUnits converts an sfnt point to design units with Y up.
// sfnt reports Y increasing downwards.
func fixedToUnits(p fixed.Point26_6) (x, y float32) {
	return float32(p.X) / 64.0, -float32(p.Y) / 64.0
}
