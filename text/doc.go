// Package text turns strings into line segments for the stencil text
// renderer.
//
// The pipeline has three stages:
//
//   - Face: a font-face capability that resolves runes to glyph ids and
//     replays glyph outlines into an [OutlineBuilder]
//   - CachedFace: a per-rune memo of extracted [Glyph] outlines
//   - Layout: places glyphs left to right in font design units, flattens
//     their curves and fits the whole string into a placement area
//
// # Example usage
//
//	face, err := text.LoadFaceFile("DejaVuSans.ttf", text.BackendSFNT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cached := text.NewCachedFace(face)
//
//	lines := text.FillText{
//	    Face:           cached,
//	    Text:           "It's 漢字",
//	    PlacementArea:  area,
//	    CurveLineCount: 10,
//	    ResX:           640,
//	    ResY:           360,
//	}.Lines()
//
// # Font backends
//
// Three Face implementations are provided:
//
//   - SFNTFace: golang.org/x/image/font/sfnt (default)
//   - GoTextFace: github.com/go-text/typesetting/font
//   - PathFace: outlines given as seehuhn.de/go/geom paths, for icons and
//     hand-made glyphs
//
// Any other source of outlines can be used by implementing Face.
//
// # Concurrency
//
// A CachedFace is owned by one goroutine. Callers that lay out text on
// several goroutines create one CachedFace per goroutine.
package text
