// Package blockfont draws text from axis-aligned stroke rectangles.
//
// Glyphs are built procedurally in a 2×2 cell centered on the origin, the
// way a seven-segment display builds digits. No font file is needed, which
// makes the block font a fallback when no vector face is available.
//
// Supported characters are the digits, the uppercase letters except M, W
// and Z, space and ":+-./". Every other rune renders as a small square.
//
//	rects := blockfont.FillText{
//	    Text:          "12:30",
//	    PlacementArea: area,
//	    ResX:          640,
//	    ResY:          360,
//	}.Rects()
package blockfont
