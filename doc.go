// Package bui is the placement and geometry core of a small immediate-mode
// vector UI toolkit.
//
// # Overview
//
// bui turns declarative descriptions such as "fill this logical area,
// preserving aspect ratio, at this screen resolution" into flat numeric
// primitives: scaled and translated rectangles, ellipses and line segments.
// A renderer uploads those primitives every frame; bui never touches the GPU.
//
// # Coordinate System
//
// All placement happens in a unit space that maps onto the whole surface:
//   - Origin (0,0) at the center of the surface
//   - X increases right, Y increases up
//   - The surface spans [-1, 1] on both axes regardless of resolution
//
// Because the unit space is stretched to the surface, a square in unit space
// is not square on screen unless the surface is. [FillAspect] corrects for
// that using the surface resolution.
//
// # Boxes
//
// A box is either a [SizeAndCenter] (half extents plus center) or a [Points]
// (top-left and bottom-right corners). Both convert into each other exactly.
//
//	area := bui.Points{P1X: -1, P1Y: 1, P2X: 1, P2Y: -1}.SizeAndCenter()
//	square := bui.FillAspect{
//	    PlacementArea: area,
//	    ResX:          640,
//	    ResY:          360,
//	    Aspect:        1,
//	}.SizeAndCenter()
//
// # Subpackages
//
//   - text: glyph outline cache, font backends and string layout
//   - blockfont: procedural font built from stroke rectangles
//   - render: instance buffer layouts and programs for external renderers
package bui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
