package bui

// Raw primitives are the per-instance records handed to renderers. Their
// field order and sizes match the instance buffer layouts in package render.

// LineRaw is one line segment instance: two endpoints in unit space.
type LineRaw struct {
	P1 [2]float32
	P2 [2]float32
}

// RectRaw is one rectangle instance. Scale holds the half extents and
// Translation the center, both in unit space.
type RectRaw struct {
	Scale       [2]float32
	Translation [2]float32
	Color       [4]float32
}

// EllipseRaw is one ellipse instance, laid out exactly like [RectRaw]. The
// ellipse is inscribed in the box described by Scale and Translation.
type EllipseRaw struct {
	Scale       [2]float32
	Translation [2]float32
	Color       [4]float32
}

// Box returns the box the rectangle covers.
func (r RectRaw) Box() SizeAndCenter {
	return SizeAndCenter{SX: r.Scale[0], SY: r.Scale[1], CX: r.Translation[0], CY: r.Translation[1]}
}

// Box returns the bounding box of the ellipse.
func (e EllipseRaw) Box() SizeAndCenter {
	return SizeAndCenter{SX: e.Scale[0], SY: e.Scale[1], CX: e.Translation[0], CY: e.Translation[1]}
}

// RectDescriptor is a filled rectangle occupying Sizing.
type RectDescriptor struct {
	Sizing     SizeAndCenter
	R, G, B, A float32
}

// NewRect returns a descriptor for a rectangle of the given color.
func NewRect(sizing SizeAndCenter, c RGBA) RectDescriptor {
	return RectDescriptor{Sizing: sizing, R: c.R, G: c.G, B: c.B, A: c.A}
}

// Raw converts the descriptor into a renderer instance.
func (d RectDescriptor) Raw() RectRaw {
	return RectRaw{
		Scale:       [2]float32{d.Sizing.SX, d.Sizing.SY},
		Translation: [2]float32{d.Sizing.CX, d.Sizing.CY},
		Color:       [4]float32{d.R, d.G, d.B, d.A},
	}
}

// EllipseDescriptor is a filled ellipse inscribed in Sizing.
type EllipseDescriptor struct {
	Sizing     SizeAndCenter
	R, G, B, A float32
}

// NewEllipse returns a descriptor for an ellipse of the given color.
func NewEllipse(sizing SizeAndCenter, c RGBA) EllipseDescriptor {
	return EllipseDescriptor{Sizing: sizing, R: c.R, G: c.G, B: c.B, A: c.A}
}

// Raw converts the descriptor into a renderer instance.
func (d EllipseDescriptor) Raw() EllipseRaw {
	return EllipseRaw{
		Scale:       [2]float32{d.Sizing.SX, d.Sizing.SY},
		Translation: [2]float32{d.Sizing.CX, d.Sizing.CY},
		Color:       [4]float32{d.R, d.G, d.B, d.A},
	}
}

// CapsuleRaw is one freeform capsule instance: a segment from P1 to P2
// swept by a disc of the given Radius.
type CapsuleRaw struct {
	P1     [2]float32
	P2     [2]float32
	Radius float32
	Color  [4]float32
}

// NewCapsule returns a capsule instance around the given line.
func NewCapsule(l LineDescriptor, radius float32, c RGBA) CapsuleRaw {
	return CapsuleRaw{
		P1:     [2]float32{l.P1X, l.P1Y},
		P2:     [2]float32{l.P2X, l.P2Y},
		Radius: radius,
		Color:  c.Array(),
	}
}
