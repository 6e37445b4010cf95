package bui

// SizeAndCenter is an axis-aligned box in unit space described by its half
// extents and its center. It is the result type of every placement
// computation.
//
// SX and SY are half the width and half the height. Valid boxes have
// non-negative half extents.
type SizeAndCenter struct {
	SX, SY float32
	CX, CY float32
}

// Points returns the corners of the box.
func (s SizeAndCenter) Points() Points {
	return Points{
		P1X: s.CX - s.SX,
		P1Y: s.CY + s.SY,
		P2X: s.CX + s.SX,
		P2Y: s.CY - s.SY,
	}
}

// Contains reports whether (x, y) lies inside the box, edges included.
func (s SizeAndCenter) Contains(x, y float32) bool {
	return s.Points().Contains(x, y)
}

// Relative expresses other in the local frame of s and returns the result
// in the frame s itself lives in. The center of other is a fraction of the
// half extents of s measured from the center of s; the half extents of other
// are fractions of the half extents of s.
//
// A placement area that covers the whole unit square, {1, 1, 0, 0}, makes
// Relative return s unchanged.
func (s SizeAndCenter) Relative(other SizeAndCenter) SizeAndCenter {
	return SizeAndCenter{
		SX: s.SX * other.SX,
		SY: s.SY * other.SY,
		CX: s.CX + s.SX*other.CX,
		CY: s.CY + s.SY*other.CY,
	}
}

// Points is an axis-aligned box described by two opposite corners in a y-up
// coordinate system: P1 is the top-left corner and P2 the bottom-right one,
// so P1X <= P2X and P1Y >= P2Y.
type Points struct {
	P1X, P1Y float32
	P2X, P2Y float32
}

// SizeAndCenter converts the corners into half extents and a center.
// The conversion is exact and does not clamp.
func (p Points) SizeAndCenter() SizeAndCenter {
	return SizeAndCenter{
		SX: (p.P2X - p.P1X) / 2,
		SY: (p.P1Y - p.P2Y) / 2,
		CX: (p.P1X + p.P2X) / 2,
		CY: (p.P1Y + p.P2Y) / 2,
	}
}

// Width returns the horizontal extent of the box.
func (p Points) Width() float32 {
	return p.P2X - p.P1X
}

// Height returns the vertical extent of the box.
func (p Points) Height() float32 {
	return p.P1Y - p.P2Y
}

// Contains reports whether (x, y) lies inside the box, edges included.
func (p Points) Contains(x, y float32) bool {
	return x >= p.P1X && x <= p.P2X && y <= p.P1Y && y >= p.P2Y
}

// LeftContains reports whether (x, y) lies in the left half of the box.
// The vertical midline belongs to both halves.
func (p Points) LeftContains(x, y float32) bool {
	mid := (p.P1X + p.P2X) / 2
	return x >= p.P1X && x <= mid && y <= p.P1Y && y >= p.P2Y
}

// RightContains reports whether (x, y) lies in the right half of the box.
// The vertical midline belongs to both halves.
func (p Points) RightContains(x, y float32) bool {
	mid := (p.P1X + p.P2X) / 2
	return x >= mid && x <= p.P2X && y <= p.P1Y && y >= p.P2Y
}

// FillAspect requests the largest box with a given aspect ratio that fits in
// a placement area.
//
// CenterX and CenterY in [-1, 1] anchor the box inside the placement area:
// 0 centers it, ±1 puts its center on the corresponding edge of the area.
// ResX and ResY are the surface resolution in pixels and correct for the
// stretch of unit space on non-square surfaces. Aspect is width over height
// as it should appear on screen.
type FillAspect struct {
	PlacementArea    SizeAndCenter
	CenterX, CenterY float32
	ResX, ResY       float32
	Aspect           float32
}

// SizeAndCenter computes the fitted box.
//
// Zero-area placement areas or a zero aspect produce zero or infinite
// extents following ordinary floating-point arithmetic; callers must not
// pass them.
func (f FillAspect) SizeAndCenter() SizeAndCenter {
	area := f.PlacementArea
	surfaceAspect := f.ResX / f.ResY

	caxdist := area.SX * (1 - abs32(f.CenterX))
	caydist := area.SY * (1 - abs32(f.CenterY))

	areaAspect := (caxdist * f.ResX) / (caydist * f.ResY)

	var sx, sy float32
	if areaAspect > f.Aspect {
		sy = caydist
		sx = sy * f.Aspect / surfaceAspect
	} else {
		sx = caxdist
		sy = sx / f.Aspect * surfaceAspect
	}

	return SizeAndCenter{
		SX: sx,
		SY: sy,
		CX: area.CX + area.SX*f.CenterX,
		CY: area.CY + area.SY*f.CenterY,
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
