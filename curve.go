package bui

// Curve types for glyph outlines and their flattening into line segments.
// Flatness is controlled by the caller through the segment count: there is
// no adaptive subdivision, so buffer sizes upstream stay predictable.

// -------------------------------------------------------------------
// LineDescriptor
// -------------------------------------------------------------------

// LineDescriptor is a line segment from (P1X, P1Y) to (P2X, P2Y) in an
// unscaled coordinate space.
type LineDescriptor struct {
	P1X, P1Y float32
	P2X, P2Y float32
}

// Translate returns the line moved by (dx, dy).
func (l LineDescriptor) Translate(dx, dy float32) LineDescriptor {
	return LineDescriptor{
		P1X: l.P1X + dx,
		P1Y: l.P1Y + dy,
		P2X: l.P2X + dx,
		P2Y: l.P2Y + dy,
	}
}

// Raw converts the line into the renderer representation.
func (l LineDescriptor) Raw() LineRaw {
	return LineRaw{
		P1: [2]float32{l.P1X, l.P1Y},
		P2: [2]float32{l.P2X, l.P2Y},
	}
}

// -------------------------------------------------------------------
// QuadCurve - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadCurve is a quadratic Bezier curve from P1 to P2 with control point C1.
type QuadCurve struct {
	P1X, P1Y float32
	C1X, C1Y float32
	P2X, P2Y float32
}

// Eval evaluates (1-t)²·P1 + 2t(1-t)·C1 + t²·P2.
func (q QuadCurve) Eval(t float32) (x, y float32) {
	mt := 1 - t
	x = mt*mt*q.P1X + 2*t*mt*q.C1X + t*t*q.P2X
	y = mt*mt*q.P1Y + 2*t*mt*q.C1Y + t*t*q.P2Y
	return x, y
}

// SplitAsLines approximates the curve with exactly parts line segments of
// equal parameter length. The first segment starts at P1, the last one ends
// at P2 and consecutive segments share their endpoints.
// It returns nil when parts < 1.
func (q QuadCurve) SplitAsLines(parts int) []LineDescriptor {
	if parts < 1 {
		return nil
	}

	lines := make([]LineDescriptor, 0, parts)
	for i := 0; i < parts; i++ {
		p1x, p1y := q.Eval(splitParam(i, parts))
		p2x, p2y := q.Eval(splitParam(i+1, parts))
		lines = append(lines, LineDescriptor{P1X: p1x, P1Y: p1y, P2X: p2x, P2Y: p2y})
	}
	return lines
}

// Translate returns the curve moved by (dx, dy).
func (q QuadCurve) Translate(dx, dy float32) QuadCurve {
	return QuadCurve{
		P1X: q.P1X + dx, P1Y: q.P1Y + dy,
		C1X: q.C1X + dx, C1Y: q.C1Y + dy,
		P2X: q.P2X + dx, P2Y: q.P2Y + dy,
	}
}

// -------------------------------------------------------------------
// CubeCurve - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubeCurve is a cubic Bezier curve from P1 to P2 with control points C1
// and C2.
type CubeCurve struct {
	P1X, P1Y float32
	C1X, C1Y float32
	C2X, C2Y float32
	P2X, P2Y float32
}

// Eval evaluates (1-t)³·P1 + 3t(1-t)²·C1 + 3t²(1-t)·C2 + t³·P2.
func (c CubeCurve) Eval(t float32) (x, y float32) {
	mt := 1 - t
	x = mt*mt*mt*c.P1X + 3*t*mt*mt*c.C1X + 3*t*t*mt*c.C2X + t*t*t*c.P2X
	y = mt*mt*mt*c.P1Y + 3*t*mt*mt*c.C1Y + 3*t*t*mt*c.C2Y + t*t*t*c.P2Y
	return x, y
}

// SplitAsLines approximates the curve with exactly parts line segments of
// equal parameter length, with the same endpoint guarantees as
// [QuadCurve.SplitAsLines].
func (c CubeCurve) SplitAsLines(parts int) []LineDescriptor {
	if parts < 1 {
		return nil
	}

	lines := make([]LineDescriptor, 0, parts)
	for i := 0; i < parts; i++ {
		p1x, p1y := c.Eval(splitParam(i, parts))
		p2x, p2y := c.Eval(splitParam(i+1, parts))
		lines = append(lines, LineDescriptor{P1X: p1x, P1Y: p1y, P2X: p2x, P2Y: p2y})
	}
	return lines
}

// Translate returns the curve moved by (dx, dy).
func (c CubeCurve) Translate(dx, dy float32) CubeCurve {
	return CubeCurve{
		P1X: c.P1X + dx, P1Y: c.P1Y + dy,
		C1X: c.C1X + dx, C1Y: c.C1Y + dy,
		C2X: c.C2X + dx, C2Y: c.C2Y + dy,
		P2X: c.P2X + dx, P2Y: c.P2Y + dy,
	}
}

// splitParam returns the curve parameter of split point i out of parts.
// The final point is pinned to 1 so the last segment ends exactly on the
// curve's end point.
func splitParam(i, parts int) float32 {
	if i >= parts {
		return 1
	}
	return float32(i) * (1 / float32(parts))
}
