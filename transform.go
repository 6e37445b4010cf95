package bui

// PointTransform is a per-axis scale followed by a translation:
//
//	x' = x*SX + OffsetX
//	y' = y*SY + OffsetY
//
// It maps unscaled layout coordinates into unit space.
type PointTransform struct {
	SX, SY           float32
	OffsetX, OffsetY float32
}

// Identity is the transform that leaves points unchanged.
var Identity = PointTransform{SX: 1, SY: 1}

// Apply transforms a single point.
func (t PointTransform) Apply(x, y float32) (float32, float32) {
	return x*t.SX + t.OffsetX, y*t.SY + t.OffsetY
}

// TransformLines applies t to both endpoints of every line in place.
func TransformLines(lines []LineRaw, t PointTransform) {
	for i := range lines {
		l := &lines[i]
		l.P1[0], l.P1[1] = t.Apply(l.P1[0], l.P1[1])
		l.P2[0], l.P2[1] = t.Apply(l.P2[0], l.P2[1])
	}
}

// TransformPoints applies t to both corners of p in place.
func TransformPoints(p *Points, t PointTransform) {
	p.P1X, p.P1Y = t.Apply(p.P1X, p.P1Y)
	p.P2X, p.P2Y = t.Apply(p.P2X, p.P2Y)
}

// TransformPointsSlice applies t to every box in place.
func TransformPointsSlice(ps []Points, t PointTransform) {
	for i := range ps {
		TransformPoints(&ps[i], t)
	}
}

// UnfitLines is a set of line segments in an unscaled space with square
// units, together with their extent. It is fitted into a placement area as a
// whole so the relative proportions of the lines are preserved.
type UnfitLines struct {
	Lines      []LineDescriptor
	MinX, MaxX float32
	MinY, MaxY float32
}

// Width returns the horizontal extent of the line set.
func (u *UnfitLines) Width() float32 {
	return u.MaxX - u.MinX
}

// Height returns the vertical extent of the line set.
func (u *UnfitLines) Height() float32 {
	return u.MaxY - u.MinY
}

// FitRaw scales the lines to the largest box with their aspect ratio that
// fits placementArea on a resX by resY surface, centered in the area.
func (u *UnfitLines) FitRaw(placementArea SizeAndCenter, resX, resY float32) []LineRaw {
	width := u.Width()
	height := u.Height()

	target := FillAspect{
		PlacementArea: placementArea,
		ResX:          resX,
		ResY:          resY,
		Aspect:        width / height,
	}.SizeAndCenter()

	return u.FillRawGivenWidthAndHeight(target, width, height)
}

// FillRawGivenWidthAndHeight maps a width by height extent of the line set
// onto target. Passing an extent other than the set's own stretches or
// shrinks the lines accordingly.
func (u *UnfitLines) FillRawGivenWidthAndHeight(target SizeAndCenter, width, height float32) []LineRaw {
	t := fitTransform(target, u.MinX, u.MinY, width, height)

	raw := make([]LineRaw, 0, len(u.Lines))
	for _, l := range u.Lines {
		p1x, p1y := t.Apply(l.P1X, l.P1Y)
		p2x, p2y := t.Apply(l.P2X, l.P2Y)
		raw = append(raw, LineRaw{P1: [2]float32{p1x, p1y}, P2: [2]float32{p2x, p2y}})
	}
	return raw
}

// FitTransform returns the transform that maps the box whose bottom-left
// corner is (minX, minY) with the given extent onto target.
func FitTransform(target SizeAndCenter, minX, minY, width, height float32) PointTransform {
	return fitTransform(target, minX, minY, width, height)
}

func fitTransform(target SizeAndCenter, minX, minY, width, height float32) PointTransform {
	sx := target.SX / width * 2
	sy := target.SY / height * 2
	return PointTransform{
		SX:      sx,
		SY:      sy,
		OffsetX: -(minX+width/2)*sx + target.CX,
		OffsetY: -(minY+height/2)*sy + target.CY,
	}
}
