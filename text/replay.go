package text

import "github.com/vectorui/bui"

// contourReplayer forwards backend outline segments to an OutlineBuilder.
// It closes every contour exactly once and tracks the control-point
// bounding box.
type contourReplayer struct {
	b    OutlineBuilder
	open bool

	minX, minY float32
	maxX, maxY float32
	any        bool
}

func (r *contourReplayer) moveTo(x, y float32) {
	if r.open {
		r.b.Close()
	}
	r.b.MoveTo(x, y)
	r.open = true
	r.add(x, y)
}

func (r *contourReplayer) lineTo(x, y float32) {
	r.b.LineTo(x, y)
	r.add(x, y)
}

func (r *contourReplayer) quadTo(x1, y1, x, y float32) {
	r.b.QuadTo(x1, y1, x, y)
	r.add(x1, y1)
	r.add(x, y)
}

func (r *contourReplayer) curveTo(x1, y1, x2, y2, x, y float32) {
	r.b.CurveTo(x1, y1, x2, y2, x, y)
	r.add(x1, y1)
	r.add(x2, y2)
	r.add(x, y)
}

func (r *contourReplayer) close() {
	if r.open {
		r.b.Close()
		r.open = false
	}
}

// finish closes the last contour and returns the bounding box. ok is false
// when no point was seen.
func (r *contourReplayer) finish() (bui.Points, bool) {
	r.close()
	if !r.any {
		return bui.Points{}, false
	}
	return bui.Points{P1X: r.minX, P1Y: r.maxY, P2X: r.maxX, P2Y: r.minY}, true
}

func (r *contourReplayer) add(x, y float32) {
	if !r.any {
		r.minX, r.maxX = x, x
		r.minY, r.maxY = y, y
		r.any = true
		return
	}
	r.minX = min(r.minX, x)
	r.maxX = max(r.maxX, x)
	r.minY = min(r.minY, y)
	r.maxY = max(r.maxY, y)
}
