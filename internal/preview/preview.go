// Package preview rasterizes bui primitives into an image on the CPU.
//
// It is a reference renderer: unit space is mapped onto the canvas the way a
// GPU viewport would map it. Glyph outlines are filled by accumulating
// signed edge coverage and clamping its magnitude, which is a nonzero rule.
// The GPU stencil pass uses even-odd; the two agree on font outlines, whose
// holes are wound opposite to the contours around them.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/vectorui/bui"
)

// kappa places the cubic control points of a quarter ellipse.
const kappa = 0.5522847498

// Canvas is an RGBA image addressed in unit space: (-1, -1) is the bottom
// left corner and (1, 1) the top right.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
	w   float32
	h   float32
}

// New creates a canvas of the given pixel size cleared to bg.
func New(width, height int, bg color.Color) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
		w:   float32(width),
		h:   float32(height),
	}
	c.Clear(bg)
	return c
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Pixel maps a unit-space point to pixel coordinates.
func (c *Canvas) Pixel(x, y float32) (px, py float32) {
	return (x + 1) / 2 * c.w, (1 - y) / 2 * c.h
}

// FillOutline fills the region enclosed by an unordered set of line
// segments with the nonzero rule. Segments are accumulated independently,
// so the result does not depend on their order and oppositely wound
// contours cut holes. Overlapping contours wound the same way stay filled.
func (c *Canvas) FillOutline(lines []bui.LineRaw, col color.Color) {
	if len(lines) == 0 {
		return
	}
	c.reset()
	for _, l := range lines {
		x1, y1 := c.Pixel(l.P1[0], l.P1[1])
		x2, y2 := c.Pixel(l.P2[0], l.P2[1])
		c.z.MoveTo(x1, y1)
		c.z.LineTo(x2, y2)
	}
	c.flush(col)
	bui.Logger().Debug("preview: filled outline", "lines", len(lines))
}

// StrokeLines draws each segment as a band width pixels wide.
func (c *Canvas) StrokeLines(lines []bui.LineRaw, width float32, col color.Color) {
	if len(lines) == 0 || width <= 0 {
		return
	}
	c.reset()
	for _, l := range lines {
		x1, y1 := c.Pixel(l.P1[0], l.P1[1])
		x2, y2 := c.Pixel(l.P2[0], l.P2[1])
		c.band(x1, y1, x2, y2, width/2)
	}
	c.flush(col)
}

// FillRects draws each rectangle in its own color.
func (c *Canvas) FillRects(rects []bui.RectRaw) {
	for _, r := range rects {
		c.reset()
		x0, y0 := c.Pixel(r.Translation[0]-r.Scale[0], r.Translation[1]+r.Scale[1])
		x1, y1 := c.Pixel(r.Translation[0]+r.Scale[0], r.Translation[1]-r.Scale[1])
		c.z.MoveTo(x0, y0)
		c.z.LineTo(x1, y0)
		c.z.LineTo(x1, y1)
		c.z.LineTo(x0, y1)
		c.z.ClosePath()
		c.flush(colorOf(r.Color))
	}
}

// FillEllipses draws each ellipse in its own color.
func (c *Canvas) FillEllipses(ellipses []bui.EllipseRaw) {
	for _, e := range ellipses {
		c.reset()
		cx, cy := c.Pixel(e.Translation[0], e.Translation[1])
		c.ellipse(cx, cy, e.Scale[0]*c.w/2, e.Scale[1]*c.h/2)
		c.flush(colorOf(e.Color))
	}
}

// FillCapsules draws each capsule in its own color. The radius is measured
// along the canvas width.
func (c *Canvas) FillCapsules(capsules []bui.CapsuleRaw) {
	for _, cp := range capsules {
		c.reset()
		x1, y1 := c.Pixel(cp.P1[0], cp.P1[1])
		x2, y2 := c.Pixel(cp.P2[0], cp.P2[1])
		r := cp.Radius * c.w / 2
		c.band(x1, y1, x2, y2, r)
		c.ellipse(x1, y1, r, r)
		c.ellipse(x2, y2, r, r)
		c.flush(colorOf(cp.Color))
	}
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) flush(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// band adds the rectangle of half width hw around a segment. Bands and
// ellipses share one winding so overlapping parts of a capsule do not cancel.
func (c *Canvas) band(x1, y1, x2, y2, hw float32) {
	dx, dy := x2-x1, y2-y1
	n := float32(math.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		return
	}
	nx, ny := -dy/n*hw, dx/n*hw
	c.z.MoveTo(x1+nx, y1+ny)
	c.z.LineTo(x2+nx, y2+ny)
	c.z.LineTo(x2-nx, y2-ny)
	c.z.LineTo(x1-nx, y1-ny)
	c.z.ClosePath()
}

func (c *Canvas) ellipse(cx, cy, rx, ry float32) {
	kx, ky := kappa*rx, kappa*ry
	c.z.MoveTo(cx+rx, cy)
	c.z.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
	c.z.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
	c.z.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
	c.z.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	c.z.ClosePath()
}

func colorOf(v [4]float32) color.Color {
	return bui.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}.Color()
}
