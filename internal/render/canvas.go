package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas draws filled and stroked paths, images, and text onto a Pixmap.
type Canvas struct {
	pix *Pixmap
}

// NewCanvas creates a canvas targeting pix.
func NewCanvas(pix *Pixmap) *Canvas {
	return &Canvas{pix: pix}
}

// Pixmap returns the canvas target.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pix
}

// FillPath fills the path with a solid color using the non-zero winding
// rule.
func (c *Canvas) FillPath(p *Path, col color.Color) {
	c.rasterize(p.Flatten(), col)
}

// StrokePath strokes the path with a solid color and the given line
// width. The polyline outline is expanded into segment quads with round
// joins and caps, then filled.
func (c *Canvas) StrokePath(p *Path, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	r := width / 2
	if r < 0.5 {
		r = 0.5 // hairline minimum so 1px lines stay visible
	}

	var outline [][]Point
	for _, sp := range p.Flatten() {
		if len(sp) == 1 {
			outline = append(outline, disc(sp[0], r))
			continue
		}
		for i := 0; i+1 < len(sp); i++ {
			if q, ok := segmentQuad(sp[i], sp[i+1], r); ok {
				outline = append(outline, q)
			}
		}
		for _, pt := range sp {
			outline = append(outline, disc(pt, r))
		}
	}
	c.rasterize(outline, col)
}

// DrawImage composites src over the pixmap with its top-left corner at
// (x, y).
func (c *Canvas) DrawImage(src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.pix.Image(), r, src, b.Min, draw.Over)
}

// DrawText draws s with its baseline origin at (x, y).
func (c *Canvas) DrawText(face font.Face, s string, x, y float64, col color.Color) {
	d := font.Drawer{
		Dst:  c.pix.Image(),
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(s)
}

// rasterize fills the polylines as closed polygons.
func (c *Canvas) rasterize(subpaths [][]Point, col color.Color) {
	if len(subpaths) == 0 {
		return
	}
	b := c.pix.Image().Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, sp := range subpaths {
		if len(sp) < 2 {
			continue
		}
		z.MoveTo(float32(sp[0].X), float32(sp[0].Y))
		for _, pt := range sp[1:] {
			z.LineTo(float32(pt.X), float32(pt.Y))
		}
		z.ClosePath()
	}
	z.Draw(c.pix.Image(), b, image.NewUniform(col), image.Point{})
}

// segmentQuad returns the four corners of the rectangle covering the
// segment p0-p1 expanded by r on each side. Zero-length segments return
// ok=false.
func segmentQuad(p0, p1 Point, r float64) ([]Point, bool) {
	d := p1.Sub(p0)
	length := d.Length()
	if length == 0 {
		return nil, false
	}
	// Perpendicular offset of half the stroke width.
	n := Point{X: -d.Y / length * r, Y: d.X / length * r}
	return []Point{
		{p0.X + n.X, p0.Y + n.Y},
		{p1.X + n.X, p1.Y + n.Y},
		{p1.X - n.X, p1.Y - n.Y},
		{p0.X - n.X, p0.Y - n.Y},
	}, true
}

// disc approximates a filled circle around p. The orientation matches
// segmentQuad so overlapping windings never cancel.
func disc(p Point, r float64) []Point {
	n := 16
	if r > 8 {
		n = int(r * 2)
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := -2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Point{X: p.X + r*math.Cos(a), Y: p.Y + r*math.Sin(a)})
	}
	return pts
}
