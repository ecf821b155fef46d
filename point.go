package graphics

import (
	"fmt"
	"math"

	"github.com/gogpu/graphics/internal/render"
)

// Point is an (x, y) location in window coordinates. It is itself a
// drawable object rendering as a single pixel; most programs only use it
// to position other shapes.
type Point struct {
	base
	x, y float64
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) *Point {
	p := &Point{x: x, y: y}
	p.cfg = defaultConfig()
	return p
}

// String implements fmt.Stringer.
func (p *Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.x, p.y)
}

// X returns the x coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the y coordinate.
func (p *Point) Y() float64 { return p.y }

// Clone returns a detached copy of the point.
func (p *Point) Clone() *Point {
	other := NewPoint(p.x, p.y)
	other.cfg = p.cfg
	return other
}

// SetFill sets the point's color. Points have no interior, so fill and
// outline are the same attribute.
func (p *Point) SetFill(c Color) {
	p.cfg.fill = c
	p.cfg.outline = c
	p.refresh()
}

// Draw implements GraphicsObject.
func (p *Point) Draw(win *GraphWin) error {
	return win.draw(p, &p.base)
}

// Undraw implements GraphicsObject.
func (p *Point) Undraw() error {
	return p.base.undraw(p)
}

// Move implements GraphicsObject.
func (p *Point) Move(dx, dy float64) error {
	p.x += dx
	p.y += dy
	return p.moved()
}

func (p *Point) render(cv *render.Canvas, tr *transform) {
	sx, sy := toScreen(tr, p.x, p.y)
	cv.Pixmap().SetPixel(int(sx+0.5), int(sy+0.5), p.cfg.outline.Color())
}

// distance returns the euclidean distance to q.
func (p *Point) distance(q *Point) float64 {
	dx := p.x - q.x
	dy := p.y - q.y
	return math.Sqrt(dx*dx + dy*dy)
}
