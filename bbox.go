package graphics

import (
	"fmt"

	"github.com/gogpu/graphics/internal/render"
)

// bboxShape is the shared state of shapes defined by two opposite
// corners. The corner points are private clones, so mutating the points
// passed to a constructor never moves the shape.
type bboxShape struct {
	base
	p1, p2 *Point
}

func (s *bboxShape) setCorners(p1, p2 *Point) {
	s.p1 = p1.Clone()
	s.p2 = p2.Clone()
	s.cfg = defaultConfig()
}

func (s *bboxShape) move(dx, dy float64) {
	s.p1.x += dx
	s.p1.y += dy
	s.p2.x += dx
	s.p2.y += dy
}

// P1 returns a copy of the first corner.
func (s *bboxShape) P1() *Point { return s.p1.Clone() }

// P2 returns a copy of the second corner.
func (s *bboxShape) P2() *Point { return s.p2.Clone() }

// Center returns the midpoint of the two corners.
func (s *bboxShape) Center() *Point {
	return NewPoint((s.p1.x+s.p2.x)/2, (s.p1.y+s.p2.y)/2)
}

// screenRect maps the corners to an axis-aligned pixel rectangle.
func (s *bboxShape) screenRect(tr *transform) (x0, y0, x1, y1 float64) {
	x0, y0 = toScreen(tr, s.p1.x, s.p1.y)
	x1, y1 = toScreen(tr, s.p2.x, s.p2.y)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1, y1
}

// paint fills then strokes path with the shape's attributes.
func (s *bboxShape) paint(cv *render.Canvas, path *render.Path) {
	if s.cfg.fill.A > 0 {
		cv.FillPath(path, s.cfg.fill.Color())
	}
	if s.cfg.outline.A > 0 && s.cfg.width > 0 {
		cv.StrokePath(path, s.cfg.width, s.cfg.outline.Color())
	}
}

// Rectangle is an axis-aligned rectangle defined by two opposite
// corners.
type Rectangle struct {
	bboxShape
}

// NewRectangle creates a rectangle with opposite corners p1 and p2.
func NewRectangle(p1, p2 *Point) *Rectangle {
	r := &Rectangle{}
	r.setCorners(p1, p2)
	return r
}

// String implements fmt.Stringer.
func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%v, %v)", r.p1, r.p2)
}

// Clone returns a detached copy of the rectangle.
func (r *Rectangle) Clone() *Rectangle {
	other := NewRectangle(r.p1, r.p2)
	other.cfg = r.cfg
	return other
}

// Contains reports whether p lies inside the rectangle.
func (r *Rectangle) Contains(p *Point) bool {
	if p == nil {
		return false
	}
	xlo, xhi := order(r.p1.x, r.p2.x)
	ylo, yhi := order(r.p1.y, r.p2.y)
	return p.x >= xlo && p.x <= xhi && p.y >= ylo && p.y <= yhi
}

// Draw implements GraphicsObject.
func (r *Rectangle) Draw(win *GraphWin) error {
	return win.draw(r, &r.base)
}

// Undraw implements GraphicsObject.
func (r *Rectangle) Undraw() error {
	return r.base.undraw(r)
}

// Move implements GraphicsObject.
func (r *Rectangle) Move(dx, dy float64) error {
	r.move(dx, dy)
	return r.moved()
}

func (r *Rectangle) render(cv *render.Canvas, tr *transform) {
	x0, y0, x1, y1 := r.screenRect(tr)
	var path render.Path
	path.Rect(x0, y0, x1, y1)
	r.paint(cv, &path)
}

// Oval is an ellipse inscribed in the bounding box given by two
// opposite corners.
type Oval struct {
	bboxShape
}

// NewOval creates an oval inscribed in the box with corners p1 and p2.
func NewOval(p1, p2 *Point) *Oval {
	o := &Oval{}
	o.setCorners(p1, p2)
	return o
}

// String implements fmt.Stringer.
func (o *Oval) String() string {
	return fmt.Sprintf("Oval(%v, %v)", o.p1, o.p2)
}

// Clone returns a detached copy of the oval.
func (o *Oval) Clone() *Oval {
	other := NewOval(o.p1, o.p2)
	other.cfg = o.cfg
	return other
}

// Contains reports whether p lies inside the oval.
func (o *Oval) Contains(p *Point) bool {
	if p == nil {
		return false
	}
	rx := (o.p2.x - o.p1.x) / 2
	ry := (o.p2.y - o.p1.y) / 2
	if rx < 0 {
		rx = -rx
	}
	if ry < 0 {
		ry = -ry
	}
	if rx == 0 || ry == 0 {
		return false
	}
	c := o.Center()
	dx := (p.x - c.x) / rx
	dy := (p.y - c.y) / ry
	return dx*dx+dy*dy <= 1
}

// Draw implements GraphicsObject.
func (o *Oval) Draw(win *GraphWin) error {
	return win.draw(o, &o.base)
}

// Undraw implements GraphicsObject.
func (o *Oval) Undraw() error {
	return o.base.undraw(o)
}

// Move implements GraphicsObject.
func (o *Oval) Move(dx, dy float64) error {
	o.move(dx, dy)
	return o.moved()
}

func (o *Oval) render(cv *render.Canvas, tr *transform) {
	x0, y0, x1, y1 := o.screenRect(tr)
	var path render.Path
	path.Ellipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	o.paint(cv, &path)
}

// Circle is a circle given by center and radius. Under non-uniform
// SetCoords scaling it renders as the inscribed ellipse of its bounding
// box.
type Circle struct {
	bboxShape
	radius float64
}

// NewCircle creates a circle around center with the given radius.
func NewCircle(center *Point, radius float64) (*Circle, error) {
	if radius < 0 {
		return nil, fmt.Errorf("negative radius %v: %w", radius, ErrBadOption)
	}
	c := &Circle{radius: radius}
	c.setCorners(
		NewPoint(center.x-radius, center.y-radius),
		NewPoint(center.x+radius, center.y+radius),
	)
	return c, nil
}

// String implements fmt.Stringer.
func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%v, %g)", c.Center(), c.radius)
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// Clone returns a detached copy of the circle.
func (c *Circle) Clone() *Circle {
	other := &Circle{radius: c.radius}
	other.setCorners(c.p1, c.p2)
	other.cfg = c.cfg
	return other
}

// Contains reports whether p lies inside the circle.
func (c *Circle) Contains(p *Point) bool {
	if p == nil {
		return false
	}
	return c.Center().distance(p) <= c.radius
}

// Draw implements GraphicsObject.
func (c *Circle) Draw(win *GraphWin) error {
	return win.draw(c, &c.base)
}

// Undraw implements GraphicsObject.
func (c *Circle) Undraw() error {
	return c.base.undraw(c)
}

// Move implements GraphicsObject.
func (c *Circle) Move(dx, dy float64) error {
	c.move(dx, dy)
	return c.moved()
}

func (c *Circle) render(cv *render.Canvas, tr *transform) {
	x0, y0, x1, y1 := c.screenRect(tr)
	var path render.Path
	path.Ellipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	c.paint(cv, &path)
}

// order returns a, b sorted ascending.
func order(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
