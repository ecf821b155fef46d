package graphics

import (
	"fmt"
	"math"

	"github.com/gogpu/graphics/internal/render"
)

// Arrow placement for a Line.
const (
	ArrowNone  = "none"
	ArrowFirst = "first"
	ArrowLast  = "last"
	ArrowBoth  = "both"
)

// arrow head proportions at line width 1, scaled with the width.
const (
	arrowLength = 10.0
	arrowWidth  = 6.0
)

// Line is a straight segment between two endpoints, optionally with
// arrowheads. A line has no interior, so its color lives in the outline
// attribute and SetFill is an alias for SetOutline.
type Line struct {
	base
	p1, p2 *Point
	arrow  string
}

// NewLine creates a line from p1 to p2.
func NewLine(p1, p2 *Point) *Line {
	l := &Line{p1: p1.Clone(), p2: p2.Clone(), arrow: ArrowNone}
	l.cfg = defaultConfig()
	return l
}

// String implements fmt.Stringer.
func (l *Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.p1, l.p2)
}

// P1 returns a copy of the first endpoint.
func (l *Line) P1() *Point { return l.p1.Clone() }

// P2 returns a copy of the second endpoint.
func (l *Line) P2() *Point { return l.p2.Clone() }

// Center returns the midpoint of the line.
func (l *Line) Center() *Point {
	return NewPoint((l.p1.x+l.p2.x)/2, (l.p1.y+l.p2.y)/2)
}

// Clone returns a detached copy of the line.
func (l *Line) Clone() *Line {
	other := NewLine(l.p1, l.p2)
	other.cfg = l.cfg
	other.arrow = l.arrow
	return other
}

// SetFill sets the line color. Lines have no interior, so fill and
// outline are the same attribute.
func (l *Line) SetFill(c Color) {
	l.cfg.fill = c
	l.cfg.outline = c
	l.refresh()
}

// SetArrow selects arrowhead placement: ArrowNone, ArrowFirst,
// ArrowLast, or ArrowBoth.
func (l *Line) SetArrow(option string) error {
	switch option {
	case ArrowNone, ArrowFirst, ArrowLast, ArrowBoth:
		l.arrow = option
		l.refresh()
		return nil
	}
	return fmt.Errorf("arrow option %q: %w", option, ErrBadOption)
}

// Arrow returns the current arrowhead placement.
func (l *Line) Arrow() string { return l.arrow }

// Contains reports whether p lies on the line, within half the line
// width plus one pixel of slack.
func (l *Line) Contains(p *Point) bool {
	if p == nil {
		return false
	}
	slack := l.cfg.width/2 + 1
	return segmentDistance(l.p1.x, l.p1.y, l.p2.x, l.p2.y, p.x, p.y) <= slack
}

// Draw implements GraphicsObject.
func (l *Line) Draw(win *GraphWin) error {
	return win.draw(l, &l.base)
}

// Undraw implements GraphicsObject.
func (l *Line) Undraw() error {
	return l.base.undraw(l)
}

// Move implements GraphicsObject.
func (l *Line) Move(dx, dy float64) error {
	l.p1.x += dx
	l.p1.y += dy
	l.p2.x += dx
	l.p2.y += dy
	return l.moved()
}

func (l *Line) render(cv *render.Canvas, tr *transform) {
	x0, y0 := toScreen(tr, l.p1.x, l.p1.y)
	x1, y1 := toScreen(tr, l.p2.x, l.p2.y)

	var path render.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	cv.StrokePath(&path, l.cfg.width, l.cfg.outline.Color())

	if l.arrow == ArrowFirst || l.arrow == ArrowBoth {
		l.renderArrow(cv, x0, y0, x1, y1)
	}
	if l.arrow == ArrowLast || l.arrow == ArrowBoth {
		l.renderArrow(cv, x1, y1, x0, y0)
	}
}

// renderArrow fills a triangular arrowhead at (tx, ty) pointing away
// from (fx, fy).
func (l *Line) renderArrow(cv *render.Canvas, tx, ty, fx, fy float64) {
	dx := fx - tx
	dy := fy - ty
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}
	scale := math.Max(l.cfg.width, 1)
	back := arrowLength * scale
	half := arrowWidth * scale / 2

	ux, uy := dx/length, dy/length
	bx, by := tx+ux*back, ty+uy*back

	var path render.Path
	path.MoveTo(tx, ty)
	path.LineTo(bx-uy*half, by+ux*half)
	path.LineTo(bx+uy*half, by-ux*half)
	path.Close()
	cv.FillPath(&path, l.cfg.outline.Color())
}

// segmentDistance returns the distance from (px, py) to the segment
// from (x0, y0) to (x1, y1).
func segmentDistance(x0, y0, x1, y1, px, py float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
