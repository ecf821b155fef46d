package graphics

import (
	"fmt"
	"strings"

	"github.com/gogpu/graphics/internal/render"
)

// Polygon is a closed shape through an ordered list of vertices.
type Polygon struct {
	base
	points []*Point
}

// NewPolygon creates a polygon through the given vertices. The vertex
// points are copied.
func NewPolygon(points ...*Point) *Polygon {
	pg := &Polygon{points: make([]*Point, len(points))}
	for i, p := range points {
		pg.points[i] = p.Clone()
	}
	pg.cfg = defaultConfig()
	return pg
}

// String implements fmt.Stringer.
func (pg *Polygon) String() string {
	parts := make([]string, len(pg.points))
	for i, p := range pg.points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Polygon(%s)", strings.Join(parts, ", "))
}

// Points returns copies of the vertices.
func (pg *Polygon) Points() []*Point {
	out := make([]*Point, len(pg.points))
	for i, p := range pg.points {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns a detached copy of the polygon.
func (pg *Polygon) Clone() *Polygon {
	other := NewPolygon(pg.points...)
	other.cfg = pg.cfg
	return other
}

// Contains reports whether p lies inside the polygon, using the even-odd
// rule.
func (pg *Polygon) Contains(p *Point) bool {
	if p == nil || len(pg.points) < 3 {
		return false
	}
	inside := false
	n := len(pg.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg.points[i], pg.points[j]
		if (a.y > p.y) != (b.y > p.y) &&
			p.x < (b.x-a.x)*(p.y-a.y)/(b.y-a.y)+a.x {
			inside = !inside
		}
	}
	return inside
}

// Draw implements GraphicsObject.
func (pg *Polygon) Draw(win *GraphWin) error {
	return win.draw(pg, &pg.base)
}

// Undraw implements GraphicsObject.
func (pg *Polygon) Undraw() error {
	return pg.base.undraw(pg)
}

// Move implements GraphicsObject.
func (pg *Polygon) Move(dx, dy float64) error {
	for _, p := range pg.points {
		p.x += dx
		p.y += dy
	}
	return pg.moved()
}

func (pg *Polygon) render(cv *render.Canvas, tr *transform) {
	if len(pg.points) < 2 {
		return
	}
	var path render.Path
	for i, p := range pg.points {
		sx, sy := toScreen(tr, p.x, p.y)
		if i == 0 {
			path.MoveTo(sx, sy)
		} else {
			path.LineTo(sx, sy)
		}
	}
	path.Close()
	if pg.cfg.fill.A > 0 {
		cv.FillPath(&path, pg.cfg.fill.Color())
	}
	if pg.cfg.outline.A > 0 && pg.cfg.width > 0 {
		cv.StrokePath(&path, pg.cfg.width, pg.cfg.outline.Color())
	}
}
