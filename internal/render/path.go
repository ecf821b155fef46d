package render

import "math"

// Point represents a 2D point in pixel coordinates.
type Point struct {
	X, Y float64
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// tolerance is the maximum distance from a curve when flattening it into
// line segments.
const tolerance = 0.1

// element is one entry of a path.
type element interface {
	isElement()
}

type moveTo struct{ p Point }
type lineTo struct{ p Point }
type quadTo struct{ c, p Point }
type cubicTo struct{ c1, c2, p Point }
type closePath struct{}

func (moveTo) isElement()    {}
func (lineTo) isElement()    {}
func (quadTo) isElement()    {}
func (cubicTo) isElement()   {}
func (closePath) isElement() {}

// Path is a sequence of move/line/curve/close elements.
// The zero value is an empty path ready for use.
type Path struct {
	elements []element
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, moveTo{Point{x, y}})
}

// LineTo adds a line segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, lineTo{Point{x, y}})
}

// QuadTo adds a quadratic Bezier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, quadTo{Point{cx, cy}, Point{x, y}})
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, cubicTo{Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, closePath{})
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Rect adds an axis-aligned rectangle as a closed subpath.
func (p *Path) Rect(x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
}

// Ellipse adds an axis-aligned ellipse centered at (cx, cy) as a closed
// subpath built from four cubic arc segments.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// Magic constant for approximating a quarter circle with a cubic.
	const k = 0.5522847498307936
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ry*k, cx+rx*k, cy+ry, cx, cy+ry)
	p.CubicTo(cx-rx*k, cy+ry, cx-rx, cy+ry*k, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ry*k, cx-rx*k, cy-ry, cx, cy-ry)
	p.CubicTo(cx+rx*k, cy-ry, cx+rx, cy-ry*k, cx+rx, cy)
	p.Close()
}

// Flatten converts the path into polylines, one per subpath. Curves are
// subdivided until they are within tolerance of the true curve. A closed
// subpath repeats its first point at the end.
func (p *Path) Flatten() [][]Point {
	var subpaths [][]Point
	var cur []Point
	var current Point

	flush := func() {
		if len(cur) > 1 {
			subpaths = append(subpaths, cur)
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case moveTo:
			flush()
			current = e.p
			cur = append(cur, current)

		case lineTo:
			current = e.p
			cur = append(cur, current)

		case quadTo:
			flattenQuadratic(current, e.c, e.p, &cur)
			current = e.p

		case cubicTo:
			flattenCubic(current, e.c1, e.c2, e.p, &cur)
			current = e.p

		case closePath:
			if len(cur) > 0 && cur[0] != current {
				cur = append(cur, cur[0])
				current = cur[0]
			}
		}
	}
	flush()

	return subpaths
}

// flattenQuadratic subdivides a quadratic Bezier until flat, appending
// the resulting points (excluding p0) to out.
func flattenQuadratic(p0, p1, p2 Point, out *[]Point) {
	// Flat enough when the control point is close to the chord.
	mid := p0.Lerp(p2, 0.5)
	if p1.Distance(mid) <= tolerance {
		*out = append(*out, p2)
		return
	}
	a := p0.Lerp(p1, 0.5)
	b := p1.Lerp(p2, 0.5)
	m := a.Lerp(b, 0.5)
	flattenQuadratic(p0, a, m, out)
	flattenQuadratic(m, b, p2, out)
}

// flattenCubic subdivides a cubic Bezier until flat, appending the
// resulting points (excluding p0) to out.
func flattenCubic(p0, p1, p2, p3 Point, out *[]Point) {
	d1 := p1.Distance(p0.Lerp(p3, 1.0/3))
	d2 := p2.Distance(p0.Lerp(p3, 2.0/3))
	if d1 <= tolerance && d2 <= tolerance {
		*out = append(*out, p3)
		return
	}
	a := p0.Lerp(p1, 0.5)
	b := p1.Lerp(p2, 0.5)
	c := p2.Lerp(p3, 0.5)
	ab := a.Lerp(b, 0.5)
	bc := b.Lerp(c, 0.5)
	m := ab.Lerp(bc, 0.5)
	flattenCubic(p0, a, ab, m, out)
	flattenCubic(m, bc, c, p3, out)
}
