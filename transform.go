package graphics

// transform maps between user ("world") coordinates installed with
// SetCoords and raw pixel coordinates. The world's lower-left corner
// maps to the pixel (0, height-1) and the upper-right to (width-1, 0),
// so the Y axis points up in world coordinates.
type transform struct {
	xbase, ybase   float64
	xscale, yscale float64
}

// newTransform builds the mapping for a width x height pixel window
// whose world runs from (xlow, ylow) at the lower-left to (xhigh, yhigh)
// at the upper-right.
func newTransform(width, height int, xlow, ylow, xhigh, yhigh float64) *transform {
	xspan := xhigh - xlow
	yspan := yhigh - ylow
	return &transform{
		xbase:  xlow,
		ybase:  yhigh,
		xscale: xspan / float64(width-1),
		yscale: yspan / float64(height-1),
	}
}

// screen maps world coordinates to pixel coordinates.
func (t *transform) screen(x, y float64) (float64, float64) {
	xs := (x - t.xbase) / t.xscale
	ys := (t.ybase - y) / t.yscale
	return xs, ys
}

// world maps pixel coordinates to world coordinates.
func (t *transform) world(xs, ys float64) (float64, float64) {
	x := xs*t.xscale + t.xbase
	y := t.ybase - ys*t.yscale
	return x, y
}

// toScreen applies a possibly-nil transform.
func toScreen(t *transform, x, y float64) (float64, float64) {
	if t == nil {
		return x, y
	}
	return t.screen(x, y)
}

// toWorld applies a possibly-nil transform.
func toWorld(t *transform, xs, ys float64) (float64, float64) {
	if t == nil {
		return xs, ys
	}
	return t.world(xs, ys)
}
