package graphics

import (
	"math"
	"testing"
)

// TestTransformCorners tests that SetCoords-style bounds map the world
// corners onto the pixel corners with the Y axis flipped.
func TestTransformCorners(t *testing.T) {
	tr := newTransform(200, 100, 0, 0, 10, 5)

	sx, sy := tr.screen(0, 0)
	if sx != 0 || sy != 99 {
		t.Errorf("screen(0, 0) = (%v, %v), want (0, 99)", sx, sy)
	}
	sx, sy = tr.screen(10, 5)
	if sx != 199 || sy != 0 {
		t.Errorf("screen(10, 5) = (%v, %v), want (199, 0)", sx, sy)
	}
}

// TestTransformRoundTrip tests world -> screen -> world identity.
func TestTransformRoundTrip(t *testing.T) {
	tr := newTransform(400, 300, -2, -1, 6, 3)
	for _, p := range [][2]float64{{0, 0}, {-2, -1}, {6, 3}, {1.5, 2.25}} {
		sx, sy := tr.screen(p[0], p[1])
		x, y := tr.world(sx, sy)
		if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
			t.Errorf("round trip (%v, %v) = (%v, %v)", p[0], p[1], x, y)
		}
	}
}

// TestNilTransform tests that the identity helpers pass pixels through.
func TestNilTransform(t *testing.T) {
	x, y := toScreen(nil, 12, 34)
	if x != 12 || y != 34 {
		t.Errorf("toScreen(nil) = (%v, %v)", x, y)
	}
	x, y = toWorld(nil, 56, 78)
	if x != 56 || y != 78 {
		t.Errorf("toWorld(nil) = (%v, %v)", x, y)
	}
}
