package render

import (
	"image"
	"image/color"
	"testing"
)

var red = color.NRGBA{R: 255, A: 255}

func redAt(t *testing.T, p *Pixmap, x, y int) bool {
	t.Helper()
	r, g, _, _ := p.GetPixel(x, y).RGBA()
	return r > 0xc000 && g < 0x4000
}

// TestFillRect tests that a filled rectangle covers its interior and
// leaves the exterior alone.
func TestFillRect(t *testing.T) {
	pix := NewPixmap(40, 40)
	cv := NewCanvas(pix)

	var p Path
	p.Rect(10, 10, 30, 30)
	cv.FillPath(&p, red)

	if !redAt(t, pix, 20, 20) {
		t.Error("interior pixel not filled")
	}
	if redAt(t, pix, 5, 5) {
		t.Error("exterior pixel filled")
	}
}

// TestFillEllipse tests ellipse coverage at the center and the box
// corners.
func TestFillEllipse(t *testing.T) {
	pix := NewPixmap(40, 40)
	cv := NewCanvas(pix)

	var p Path
	p.Ellipse(20, 20, 15, 10)
	cv.FillPath(&p, red)

	if !redAt(t, pix, 20, 20) {
		t.Error("center not filled")
	}
	// the bounding box corner lies outside the ellipse
	if redAt(t, pix, 6, 11) {
		t.Error("box corner filled")
	}
}

// TestStrokeLine tests that a stroked segment marks pixels along its
// length but not its interior normal.
func TestStrokeLine(t *testing.T) {
	pix := NewPixmap(40, 40)
	cv := NewCanvas(pix)

	var p Path
	p.MoveTo(5, 20)
	p.LineTo(35, 20)
	cv.StrokePath(&p, 3, red)

	if !redAt(t, pix, 20, 20) {
		t.Error("midpoint not stroked")
	}
	if redAt(t, pix, 20, 30) {
		t.Error("pixel far from the line stroked")
	}
}

// TestStrokeHairline tests that width 1 still produces visible pixels.
func TestStrokeHairline(t *testing.T) {
	pix := NewPixmap(20, 20)
	cv := NewCanvas(pix)

	var p Path
	p.MoveTo(2, 10)
	p.LineTo(18, 10)
	cv.StrokePath(&p, 1, red)

	r, _, _, a := pix.GetPixel(10, 10).RGBA()
	if r == 0 && a == 0 {
		t.Error("hairline stroke left no pixels")
	}
}

// TestStrokeRectOutline tests that stroking a rectangle leaves the
// interior empty.
func TestStrokeRectOutline(t *testing.T) {
	pix := NewPixmap(40, 40)
	cv := NewCanvas(pix)

	var p Path
	p.Rect(10, 10, 30, 30)
	cv.StrokePath(&p, 2, red)

	if !redAt(t, pix, 20, 10) {
		t.Error("top edge not stroked")
	}
	if redAt(t, pix, 20, 20) {
		t.Error("interior filled by stroke")
	}
}

// TestFlatten tests subpath splitting and closing.
func TestFlatten(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	p.MoveTo(20, 20)
	p.LineTo(30, 20)

	sub := p.Flatten()
	if len(sub) != 2 {
		t.Fatalf("Flatten returned %d subpaths, want 2", len(sub))
	}
	first := sub[0]
	if first[0] != first[len(first)-1] {
		t.Error("closed subpath does not repeat its first point")
	}
	if len(sub[1]) != 2 {
		t.Errorf("open subpath has %d points, want 2", len(sub[1]))
	}
}

// TestFlattenCurves tests that curves are subdivided into short
// segments.
func TestFlattenCurves(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.CubicTo(0, 40, 40, 40, 40, 0)

	sub := p.Flatten()
	if len(sub) != 1 {
		t.Fatalf("Flatten returned %d subpaths, want 1", len(sub))
	}
	if len(sub[0]) < 8 {
		t.Errorf("cubic flattened to %d points, want more", len(sub[0]))
	}
	for i := 0; i+1 < len(sub[0]); i++ {
		if sub[0][i].Distance(sub[0][i+1]) > 15 {
			t.Errorf("segment %d too long after flattening", i)
		}
	}
}

// TestDrawImage tests compositing with offset, including clipping at
// the pixmap edge.
func TestDrawImage(t *testing.T) {
	pix := NewPixmap(20, 20)
	cv := NewCanvas(pix)

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, red)
		}
	}
	cv.DrawImage(src, 18, 18)

	if !redAt(t, pix, 19, 19) {
		t.Error("blitted pixel missing")
	}
	if redAt(t, pix, 10, 10) {
		t.Error("pixel outside the blit rect set")
	}
}
