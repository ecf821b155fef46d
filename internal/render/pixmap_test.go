package render

import (
	"bytes"
	"image/color"
	"testing"
)

// TestPixmapPixels tests set/get round trips and out-of-range safety.
func TestPixmapPixels(t *testing.T) {
	p := NewPixmap(10, 8)
	if p.Width() != 10 || p.Height() != 8 {
		t.Errorf("size = %dx%d, want 10x8", p.Width(), p.Height())
	}

	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	p.SetPixel(3, 4, c)
	r, g, b, _ := p.GetPixel(3, 4).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("GetPixel = (%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	// out of range is a no-op, not a panic
	p.SetPixel(-1, 0, c)
	p.SetPixel(10, 8, c)
	if _, _, _, a := p.GetPixel(-1, -1).RGBA(); a != 0 {
		t.Error("out-of-range GetPixel not transparent")
	}
}

// TestPixmapClear tests whole-buffer fills.
func TestPixmapClear(t *testing.T) {
	p := NewPixmap(5, 5)
	p.Clear(color.NRGBA{B: 255, A: 255})
	for _, xy := range [][2]int{{0, 0}, {4, 4}, {2, 3}} {
		_, _, b, _ := p.GetPixel(xy[0], xy[1]).RGBA()
		if b < 0xc000 {
			t.Errorf("pixel (%d, %d) not cleared", xy[0], xy[1])
		}
	}
}

// TestFromImage tests that the source is copied, not aliased.
func TestFromImage(t *testing.T) {
	src := NewPixmap(4, 4)
	src.SetPixel(1, 1, color.NRGBA{R: 255, A: 255})
	dst := FromImage(src.Image())

	src.SetPixel(1, 1, color.NRGBA{G: 255, A: 255})
	r, _, _, _ := dst.GetPixel(1, 1).RGBA()
	if r < 0xc000 {
		t.Error("FromImage aliases the source pixels")
	}
}

// TestEncodePNG tests PNG serialization.
func TestEncodePNG(t *testing.T) {
	p := NewPixmap(6, 6)
	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("EncodePNG wrote nothing")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
