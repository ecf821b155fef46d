package graphics

import (
	"errors"
	"path/filepath"
	"testing"
)

// TestImagePixels tests blank image creation and pixel access.
func TestImagePixels(t *testing.T) {
	img, err := NewImageSize(NewPoint(50, 50), 8, 6)
	if err != nil {
		t.Fatalf("NewImageSize: %v", err)
	}
	if img.Width() != 8 || img.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", img.Width(), img.Height())
	}
	img.SetPixel(2, 3, Red)
	got := img.Pixel(2, 3)
	if got.R < 0.9 || got.G > 0.1 {
		t.Errorf("Pixel(2, 3) = %v, want red", got)
	}

	if _, err := NewImageSize(NewPoint(0, 0), 0, 5); !errors.Is(err, ErrBadOption) {
		t.Errorf("NewImageSize(0, 5) err = %v, want ErrBadOption", err)
	}
}

// TestImageSaveLoad tests a save and reload round trip.
func TestImageSaveLoad(t *testing.T) {
	dir := t.TempDir()
	img, _ := NewImageSize(NewPoint(0, 0), 4, 4)
	img.SetPixel(1, 1, Blue)

	for _, name := range []string{"a.png", "a.bmp", "a.tiff"} {
		path := filepath.Join(dir, name)
		if err := img.Save(path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		loaded, err := NewImage(NewPoint(0, 0), path)
		if err != nil {
			t.Fatalf("NewImage(%s): %v", name, err)
		}
		got := loaded.Pixel(1, 1)
		if got.B < 0.9 {
			t.Errorf("%s: reloaded pixel = %v, want blue", name, got)
		}
	}

	if err := img.Save(filepath.Join(dir, "a.xyz")); !errors.Is(err, ErrBadOption) {
		t.Errorf("Save(.xyz) err = %v, want ErrBadOption", err)
	}
}

// TestImageClone tests deep copying.
func TestImageClone(t *testing.T) {
	img, _ := NewImageSize(NewPoint(0, 0), 4, 4)
	img.SetPixel(0, 0, Red)
	clone := img.Clone()
	clone.SetPixel(0, 0, Green)
	if got := img.Pixel(0, 0); got.G > 0.1 {
		t.Errorf("clone write leaked into original: %v", got)
	}
}

// TestImageDrawCentered tests that a drawn image centers on its anchor.
func TestImageDrawCentered(t *testing.T) {
	win, _ := newTestWin(t, 20, 20)
	img, _ := NewImageSize(NewPoint(10, 10), 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetPixel(x, y, Red)
		}
	}
	if err := img.Draw(win); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	win.mu.Lock()
	inside := FromColor(win.pix.GetPixel(9, 9))
	outside := FromColor(win.pix.GetPixel(3, 3))
	win.mu.Unlock()
	if inside.R < 0.9 {
		t.Errorf("pixel under image = %v, want red", inside)
	}
	if outside.R > 0.9 && outside.G < 0.1 {
		t.Errorf("pixel outside image = %v, want background", outside)
	}
}
