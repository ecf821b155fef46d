package graphics

import (
	"errors"
	"testing"
)

// TestHex tests hex color parsing in all supported forms.
func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Color{1, 0, 0, 1}},
		{"FF0000", Color{1, 0, 0, 1}},
		{"#F00", Color{1, 0, 0, 1}},
		{"#00FF00", Color{0, 1, 0, 1}},
		{"#0000FF80", Color{0, 0, 1, float64(0x80) / 255}},
		{"#000", Color{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		got := Hex(tt.in)
		if got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestColorRGB tests integer construction and clamping.
func TestColorRGB(t *testing.T) {
	c := ColorRGB(255, 128, 0)
	if c.R != 1 || c.B != 0 {
		t.Errorf("ColorRGB(255, 128, 0) = %v", c)
	}
	c = ColorRGB(300, -5, 0)
	if c.R != 1 || c.G != 0 {
		t.Errorf("ColorRGB out-of-range not clamped: %v", c)
	}
}

// TestParseColor tests named, hex, and invalid color specs.
func TestParseColor(t *testing.T) {
	c, err := ParseColor("red")
	if err != nil {
		t.Fatalf("ParseColor(red): %v", err)
	}
	if c != Red {
		t.Errorf("ParseColor(red) = %v, want %v", c, Red)
	}

	// case and embedded spaces are ignored
	c, err = ParseColor("Light Gray")
	if err != nil {
		t.Fatalf("ParseColor(Light Gray): %v", err)
	}
	if c.A != 1 {
		t.Errorf("ParseColor(Light Gray) = %v, want opaque", c)
	}

	c, err = ParseColor("#00ff00")
	if err != nil {
		t.Fatalf("ParseColor(#00ff00): %v", err)
	}
	if c != Green {
		t.Errorf("ParseColor(#00ff00) = %v, want %v", c, Green)
	}

	_, err = ParseColor("not a color")
	if !errors.Is(err, ErrBadOption) {
		t.Errorf("ParseColor(not a color) err = %v, want ErrBadOption", err)
	}
}

// TestColorRoundTrip tests conversion through image/color and back.
func TestColorRoundTrip(t *testing.T) {
	orig := RGBA(0.2, 0.4, 0.6, 1)
	got := FromColor(orig.Color())
	const eps = 1.0 / 255
	if diff := got.R - orig.R; diff > eps || diff < -eps {
		t.Errorf("round trip R = %v, want %v", got.R, orig.R)
	}
	if diff := got.B - orig.B; diff > eps || diff < -eps {
		t.Errorf("round trip B = %v, want %v", got.B, orig.B)
	}
}
