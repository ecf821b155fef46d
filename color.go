package graphics

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from components in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorRGB creates an opaque color from integer intensities in [0, 255].
func ColorRGB(r, g, b int) Color {
	return Color{
		R: clamp255(float64(r)) / 255,
		G: clamp255(float64(g)) / 255,
		B: clamp255(float64(b)) / 255,
		A: 1.0,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// colorNames maps the named colors beginner programs reach for.
// The values follow the X11 color table, which is what the original
// Tk-based API resolved these names against.
var colorNames = map[string]Color{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       ColorRGB(0, 128, 0),
	"lime":        Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"orange":      ColorRGB(255, 165, 0),
	"purple":      ColorRGB(128, 0, 128),
	"violet":      ColorRGB(238, 130, 238),
	"pink":        ColorRGB(255, 192, 203),
	"brown":       ColorRGB(165, 42, 42),
	"gray":        ColorRGB(128, 128, 128),
	"grey":        ColorRGB(128, 128, 128),
	"lightgray":   ColorRGB(211, 211, 211),
	"lightgrey":   ColorRGB(211, 211, 211),
	"darkgray":    ColorRGB(169, 169, 169),
	"darkgrey":    ColorRGB(169, 169, 169),
	"lightblue":   ColorRGB(173, 216, 230),
	"lightgreen":  ColorRGB(144, 238, 144),
	"lightyellow": ColorRGB(255, 255, 224),
	"darkblue":    ColorRGB(0, 0, 139),
	"darkgreen":   ColorRGB(0, 100, 0),
	"darkred":     ColorRGB(139, 0, 0),
	"gold":        ColorRGB(255, 215, 0),
	"silver":      ColorRGB(192, 192, 192),
	"navy":        ColorRGB(0, 0, 128),
	"olive":       ColorRGB(128, 128, 0),
	"teal":        ColorRGB(0, 128, 128),
	"maroon":      ColorRGB(128, 0, 0),
	"tan":         ColorRGB(210, 180, 140),
	"beige":       ColorRGB(245, 245, 220),
	"ivory":       ColorRGB(255, 255, 240),
	"skyblue":     ColorRGB(135, 206, 235),
	"salmon":      ColorRGB(250, 128, 114),
	"coral":       ColorRGB(255, 127, 80),
	"khaki":       ColorRGB(240, 230, 140),
	"plum":        ColorRGB(221, 160, 221),
	"orchid":      ColorRGB(218, 112, 214),
	"turquoise":   ColorRGB(64, 224, 208),
}

// ParseColor resolves a color name ("red", "light blue") or a "#rrggbb"
// hex string to a Color. Names are case-insensitive and spaces are
// ignored, so "Light Blue" and "lightblue" are the same color.
func ParseColor(name string) (Color, error) {
	s := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if s == "" {
		return Color{}, fmt.Errorf("empty color name: %w", ErrBadOption)
	}
	if s[0] == '#' {
		return Hex(s), nil
	}
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q: %w", name, ErrBadOption)
}
