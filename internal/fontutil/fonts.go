// Package fontutil provides the font faces used by text objects: the Go
// font family parsed once and cached per size, plus HarfBuzz-backed text
// measurement.
package fontutil

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Family selects a font family.
type Family int

const (
	// Sans is the Go sans-serif family.
	Sans Family = iota
	// Mono is the Go monospaced family.
	Mono
)

// Style selects a font style within a family.
type Style int

const (
	Normal Style = iota
	Bold
	Italic
	BoldItalic
)

// ResolveFamily maps a teaching face name to a family. The names are the
// ones the original API accepted; all proportional faces resolve to the
// Go sans family since that is the only TTF family shipped with the
// module's font stack.
func ResolveFamily(name string) (Family, bool) {
	switch name {
	case "helvetica", "arial", "times roman":
		return Sans, true
	case "courier":
		return Mono, true
	}
	return Sans, false
}

// ResolveStyle maps a teaching style name to a Style.
func ResolveStyle(name string) (Style, bool) {
	switch name {
	case "normal":
		return Normal, true
	case "bold":
		return Bold, true
	case "italic":
		return Italic, true
	case "bold italic":
		return BoldItalic, true
	}
	return Normal, false
}

// ttfBytes returns the embedded TTF for a family/style pair.
func ttfBytes(f Family, s Style) []byte {
	if f == Mono {
		switch s {
		case Bold:
			return gomonobold.TTF
		case Italic:
			return gomonoitalic.TTF
		case BoldItalic:
			return gomonobolditalic.TTF
		default:
			return gomono.TTF
		}
	}
	switch s {
	case Bold:
		return gobold.TTF
	case Italic:
		return goitalic.TTF
	case BoldItalic:
		return gobolditalic.TTF
	default:
		return goregular.TTF
	}
}

type fontKey struct {
	family Family
	style  Style
}

type faceKey struct {
	fontKey
	size float64
}

// Manager parses and caches fonts and faces. The zero value is not
// usable; call NewManager, or use the package Default.
type Manager struct {
	mu     sync.Mutex
	fonts  map[fontKey]*sfnt.Font
	faces  map[faceKey]font.Face
	shaper *Shaper
}

// Default is the shared manager used by text objects.
var Default = NewManager()

// NewManager creates an empty font manager.
func NewManager() *Manager {
	return &Manager{
		fonts:  make(map[fontKey]*sfnt.Font),
		faces:  make(map[faceKey]font.Face),
		shaper: NewShaper(),
	}
}

// Face returns a cached face for the family, style, and size in points.
func (m *Manager) Face(f Family, s Style, size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	fk := fontKey{family: f, style: s}
	ck := faceKey{fontKey: fk, size: size}
	if face, ok := m.faces[ck]; ok {
		return face, nil
	}

	fnt, ok := m.fonts[fk]
	if !ok {
		parsed, err := opentype.Parse(ttfBytes(f, s))
		if err != nil {
			return nil, fmt.Errorf("fontutil: parse font: %w", err)
		}
		fnt = parsed
		m.fonts[fk] = fnt
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontutil: new face: %w", err)
	}
	m.faces[ck] = face
	return face, nil
}

// Measure returns the advance width of text in pixels at the given
// family, style, and size. Measurement goes through the HarfBuzz shaper
// when possible and falls back to the face's own advances.
func (m *Manager) Measure(f Family, s Style, size float64, text string) float64 {
	if text == "" {
		return 0
	}
	if w, err := m.shaper.Advance(ttfBytes(f, s), fontKey{family: f, style: s}, size, text); err == nil {
		return w
	}
	face, err := m.Face(f, s, size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, text)) / 64
}
