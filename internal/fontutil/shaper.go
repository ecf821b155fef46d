package fontutil

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text through go-text/typesetting's HarfBuzz
// implementation, so advances include kerning and ligature substitution.
//
// Shaper is safe for concurrent use. Parsed font.Font objects are cached
// (they are read-only and thread-safe); font.Face instances are created
// per call since they are not. HarfbuzzShaper instances are pooled
// because they carry mutable buffers.
type Shaper struct {
	pool sync.Pool

	mu    sync.Mutex
	fonts map[fontKey]*font.Font
}

// NewShaper creates a Shaper with empty caches.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[fontKey]*font.Font),
	}
}

// Advance returns the total advance width of text in pixels for the font
// data at the given size in points (at 72 DPI points equal pixels).
func (s *Shaper) Advance(ttf []byte, key fontKey, size float64, text string) (float64, error) {
	f, err := s.getOrParse(ttf, key)
	if err != nil {
		return 0, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	return float64(out.Advance) / 64, nil
}

// getOrParse returns the cached parsed font for key, parsing ttf on the
// first call.
func (s *Shaper) getOrParse(ttf []byte, key fontKey) (*font.Font, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fonts[key]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("fontutil: parse ttf: %w", err)
	}
	s.fonts[key] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune. Mixed
// scripts within one string are shaped as the first script found.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
