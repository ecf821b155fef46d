package graphics

import (
	"fmt"
	"strings"

	"github.com/gogpu/graphics/internal/fontutil"
	"github.com/gogpu/graphics/internal/render"
)

// Text size limits, in points.
const (
	minTextSize = 5
	maxTextSize = 36
)

// Text is a string of characters centered on an anchor point. Multi-line
// strings render as a block of centered lines. Text color is the fill
// attribute; SetTextColor is an alias for SetFill.
type Text struct {
	base
	anchor *Point
	text   string
	family fontutil.Family
	style  fontutil.Style
	face   string
	size   float64
}

// NewText creates a text object centered on anchor.
func NewText(anchor *Point, text string) *Text {
	t := &Text{
		anchor: anchor.Clone(),
		text:   text,
		family: fontutil.Sans,
		style:  fontutil.Normal,
		face:   "helvetica",
		size:   12,
	}
	t.cfg = defaultConfig()
	t.cfg.fill = Black
	return t
}

// String implements fmt.Stringer.
func (t *Text) String() string {
	return fmt.Sprintf("Text(%v, %q)", t.anchor, t.text)
}

// Anchor returns a copy of the anchor point.
func (t *Text) Anchor() *Point { return t.anchor.Clone() }

// Text returns the displayed string.
func (t *Text) Text() string { return t.text }

// SetText replaces the displayed string.
func (t *Text) SetText(s string) {
	t.text = s
	t.refresh()
}

// SetTextColor sets the text color. Alias for SetFill.
func (t *Text) SetTextColor(c Color) {
	t.SetFill(c)
}

// SetFace selects the font face: "helvetica", "arial", "courier", or
// "times roman".
func (t *Text) SetFace(name string) error {
	fam, ok := fontutil.ResolveFamily(name)
	if !ok {
		return fmt.Errorf("font face %q: %w", name, ErrBadOption)
	}
	t.family = fam
	t.face = name
	t.refresh()
	return nil
}

// Face returns the current font face name.
func (t *Text) Face() string { return t.face }

// SetSize sets the font size in points, between 5 and 36.
func (t *Text) SetSize(size float64) error {
	if size < minTextSize || size > maxTextSize {
		return fmt.Errorf("font size %v out of range [%d, %d]: %w",
			size, minTextSize, maxTextSize, ErrBadOption)
	}
	t.size = size
	t.refresh()
	return nil
}

// Size returns the font size in points.
func (t *Text) Size() float64 { return t.size }

// SetStyle selects the font style: "normal", "bold", "italic", or
// "bold italic".
func (t *Text) SetStyle(name string) error {
	st, ok := fontutil.ResolveStyle(name)
	if !ok {
		return fmt.Errorf("font style %q: %w", name, ErrBadOption)
	}
	t.style = st
	t.refresh()
	return nil
}

// Clone returns a detached copy of the text object.
func (t *Text) Clone() *Text {
	other := NewText(t.anchor, t.text)
	other.cfg = t.cfg
	other.family = t.family
	other.style = t.style
	other.face = t.face
	other.size = t.size
	return other
}

// Draw implements GraphicsObject.
func (t *Text) Draw(win *GraphWin) error {
	return win.draw(t, &t.base)
}

// Undraw implements GraphicsObject.
func (t *Text) Undraw() error {
	return t.base.undraw(t)
}

// Move implements GraphicsObject.
func (t *Text) Move(dx, dy float64) error {
	t.anchor.x += dx
	t.anchor.y += dy
	return t.moved()
}

func (t *Text) render(cv *render.Canvas, tr *transform) {
	face, err := fontutil.Default.Face(t.family, t.style, t.size)
	if err != nil {
		Logger().Warn("font face unavailable", "face", t.face, "err", err)
		return
	}
	cx, cy := toScreen(tr, t.anchor.x, t.anchor.y)

	lines := strings.Split(t.text, "\n")
	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	lineHeight := float64(metrics.Height) / 64
	top := cy - lineHeight*float64(len(lines))/2

	col := t.cfg.fill.Color()
	for i, line := range lines {
		w := fontutil.Default.Measure(t.family, t.style, t.size, line)
		baseline := top + lineHeight*float64(i) + ascent
		cv.DrawText(face, line, cx-w/2, baseline, col)
	}
}
