package graphics

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/gogpu/graphics/internal/fontutil"
	"github.com/gogpu/graphics/internal/render"
	"github.com/gogpu/graphics/internal/xwin"
)

// entryPadding is the pixel gap between the box border and the text.
const entryPadding = 3

// Entry is an editable text field drawn on the canvas, centered on an
// anchor point and sized to hold a given number of characters. Clicking
// inside the box focuses it; key presses then edit the text (and still
// enter the key queue). The fill attribute colors the box.
type Entry struct {
	base
	anchor *Point
	width  int

	mu        sync.Mutex
	text      string
	textColor Color

	family fontutil.Family
	style  fontutil.Style
	size   float64

	// last rendered box, in pixels, for the click hit test
	boxX0, boxY0, boxX1, boxY1 float64
}

// NewEntry creates an entry centered on anchor, wide enough for width
// characters.
func NewEntry(anchor *Point, width int) *Entry {
	e := &Entry{
		anchor:    anchor.Clone(),
		width:     width,
		textColor: Black,
		family:    fontutil.Mono,
		style:     fontutil.Normal,
		size:      12,
	}
	e.cfg = defaultConfig()
	e.cfg.fill = RGB(0.88, 0.88, 0.88)
	return e
}

// String implements fmt.Stringer.
func (e *Entry) String() string {
	return fmt.Sprintf("Entry(%v, %d)", e.anchor, e.width)
}

// Anchor returns a copy of the anchor point.
func (e *Entry) Anchor() *Point { return e.anchor.Clone() }

// Text returns the current contents.
func (e *Entry) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// SetText replaces the contents.
func (e *Entry) SetText(s string) {
	e.mu.Lock()
	e.text = s
	e.mu.Unlock()
	e.refresh()
}

// SetTextColor sets the color of the entered text.
func (e *Entry) SetTextColor(c Color) {
	e.mu.Lock()
	e.textColor = c
	e.mu.Unlock()
	e.refresh()
}

// SetSize sets the font size in points, between 5 and 36.
func (e *Entry) SetSize(size float64) error {
	if size < minTextSize || size > maxTextSize {
		return fmt.Errorf("font size %v out of range [%d, %d]: %w",
			size, minTextSize, maxTextSize, ErrBadOption)
	}
	e.size = size
	e.refresh()
	return nil
}

// SetFace selects the font face: "helvetica", "arial", "courier", or
// "times roman".
func (e *Entry) SetFace(name string) error {
	fam, ok := fontutil.ResolveFamily(name)
	if !ok {
		return fmt.Errorf("font face %q: %w", name, ErrBadOption)
	}
	e.family = fam
	e.refresh()
	return nil
}

// SetStyle selects the font style: "normal", "bold", "italic", or
// "bold italic".
func (e *Entry) SetStyle(name string) error {
	st, ok := fontutil.ResolveStyle(name)
	if !ok {
		return fmt.Errorf("font style %q: %w", name, ErrBadOption)
	}
	e.style = st
	e.refresh()
	return nil
}

// Clone returns a detached copy of the entry, including its contents.
func (e *Entry) Clone() *Entry {
	other := NewEntry(e.anchor, e.width)
	other.cfg = e.cfg
	other.family = e.family
	other.style = e.style
	other.size = e.size
	e.mu.Lock()
	other.text = e.text
	other.textColor = e.textColor
	e.mu.Unlock()
	return other
}

// Draw implements GraphicsObject.
func (e *Entry) Draw(win *GraphWin) error {
	return win.draw(e, &e.base)
}

// Undraw implements GraphicsObject.
func (e *Entry) Undraw() error {
	return e.base.undraw(e)
}

// Move implements GraphicsObject.
func (e *Entry) Move(dx, dy float64) error {
	e.anchor.x += dx
	e.anchor.y += dy
	return e.moved()
}

// applyKey edits the contents from a key press. Called by the window's
// event dispatch while the entry is focused.
func (e *Entry) applyKey(k xwin.KeyDown) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case k.Name == "BackSpace":
		if e.text != "" {
			rs := []rune(e.text)
			e.text = string(rs[:len(rs)-1])
		}
	case k.Rune != 0 && !unicode.IsControl(k.Rune):
		e.text += string(k.Rune)
	}
}

// contains reports whether the pixel position lies inside the last
// rendered box.
func (e *Entry) contains(px, py float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return px >= e.boxX0 && px <= e.boxX1 && py >= e.boxY0 && py <= e.boxY1
}

func (e *Entry) render(cv *render.Canvas, tr *transform) {
	face, err := fontutil.Default.Face(e.family, e.style, e.size)
	if err != nil {
		Logger().Warn("font face unavailable", "err", err)
		return
	}
	cx, cy := toScreen(tr, e.anchor.x, e.anchor.y)

	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	lineHeight := float64(metrics.Height) / 64

	boxW := fontutil.Default.Measure(e.family, e.style, e.size,
		strings.Repeat("0", e.width)) + 2*entryPadding
	boxH := lineHeight + 2*entryPadding

	e.mu.Lock()
	text := e.text
	textCol := e.textColor
	e.boxX0, e.boxY0 = cx-boxW/2, cy-boxH/2
	e.boxX1, e.boxY1 = cx+boxW/2, cy+boxH/2
	x0, y0, x1, y1 := e.boxX0, e.boxY0, e.boxX1, e.boxY1
	e.mu.Unlock()

	var box render.Path
	box.Rect(x0, y0, x1, y1)
	cv.FillPath(&box, e.cfg.fill.Color())
	cv.StrokePath(&box, 1, e.cfg.outline.Color())

	textX := x0 + entryPadding
	baseline := cy - lineHeight/2 + ascent
	cv.DrawText(face, text, textX, baseline, textCol.Color())

	if e.win != nil && e.win.focus == e {
		caretX := textX + fontutil.Default.Measure(e.family, e.style, e.size, text)
		var caret render.Path
		caret.MoveTo(caretX, y0+entryPadding)
		caret.LineTo(caretX, y1-entryPadding)
		cv.StrokePath(&caret, 1, textCol.Color())
	}
}
