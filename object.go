package graphics

import (
	"fmt"

	"github.com/gogpu/graphics/internal/render"
)

// GraphicsObject is the shared capability of all drawable objects:
// attach to a window, detach, and move. Concrete shapes add their own
// geometry accessors and a Clone method returning the concrete type.
//
// An object may be drawn into at most one window at a time.
type GraphicsObject interface {
	// Draw attaches the object to win and renders it. Drawing an object
	// that is already drawn returns ErrObjectDrawn; drawing into a
	// closed window returns ErrWindowClosed.
	Draw(win *GraphWin) error

	// Undraw detaches the object and removes its rendering. Undrawing
	// an object that is not drawn is a no-op.
	Undraw() error

	// Move shifts the object by (dx, dy) in window coordinates and, if
	// the object is drawn, updates the rendering.
	Move(dx, dy float64) error

	// IsDrawn reports whether the object is currently attached to an
	// open window.
	IsDrawn() bool

	// render draws the object onto the canvas. Implemented only by
	// shapes in this package.
	render(cv *render.Canvas, tr *transform)
}

// config holds the drawing attributes every shape carries.
type config struct {
	fill    Color
	outline Color
	width   float64
}

// defaultConfig mirrors the defaults drawn shapes start with: hollow
// interior, black outline, 1 pixel line width.
func defaultConfig() config {
	return config{fill: Transparent, outline: Black, width: 1}
}

// base is embedded by every shape. It owns the attribute state and the
// attachment to a window.
type base struct {
	cfg config
	win *GraphWin
}

// IsDrawn reports whether the shape is attached to an open window.
func (b *base) IsDrawn() bool {
	return b.win != nil && !b.win.IsClosed()
}

// Window returns the window the shape is drawn in, or nil.
func (b *base) Window() *GraphWin {
	return b.win
}

// SetFill sets the interior color.
func (b *base) SetFill(c Color) {
	b.cfg.fill = c
	b.refresh()
}

// SetOutline sets the outline color.
func (b *base) SetOutline(c Color) {
	b.cfg.outline = c
	b.refresh()
}

// SetWidth sets the outline line width in pixels.
func (b *base) SetWidth(w float64) error {
	if w < 0 {
		return fmt.Errorf("negative width %v: %w", w, ErrBadOption)
	}
	b.cfg.width = w
	b.refresh()
	return nil
}

// Fill returns the interior color.
func (b *base) Fill() Color { return b.cfg.fill }

// Outline returns the outline color.
func (b *base) Outline() Color { return b.cfg.outline }

// Width returns the outline line width.
func (b *base) Width() float64 { return b.cfg.width }

// refresh re-renders the window when the shape is drawn.
func (b *base) refresh() {
	if b.win != nil && !b.win.IsClosed() {
		b.win.refresh()
	}
}

// undraw detaches obj from its window. Safe to call when not drawn.
func (b *base) undraw(obj GraphicsObject) error {
	w := b.win
	if w == nil {
		return nil
	}
	b.win = nil
	if w.IsClosed() {
		return nil
	}
	w.removeItem(obj)
	return nil
}

// moved re-renders after a geometry change.
func (b *base) moved() error {
	b.refresh()
	return nil
}
