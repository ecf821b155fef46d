package graphics

import (
	"fmt"
	"sync"

	"github.com/gogpu/graphics/internal/render"
	"github.com/gogpu/graphics/internal/xwin"
)

// eventQueueCap bounds the input queues. When a program stops polling,
// the oldest buffered events are dropped first.
const eventQueueCap = 256

// plotPixel is one pixel painted with Plot or PlotPixel. Plotted pixels
// are kept so they survive re-renders, the way canvas items do.
type plotPixel struct {
	x, y int
	col  Color
}

// GraphWin is a top-level window for displaying graphics. It owns one
// native window, an in-memory canvas, the display list of drawn objects,
// and the buffered input queues behind GetMouse/GetKey.
//
// A window is driven from one goroutine; the event pump runs internally.
type GraphWin struct {
	backend   xwin.Backend
	width     int
	height    int
	autoflush bool

	mouseQ *queue[xwin.MouseDown]
	keyQ   *queue[xwin.KeyDown]

	mu           sync.Mutex
	pix          *render.Pixmap
	canvas       *render.Canvas
	items        []GraphicsObject
	plots        []plotPixel
	trans        *transform
	background   Color
	focus        *Entry
	mouseHandler func(*Point)
	closed       bool
}

// NewGraphWin creates and shows a native window of fixed pixel size.
// Non-positive dimensions default to 200.
func NewGraphWin(title string, width, height int, opts ...Option) (*GraphWin, error) {
	if width <= 0 {
		width = 200
	}
	if height <= 0 {
		height = 200
	}

	o := defaultWinOptions()
	for _, opt := range opts {
		opt(&o)
	}

	backend := o.backend
	if backend == nil {
		if o.offscreen {
			backend = xwin.NewOffscreen()
		} else {
			b, err := xwin.NewX11(title, width, height, Logger())
			if err != nil {
				return nil, fmt.Errorf("graphics: open window: %w", err)
			}
			backend = b
		}
	}

	pix := render.NewPixmap(width, height)
	w := &GraphWin{
		backend:    backend,
		width:      width,
		height:     height,
		autoflush:  o.autoflush,
		mouseQ:     newQueue[xwin.MouseDown](eventQueueCap),
		keyQ:       newQueue[xwin.KeyDown](eventQueueCap),
		pix:        pix,
		canvas:     render.NewCanvas(pix),
		background: White,
	}

	w.mu.Lock()
	w.renderLocked()
	w.flushLocked()
	w.mu.Unlock()

	go w.dispatchLoop()

	Logger().Info("window opened", "title", title, "width", width, "height", height)
	return w, nil
}

// dispatchLoop routes backend events into the input queues and the
// focused entry until the backend channel closes.
func (w *GraphWin) dispatchLoop() {
	for ev := range w.backend.Events() {
		switch e := ev.(type) {
		case xwin.MouseDown:
			w.handleMouse(e)
		case xwin.KeyDown:
			w.handleKey(e)
		case xwin.WindowClosed:
			_ = w.Close()
		}
	}
	_ = w.Close()
}

// handleMouse focuses the topmost entry under the click, queues the
// click, and invokes the mouse handler if one is set.
func (w *GraphWin) handleMouse(e xwin.MouseDown) {
	w.mu.Lock()
	wx, wy := toWorld(w.trans, float64(e.X), float64(e.Y))
	pt := NewPoint(wx, wy)

	var focus *Entry
	for i := len(w.items) - 1; i >= 0; i-- {
		if entry, ok := w.items[i].(*Entry); ok && entry.contains(float64(e.X), float64(e.Y)) {
			focus = entry
			break
		}
	}
	focusChanged := focus != w.focus
	w.focus = focus
	if focusChanged {
		w.renderLocked()
		if w.autoflush {
			w.flushLocked()
		}
	}
	handler := w.mouseHandler
	w.mu.Unlock()

	w.mouseQ.push(e)
	if handler != nil {
		handler(pt)
	}
}

// handleKey feeds the focused entry and queues the key. Keys always
// enter the queue, focused entry or not, mirroring a global key binding.
func (w *GraphWin) handleKey(e xwin.KeyDown) {
	w.mu.Lock()
	if w.focus != nil {
		w.focus.applyKey(e)
		w.renderLocked()
		if w.autoflush {
			w.flushLocked()
		}
	}
	w.mu.Unlock()

	w.keyQ.push(e)
}

// Width returns the width of the window in pixels.
func (w *GraphWin) Width() int { return w.width }

// Height returns the height of the window in pixels.
func (w *GraphWin) Height() int { return w.height }

// SetTitle sets the window title.
func (w *GraphWin) SetTitle(title string) error {
	if w.IsClosed() {
		return ErrWindowClosed
	}
	return w.backend.SetTitle(title)
}

// IsClosed reports whether Close has been called or the native window
// is gone.
func (w *GraphWin) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// IsOpen reports the opposite of IsClosed.
func (w *GraphWin) IsOpen() bool { return !w.IsClosed() }

// Close releases the native window and wakes every blocked input call
// with ErrWindowClosed. Objects still attached keep their geometry but
// can no longer be redrawn here. Close is idempotent.
func (w *GraphWin) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	w.mouseQ.close()
	w.keyQ.close()
	err := w.backend.Close()
	Logger().Info("window closed")
	return err
}

// SetBackground sets the background color of the window.
func (w *GraphWin) SetBackground(c Color) error {
	if w.IsClosed() {
		return ErrWindowClosed
	}
	w.mu.Lock()
	w.background = c
	w.renderLocked()
	if w.autoflush {
		w.flushLocked()
	}
	w.mu.Unlock()
	return nil
}

// SetCoords installs world coordinates running from (x1, y1) in the
// lower-left corner to (x2, y2) in the upper-right corner. All drawn
// objects are re-rendered under the new mapping.
func (w *GraphWin) SetCoords(x1, y1, x2, y2 float64) error {
	if w.IsClosed() {
		return ErrWindowClosed
	}
	if x1 == x2 || y1 == y2 {
		return fmt.Errorf("degenerate coordinate span: %w", ErrBadOption)
	}
	w.mu.Lock()
	w.trans = newTransform(w.width, w.height, x1, y1, x2, y2)
	w.renderLocked()
	if w.autoflush {
		w.flushLocked()
	}
	w.mu.Unlock()
	return nil
}

// Plot paints the pixel at window coordinates (x, y).
func (w *GraphWin) Plot(x, y float64, c Color) error {
	if w.IsClosed() {
		return ErrWindowClosed
	}
	w.mu.Lock()
	sx, sy := toScreen(w.trans, x, y)
	w.plotLocked(int(sx+0.5), int(sy+0.5), c)
	w.mu.Unlock()
	return nil
}

// PlotPixel paints the raw pixel (x, y), independent of SetCoords.
func (w *GraphWin) PlotPixel(x, y int, c Color) error {
	if w.IsClosed() {
		return ErrWindowClosed
	}
	w.mu.Lock()
	w.plotLocked(x, y, c)
	w.mu.Unlock()
	return nil
}

func (w *GraphWin) plotLocked(x, y int, c Color) {
	w.plots = append(w.plots, plotPixel{x: x, y: y, col: c})
	w.pix.SetPixel(x, y, c.Color())
	if w.autoflush {
		w.flushLocked()
	}
}

// Update renders all drawn objects and flushes the result to the
// display. Needed after drawing with NoAutoflush.
func (w *GraphWin) Update() error {
	if w.IsClosed() {
		return ErrWindowClosed
	}
	w.mu.Lock()
	w.renderLocked()
	w.flushLocked()
	w.mu.Unlock()
	return nil
}

// Redraw re-renders every drawn object. Equivalent to Update.
func (w *GraphWin) Redraw() error { return w.Update() }

// SavePNG writes the current canvas to a PNG file.
func (w *GraphWin) SavePNG(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.renderLocked()
	return w.pix.SavePNG(path)
}

// ContainsPoint reports whether p lies inside the window bounds.
func (w *GraphWin) ContainsPoint(p *Point) bool {
	if p == nil {
		return false
	}
	w.mu.Lock()
	sx, sy := toScreen(w.trans, p.x, p.y)
	w.mu.Unlock()
	return sx >= 0 && sx <= float64(w.width) && sy >= 0 && sy <= float64(w.height)
}

// GetMouse blocks until a click is buffered, then consumes and returns
// the oldest one. Returns ErrWindowClosed if the window closes while
// waiting.
func (w *GraphWin) GetMouse() (*Point, error) {
	if w.IsClosed() {
		return nil, ErrWindowClosed
	}
	ev, ok := w.mouseQ.wait()
	if !ok {
		return nil, ErrWindowClosed
	}
	return w.eventPoint(ev), nil
}

// CheckMouse returns the oldest buffered click without blocking, or nil
// when no click is buffered.
func (w *GraphWin) CheckMouse() (*Point, error) {
	if w.IsClosed() {
		return nil, ErrWindowClosed
	}
	ev, ok := w.mouseQ.poll()
	if !ok {
		return nil, nil
	}
	return w.eventPoint(ev), nil
}

// GetKey blocks until a key press is buffered, then consumes and
// returns its name ("a", "Return", "space"). Returns ErrWindowClosed if
// the window closes while waiting.
func (w *GraphWin) GetKey() (string, error) {
	if w.IsClosed() {
		return "", ErrWindowClosed
	}
	ev, ok := w.keyQ.wait()
	if !ok {
		return "", ErrWindowClosed
	}
	return ev.Name, nil
}

// CheckKey returns the oldest buffered key press without blocking, or
// "" when none is buffered.
func (w *GraphWin) CheckKey() (string, error) {
	if w.IsClosed() {
		return "", ErrWindowClosed
	}
	ev, ok := w.keyQ.poll()
	if !ok {
		return "", nil
	}
	return ev.Name, nil
}

// CheckMousePosition returns the current pointer position, or nil when
// the pointer is outside the window.
func (w *GraphWin) CheckMousePosition() (*Point, error) {
	if w.IsClosed() {
		return nil, ErrWindowClosed
	}
	p, ok := w.backend.PointerPosition()
	if !ok {
		return nil, nil
	}
	if p.X < 0 || p.X > w.width || p.Y < 0 || p.Y > w.height {
		return nil, nil
	}
	w.mu.Lock()
	wx, wy := toWorld(w.trans, float64(p.X), float64(p.Y))
	w.mu.Unlock()
	return NewPoint(wx, wy), nil
}

// SetMouseHandler installs a callback invoked with each click's
// position, in addition to the click entering the buffer. Pass nil to
// remove it.
func (w *GraphWin) SetMouseHandler(fn func(*Point)) {
	w.mu.Lock()
	w.mouseHandler = fn
	w.mu.Unlock()
}

// eventPoint converts a click's pixel position into a world-coordinate
// point.
func (w *GraphWin) eventPoint(ev xwin.MouseDown) *Point {
	w.mu.Lock()
	wx, wy := toWorld(w.trans, float64(ev.X), float64(ev.Y))
	w.mu.Unlock()
	return NewPoint(wx, wy)
}

// draw attaches obj to the window and renders it. Called by the shapes'
// Draw methods.
func (w *GraphWin) draw(obj GraphicsObject, b *base) error {
	if b.win != nil && !b.win.IsClosed() {
		return ErrObjectDrawn
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWindowClosed
	}
	b.win = w
	w.items = append(w.items, obj)
	w.renderLocked()
	if w.autoflush {
		w.flushLocked()
	}
	w.mu.Unlock()
	return nil
}

// removeItem detaches obj from the display list and re-renders.
func (w *GraphWin) removeItem(obj GraphicsObject) {
	w.mu.Lock()
	for i, it := range w.items {
		if it == obj {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	if w.focus != nil && GraphicsObject(w.focus) == obj {
		w.focus = nil
	}
	if !w.closed {
		w.renderLocked()
		if w.autoflush {
			w.flushLocked()
		}
	}
	w.mu.Unlock()
}

// refresh re-renders after a shape attribute or geometry change.
func (w *GraphWin) refresh() {
	w.mu.Lock()
	if !w.closed {
		w.renderLocked()
		if w.autoflush {
			w.flushLocked()
		}
	}
	w.mu.Unlock()
}

// renderLocked redraws the scene: background, drawn objects in draw
// order, then plotted pixels. Callers hold mu.
func (w *GraphWin) renderLocked() {
	w.pix.Clear(w.background.Color())
	for _, it := range w.items {
		it.render(w.canvas, w.trans)
	}
	for _, pl := range w.plots {
		w.pix.SetPixel(pl.x, pl.y, pl.col.Color())
	}
}

// flushLocked blits the canvas to the native window. Callers hold mu.
func (w *GraphWin) flushLocked() {
	if w.closed {
		return
	}
	if err := w.backend.Flush(w.pix.Image()); err != nil {
		Logger().Warn("flush failed", "err", err)
	}
}
