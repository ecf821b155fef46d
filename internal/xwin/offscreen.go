package xwin

import (
	"image"
	"sync"
)

// Offscreen is a headless backend. Flushed buffers go nowhere; events
// arrive only through Post. It drives headless rendering (save-to-file
// programs) and every input test.
type Offscreen struct {
	events chan Event

	mu      sync.Mutex
	closed  bool
	pointer image.Point
	hasPtr  bool
}

// NewOffscreen creates an offscreen backend.
func NewOffscreen() *Offscreen {
	return &Offscreen{events: make(chan Event, 64)}
}

// SetTitle implements Backend. It is a no-op.
func (o *Offscreen) SetTitle(string) error { return nil }

// Flush implements Backend. The buffer is discarded; callers keep their
// own pixmap.
func (o *Offscreen) Flush(*image.RGBA) error { return nil }

// Events implements Backend.
func (o *Offscreen) Events() <-chan Event { return o.events }

// Post injects an event, as if the native window had produced it.
// Events posted after Close are dropped; when the buffer is full the
// event is dropped rather than blocking the producer.
func (o *Offscreen) Post(ev Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	select {
	case o.events <- ev:
	default:
	}
}

// SetPointer sets the position reported by PointerPosition.
func (o *Offscreen) SetPointer(p image.Point) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pointer = p
	o.hasPtr = true
}

// PointerPosition implements Backend. It reports false until SetPointer
// has been called.
func (o *Offscreen) PointerPosition() (image.Point, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pointer, o.hasPtr
}

// Close implements Backend.
func (o *Offscreen) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	select {
	case o.events <- WindowClosed{}:
	default:
	}
	close(o.events)
	return nil
}
