// Package xwin provides the native window backends for graphics windows:
// an X11 backend speaking the X protocol directly, and an offscreen
// backend for headless rendering and tests.
//
// A backend owns one native window surface. It accepts pixel buffers to
// display and reports input through an event channel; it does not
// interpret events or retain drawing state.
package xwin

import "image"

// Event is a window input or lifecycle event.
type Event interface{}

// MouseDown reports a pointer button press at window coordinates.
type MouseDown struct {
	Button uint32
	X, Y   int
}

// KeyDown reports a key press. Name is the key's symbolic name
// ("a", "Return", "space"); Rune is the typed character, or 0 when the
// key produces none.
type KeyDown struct {
	Rune rune
	Name string
}

// WindowClosed reports that the native window is gone, either because
// the user closed it or the connection dropped. No further events follow.
type WindowClosed struct{}

// Backend is a native window surface.
type Backend interface {
	// SetTitle sets the window title.
	SetTitle(title string) error

	// Flush displays the buffer in the window. The buffer dimensions
	// must match the window's.
	Flush(img *image.RGBA) error

	// Events returns the input event channel. The channel is closed
	// after a WindowClosed event.
	Events() <-chan Event

	// PointerPosition reports the pointer location in window
	// coordinates, and whether the pointer is available.
	PointerPosition() (image.Point, bool)

	// Close releases the native window. It is idempotent.
	Close() error
}
