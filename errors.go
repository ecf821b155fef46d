package graphics

import "errors"

// Sentinel errors for the graphics package.
var (
	// ErrWindowClosed is returned when an operation is attempted on a
	// window that has been closed.
	ErrWindowClosed = errors.New("graphics: window is closed")

	// ErrObjectDrawn is returned when drawing an object that is already
	// drawn in a window.
	ErrObjectDrawn = errors.New("graphics: object is already drawn")

	// ErrBadOption is returned for illegal attribute or geometry values,
	// such as a negative radius or an unknown font face.
	ErrBadOption = errors.New("graphics: illegal option value")
)
