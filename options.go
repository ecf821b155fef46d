package graphics

import "github.com/gogpu/graphics/internal/xwin"

// winOptions holds the configurable window settings.
type winOptions struct {
	offscreen bool
	autoflush bool
	backend   xwin.Backend
}

// defaultWinOptions returns the default window settings.
func defaultWinOptions() winOptions {
	return winOptions{autoflush: true}
}

// Option configures a window created with NewGraphWin.
type Option func(*winOptions)

// Offscreen creates the window without a native display: drawing goes to
// the in-memory canvas only, and input arrives only from injected
// events. Useful for headless rendering (SavePNG) and tests.
func Offscreen() Option {
	return func(o *winOptions) {
		o.offscreen = true
	}
}

// NoAutoflush defers display updates until Update is called. By default
// every draw, undraw, move, or attribute change is flushed to the
// display immediately.
func NoAutoflush() Option {
	return func(o *winOptions) {
		o.autoflush = false
	}
}

// withBackend installs a specific backend. Used by tests.
func withBackend(b xwin.Backend) Option {
	return func(o *winOptions) {
		o.backend = b
	}
}
