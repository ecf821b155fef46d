package graphics

import (
	"testing"

	"github.com/gogpu/graphics/internal/xwin"
)

// clickAndSettle posts a click and waits until the dispatch goroutine
// has processed it. Focus changes happen before the click enters the
// buffer, so draining the buffer proves the focus is current.
func clickAndSettle(t *testing.T, win *GraphWin, backend *xwin.Offscreen, x, y int) {
	t.Helper()
	backend.Post(xwin.MouseDown{Button: 1, X: x, Y: y})
	waitFor(t, "click to be dispatched", func() bool {
		p, err := win.CheckMouse()
		return err == nil && p != nil
	})
}

// typeAndSettle posts a key press and waits for it to be dispatched.
// The focused entry is edited before the key enters the buffer.
func typeAndSettle(t *testing.T, win *GraphWin, backend *xwin.Offscreen, k xwin.KeyDown) {
	t.Helper()
	backend.Post(k)
	waitFor(t, "key to be dispatched", func() bool {
		got, err := win.CheckKey()
		return err == nil && got != ""
	})
}

// TestEntryTyping tests focus-by-click and keyboard editing.
func TestEntryTyping(t *testing.T) {
	win, backend := newTestWin(t, 200, 200)
	e := NewEntry(NewPoint(100, 100), 10)
	if err := e.Draw(win); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// click inside the box to focus it
	clickAndSettle(t, win, backend, 100, 100)

	typeAndSettle(t, win, backend, xwin.KeyDown{Rune: 'h', Name: "h"})
	typeAndSettle(t, win, backend, xwin.KeyDown{Rune: 'i', Name: "i"})
	if got := e.Text(); got != "hi" {
		t.Errorf("Text = %q, want %q", got, "hi")
	}

	typeAndSettle(t, win, backend, xwin.KeyDown{Name: "BackSpace"})
	if got := e.Text(); got != "h" {
		t.Errorf("Text after BackSpace = %q, want %q", got, "h")
	}

	// non-printable keys leave the contents alone
	typeAndSettle(t, win, backend, xwin.KeyDown{Name: "Left"})
	if got := e.Text(); got != "h" {
		t.Errorf("Text after Left = %q, want %q", got, "h")
	}
}

// TestEntryUnfocusedIgnoresKeys tests that keys only edit a focused
// entry, and that a click outside removes focus.
func TestEntryUnfocusedIgnoresKeys(t *testing.T) {
	win, backend := newTestWin(t, 200, 200)
	e := NewEntry(NewPoint(100, 100), 10)
	if err := e.Draw(win); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// no click yet: not focused
	typeAndSettle(t, win, backend, xwin.KeyDown{Rune: 'x', Name: "x"})
	if got := e.Text(); got != "" {
		t.Errorf("Text without focus = %q, want empty", got)
	}

	clickAndSettle(t, win, backend, 100, 100)
	typeAndSettle(t, win, backend, xwin.KeyDown{Rune: 'a', Name: "a"})
	if got := e.Text(); got != "a" {
		t.Errorf("Text with focus = %q, want %q", got, "a")
	}

	// click far away to drop focus
	clickAndSettle(t, win, backend, 5, 5)
	typeAndSettle(t, win, backend, xwin.KeyDown{Rune: 'b', Name: "b"})
	if got := e.Text(); got != "a" {
		t.Errorf("Text after unfocus = %q, want %q", got, "a")
	}
}

// TestEntrySetText tests programmatic contents access.
func TestEntrySetText(t *testing.T) {
	e := NewEntry(NewPoint(50, 50), 8)
	if e.Text() != "" {
		t.Errorf("fresh entry Text = %q, want empty", e.Text())
	}
	e.SetText("preset")
	if e.Text() != "preset" {
		t.Errorf("Text = %q, want %q", e.Text(), "preset")
	}
	clone := e.Clone()
	clone.SetText("other")
	if e.Text() != "preset" {
		t.Error("clone SetText leaked into original")
	}
}
