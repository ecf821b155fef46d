package xwin

import (
	"image"
	"testing"
)

// TestOffscreenEvents tests event injection, the close event, and the
// post-close behavior.
func TestOffscreenEvents(t *testing.T) {
	o := NewOffscreen()
	o.Post(MouseDown{Button: 1, X: 3, Y: 4})
	o.Post(KeyDown{Rune: 'q', Name: "q"})

	ev := <-o.Events()
	md, ok := ev.(MouseDown)
	if !ok || md.X != 3 || md.Y != 4 {
		t.Errorf("first event = %#v, want MouseDown(3, 4)", ev)
	}
	ev = <-o.Events()
	if kd, ok := ev.(KeyDown); !ok || kd.Name != "q" {
		t.Errorf("second event = %#v, want KeyDown q", ev)
	}

	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := (<-o.Events()).(WindowClosed); !ok {
		t.Error("close did not produce WindowClosed")
	}
	if _, open := <-o.Events(); open {
		t.Error("event channel still open after Close")
	}
	o.Post(KeyDown{Name: "x"}) // must not panic
	if err := o.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

// TestOffscreenPointer tests the pointer stub.
func TestOffscreenPointer(t *testing.T) {
	o := NewOffscreen()
	if _, ok := o.PointerPosition(); ok {
		t.Error("pointer reported before SetPointer")
	}
	o.SetPointer(image.Pt(11, 22))
	p, ok := o.PointerPosition()
	if !ok || p.X != 11 || p.Y != 22 {
		t.Errorf("PointerPosition = (%v, %v), want (11, 22)", p, ok)
	}
}
