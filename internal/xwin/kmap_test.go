package xwin

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

// TestKeysymRune tests keysym to character translation.
func TestKeysymRune(t *testing.T) {
	tests := []struct {
		ks   xproto.Keysym
		want rune
	}{
		{'a', 'a'},
		{'Z', 'Z'},
		{' ', ' '},
		{0xe9, 'é'},
		{0x01000000 | 0x20ac, '€'},
		{0xff0d, 0}, // Return types nothing
		{0xffe1, 0}, // Shift_L types nothing
	}
	for _, tt := range tests {
		if got := keysymRune(tt.ks); got != tt.want {
			t.Errorf("keysymRune(%#x) = %q, want %q", tt.ks, got, tt.want)
		}
	}
}

// TestKeysymName tests the symbolic names reported to the key queue.
func TestKeysymName(t *testing.T) {
	tests := []struct {
		ks   xproto.Keysym
		want string
	}{
		{'a', "a"},
		{' ', "space"},
		{0xff0d, "Return"},
		{0xff08, "BackSpace"},
		{0xff52, "Up"},
		{0xffc9, "F12"},
		{0xffeb, ""}, // Super_L is not reported
	}
	for _, tt := range tests {
		if got := keysymName(tt.ks); got != tt.want {
			t.Errorf("keysymName(%#x) = %q, want %q", tt.ks, got, tt.want)
		}
	}
}

// TestModifiersColumn tests the shift and altGr column selection.
func TestModifiersColumn(t *testing.T) {
	if c := modifiersColumn(0); c != 0 {
		t.Errorf("no modifiers = column %d, want 0", c)
	}
	if c := modifiersColumn(uint16(xproto.KeyButMaskShift)); c != 1 {
		t.Errorf("shift = column %d, want 1", c)
	}
	if c := modifiersColumn(uint16(xproto.KeyButMaskLock)); c != 1 {
		t.Errorf("caps = column %d, want 1", c)
	}
	if c := modifiersColumn(uint16(xproto.KeyButMaskMod5)); c != 4 {
		t.Errorf("altGr = column %d, want 4", c)
	}
	both := uint16(xproto.KeyButMaskMod5 | xproto.KeyButMaskShift)
	if c := modifiersColumn(both); c != 5 {
		t.Errorf("altGr+shift = column %d, want 5", c)
	}
}
