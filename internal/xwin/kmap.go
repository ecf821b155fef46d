package xwin

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// KMap holds the server's keyboard mapping and translates keycodes to
// keysyms, runes, and symbolic names.
//
// $ man keymaps
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html
type KMap struct {
	si  *xproto.SetupInfo
	kmr *xproto.GetKeyboardMappingReply
}

// NewKMap fetches the keyboard mapping from the server.
func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{si: xproto.Setup(conn)}
	if err := km.ReadTable(conn); err != nil {
		return nil, err
	}
	return km, nil
}

// ReadTable refreshes the mapping. Called again on MappingNotify.
func (km *KMap) ReadTable(conn *xgb.Conn) error {
	count := byte(km.si.MaxKeycode - km.si.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(conn, km.si.MinKeycode, count).Reply()
	if err != nil {
		return err
	}
	km.kmr = reply
	return nil
}

// keysymColumn returns the keysym in the given column for a keycode.
func (km *KMap) keysymColumn(keycode xproto.Keycode, column int) xproto.Keysym {
	kc := int(keycode - km.si.MinKeycode)
	w := int(km.kmr.KeysymsPerKeycode)
	i := kc*w + column
	if i < 0 || i >= len(km.kmr.Keysyms) {
		return 0
	}
	return km.kmr.Keysyms[i]
}

// modifiersColumn selects the keysym column for the active modifiers.
func modifiersColumn(state uint16) int {
	altGr := uint16(xproto.KeyButMaskMod5)
	shift := uint16(xproto.KeyButMaskShift)
	caps := uint16(xproto.KeyButMaskLock)

	switch {
	case state&altGr != 0 && state&(shift|caps) != 0:
		return 5
	case state&altGr != 0:
		return 4
	case state&(shift|caps) != 0:
		return 1
	}
	return 0
}

// Lookup translates a key press to the typed rune (0 when the key types
// nothing) and its symbolic name.
func (km *KMap) Lookup(keycode xproto.Keycode, state uint16) (rune, string) {
	ks := km.keysymColumn(keycode, modifiersColumn(state))
	if ks == 0 {
		ks = km.keysymColumn(keycode, 0)
	}
	return keysymRune(ks), keysymName(ks)
}

// keysymRune returns the character a keysym types, or 0.
func keysymRune(ks xproto.Keysym) rune {
	switch {
	case ks >= 0x20 && ks <= 0x7e, ks >= 0xa0 && ks <= 0xff:
		// latin-1
		return rune(ks)
	case ks&0x01000000 != 0:
		// unicode keysyms: codepoint | 0x01000000
		return rune(ks &^ 0x01000000)
	}
	return 0
}

// specialNames maps non-character keysyms to the names the polling API
// reports, matching the X keysym names Tk programs see.
var specialNames = map[xproto.Keysym]string{
	0xff08: "BackSpace",
	0xff09: "Tab",
	0xff0d: "Return",
	0xff13: "Pause",
	0xff1b: "Escape",
	0xff50: "Home",
	0xff51: "Left",
	0xff52: "Up",
	0xff53: "Right",
	0xff54: "Down",
	0xff55: "Prior",
	0xff56: "Next",
	0xff57: "End",
	0xff63: "Insert",
	0xffff: "Delete",
	0xffe1: "Shift_L",
	0xffe2: "Shift_R",
	0xffe3: "Control_L",
	0xffe4: "Control_R",
	0xffe5: "Caps_Lock",
	0xffe9: "Alt_L",
	0xffea: "Alt_R",
	0xffbe: "F1",
	0xffbf: "F2",
	0xffc0: "F3",
	0xffc1: "F4",
	0xffc2: "F5",
	0xffc3: "F6",
	0xffc4: "F7",
	0xffc5: "F8",
	0xffc6: "F9",
	0xffc7: "F10",
	0xffc8: "F11",
	0xffc9: "F12",
}

// keysymName returns the symbolic name for a keysym, or "" for keysyms
// this backend does not report.
func keysymName(ks xproto.Keysym) string {
	if name, ok := specialNames[ks]; ok {
		return name
	}
	if r := keysymRune(ks); r != 0 {
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	return ""
}
