package main

import "github.com/tranvietanh/goviet-ime/internal/engine"

// X11 keysyms for the control keys the engine recognizes directly, beyond
// the printable ASCII range where a keysym equals its Latin-1 codepoint.
const (
	xkBackSpace uint32 = 0xff08
	xkTab       uint32 = 0xff09
	xkReturn    uint32 = 0xff0d
	xkEscape    uint32 = 0xff1b
	xkSpace     uint32 = 0x0020
	xkDelete    uint32 = 0xffff
)

// Modifier bits as reported by the Fcitx5 frontend over D-Bus, matching the
// X11 event state field.
const (
	ModShift   uint32 = 1 << 0
	ModControl uint32 = 1 << 2
	ModMod1    uint32 = 1 << 3
)

// keysymToKey maps an X11 keysym to the engine's Keycode, plus whether the
// key was typed uppercase. Shifted letters arrive as their own keysym
// (XK_A == 0x41), so caps is derived from the keysym itself, not from the
// modifiers word; modifiers still carry Shift for keys with no case, like
// punctuation.
func keysymToKey(keysym uint32) (key engine.Keycode, caps, ok bool) {
	switch {
	case keysym >= 'a' && keysym <= 'z':
		return engine.Keycode(keysym), false, true
	case keysym >= 'A' && keysym <= 'Z':
		return engine.Keycode(keysym + ('a' - 'A')), true, true
	case keysym >= '0' && keysym <= '9':
		return engine.Keycode(keysym), false, true
	}
	switch keysym {
	case xkBackSpace:
		return engine.KeyBackspace, false, true
	case xkTab:
		return engine.KeyTab, false, true
	case xkReturn:
		return engine.KeyReturn, false, true
	case xkEscape:
		return engine.KeyEscape, false, true
	case xkSpace:
		return engine.KeySpace, false, true
	}
	if keysym >= 0x20 && keysym <= 0x7e {
		return engine.Keycode(keysym), false, true
	}
	return 0, false, false
}

func keyLabel(keysym uint32, key engine.Keycode, caps, ok bool) string {
	if !ok {
		return "Unknown"
	}
	switch key {
	case engine.KeyBackspace:
		return "Backspace"
	case engine.KeyTab:
		return "Tab"
	case engine.KeyReturn:
		return "Enter"
	case engine.KeyEscape:
		return "Esc"
	case engine.KeySpace:
		return "Space"
	}
	ch := rune(key)
	if caps {
		ch = rune(keysym)
	}
	return string(ch)
}
