package engine

// VNI implements InputMethod for the VNI convention: every tone and mark
// is a standalone digit key, independent of whatever letter precedes it.
type VNI struct{}

// NewVNI returns a VNI input method.
func NewVNI() *VNI { return &VNI{} }

func (VNI) Name() string { return "VNI" }

var vniToneKeys = map[Keycode]Mark{
	Key1: MarkAcute,
	Key2: MarkGrave,
	Key3: MarkHook,
	Key4: MarkTilde,
	Key5: MarkDot,
}

func (VNI) ToneKey(key Keycode) (Mark, bool) {
	m, ok := vniToneKeys[key]
	return m, ok
}

func (VNI) RemoveKey(key Keycode) bool { return key == Key0 }

func (VNI) StrokeKey(key Keycode) (matchPrev, ok bool) {
	return false, key == Key9
}

// vniModifierKeys: 6 is circumflex (â/ê/ô); 7 and 8 both resolve to the
// engine's single Horn modifier (ơ/ư from 7, ă from 8 — the distinction
// is which vowel the engine finds to apply it to, not the stored value).
var vniModifierKeys = map[Keycode]ToneModifier{
	Key6: ToneModCircumflex,
	Key7: ToneModHorn,
	Key8: ToneModHorn,
}

func (VNI) ModifierKey(key Keycode) (tm ToneModifier, matchPrev, ok bool) {
	tm, ok = vniModifierKeys[key]
	return tm, false, ok
}

func (VNI) WKey(Keycode) bool { return false }
