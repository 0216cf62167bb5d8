package engine

// Telex implements InputMethod for the Telex convention: tone and mark
// keys are ordinary letters, disambiguated from literal text only by
// whether the buffer already holds a syllable they can apply to.
type Telex struct{}

// NewTelex returns a Telex input method.
func NewTelex() *Telex { return &Telex{} }

func (Telex) Name() string { return "Telex" }

var telexToneKeys = map[Keycode]Mark{
	KeyS: MarkAcute,
	KeyF: MarkGrave,
	KeyR: MarkHook,
	KeyX: MarkTilde,
	KeyJ: MarkDot,
}

func (Telex) ToneKey(key Keycode) (Mark, bool) {
	m, ok := telexToneKeys[key]
	return m, ok
}

func (Telex) RemoveKey(key Keycode) bool { return key == KeyZ }

// StrokeKey: the second "d" of "dd" requests the stroke; it must repeat
// the buffer's preceding letter to count.
func (Telex) StrokeKey(key Keycode) (matchPrev, ok bool) {
	return true, key == KeyD
}

// telexDoubleModifiers are the letters whose doubling (aa, ee, oo) applies
// circumflex to the vowel already in the buffer.
var telexDoubleModifiers = map[Keycode]ToneModifier{
	KeyA: ToneModCircumflex,
	KeyE: ToneModCircumflex,
	KeyO: ToneModCircumflex,
}

// ModifierKey handles both telex conventions for attaching a modifier to a
// vowel already in the buffer: doubling (aa/ee/oo, matchPrev true) and w,
// which attaches horn to the rightmost eligible a/o/u without needing to
// repeat it (matchPrev false). When neither a double nor an existing target
// applies, w falls through to WKey's push-a-new-vowel behavior.
func (Telex) ModifierKey(key Keycode) (tm ToneModifier, matchPrev, ok bool) {
	if key == KeyW {
		return ToneModHorn, false, true
	}
	tm, ok = telexDoubleModifiers[key]
	return tm, true, ok
}

// WKey: w becomes ư only once ModifierKey has had a chance to attach horn
// to an existing a/o/u; this is the no-target fallback.
func (Telex) WKey(key Keycode) bool { return key == KeyW }
