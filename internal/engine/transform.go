package engine

// TransformKind identifies which family of transform last mutated the
// buffer. The engine keeps exactly one of these at a time, not a history
// stack: typing the same triggering key again reverts it rather than
// stacking a second application.
type TransformKind int

const (
	TransformNone TransformKind = iota
	TransformStroke
	TransformTone
	TransformMark
	TransformWAsVowel
)

// LastTransform remembers the single most recent buffer-mutating
// transform, so the next keystroke can tell a repeat (revert) from a new
// transform.
type LastTransform struct {
	Kind TransformKind
	Key  Keycode
}

// Matches reports whether key repeats the transform that produced t,
// which is the engine's definition of "this keystroke is a revert".
func (t LastTransform) Matches(kind TransformKind, key Keycode) bool {
	return t.Kind == kind && t.Key == key
}
