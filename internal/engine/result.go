package engine

// Action classifies what the host should do with a Result. It mirrors the
// small FFI-shaped struct a native host (e.g. a D-Bus or text-input-v3
// frontend) would marshal across a process boundary: a bare integer tag
// plus a fixed-capacity char payload, rather than a Go-native tagged
// union, so a binding layer can reproduce it field-for-field.
type Action int

const (
	// ActionNone means the engine has no edit for the host to make; the
	// host should handle the key itself (insert a printable key verbatim).
	ActionNone Action = iota
	// ActionSend means the host should erase Backspace characters from
	// the preedit and insert Chars in their place.
	ActionSend
	// ActionRestore is ActionSend plus a revert: the engine determined the
	// in-progress transform was invalid and fell back to literal text.
	ActionRestore
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSend:
		return "Send"
	case ActionRestore:
		return "Restore"
	default:
		return "Unknown"
	}
}

// MaxResultChars mirrors the buffer's own fixed capacity. Result.Chars is
// a slice and is not truncated to this length.
const MaxResultChars = MaxBufferLen

// Result is the engine's answer to a single keystroke. Backspace counts
// code points (runes) to erase from the host's preedit before inserting
// Chars.
type Result struct {
	Action    Action
	Backspace int
	Chars     []rune
}

// ResultNone is the result of a keystroke the engine did not handle.
func ResultNone() Result {
	return Result{Action: ActionNone}
}

// ResultSend builds a Result that replaces backspace trailing characters
// with chars.
func ResultSend(backspace int, chars []rune) Result {
	return Result{Action: ActionSend, Backspace: backspace, Chars: chars}
}

// ResultRestore builds a Result like ResultSend, tagged as a revert so the
// host can distinguish "new composition" from "composition abandoned".
func ResultRestore(backspace int, chars []rune) Result {
	return Result{Action: ActionRestore, Backspace: backspace, Chars: chars}
}
