package engine

import "testing"

func TestTelexToneKey(t *testing.T) {
	tx := NewTelex()
	tests := []struct {
		name     string
		key      Keycode
		wantMark Mark
		wantOK   bool
	}{
		{"s is acute", KeyS, MarkAcute, true},
		{"f is grave", KeyF, MarkGrave, true},
		{"r is hook", KeyR, MarkHook, true},
		{"x is tilde", KeyX, MarkTilde, true},
		{"j is dot", KeyJ, MarkDot, true},
		{"a is not a tone key", KeyA, MarkNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mark, ok := tx.ToneKey(tt.key)
			if ok != tt.wantOK || (ok && mark != tt.wantMark) {
				t.Errorf("ToneKey(%v) = (%v,%v), want (%v,%v)", tt.key, mark, ok, tt.wantMark, tt.wantOK)
			}
		})
	}
}

func TestTelexRemoveKey(t *testing.T) {
	tx := NewTelex()
	t.Run("z removes", func(t *testing.T) {
		if !tx.RemoveKey(KeyZ) {
			t.Error("RemoveKey(z) = false, want true")
		}
	})
	t.Run("a does not remove", func(t *testing.T) {
		if tx.RemoveKey(KeyA) {
			t.Error("RemoveKey(a) = true, want false")
		}
	})
}

func TestTelexStrokeKey(t *testing.T) {
	tx := NewTelex()
	t.Run("d strokes, matching the previous d", func(t *testing.T) {
		matchPrev, ok := tx.StrokeKey(KeyD)
		if !ok || !matchPrev {
			t.Errorf("StrokeKey(d) = (%v,%v), want (true,true)", matchPrev, ok)
		}
	})
	t.Run("t does not stroke", func(t *testing.T) {
		if _, ok := tx.StrokeKey(KeyT); ok {
			t.Error("StrokeKey(t) ok = true, want false")
		}
	})
}

func TestTelexModifierKeyDoubling(t *testing.T) {
	tx := NewTelex()
	tests := []struct {
		name string
		key  Keycode
		want ToneModifier
	}{
		{"aa doubles to circumflex", KeyA, ToneModCircumflex},
		{"ee doubles to circumflex", KeyE, ToneModCircumflex},
		{"oo doubles to circumflex", KeyO, ToneModCircumflex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, matchPrev, ok := tx.ModifierKey(tt.key)
			if !ok || !matchPrev || tm != tt.want {
				t.Errorf("ModifierKey(%v) = (%v,%v,%v), want (%v,true,true)", tt.key, tm, matchPrev, ok, tt.want)
			}
		})
	}
}

func TestTelexModifierKeyW(t *testing.T) {
	tx := NewTelex()
	tm, matchPrev, ok := tx.ModifierKey(KeyW)
	if !ok || matchPrev || tm != ToneModHorn {
		t.Errorf("ModifierKey(w) = (%v,%v,%v), want (Horn,false,true)", tm, matchPrev, ok)
	}
}

func TestTelexWKey(t *testing.T) {
	tx := NewTelex()
	t.Run("w is the vowel key", func(t *testing.T) {
		if !tx.WKey(KeyW) {
			t.Error("WKey(w) = false, want true")
		}
	})
	t.Run("u is not", func(t *testing.T) {
		if tx.WKey(KeyU) {
			t.Error("WKey(u) = true, want false")
		}
	})
}
