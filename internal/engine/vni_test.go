package engine

import "testing"

func TestVNIToneKey(t *testing.T) {
	vni := NewVNI()
	tests := []struct {
		name     string
		key      Keycode
		wantMark Mark
	}{
		{"1 is acute", Key1, MarkAcute},
		{"2 is grave", Key2, MarkGrave},
		{"3 is hook", Key3, MarkHook},
		{"4 is tilde", Key4, MarkTilde},
		{"5 is dot", Key5, MarkDot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mark, ok := vni.ToneKey(tt.key)
			if !ok || mark != tt.wantMark {
				t.Errorf("ToneKey(%v) = (%v,%v), want (%v,true)", tt.key, mark, ok, tt.wantMark)
			}
		})
	}
	t.Run("a is not a tone key", func(t *testing.T) {
		if _, ok := vni.ToneKey(KeyA); ok {
			t.Error("ToneKey(a) ok = true, want false")
		}
	})
}

func TestVNIRemoveKey(t *testing.T) {
	vni := NewVNI()
	if !vni.RemoveKey(Key0) {
		t.Error("RemoveKey(0) = false, want true")
	}
}

func TestVNIStrokeKey(t *testing.T) {
	vni := NewVNI()
	matchPrev, ok := vni.StrokeKey(Key9)
	if !ok || matchPrev {
		t.Errorf("StrokeKey(9) = (%v,%v), want (false,true)", matchPrev, ok)
	}
}

func TestVNIModifierKeysDistinguishTargets(t *testing.T) {
	vni := NewVNI()
	t.Run("6 is circumflex", func(t *testing.T) {
		tm6, matchPrev6, ok6 := vni.ModifierKey(Key6)
		if !ok6 || matchPrev6 || tm6 != ToneModCircumflex {
			t.Errorf("ModifierKey(6) = (%v,%v,%v), want (Circumflex,false,true)", tm6, matchPrev6, ok6)
		}
	})
	t.Run("7 is horn", func(t *testing.T) {
		tm7, _, ok7 := vni.ModifierKey(Key7)
		if !ok7 || tm7 != ToneModHorn {
			t.Errorf("ModifierKey(7) = (%v,_,%v), want (Horn,true)", tm7, ok7)
		}
	})
	t.Run("8 is horn", func(t *testing.T) {
		tm8, _, ok8 := vni.ModifierKey(Key8)
		if !ok8 || tm8 != ToneModHorn {
			t.Errorf("ModifierKey(8) = (%v,_,%v), want (Horn,true)", tm8, ok8)
		}
	})
	t.Run("7 targets o and u", func(t *testing.T) {
		if got := modifierTargets(Key7); len(got) != 2 || got[0] != KeyO || got[1] != KeyU {
			t.Errorf("modifierTargets(7) = %v, want [o,u]", got)
		}
	})
	t.Run("8 targets a only", func(t *testing.T) {
		if got := modifierTargets(Key8); len(got) != 1 || got[0] != KeyA {
			t.Errorf("modifierTargets(8) = %v, want [a]", got)
		}
	})
}

func TestVNIWKeyAlwaysFalse(t *testing.T) {
	vni := NewVNI()
	if vni.WKey(KeyW) {
		t.Error("VNI WKey(w) = true, want false")
	}
}
