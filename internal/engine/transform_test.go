package engine

import "testing"

func TestLastTransformMatches(t *testing.T) {
	lt := LastTransform{Kind: TransformTone, Key: KeyS}
	t.Run("same kind and key matches", func(t *testing.T) {
		if !lt.Matches(TransformTone, KeyS) {
			t.Error("Matches(TransformTone, s) = false, want true")
		}
	})
	t.Run("different key does not match", func(t *testing.T) {
		if lt.Matches(TransformTone, KeyF) {
			t.Error("Matches(TransformTone, f) = true, want false (different key)")
		}
	})
	t.Run("different kind does not match", func(t *testing.T) {
		if lt.Matches(TransformMark, KeyS) {
			t.Error("Matches(TransformMark, s) = true, want false (different kind)")
		}
	})
}

func TestZeroLastTransformDoesNotMatchRealKeys(t *testing.T) {
	var lt LastTransform
	if lt.Matches(TransformStroke, KeyD) {
		t.Error("zero-value LastTransform should not match any real transform")
	}
}
