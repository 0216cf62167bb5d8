package engine

import "testing"

func keysOf(s string) []Keycode {
	out := make([]Keycode, len(s))
	for i, c := range s {
		out[i] = Keycode(c)
	}
	return out
}

func TestIsValidPrefixAcceptsCompleteSyllables(t *testing.T) {
	words := []string{
		"xin", "chao", "viet", "nam", "nguoi", "duoc", "hoa", "toan",
		"gia", "qua", "nghe", "khong", "thanh", "truong",
	}
	for _, w := range words {
		w := w
		t.Run(w, func(t *testing.T) {
			if !IsValidPrefix(keysOf(w)) {
				t.Errorf("IsValidPrefix(%q) = false, want true", w)
			}
		})
	}
}

func TestIsValidPrefixAcceptsPartialSyllables(t *testing.T) {
	prefixes := []string{"x", "xi", "ngh", "ng", "q", "qu", "t", "tr", "nguo"}
	for _, p := range prefixes {
		p := p
		t.Run(p, func(t *testing.T) {
			if !IsValidPrefix(keysOf(p)) {
				t.Errorf("IsValidPrefix(%q) = false, want true (partial)", p)
			}
		})
	}
}

func TestIsValidPrefixRejectsBadOnset(t *testing.T) {
	bad := []string{"cl", "bl", "fr", "sw"}
	for _, w := range bad {
		w := w
		t.Run(w, func(t *testing.T) {
			if IsValidPrefix(keysOf(w)) {
				t.Errorf("IsValidPrefix(%q) = true, want false", w)
			}
		})
	}
}

func TestIsValidPrefixRejectsBadCoda(t *testing.T) {
	bad := []string{"as", "af", "ow", "ar"}
	for _, w := range bad {
		w := w
		t.Run(w, func(t *testing.T) {
			if IsValidPrefix(keysOf(w)) {
				t.Errorf("IsValidPrefix(%q) = true, want false", w)
			}
		})
	}
}

func TestIsValidPrefixSpellingRules(t *testing.T) {
	bad := []string{"ce", "ci", "ka", "ko", "gha"}
	for _, w := range bad {
		w := w
		t.Run(w, func(t *testing.T) {
			if IsValidPrefix(keysOf(w)) {
				t.Errorf("IsValidPrefix(%q) = true, want false (spelling rule)", w)
			}
		})
	}
}

func TestIsValidPrefixGi(t *testing.T) {
	// "gi" alone is a valid prefix (onset "g" plus nucleus "i", same as the
	// "gi" onset with nothing typed after it yet).
	if !IsValidPrefix(keysOf("gi")) {
		t.Error("IsValidPrefix(\"gi\") = false, want true")
	}
	// "gia": the leading i belongs to the "gi" initial's own spelling, a is
	// the nucleus.
	if !IsValidPrefix(keysOf("gia")) {
		t.Error("IsValidPrefix(\"gia\") = false, want true")
	}
}

func TestIsValidPrefixLoneQOnlyWhileNothingFollows(t *testing.T) {
	if !IsValidPrefix(keysOf("q")) {
		t.Error("IsValidPrefix(\"q\") = false, want true (prefix of qu-)")
	}
	if IsValidPrefix(keysOf("qa")) {
		t.Error("IsValidPrefix(\"qa\") = true, want false (q demands following u)")
	}
}

func TestIsValidPrefixEmpty(t *testing.T) {
	if !IsValidPrefix(nil) {
		t.Error("IsValidPrefix(nil) = false, want true")
	}
}
