package engine

// Validator decides whether a sequence of base keycodes (letters only,
// ignoring tone/mark/stroke annotations) is a plausible prefix of a
// complete Vietnamese syllable. It is consulted before almost every
// transform and has no side effects.

// validInitials are the complete, standalone Vietnamese onsets. "q" is
// deliberately absent: it is never a complete onset on its own, only a
// prefix of "qu" (see validOnsetSegment).
var validInitials = map[string]bool{
	"b": true, "c": true, "d": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,

	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,

	"ngh": true,
}

// validFinals are the only consonant codas a Vietnamese syllable can end
// in. f, j, r, s, w, z never appear here, matching spec's explicit ban.
var validFinals = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// attestedNuclei are the vowel-cluster shapes (expressed as the buffer's
// base letters — â/ă/ê/ô/ơ/ư share the keycode of their base vowel, so
// tone modifiers never appear here) this validator accepts as a nucleus
// or a nucleus-in-progress. Every shorter prefix of a 3-letter entry is
// independently present as its own entry, so no separate prefix search is
// needed for the nucleus.
var attestedNuclei = map[string]bool{
	"a": true, "e": true, "i": true, "o": true, "u": true, "y": true,

	"ai": true, "ao": true, "au": true, "ay": true,
	"eo": true, "eu": true,
	"ia": true, "ie": true,
	"oa": true, "oe": true, "oi": true,
	"ua": true, "ue": true, "ui": true, "uo": true, "uy": true,
	"ye": true,

	"ieu": true, "oai": true, "oay": true,
	"uoi": true, "uou": true, "uye": true, "yeu": true,
}

// spellingRules names onset+first-nucleus-vowel combinations that violate
// Vietnamese spelling conventions even though every piece in isolation
// looks plausible: c never precedes e/i/y (k does), k never precedes
// a/o/u (c does), and so on for the g/gh and ng/ngh pairs.
var spellingRules = map[string]bool{
	"ce": true, "ci": true, "cy": true,
	"ka": true, "ko": true, "ku": true,
	"ge": true,
	"nge": true, "ngi": true,
	"gha": true, "gho": true, "ghu": true,
	"ngha": true, "ngho": true, "nghu": true,
}

// IsValidPrefix reports whether keys is a plausible prefix of some
// complete Vietnamese syllable: some split into onset/nucleus/coda (or a
// still-incomplete onset/nucleus) is phonotactically attested.
func IsValidPrefix(keys []Keycode) bool {
	if len(keys) == 0 {
		return true
	}
	maxOnset := 3
	if maxOnset > len(keys) {
		maxOnset = len(keys)
	}
	for onsetLen := 0; onsetLen <= maxOnset; onsetLen++ {
		onset := keys[:onsetLen]
		whole := onsetLen == len(keys)
		if !validOnsetSegment(onset, whole) {
			continue
		}
		if validRemainder(baseString(onset), keys[onsetLen:]) {
			return true
		}
	}
	return false
}

// validOnsetSegment reports whether onset, taken as a unit, is a valid
// Vietnamese initial-in-progress. whole indicates onset is the entire
// sequence typed so far (nothing follows it yet).
func validOnsetSegment(onset []Keycode, whole bool) bool {
	if len(onset) == 0 {
		return true
	}
	for _, k := range onset {
		if !IsConsonant(k) && k != KeyU && k != KeyI {
			return false
		}
	}
	s := baseString(onset)
	if validInitials[s] {
		return true
	}
	// "q" alone is only a valid prefix while nothing has been typed after
	// it yet; once another letter follows, it must combine into "qu".
	if s == "q" && whole {
		return true
	}
	return false
}

// validRemainder checks the nucleus+coda that follows onset (given as its
// base-letter string, for the spelling-rule and gi-initial checks).
func validRemainder(onset string, rest []Keycode) bool {
	if len(rest) == 0 {
		return true
	}

	nucLen := 0
	for nucLen < len(rest) && nucLen < 3 && IsVowel(rest[nucLen]) {
		nucLen++
	}
	if nucLen == 0 {
		return false
	}
	nucleus := rest[:nucLen]
	nucStr := baseString(nucleus)
	if !attestedNuclei[nucStr] {
		return false
	}

	// "gi" forbids a following i-only nucleus: "gi" already spells the
	// initial's own i, so a bare "i" nucleus after it double-counts.
	if onset == "gi" && nucStr == "i" {
		return false
	}

	if onset != "" {
		if spellingRules[onset+string(nucStr[0])] {
			return false
		}
	}

	coda := rest[nucLen:]
	if len(coda) == 0 {
		return true
	}
	if len(coda) > 2 {
		return false
	}
	for _, k := range coda {
		if !IsConsonant(k) {
			return false
		}
	}
	return validFinals[baseString(coda)]
}

// baseString renders a sequence of keycodes as their lowercase base
// letters, e.g. for use as a map key.
func baseString(keys []Keycode) string {
	b := make([]byte, len(keys))
	for i, k := range keys {
		b[i] = byte(k)
	}
	return string(b)
}
