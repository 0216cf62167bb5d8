package engine

import "unicode"

// vowelTable maps each of the 12 base Vietnamese vowels to its five
// lexical-tone variants, indexed [MarkAcute-1 .. MarkDot-1]. A single
// lookup table keeps the mark application free of per-vowel case logic.
var vowelTable = map[rune][5]rune{
	'a': {'á', 'à', 'ả', 'ã', 'ạ'},
	'ă': {'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	'â': {'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	'e': {'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ế', 'ề', 'ể', 'ễ', 'ệ'},
	'i': {'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	'o': {'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	'ô': {'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	'u': {'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	'ư': {'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	'y': {'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// baseVowel resolves (keycode, tone) to its lowercase base vowel form.
func baseVowel(key Keycode, tone ToneModifier) (rune, bool) {
	switch key {
	case KeyA:
		switch tone {
		case ToneModCircumflex:
			return 'â', true
		case ToneModHorn:
			return 'ă', true
		default:
			return 'a', true
		}
	case KeyE:
		if tone == ToneModCircumflex {
			return 'ê', true
		}
		return 'e', true
	case KeyI:
		return 'i', true
	case KeyO:
		switch tone {
		case ToneModCircumflex:
			return 'ô', true
		case ToneModHorn:
			return 'ơ', true
		default:
			return 'o', true
		}
	case KeyU:
		if tone == ToneModHorn {
			return 'ư', true
		}
		return 'u', true
	case KeyY:
		return 'y', true
	}
	return 0, false
}

// applyMark returns base with mark applied, or base unchanged if mark is
// MarkNone or base has no entry in vowelTable.
func applyMark(base rune, mark Mark) rune {
	if mark == MarkNone {
		return base
	}
	if variants, ok := vowelTable[base]; ok {
		return variants[mark-1]
	}
	return base
}

// ComposeVowel returns the precomposed Unicode character for a vowel
// keycode given its case, tone modifier and lexical mark. It reports false
// if key does not name a vowel.
func ComposeVowel(key Keycode, caps bool, tone ToneModifier, mark Mark) (rune, bool) {
	base, ok := baseVowel(key, tone)
	if !ok {
		return 0, false
	}
	marked := applyMark(base, mark)
	if caps {
		marked = unicode.ToUpper(marked)
	}
	return marked, true
}

// ComposeD returns 'đ'/'Đ' when stroke is set, or the plain 'd'/'D'
// letter otherwise. The stroked letter never passes through vowelTable.
func ComposeD(caps, stroke bool) rune {
	if stroke {
		if caps {
			return 'Đ'
		}
		return 'đ'
	}
	if caps {
		return 'D'
	}
	return 'd'
}

// ComposeLetter returns the display character for any buffered letter
// record: the stroked glyph for D, a composed vowel for vowels, or the
// raw letter for plain consonants.
func ComposeLetter(r LetterRecord) rune {
	if r.Key == KeyD {
		return ComposeD(r.Caps, r.Stroke)
	}
	if ch, ok := ComposeVowel(r.Key, r.Caps, r.Tone, r.Mark); ok {
		return ch
	}
	ch := rune(r.Key)
	if r.Caps {
		ch = unicode.ToUpper(ch)
	}
	return ch
}
