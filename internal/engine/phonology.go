package engine

// VowelInCluster is one vowel of a buffered vowel cluster, carrying its
// keycode, current tone modifier, and absolute position in the buffer.
// FindMarkPosition returns buffer positions, not cluster-relative indices,
// so every cluster element remembers where it actually lives.
type VowelInCluster struct {
	Key  Keycode
	Tone ToneModifier
	Pos  int
}

// BuildCluster locates the maximal run of vowels in buf (the nucleus being
// composed) and reports whether a consonant follows it (hasFinal) and
// whether the syllable's initial is "qu-" or "gi-" (hasQuGiInitial), in
// which case the cluster's leading vowel is the initial's spelling, not
// part of the nucleus for tone-placement purposes.
func BuildCluster(buf *Buffer) (cluster []VowelInCluster, hasFinal, hasQuGiInitial bool) {
	n := buf.Len()
	i := 0
	for i < n && !IsVowel(buf.At(i).Key) {
		i++
	}
	start := i
	for i < n && IsVowel(buf.At(i).Key) {
		i++
	}
	end := i

	for p := start; p < end; p++ {
		r := buf.At(p)
		cluster = append(cluster, VowelInCluster{Key: r.Key, Tone: r.Tone, Pos: p})
	}
	hasFinal = end < n

	if len(cluster) > 1 && start > 0 {
		onsetLast := buf.At(start - 1)
		if onsetLast.Key == KeyQ && cluster[0].Key == KeyU {
			hasQuGiInitial = true
		} else if onsetLast.Key == KeyG && cluster[0].Key == KeyI {
			hasQuGiInitial = true
		}
	}
	return cluster, hasFinal, hasQuGiInitial
}

// isOpenDiphthong reports whether (first, second) is one of the open
// diphthongs oa/oe/uy, which get special modern-vs-traditional placement.
func isOpenDiphthong(first, second Keycode) bool {
	switch {
	case first == KeyO && (second == KeyA || second == KeyE):
		return true
	case first == KeyU && second == KeyY:
		return true
	}
	return false
}

// FindMarkPosition chooses where in the buffer a lexical tone mark goes,
// given the syllable's vowel cluster. It is a pure function: no engine
// state in, a buffer position out.
//
// Rules, applied in order (spec §4.3):
//  1. if any vowel already carries a tone modifier (Circumflex/Horn), the
//     mark goes on the rightmost such vowel;
//  2. a single-vowel cluster takes the mark on that vowel;
//  3. a three-vowel cluster takes the mark on the middle vowel;
//  4. a two-vowel cluster: with a final consonant, the second vowel;
//     without one, the placement depends on mode and whether the pair is
//     an open diphthong (oa/oe/uy);
//  5. the leading vowel of a qu-/gi- initial does not count towards the
//     cluster used above (the caller reports such an initial via
//     hasQuGiInitial, and this function then drops that vowel).
func FindMarkPosition(cluster []VowelInCluster, hasFinal, modern, hasQuGiInitial bool) int {
	eff := cluster
	if hasQuGiInitial && len(cluster) > 1 {
		eff = cluster[1:]
	}
	if len(eff) == 0 {
		if len(cluster) > 0 {
			return cluster[0].Pos
		}
		return 0
	}

	lastToned := -1
	for i, v := range eff {
		if v.Tone != ToneModNone {
			lastToned = i
		}
	}
	if lastToned >= 0 {
		return eff[lastToned].Pos
	}

	switch len(eff) {
	case 1:
		return eff[0].Pos
	case 3:
		return eff[1].Pos
	}

	first, second := eff[0], eff[1]
	if hasFinal {
		return second.Pos
	}

	open := isOpenDiphthong(first.Key, second.Key)
	if modern {
		if open {
			return second.Pos
		}
		return first.Pos
	}
	// Traditional: the open diphthongs take the mark on the first vowel
	// (hóa, not hoá); everything else takes it on the second.
	if open {
		return first.Pos
	}
	return second.Pos
}
