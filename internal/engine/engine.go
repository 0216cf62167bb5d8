package engine

import "unicode"

// CompositionEngine composes one Vietnamese syllable at a time from a
// stream of keystrokes. It holds no knowledge of the host's text widget:
// every call to OnKey returns a Result describing the edit the host
// should make to its own preedit buffer.
type CompositionEngine struct {
	buf        Buffer
	method     InputMethod
	shortcuts  ShortcutTable
	enabled    bool
	modernTone bool
	last       LastTransform
}

// NewCompositionEngine returns an engine using method, Telex-style modern
// tone placement, and the default shortcut table.
func NewCompositionEngine(method InputMethod) *CompositionEngine {
	return &CompositionEngine{
		method:     method,
		shortcuts:  DefaultShortcuts(),
		enabled:    true,
		modernTone: true,
	}
}

// SetMethod switches input conventions, clearing any in-progress syllable.
func (e *CompositionEngine) SetMethod(m InputMethod) {
	e.method = m
	e.Clear()
}

// SetEnabled toggles composition. Disabling clears any in-progress syllable.
func (e *CompositionEngine) SetEnabled(v bool) {
	e.enabled = v
	if !v {
		e.Clear()
	}
}

// SetModernTone selects modern (hoá) vs. traditional (hóa) tone placement
// for a two-vowel nucleus with no final consonant (see FindMarkPosition).
func (e *CompositionEngine) SetModernTone(v bool) { e.modernTone = v }

// Clear discards the in-progress syllable without emitting a Result.
func (e *CompositionEngine) Clear() {
	e.buf.Clear()
	e.last = LastTransform{}
}

// Shortcuts returns the engine's shortcut table for the host to configure.
func (e *CompositionEngine) Shortcuts() ShortcutTable { return e.shortcuts }

// OnKey feeds one keystroke to the engine and returns the edit the host
// should apply. caps reflects Shift/CapsLock state for the key; ctrl
// reflects any other modifier that should suspend composition entirely.
func (e *CompositionEngine) OnKey(key Keycode, caps, ctrl bool) Result {
	if !e.enabled {
		return ResultNone()
	}
	if ctrl {
		e.Clear()
		return ResultNone()
	}
	if key == KeyBackspace {
		e.buf.Pop()
		e.last = LastTransform{}
		return ResultNone()
	}
	if IsBreak(key) || (!IsLetter(key) && !IsDigit(key)) {
		return e.onWordBoundary()
	}

	if res, ok := e.tryStroke(key, caps); ok {
		return res
	}
	if res, ok := e.tryTone(key, caps); ok {
		return res
	}
	if res, ok := e.tryModifier(key, caps); ok {
		return res
	}
	if res, ok := e.tryRemove(key); ok {
		return res
	}
	if res, ok := e.tryWAsVowel(key, caps); ok {
		return res
	}
	if IsLetter(key) {
		return e.handleNormalLetter(key, caps)
	}
	e.buf.Clear()
	e.last = LastTransform{}
	return ResultNone()
}

// onWordBoundary runs at space/punctuation/return. It does not itself
// decide whether to expand a shortcut or auto-restore an unsalvageable
// syllable — that policy belongs to the ShortcutTable (spec §4.7/§9); the
// engine only supplies the composed text, the raw keystrokes, and whether
// those raw keystrokes are a valid syllable prefix.
func (e *CompositionEngine) onWordBoundary() Result {
	if e.buf.Len() == 0 {
		return ResultNone()
	}
	composed := e.render()
	raw := string(e.literalRunes())
	n := e.buf.Len()
	validPrefix := IsValidPrefix(e.buf.Keys())
	defer e.Clear()

	text, action := e.shortcuts.TryMatch(composed, raw, validPrefix)
	switch action {
	case ActionSend:
		return ResultSend(n, []rune(text))
	case ActionRestore:
		return ResultRestore(n, []rune(text))
	default:
		return ResultNone()
	}
}

// --- stroke (d/đ) ---------------------------------------------------------

func (e *CompositionEngine) tryStroke(key Keycode, caps bool) (Result, bool) {
	matchPrev, ok := e.method.StrokeKey(key)
	if !ok {
		return Result{}, false
	}
	if matchPrev {
		last := e.buf.At(e.buf.Len() - 1)
		if last == nil || last.Key != key {
			return Result{}, false
		}
	}
	if e.last.Matches(TransformStroke, key) {
		return e.revertStroke(key, caps), true
	}

	idx := -1
	for i := 0; i < e.buf.Len(); i++ {
		if rec := e.buf.At(i); rec.Key == KeyD && !rec.Stroke {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Result{}, false
	}

	e.buf.At(idx).Stroke = true
	if len(e.buf.VowelPositions()) > 0 && !IsValidPrefix(e.buf.Keys()) {
		e.buf.At(idx).Stroke = false
		return Result{}, false
	}
	e.last = LastTransform{Kind: TransformStroke, Key: key}
	return e.rebuildFrom(idx), true
}

func (e *CompositionEngine) revertStroke(key Keycode, caps bool) Result {
	idx := -1
	for i := 0; i < e.buf.Len(); i++ {
		if rec := e.buf.At(i); rec.Key == KeyD && rec.Stroke {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.last = LastTransform{}
		return ResultNone()
	}
	e.buf.At(idx).Stroke = false
	return e.revertAndRebuild(idx, key, caps)
}

// --- lexical tone (sắc/huyền/hỏi/ngã/nặng) --------------------------------

func (e *CompositionEngine) tryTone(key Keycode, caps bool) (Result, bool) {
	mark, ok := e.method.ToneKey(key)
	if !ok {
		return Result{}, false
	}
	if e.last.Matches(TransformTone, key) {
		return e.revertTone(key, caps), true
	}

	cluster, hasFinal, hasQuGi := BuildCluster(&e.buf)
	if len(cluster) == 0 {
		return Result{}, false
	}
	pos := FindMarkPosition(cluster, hasFinal, e.modernTone, hasQuGi)
	rec := e.buf.At(pos)
	prevMark := rec.Mark
	rec.Mark = mark
	if !IsValidPrefix(e.buf.Keys()) {
		rec.Mark = prevMark
		return Result{}, false
	}
	e.last = LastTransform{Kind: TransformTone, Key: key}
	return e.rebuildFrom(pos), true
}

func (e *CompositionEngine) revertTone(key Keycode, caps bool) Result {
	idx := -1
	for i := e.buf.Len() - 1; i >= 0; i-- {
		if e.buf.At(i).Mark != MarkNone {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.last = LastTransform{}
		return ResultNone()
	}
	e.buf.At(idx).Mark = MarkNone
	return e.revertAndRebuild(idx, key, caps)
}

// --- tone modifier (circumflex/horn-or-breve) -----------------------------

// modifierTargets lists which vowel keycodes a modifier key may attach to.
// Distinguishing VNI's 7 (o/u) from 8 (a) matters even though both map to
// the same ToneModHorn value once applied.
func modifierTargets(key Keycode) []Keycode {
	switch key {
	case KeyA, KeyE, KeyO:
		return []Keycode{key}
	case Key6:
		return []Keycode{KeyA, KeyE, KeyO}
	case Key7:
		return []Keycode{KeyO, KeyU}
	case Key8:
		return []Keycode{KeyA}
	case KeyW:
		return []Keycode{KeyA, KeyO, KeyU}
	}
	return nil
}

func (e *CompositionEngine) findTarget(targets []Keycode) int {
	for i := e.buf.Len() - 1; i >= 0; i-- {
		rec := e.buf.At(i)
		if rec.Tone != ToneModNone {
			continue
		}
		for _, t := range targets {
			if rec.Key == t {
				return i
			}
		}
	}
	return -1
}

func (e *CompositionEngine) tryModifier(key Keycode, caps bool) (Result, bool) {
	tm, matchPrev, ok := e.method.ModifierKey(key)
	if !ok {
		return Result{}, false
	}
	if matchPrev {
		last := e.buf.At(e.buf.Len() - 1)
		if last == nil || last.Key != key {
			return Result{}, false
		}
	}
	if e.last.Matches(TransformMark, key) {
		return e.revertModifier(key, caps), true
	}

	var idx int
	if matchPrev {
		idx = e.buf.Len() - 1
	} else {
		idx = e.findTarget(modifierTargets(key))
		if idx < 0 {
			return Result{}, false
		}
	}

	touched := []int{idx}
	if tm == ToneModHorn {
		if idx > 0 && e.buf.At(idx).Key == KeyO && e.buf.At(idx-1).Key == KeyU && e.buf.At(idx-1).Tone == ToneModNone {
			touched = append(touched, idx-1)
		} else if idx+1 < e.buf.Len() && e.buf.At(idx).Key == KeyU && e.buf.At(idx+1).Key == KeyO && e.buf.At(idx+1).Tone == ToneModNone {
			touched = append(touched, idx+1)
		}
	}

	saved := make([]ToneModifier, len(touched))
	for i, p := range touched {
		saved[i] = e.buf.At(p).Tone
		e.buf.At(p).Tone = tm
	}
	if !IsValidPrefix(e.buf.Keys()) {
		for i, p := range touched {
			e.buf.At(p).Tone = saved[i]
		}
		return Result{}, false
	}

	e.last = LastTransform{Kind: TransformMark, Key: key}
	fromPos := touched[0]
	for _, p := range touched[1:] {
		if p < fromPos {
			fromPos = p
		}
	}
	if moved, didMove := e.repositionMark(); didMove && moved < fromPos {
		fromPos = moved
	}
	return e.rebuildFrom(fromPos), true
}

func (e *CompositionEngine) revertModifier(key Keycode, caps bool) Result {
	idx := -1
	for i := e.buf.Len() - 1; i >= 0; i-- {
		if e.buf.At(i).Tone != ToneModNone {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.last = LastTransform{}
		return ResultNone()
	}
	fromPos := idx
	cleared := e.buf.At(idx).Tone
	e.buf.At(idx).Tone = ToneModNone
	if cleared == ToneModHorn {
		if idx > 0 && e.buf.At(idx).Key == KeyO && e.buf.At(idx-1).Key == KeyU && e.buf.At(idx-1).Tone == ToneModHorn {
			e.buf.At(idx - 1).Tone = ToneModNone
			fromPos = idx - 1
		} else if idx+1 < e.buf.Len() && e.buf.At(idx).Key == KeyU && e.buf.At(idx+1).Key == KeyO && e.buf.At(idx+1).Tone == ToneModHorn {
			e.buf.At(idx + 1).Tone = ToneModNone
		}
	}
	return e.revertAndRebuild(fromPos, key, caps)
}

// --- remove (z / 0): clears the most recent mark, else tone modifier -----

func (e *CompositionEngine) tryRemove(key Keycode) (Result, bool) {
	if !e.method.RemoveKey(key) {
		return Result{}, false
	}
	for i := e.buf.Len() - 1; i >= 0; i-- {
		if e.buf.At(i).Mark != MarkNone {
			e.buf.At(i).Mark = MarkNone
			e.last = LastTransform{}
			return e.rebuildFrom(i), true
		}
	}
	for i := e.buf.Len() - 1; i >= 0; i-- {
		if e.buf.At(i).Tone != ToneModNone {
			e.buf.At(i).Tone = ToneModNone
			e.last = LastTransform{}
			return e.rebuildFrom(i), true
		}
	}
	return Result{}, false
}

// --- w-as-vowel: telex's "w" becomes ư when nothing else can take it -----

func (e *CompositionEngine) tryWAsVowel(key Keycode, caps bool) (Result, bool) {
	if !e.method.WKey(key) {
		return Result{}, false
	}
	if e.last.Matches(TransformWAsVowel, key) {
		fromPos := e.buf.Len() - 1
		e.buf.Pop()
		e.buf.Push(LetterRecord{Key: key, Caps: caps})
		e.buf.Push(LetterRecord{Key: key, Caps: caps})
		chars := make([]rune, 0, 2)
		for i := fromPos; i < e.buf.Len(); i++ {
			chars = append(chars, ComposeLetter(*e.buf.At(i)))
		}
		e.last = LastTransform{}
		return ResultSend(1, chars), true
	}

	e.buf.Push(LetterRecord{Key: KeyU, Caps: caps, Tone: ToneModHorn})
	if !IsValidPrefix(e.buf.Keys()) {
		e.buf.Pop()
		return Result{}, false
	}
	e.last = LastTransform{Kind: TransformWAsVowel, Key: key}
	return ResultSend(0, []rune{ComposeLetter(*e.buf.At(e.buf.Len() - 1))}), true
}

// --- normal letter: clears any pending revert state -----------------------

// handleNormalLetter always clears last_transform: a plain letter is never
// itself a transform, so the next matching key should re-apply rather than
// revert. A full buffer is left untouched and reported as a no-op, per the
// capacity-overflow rule.
func (e *CompositionEngine) handleNormalLetter(key Keycode, caps bool) Result {
	e.last = LastTransform{}
	if e.buf.Full() {
		return ResultNone()
	}
	e.buf.Push(LetterRecord{Key: key, Caps: caps})
	fromPos := e.buf.Len() - 1
	if moved, didMove := e.repositionMark(); didMove && moved < fromPos {
		fromPos = moved
	}
	return e.appendFrom(fromPos)
}

// --- shared helpers --------------------------------------------------------

// repositionMark re-derives where the lexical tone mark belongs given the
// buffer's current vowel cluster, and moves it there if that has changed
// (e.g. a coda consonant just appeared after the mark was already placed).
// It reports the earlier of the old/new positions when a move happened, so
// the caller can extend its rebuild range to cover it.
func (e *CompositionEngine) repositionMark() (movedFrom int, moved bool) {
	cluster, hasFinal, hasQuGi := BuildCluster(&e.buf)
	if len(cluster) == 0 {
		return 0, false
	}
	oldPos := -1
	for _, v := range cluster {
		if e.buf.At(v.Pos).Mark != MarkNone {
			oldPos = v.Pos
			break
		}
	}
	if oldPos < 0 {
		return 0, false
	}
	newPos := FindMarkPosition(cluster, hasFinal, e.modernTone, hasQuGi)
	if newPos == oldPos {
		return 0, false
	}
	mark := e.buf.At(oldPos).Mark
	e.buf.At(oldPos).Mark = MarkNone
	e.buf.At(newPos).Mark = mark
	if oldPos < newPos {
		return oldPos, true
	}
	return newPos, true
}

// rebuildFrom composes every buffered record from from to the end, for a
// mutation that did not change the buffer's length: the host's displayed
// text already has one rune per buffered record, so backspace is simply
// how many trailing positions from from to the end need replacing.
func (e *CompositionEngine) rebuildFrom(from int) Result {
	n := e.buf.Len()
	chars := make([]rune, 0, n-from)
	for i := from; i < n; i++ {
		chars = append(chars, ComposeLetter(*e.buf.At(i)))
	}
	return ResultSend(n-from, chars)
}

// appendFrom composes every buffered record from from to the end, for a
// call that just pushed exactly one new record. The host's displayed text
// still only covers the buffer as it stood before that push (length n-1),
// so backspace erases from from up to that old end, one fewer than
// rebuildFrom would compute for the same from.
func (e *CompositionEngine) appendFrom(from int) Result {
	n := e.buf.Len()
	chars := make([]rune, 0, n-from)
	for i := from; i < n; i++ {
		chars = append(chars, ComposeLetter(*e.buf.At(i)))
	}
	return ResultSend(n-1-from, chars)
}

// revertAndRebuild undoes a transform and replays the triggering key as a
// literal keystroke: a new buffered letter if it is a letter (so later
// transforms can still see it), or a bare rune if it is a digit (VNI's
// modifier keys never occupy a buffer slot).
func (e *CompositionEngine) revertAndRebuild(from int, key Keycode, caps bool) Result {
	backspace := e.buf.Len() - from
	var chars []rune
	if IsLetter(key) {
		e.buf.Push(LetterRecord{Key: key, Caps: caps})
		for i := from; i < e.buf.Len(); i++ {
			chars = append(chars, ComposeLetter(*e.buf.At(i)))
		}
	} else {
		for i := from; i < e.buf.Len(); i++ {
			chars = append(chars, ComposeLetter(*e.buf.At(i)))
		}
		ch := rune(key)
		if caps {
			ch = unicode.ToUpper(ch)
		}
		chars = append(chars, ch)
	}
	e.last = LastTransform{}
	return ResultSend(backspace, chars)
}

// render composes the buffer as it currently stands.
func (e *CompositionEngine) render() string {
	n := e.buf.Len()
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		out[i] = ComposeLetter(*e.buf.At(i))
	}
	return string(out)
}

// literalRunes renders the buffer's raw keystrokes, ignoring every tone,
// mark and stroke annotation — the fallback text for an abandoned
// composition.
func (e *CompositionEngine) literalRunes() []rune {
	n := e.buf.Len()
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		rec := e.buf.At(i)
		ch := rune(rec.Key)
		if rec.Caps {
			ch = unicode.ToUpper(ch)
		}
		out[i] = ch
	}
	return out
}
