package engine

import "testing"

func TestBufferPushPopClear(t *testing.T) {
	var b Buffer
	if b.Len() != 0 {
		t.Fatalf("new buffer Len() = %d, want 0", b.Len())
	}

	b.Push(LetterRecord{Key: KeyX})
	b.Push(LetterRecord{Key: KeyI})
	b.Push(LetterRecord{Key: KeyN})
	if b.Len() != 3 {
		t.Fatalf("Len() after 3 pushes = %d, want 3", b.Len())
	}
	if got := baseString(b.Keys()); got != "xin" {
		t.Errorf("Keys() = %q, want %q", got, "xin")
	}

	b.Pop()
	if b.Len() != 2 {
		t.Fatalf("Len() after Pop = %d, want 2", b.Len())
	}

	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", b.Len())
	}
	if b.At(0) != nil {
		t.Errorf("At(0) on empty buffer = %v, want nil", b.At(0))
	}
}

func TestBufferFullIgnoresPush(t *testing.T) {
	var b Buffer
	for i := 0; i < MaxBufferLen; i++ {
		b.Push(LetterRecord{Key: KeyA})
	}
	if !b.Full() {
		t.Fatal("buffer should be Full() after MaxBufferLen pushes")
	}
	b.Push(LetterRecord{Key: KeyB})
	if b.Len() != MaxBufferLen {
		t.Errorf("Len() after push past capacity = %d, want %d", b.Len(), MaxBufferLen)
	}
}

func TestBufferVowelPositions(t *testing.T) {
	var b Buffer
	for _, k := range []Keycode{KeyX, KeyI, KeyN} {
		b.Push(LetterRecord{Key: k})
	}
	got := b.VowelPositions()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("VowelPositions() = %v, want [1]", got)
	}
}
