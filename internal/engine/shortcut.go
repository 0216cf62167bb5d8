package engine

// Rule is one configured shortcut: typing Shortcut up to a word boundary
// expands it to Expansion. ID addresses the rule for Remove and is
// independent of Shortcut, so a host can rebind a rule's trigger text
// without losing whatever else references it by ID.
type Rule struct {
	ID        string
	Shortcut  string
	Expansion string
}

// ShortcutTable is consulted at every word boundary and owns the complete
// auto-restore policy: the engine hands it the buffer's composed form, its
// raw (unannotated) keystrokes, and whether those raw keystrokes are a
// phonotactically valid syllable prefix, and the table decides what, if
// anything, the host should do about it. This keeps the decision a
// property of the table — swappable per host — rather than hardcoded in
// the engine.
type ShortcutTable interface {
	// TryMatch returns the replacement text and the action the host should
	// take: ActionSend to replace composed with text (a shortcut
	// expansion), ActionRestore to replace it with text as a literal
	// fallback (auto-restore), or ActionNone to leave composed as-is.
	TryMatch(composed, raw string, validPrefix bool) (text string, action Action)
	Add(rule Rule)
	Remove(id string)
	Entries() []Rule
	Len() int
}

type mapShortcutTable struct {
	entries map[string]Rule
}

// NewShortcutTable returns an empty ShortcutTable.
func NewShortcutTable() ShortcutTable {
	return &mapShortcutTable{entries: make(map[string]Rule)}
}

// TryMatch expands a configured rule whose Shortcut matches composed;
// failing that, it auto-restores to raw when raw is not a valid syllable
// prefix; otherwise it leaves a syllable that is already valid Vietnamese
// alone.
func (t *mapShortcutTable) TryMatch(composed, raw string, validPrefix bool) (string, Action) {
	for _, r := range t.entries {
		if r.Shortcut == composed {
			return r.Expansion, ActionSend
		}
	}
	if !validPrefix {
		return raw, ActionRestore
	}
	return "", ActionNone
}

func (t *mapShortcutTable) Add(rule Rule) {
	if rule.ID == "" {
		rule.ID = rule.Shortcut
	}
	t.entries[rule.ID] = rule
}

func (t *mapShortcutTable) Remove(id string) {
	delete(t.entries, id)
}

// Entries lists every configured rule, in no particular order.
func (t *mapShortcutTable) Entries() []Rule {
	out := make([]Rule, 0, len(t.entries))
	for _, r := range t.entries {
		out = append(out, r)
	}
	return out
}

func (t *mapShortcutTable) Len() int {
	return len(t.entries)
}

// defaultShortcutSeed is a small starter set of the kind of abbreviation a
// Vietnamese typist commonly configures; callers add their own via Add.
var defaultShortcutSeed = map[string]string{
	"vn":   "Việt Nam",
	"ko":   "không",
	"dc":   "được",
	"nc":   "nước",
	"hnay": "hôm nay",
}

// DefaultShortcuts returns a ShortcutTable preloaded with defaultShortcutSeed.
func DefaultShortcuts() ShortcutTable {
	t := &mapShortcutTable{entries: make(map[string]Rule, len(defaultShortcutSeed))}
	for shortcut, expansion := range defaultShortcutSeed {
		t.entries[shortcut] = Rule{ID: shortcut, Shortcut: shortcut, Expansion: expansion}
	}
	return t
}
