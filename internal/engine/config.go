package engine

// EngineConfig holds the engine's own behavioral settings: the input
// convention and tone-placement rule a user picks from a host's
// preferences panel. It is distinct from the daemon's process-level
// startup configuration (service name, object path, log file), which
// lives in cmd/daemon.
type EngineConfig struct {
	// InputMethodName selects the typing convention: "Telex" or "VNI".
	InputMethodName string

	// ModernTone selects modern (hoá) vs. traditional (hóa) placement for
	// a two-vowel nucleus with no final consonant: modern puts the mark on
	// the second vowel of oa/oe/uy and the first of any other pair;
	// traditional does the reverse for both.
	ModernTone bool

	// Enabled starts the engine with composition on or off.
	Enabled bool
}

// DefaultConfig returns Telex, modern tone placement, enabled.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		InputMethodName: "Telex",
		ModernTone:      true,
		Enabled:         true,
	}
}

// NewConfiguredEngine builds a CompositionEngine from an EngineConfig.
func NewConfiguredEngine(config *EngineConfig) *CompositionEngine {
	if config == nil {
		config = DefaultConfig()
	}
	e := NewCompositionEngine(methodByName(config.InputMethodName))
	e.SetModernTone(config.ModernTone)
	e.SetEnabled(config.Enabled)
	return e
}

// ApplyConfig reconfigures an existing engine in place, clearing any
// in-progress syllable.
func ApplyConfig(e *CompositionEngine, config *EngineConfig) {
	e.SetMethod(methodByName(config.InputMethodName))
	e.SetModernTone(config.ModernTone)
	e.SetEnabled(config.Enabled)
}

func methodByName(name string) InputMethod {
	switch name {
	case "VNI", "vni":
		return NewVNI()
	default:
		return NewTelex()
	}
}
