package meta

import "github.com/coregx/rex/literal"

// Config tunes compilation. Zero values are not usable; start from
// DefaultConfig and adjust.
type Config struct {
	// Literals bounds finite-language extraction. Patterns whose
	// language stays within these limits get the exact literal fast
	// paths; everything else runs on the automaton.
	Literals literal.Config

	// MinAhoLiterals is the smallest literal-set size for which the
	// unanchored search builds an Aho-Corasick automaton instead of
	// scanning with the NFA per start offset. Small sets are not worth
	// the construction cost.
	MinAhoLiterals int
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		Literals:       literal.DefaultConfig(),
		MinAhoLiterals: 8,
	}
}
