package meta

import (
	"fmt"

	"github.com/coregx/rex/literal"
)

// Strategy identifies which execution path a compiled engine uses.
// Every strategy produces the same results; they differ only in cost.
type Strategy uint8

const (
	// UseNFA runs every operation on the epsilon-free automaton.
	UseNFA Strategy = iota

	// UseLiteral answers anchored matches by set membership over the
	// pattern's finite literal language; unanchored search still scans
	// with the automaton.
	UseLiteral

	// UseAhoCorasick is UseLiteral plus an Aho-Corasick automaton for
	// unanchored search over large literal sets.
	UseAhoCorasick
)

func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "NFA"
	case UseLiteral:
		return "Literal"
	case UseAhoCorasick:
		return "AhoCorasick"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}

// selectStrategy picks the cheapest strategy the extracted literal set
// supports.
func selectStrategy(lits *literal.Seq, config Config) Strategy {
	switch {
	case lits == nil:
		return UseNFA
	case lits.Len() >= config.MinAhoLiterals:
		return UseAhoCorasick
	default:
		return UseLiteral
	}
}
