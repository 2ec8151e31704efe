package meta

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/rex/literal"
	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/syntax"
)

// Compile runs the full pipeline with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig runs the full pipeline: concat-marker insertion,
// infix-to-postfix conversion, Thompson construction, epsilon
// elimination, then literal extraction and strategy selection. All
// failures happen here; a returned Engine never errors at match time.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	postfix, err := syntax.ToPostfix(syntax.InsertConcat(pattern))
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	automaton, err := nfa.Compile(postfix)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	lits := literal.Extract(postfix, config.Literals)
	strategy := selectStrategy(lits, config)

	e := &Engine{
		pattern:  pattern,
		nfa:      automaton,
		literals: lits,
		strategy: strategy,
	}

	if strategy == UseAhoCorasick {
		aho, err := buildAhoCorasick(lits)
		if err != nil {
			// The literal set is still exact; only the search
			// accelerator is lost.
			e.strategy = UseLiteral
		} else {
			e.aho = aho
		}
	}

	return e, nil
}

// buildAhoCorasick assembles the multi-literal search automaton for the
// unanchored fast path.
func buildAhoCorasick(lits *literal.Seq) (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < lits.Len(); i++ {
		builder.AddPattern([]byte(lits.Get(i)))
	}
	return builder.Build()
}
