// Package meta orchestrates the compilation pipeline and dispatches
// each operation to the cheapest engine that answers it exactly: the
// epsilon-free automaton, membership over an extracted finite literal
// language, or an Aho-Corasick automaton for unanchored search over
// large literal sets.
package meta

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/rex/literal"
	"github.com/coregx/rex/nfa"
)

// Engine is a compiled pattern with its execution strategy. It is
// immutable after Compile and safe for concurrent use.
type Engine struct {
	pattern  string
	nfa      *nfa.NFA
	literals *literal.Seq
	aho      *ahocorasick.Automaton
	strategy Strategy
}

// Pattern returns the source pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NFA returns the compiled automaton. All strategies keep it: it is the
// reference semantics the fast paths must agree with.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Dump renders the automaton for debugging.
func (e *Engine) Dump() string {
	return e.nfa.Dump()
}

// Match reports whether text as a whole drives the automaton into an
// accepting state, and the munch: the longest prefix along which any
// transition path advanced.
//
// For a finite literal language both answers come from the literal set
// directly — membership for matched, longest shared literal prefix for
// munch — which is exactly what the automaton would compute.
func (e *Engine) Match(text string) (matched bool, munch int) {
	if e.literals != nil {
		return e.literals.Contains(text), e.literals.MaxPrefix(text)
	}
	return e.nfa.Match(text)
}

// Find returns the leftmost match of the pattern anywhere in text,
// preferring the longest match at that position. ok is false when no
// substring of text matches.
func (e *Engine) Find(text string) (start, end int, ok bool) {
	if e.aho != nil {
		m := e.aho.Find([]byte(text), 0)
		if m == nil {
			return 0, 0, false
		}
		return m.Start, m.End, true
	}

	for at := 0; at <= len(text); at++ {
		if end, ok := e.nfa.ScanFrom(text, at); ok {
			return at, end, true
		}
	}
	return 0, 0, false
}

// IsMatchAnywhere reports whether any substring of text matches.
func (e *Engine) IsMatchAnywhere(text string) bool {
	if e.aho != nil {
		return e.aho.IsMatch([]byte(text))
	}
	_, _, ok := e.Find(text)
	return ok
}
