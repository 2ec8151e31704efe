// Package rex compiles a small regex dialect into an epsilon-free
// nondeterministic finite automaton and matches input text against it.
//
// The dialect supports single-byte literals, alternation `|`,
// repetition `*`, `+` and `?`, and grouping parentheses. There are no
// character classes, anchors, escapes or counted repetitions, and `,`
// is reserved as the internal concatenation marker.
//
// Compilation is a fixed pipeline: explicit concatenation markers are
// inserted, the pattern is converted to postfix by an equal-precedence
// shunting yard, Thompson's construction builds the automaton, and an
// elimination pass removes every epsilon transition so matching never
// chases epsilon edges. All errors surface at compile time; matching is
// total.
//
// Two grammar properties are deliberate and worth knowing:
//
//   - Alternation and concatenation have equal precedence and associate
//     left to right, so `ab|cd` means ((a·b)|c)·d, whose language is
//     {abd, cd}. Parenthesize for conventional grouping.
//   - Match reports both a verdict and the "munch": the longest input
//     prefix along which some transition path advanced, which may
//     exceed the length of any accepted string.
//
// Basic usage:
//
//	re, err := rex.Compile("(ab|c*)d")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matched, munch := re.Match("ccd") // true, 3
//
// A compiled Regex is immutable and safe for concurrent use.
package rex

import (
	"github.com/coregx/rex/meta"
	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/syntax"
)

// Sentinel compile errors, re-exported from the pipeline packages for
// convenient errors.Is checks against rex.Compile failures.
var (
	// ErrUnmatchedBracket reports a `)` without an open `(`, or a `(`
	// still open at the end of the pattern.
	ErrUnmatchedBracket = syntax.ErrUnmatchedBracket

	// ErrMalformedPostfix reports a postfix stream that underflows the
	// fragment stack or leaves more than one fragment, including the
	// empty pattern.
	ErrMalformedPostfix = nfa.ErrMalformedPostfix
)

// Regex is a compiled pattern.
//
// It is immutable after Compile: every match call allocates its own
// working state, so one Regex may be shared by any number of
// goroutines.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is Compile for patterns known to be valid; it panics on
// error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration,
// allowing control over literal extraction limits and fast-path
// thresholds.
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the configuration Compile uses; customize it
// and pass to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match reports whether text as a whole is in the pattern's language,
// together with the munch: the length of the longest prefix of text
// along which some transition path advanced. The munch is reported for
// failed matches too, and may exceed the length any accepting path
// consumed.
//
// Match never fails; text containing bytes outside the pattern's
// alphabet simply does not match.
func (re *Regex) Match(text string) (matched bool, munch int) {
	return re.engine.Match(text)
}

// IsMatch reports whether text as a whole is in the pattern's language.
func (re *Regex) IsMatch(text string) bool {
	matched, _ := re.engine.Match(text)
	return matched
}

// Find returns the span of the leftmost match anywhere in text,
// preferring the longest match at that position. ok is false when no
// substring matches.
func (re *Regex) Find(text string) (start, end int, ok bool) {
	return re.engine.Find(text)
}

// IsMatchAnywhere reports whether any substring of text is in the
// pattern's language.
func (re *Regex) IsMatchAnywhere(text string) bool {
	return re.engine.IsMatchAnywhere(text)
}

// Pattern returns the source pattern.
func (re *Regex) Pattern() string {
	return re.pattern
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// Dump renders the compiled automaton, one reachable state per line.
// Intended for debugging; the format is not stable.
func (re *Regex) Dump() string {
	return re.engine.Dump()
}
