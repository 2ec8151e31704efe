// Package syntax turns a pattern written with the operators `|`, `*`,
// `+`, `?` and grouping parentheses into a postfix token stream ready
// for automaton construction.
//
// Two transformations are applied in order:
//
//  1. InsertConcat makes the implicit concatenation between adjacent
//     pattern elements explicit by injecting a marker byte.
//  2. ToPostfix converts the marked infix pattern to postfix using a
//     shunting-yard variant in which alternation and the concatenation
//     marker have equal precedence and associate left to right.
//
// The equal precedence is a deliberate property of this grammar, not an
// oversight: `ab|cd` denotes ((a·b)|c)·d, whose language is {abd, cd}.
// Callers that need conventional grouping must parenthesize.
package syntax

import "errors"

// Concat is the explicit concatenation marker injected by InsertConcat.
// It is not part of the operator alphabet, so the later stages can treat
// it as an ordinary binary operator. As a consequence `,` cannot be used
// as a pattern literal.
const Concat = ','

// ErrUnmatchedBracket is returned by ToPostfix when a `)` has no open
// `(` on the operator stack, or a `(` is still open at end of input.
var ErrUnmatchedBracket = errors.New("unmatched bracket in pattern")

// isUnary reports whether b is one of the postfix repetition operators.
func isUnary(b byte) bool {
	return b == '*' || b == '+' || b == '?'
}

// isBinary reports whether b is alternation or the concatenation marker.
func isBinary(b byte) bool {
	return b == '|' || b == Concat
}

// InsertConcat returns pattern with the Concat marker inserted between
// every pair of adjacent elements that are implicitly concatenated: the
// left element must not be `(` or `|`, and the right element must not be
// `*`, `+`, `?`, `)` or `|`. The empty pattern is returned unchanged.
func InsertConcat(pattern string) string {
	if pattern == "" {
		return pattern
	}

	marked := make([]byte, 0, 2*len(pattern)-1)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		marked = append(marked, c)

		if c == '(' || c == '|' {
			continue
		}
		if i+1 == len(pattern) {
			break
		}
		next := pattern[i+1]
		if isUnary(next) || next == ')' || next == '|' {
			continue
		}
		marked = append(marked, Concat)
	}
	return string(marked)
}
