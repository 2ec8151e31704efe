package literal

import "github.com/coregx/rex/syntax"

// Extract evaluates a postfix token stream over sets of strings and
// returns the pattern's language as a Seq, or nil when the language is
// not a finite literal set the caller should specialize for: the
// pattern uses a repetition operator, a config cap is exceeded, or the
// stream is malformed (the automaton compiler reports that case).
//
// Evaluation mirrors the automaton builder's stack discipline. Literals
// push singleton sets, concatenation is the pairwise cross product and
// alternation is set union, so the result is exactly the set of strings
// the compiled automaton accepts.
func Extract(postfix string, cfg Config) *Seq {
	var stack [][]string

	pop := func() ([]string, bool) {
		n := len(stack)
		if n == 0 {
			return nil, false
		}
		top := stack[n-1]
		stack = stack[:n-1]
		return top, true
	}

	for i := 0; i < len(postfix); i++ {
		switch c := postfix[i]; c {
		case '*', '+', '?':
			// Repetition makes the language infinite (or at least not
			// worth enumerating); leave it to the automaton.
			return nil

		case syntax.Concat:
			b, ok := pop()
			if !ok {
				return nil
			}
			a, ok := pop()
			if !ok {
				return nil
			}
			if len(a)*len(b) > cfg.MaxLiterals {
				return nil
			}
			product := make([]string, 0, len(a)*len(b))
			for _, x := range a {
				for _, y := range b {
					if len(x)+len(y) > cfg.MaxLiteralLen {
						return nil
					}
					product = append(product, x+y)
				}
			}
			stack = append(stack, product)

		case '|':
			b, ok := pop()
			if !ok {
				return nil
			}
			a, ok := pop()
			if !ok {
				return nil
			}
			union := dedupe(append(a, b...))
			if len(union) > cfg.MaxLiterals {
				return nil
			}
			stack = append(stack, union)

		default:
			stack = append(stack, []string{string(c)})
		}
	}

	if len(stack) != 1 {
		return nil
	}
	return &Seq{lits: stack[0]}
}

func dedupe(lits []string) []string {
	seen := make(map[string]struct{}, len(lits))
	out := lits[:0]
	for _, l := range lits {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
