// Package literal decides whether a pattern's language is a finite set
// of literal strings and, when it is, represents that set for the fast
// paths in package meta: exact membership for anchored matching and
// multi-literal search for unanchored matching.
//
// Extraction works on the postfix token stream, not the surface pattern.
// Under the engine's equal-precedence grammar the surface form is
// misleading — `ab|cd` denotes ((a·b)|c)·d with language {abd, cd} — but
// evaluating the postfix stream over string sets always yields the exact
// language.
package literal

// Config bounds extraction so that wide alternations and long
// concatenations cannot blow up the literal set.
type Config struct {
	// MaxLiterals caps the number of strings in the set. Concatenating
	// two alternatives multiplies set sizes, so the cap is enforced
	// after every operator.
	MaxLiterals int

	// MaxLiteralLen caps the length of each string in the set.
	MaxLiteralLen int
}

// DefaultConfig returns the extraction limits used by meta.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Seq is the finite language of a literal-only pattern. The zero of
// information is a nil *Seq, meaning "not a finite literal language".
type Seq struct {
	lits []string
}

// Len returns the number of literals in the set.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) string {
	return s.lits[i]
}

// Strings returns the literals. The slice aliases the Seq's storage.
func (s *Seq) Strings() []string {
	if s == nil {
		return nil
	}
	return s.lits
}

// Contains reports whether text is exactly one of the literals. This is
// the anchored-match fast path: for a finite literal language, matching
// is set membership.
func (s *Seq) Contains(text string) bool {
	for _, l := range s.lits {
		if l == text {
			return true
		}
	}
	return false
}

// MaxPrefix returns the length of the longest prefix of text that is
// also a prefix of some literal. For a literal-only automaton this
// equals the matcher's munch: a path advances exactly while the consumed
// input is still a prefix of one of the literals.
func (s *Seq) MaxPrefix(text string) int {
	best := 0
	for _, l := range s.lits {
		n := commonPrefixLen(l, text)
		if n > best {
			best = n
		}
	}
	return best
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
