package literal

import (
	"sort"
	"testing"

	"github.com/coregx/rex/syntax"
)

func extract(t *testing.T, pattern string) *Seq {
	t.Helper()
	postfix, err := syntax.ToPostfix(syntax.InsertConcat(pattern))
	if err != nil {
		t.Fatalf("pattern %q: %v", pattern, err)
	}
	return Extract(postfix, DefaultConfig())
}

func sorted(s *Seq) []string {
	out := append([]string(nil), s.Strings()...)
	sort.Strings(out)
	return out
}

func TestExtract_Languages(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string // nil means "not a literal language"
	}{
		{"a", []string{"a"}},
		{"abc", []string{"abc"}},
		{"a|b", []string{"a", "b"}},
		{"a|b|c", []string{"a", "b", "c"}},
		{"(a|b)(c|d)", []string{"ac", "ad", "bc", "bd"}},
		{"a|a", []string{"a"}},

		// Equal-precedence surprise: the language of ab|cd is {abd, cd}.
		{"ab|cd", []string{"abd", "cd"}},
		{"foo|bar|baz", []string{"baraz", "baz", "fooaraz"}},

		// Repetition means no finite literal language.
		{"a*", nil},
		{"a+", nil},
		{"a?", nil},
		{"(ab|c*)d", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := extract(t, tt.pattern)
			if tt.want == nil {
				if seq != nil {
					t.Fatalf("Extract(%q) = %v, want nil", tt.pattern, seq.Strings())
				}
				return
			}
			if seq == nil {
				t.Fatalf("Extract(%q) = nil, want %v", tt.pattern, tt.want)
			}
			got := sorted(seq)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Extract(%q) = %v, want %v", tt.pattern, got, tt.want)
				}
			}
		})
	}
}

func TestExtract_Caps(t *testing.T) {
	cfg := Config{MaxLiterals: 4, MaxLiteralLen: 3}

	if seq := Extract("ab|c|d|e|f|", cfg); seq != nil {
		t.Errorf("alternation over cap: got %v, want nil", seq.Strings())
	}
	if seq := Extract("ab,c,d,", cfg); seq != nil {
		t.Errorf("literal over length cap: got %v, want nil", seq.Strings())
	}
	if seq := Extract("ab,c,", cfg); seq == nil {
		t.Error("literal at length cap should extract")
	}
}

func TestSeq_ContainsAndMaxPrefix(t *testing.T) {
	seq := extract(t, "foo|bar|baz")
	// Language is {fooaraz, baraz, baz}.

	for _, text := range []string{"baz", "baraz", "fooaraz"} {
		if !seq.Contains(text) {
			t.Errorf("Contains(%q) = false, want true", text)
		}
	}
	for _, text := range []string{"foo", "bar", "", "bazz"} {
		if seq.Contains(text) {
			t.Errorf("Contains(%q) = true, want false", text)
		}
	}

	tests := []struct {
		text string
		want int
	}{
		{"fooz", 3},
		{"ba", 2},
		{"b", 1},
		{"x", 0},
		{"", 0},
		{"baraz", 5},
		{"barazzz", 5},
	}
	for _, tt := range tests {
		if got := seq.MaxPrefix(tt.text); got != tt.want {
			t.Errorf("MaxPrefix(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSeq_NilSafe(t *testing.T) {
	var seq *Seq
	if seq.Len() != 0 || seq.Strings() != nil {
		t.Error("nil Seq should behave as empty")
	}
}
