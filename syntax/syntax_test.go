package syntax

import (
	"errors"
	"testing"
)

func TestInsertConcat(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"empty", "", ""},
		{"single literal", "a", "a"},
		{"two literals", "ab", "a,b"},
		{"three literals", "abc", "a,b,c"},
		{"alternation untouched", "a|b", "a|b"},
		{"star binds left", "a*b", "a*,b"},
		{"plus binds left", "a+b", "a+,b"},
		{"quest then literal", "a?b", "a?,b"},
		{"group entry", "(ab)", "(a,b)"},
		{"after group", "(a)b", "(a),b"},
		{"star after group", "(ab)*c", "(a,b)*,c"},
		{"mixed", "a?bc|(d|e+)f", "a?,b,c|(d|e+),f"},
		{"end to end pattern", "(ab|c*)d", "(a,b|c*),d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsertConcat(tt.pattern); got != tt.want {
				t.Errorf("InsertConcat(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"empty", "", ""},
		{"single literal", "a", "a"},
		{"two literals", "ab", "ab,"},
		{"alternation", "a|b", "ab|"},
		{"star", "a*", "a*"},
		{"group star concat", "(ab|c*)d", "ab,c*|d,"},
		{"left associative chain", "a|b|c", "ab|c|"},
		{"multichar alternation", "ab|cd", "ab,c|d,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(InsertConcat(tt.pattern))
			if err != nil {
				t.Fatalf("ToPostfix(%q) error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

// The marker/postfix regression fixture carried over from the original
// pipeline: the marked form of "a?bc|(d|e+)f" must convert to exactly
// "a?b,c,de+||f,".
func TestToPostfix_RegressionFixture(t *testing.T) {
	got, err := ToPostfix(InsertConcat("a?bc|(d|e+)f"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "a?b,c,de+||f,"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToPostfix_UnmatchedBracket(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"lone close", ")"},
		{"close without open", "ab)"},
		{"extra close", "(a))"},
		{"lone open", "(a"},
		{"nested missing close", "((a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToPostfix(InsertConcat(tt.pattern))
			if !errors.Is(err, ErrUnmatchedBracket) {
				t.Errorf("ToPostfix(%q) error = %v, want ErrUnmatchedBracket", tt.pattern, err)
			}
		})
	}
}

// Token conservation: the postfix output holds the same tokens as the
// marked input minus the brackets.
func TestToPostfix_TokenConservation(t *testing.T) {
	patterns := []string{"ab", "a|b", "(ab|c*)d", "a?bc|(d|e+)f", "(a|b)+", "a*b"}

	for _, p := range patterns {
		marked := InsertConcat(p)
		got, err := ToPostfix(marked)
		if err != nil {
			t.Fatalf("ToPostfix(%q) error: %v", p, err)
		}

		brackets := 0
		for i := 0; i < len(marked); i++ {
			if marked[i] == '(' || marked[i] == ')' {
				brackets++
			}
		}
		if len(got) != len(marked)-brackets {
			t.Errorf("pattern %q: output length %d, want %d", p, len(got), len(marked)-brackets)
		}
	}
}
