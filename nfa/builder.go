package nfa

import "github.com/coregx/rex/syntax"

// fragment is a transient (entry, exit) pair of states produced and
// consumed during Thompson's construction. It never leaves the builder.
type fragment struct {
	entry StateID
	exit  StateID
}

// builder holds the state arena and the fragment stack while a postfix
// stream is being consumed.
type builder struct {
	states []state
	stack  []fragment
}

func newBuilder(capacity int) *builder {
	return &builder{
		states: make([]state, 0, 2*capacity),
		stack:  make([]fragment, 0, capacity),
	}
}

// addState appends a fresh state to the arena and returns its handle.
func (b *builder) addState() StateID {
	b.states = append(b.states, state{})
	return StateID(len(b.states) - 1)
}

func (b *builder) addTransition(from StateID, label byte, to StateID) {
	b.states[from].trans = append(b.states[from].trans, Transition{Label: label, Next: to})
}

func (b *builder) addEpsilon(from, to StateID) {
	b.states[from].eps = append(b.states[from].eps, to)
}

func (b *builder) push(f fragment) {
	b.stack = append(b.stack, f)
}

func (b *builder) pop() (fragment, bool) {
	n := len(b.stack)
	if n == 0 {
		return fragment{}, false
	}
	f := b.stack[n-1]
	b.stack = b.stack[:n-1]
	return f, true
}

// run consumes the postfix stream left to right, applying Thompson's
// construction, and returns the single remaining fragment.
//
// Encodings (2-state forms; entry and exit may coincide):
//
//	literal c    new entry --c--> new exit
//	concat       a.exit --eps--> b.entry; fragment (a.entry, b.exit)
//	alternation  a.entry --eps--> b.entry, b.exit --eps--> a.exit;
//	             both branches share a's endpoints
//	*            a.exit --eps--> a.entry; entry doubles as exit
//	+            a.exit --eps--> a.entry; exit kept, so one pass is forced
//	?            a.entry --eps--> a.exit
func (b *builder) run(postfix string) (fragment, error) {
	for i := 0; i < len(postfix); i++ {
		switch c := postfix[i]; c {
		case syntax.Concat:
			y, ok := b.pop()
			if !ok {
				return fragment{}, ErrMalformedPostfix
			}
			x, ok := b.pop()
			if !ok {
				return fragment{}, ErrMalformedPostfix
			}
			b.addEpsilon(x.exit, y.entry)
			b.push(fragment{entry: x.entry, exit: y.exit})

		case '|':
			y, ok := b.pop()
			if !ok {
				return fragment{}, ErrMalformedPostfix
			}
			x, ok := b.pop()
			if !ok {
				return fragment{}, ErrMalformedPostfix
			}
			b.addEpsilon(x.entry, y.entry)
			b.addEpsilon(y.exit, x.exit)
			b.push(fragment{entry: x.entry, exit: x.exit})

		case '*':
			x, ok := b.pop()
			if !ok {
				return fragment{}, ErrMalformedPostfix
			}
			b.addEpsilon(x.exit, x.entry)
			b.push(fragment{entry: x.entry, exit: x.entry})

		case '+':
			x, ok := b.pop()
			if !ok {
				return fragment{}, ErrMalformedPostfix
			}
			b.addEpsilon(x.exit, x.entry)
			b.push(fragment{entry: x.entry, exit: x.exit})

		case '?':
			x, ok := b.pop()
			if !ok {
				return fragment{}, ErrMalformedPostfix
			}
			b.addEpsilon(x.entry, x.exit)
			b.push(fragment{entry: x.entry, exit: x.exit})

		default:
			entry := b.addState()
			exit := b.addState()
			b.addTransition(entry, c, exit)
			b.push(fragment{entry: entry, exit: exit})
		}
	}

	if len(b.stack) != 1 {
		return fragment{}, ErrMalformedPostfix
	}
	return b.stack[0], nil
}
