package nfa

import "github.com/coregx/rex/internal/sparse"

// Match simulates the automaton against text.
//
// matched reports whether the whole of text drives the automaton from
// the start state into an accepting state. munch is the length of the
// longest prefix for which some transition path advanced, whether or not
// that path ends up accepting; it is not guaranteed to equal the matched
// length.
//
// Match allocates its working sets per call and never mutates the
// automaton, so concurrent calls on one NFA are safe.
func (n *NFA) Match(text string) (matched bool, munch int) {
	active, next := n.newSet(), n.newSet()
	active.Insert(uint32(n.start))

	for i := 0; i < len(text); i++ {
		n.step(active, next, text[i])
		if next.IsEmpty() {
			// The automaton is epsilon-free: no latent transitions
			// remain to be discovered, so the match cannot extend.
			return false, munch
		}
		munch = i + 1
		active, next = next, active
	}

	return n.anyAccept(active), munch
}

// ScanFrom runs an anchored simulation over text[at:] and returns the
// largest end offset (relative to the whole text) at which the active
// set intersected the accepting set, or ok=false if it never did. The
// unanchored search in package meta calls this once per start offset.
func (n *NFA) ScanFrom(text string, at int) (end int, ok bool) {
	active, next := n.newSet(), n.newSet()
	active.Insert(uint32(n.start))

	if n.anyAccept(active) {
		end, ok = at, true
	}
	for i := at; i < len(text); i++ {
		n.step(active, next, text[i])
		if next.IsEmpty() {
			break
		}
		active, next = next, active
		if n.anyAccept(active) {
			end, ok = i+1, true
		}
	}
	return end, ok
}

// step fills next with the targets of every transition out of active
// labeled c. next is cleared first.
func (n *NFA) step(active, next *sparse.Set, c byte) {
	next.Clear()
	for _, s := range active.Values() {
		for _, tr := range n.states[s].trans {
			if tr.Label == c {
				next.Insert(uint32(tr.Next))
			}
		}
	}
}

func (n *NFA) anyAccept(set *sparse.Set) bool {
	for _, s := range set.Values() {
		if n.accept[s] {
			return true
		}
	}
	return false
}

func (n *NFA) newSet() *sparse.Set {
	return sparse.NewSet(uint32(len(n.states)))
}
