// Package nfa builds and runs the automaton behind a compiled pattern.
//
// A postfix token stream (produced by package syntax) is turned into a
// nondeterministic finite automaton by Thompson's construction, epsilon
// transitions are then removed by a closure-based elimination pass, and
// the resulting epsilon-free automaton is simulated against input text.
//
// States live in an arena owned by the automaton and are addressed by
// StateID handles; the graph may contain cycles (from `*` and `+`), so
// every traversal carries its own visited set instead of relying on
// pointer identity or shared scratch state.
package nfa

import (
	"fmt"
	"strings"
)

// StateID uniquely identifies a state within one automaton's arena.
type StateID uint32

// InvalidState is the zero-value-adjacent sentinel for an unset state.
const InvalidState StateID = 0xFFFFFFFF

// Transition is a labeled edge to another state. The label is a single
// literal byte; epsilon edges are kept separately and only exist before
// elimination.
type Transition struct {
	Label byte
	Next  StateID
}

// state is one node of the arena. Before elimination a state may carry
// both labeled transitions and epsilon edges; after elimination eps is
// always empty.
type state struct {
	trans []Transition
	eps   []StateID
}

// NFA is a compiled, epsilon-free automaton.
//
// It is immutable after compilation: Match and the search helpers
// allocate their own working sets, so a single NFA may be used from any
// number of goroutines concurrently.
type NFA struct {
	states []state
	start  StateID
	accept []bool
}

// Start returns the automaton's entry state.
func (n *NFA) Start() StateID {
	return n.start
}

// Len returns the number of states in the arena, including states left
// unreachable by elimination.
func (n *NFA) Len() int {
	return len(n.states)
}

// IsAccept reports whether id is an accepting state.
func (n *NFA) IsAccept(id StateID) bool {
	return int(id) < len(n.accept) && n.accept[id]
}

// Transitions returns the outgoing labeled transitions of id. The slice
// aliases the automaton's storage and must not be modified.
func (n *NFA) Transitions(id StateID) []Transition {
	if int(id) >= len(n.states) {
		return nil
	}
	return n.states[id].trans
}

// String returns a one-line summary of the automaton.
func (n *NFA) String() string {
	accepting := 0
	for _, a := range n.accept {
		if a {
			accepting++
		}
	}
	return fmt.Sprintf("NFA{states: %d, start: %d, accepting: %d}", len(n.states), n.start, accepting)
}

// Compile converts a postfix token stream into an epsilon-free
// automaton. It fails with ErrMalformedPostfix if the stream underflows
// the fragment stack or leaves more than one fragment.
func Compile(postfix string) (*NFA, error) {
	b := newBuilder(len(postfix))
	frag, err := b.run(postfix)
	if err != nil {
		return nil, err
	}
	return eliminate(b.states, frag), nil
}

// dumpLabel renders a transition label for Dump output.
func dumpLabel(b byte) string {
	if strings.ContainsRune(" \t\n", rune(b)) || b < 0x20 || b > 0x7e {
		return fmt.Sprintf("0x%02x", b)
	}
	return fmt.Sprintf("%q", string(b))
}
