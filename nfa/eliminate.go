package nfa

import "github.com/coregx/rex/internal/sparse"

// eliminate removes every epsilon transition from the raw automaton in a
// single fixed-point work-list pass and computes the accepting set.
//
// Each state discovered from the entry is processed exactly once: its
// epsilon closure is computed, the union of the closure members' labeled
// transitions replaces the state's own transition list, and the state is
// marked accepting when its closure contains the fragment's exit. Newly
// referenced target states are queued for processing.
//
// The symbol-transition cycles introduced by `*` and `+` survive
// elimination, so both the work list and the closure computation guard
// against revisits with sparse sets sized to the arena.
func eliminate(states []state, frag fragment) *NFA {
	n := uint32(len(states))
	accept := make([]bool, n)

	visited := sparse.NewSet(n)
	queue := make([]StateID, 0, n)

	visited.Insert(uint32(frag.entry))
	queue = append(queue, frag.entry)

	closure := sparse.NewSet(n)
	rewritten := make([][]Transition, n)

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		epsilonClosure(states, s, closure)

		var union []Transition
		exitReached := false
		for _, m := range closure.Values() {
			if StateID(m) == frag.exit {
				exitReached = true
			}
			for _, tr := range states[m].trans {
				if !containsTransition(union, tr) {
					union = append(union, tr)
				}
			}
		}

		rewritten[s] = union
		if exitReached {
			accept[s] = true
		}
		for _, tr := range union {
			if !visited.Contains(uint32(tr.Next)) {
				visited.Insert(uint32(tr.Next))
				queue = append(queue, tr.Next)
			}
		}
	}

	// Install the rewritten transition lists and drop the epsilon edges.
	// States never reached from the entry keep empty lists.
	out := make([]state, n)
	for i := range out {
		out[i] = state{trans: rewritten[i]}
	}

	return &NFA{states: out, start: frag.entry, accept: accept}
}

// epsilonClosure fills set with every state reachable from s by epsilon
// edges alone, including s itself. The set is cleared first; the caller
// owns it and may reuse it across calls.
func epsilonClosure(states []state, s StateID, set *sparse.Set) {
	set.Clear()
	set.Insert(uint32(s))

	// Breadth-first over epsilon edges; Values grows as members are
	// inserted, so indexing doubles as the work queue.
	for i := 0; i < set.Len(); i++ {
		from := StateID(set.Values()[i])
		for _, t := range states[from].eps {
			set.Insert(uint32(t))
		}
	}
}

func containsTransition(list []Transition, tr Transition) bool {
	for _, have := range list {
		if have == tr {
			return true
		}
	}
	return false
}
