package nfa

import (
	"fmt"
	"strings"

	"github.com/coregx/rex/internal/sparse"
)

// Dump renders the reachable part of the automaton, one state per line
// in breadth-first order from the start state. Accepting states are
// tagged. Intended for debugging and tests; the format is not stable.
//
// The walk carries its own visited set, so Dump is safe on the cyclic
// graphs produced by `*` and `+` and safe to call concurrently.
func (n *NFA) Dump() string {
	var sb strings.Builder

	visited := sparse.NewSet(uint32(len(n.states)))
	queue := []StateID{n.start}
	visited.Insert(uint32(n.start))

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		fmt.Fprintf(&sb, "%d", s)
		if s == n.start {
			sb.WriteString(" start")
		}
		if n.accept[s] {
			sb.WriteString(" accept")
		}
		sb.WriteString(":")
		for _, tr := range n.states[s].trans {
			fmt.Fprintf(&sb, " %s->%d", dumpLabel(tr.Label), tr.Next)
			if !visited.Contains(uint32(tr.Next)) {
				visited.Insert(uint32(tr.Next))
				queue = append(queue, tr.Next)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
