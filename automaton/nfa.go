package automaton

import (
	"fmt"

	"github.com/coregx/rex/internal/sparse"
)

// NFA is a non-deterministic automaton in dense form: states are indexed
// contiguously and each keeps its full 256-entry edge table. It is immutable
// and safe for concurrent use; Run allocates its working sets per call.
type NFA struct {
	states  []State
	initial StateID
	final   StateID
}

// NewNFA creates an NFA over the given states.
func NewNFA(states []State, initial, final StateID) *NFA {
	return &NFA{states: states, initial: initial, final: final}
}

// Run reports whether the NFA accepts the whole input, by classical subset
// construction: it carries the epsilon closure of the set of all states the
// automaton could be in, advancing the whole set one input byte at a time.
// Worst-case work is input length times state count, regardless of how
// ambiguous the pattern is.
func (n *NFA) Run(input []byte) bool {
	current := sparse.NewSet(len(n.states))
	next := sparse.NewSet(len(n.states))
	stack := make([]StateID, 0, len(n.states))

	stack = n.closure(current, stack, n.initial)
	for _, b := range input {
		if current.Len() == 0 {
			return false
		}
		next.Clear()
		for _, id := range current.Values() {
			list := &n.states[id][b]
			for i := 0; i < list.Len(); i++ {
				stack = n.closure(next, stack, list.At(i))
			}
		}
		current, next = next, current
	}
	return current.Contains(uint32(n.final))
}

// closure inserts id and every state reachable from it through epsilon moves
// into set. Iterative with an explicit worklist: epsilon cycles are common
// (for example from quantified empty alternatives) and already-visited states
// are skipped, so the walk always terminates. The worklist slice is returned
// for reuse.
func (n *NFA) closure(set *sparse.Set, stack []StateID, id StateID) []StateID {
	stack = append(stack[:0], id)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !set.Insert(uint32(s)) {
			continue
		}
		eps := &n.states[s][0]
		for i := 0; i < eps.Len(); i++ {
			stack = append(stack, eps.At(i))
		}
	}
	return stack
}

// Len returns the number of states.
func (n *NFA) Len() int { return len(n.states) }

// String returns a brief description for debugging.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, initial: %d, final: %d}", len(n.states), n.initial, n.final)
}
