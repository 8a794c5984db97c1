package automaton

import "fmt"

// DFAState is one row of a deterministic transition table: the next state for
// each input byte, or NoTransition. Slot 0 holds the state's residual epsilon
// move, if any; determinism guarantees a state with an epsilon move has no
// byte transitions, so the slot never shadows one.
type DFAState [256]StateID

// DFA is a deterministic automaton in dense table form. It is immutable and
// safe for concurrent use.
type DFA struct {
	states  []DFAState
	initial StateID
	final   StateID
}

// NewDFA creates a DFA over the given transition table.
func NewDFA(states []DFAState, initial, final StateID) *DFA {
	return &DFA{states: states, initial: initial, final: final}
}

// Run reports whether the DFA accepts the whole input.
//
// Residual epsilon moves are taken eagerly: whenever the current state has
// one, it is followed without consuming input. After the input is exhausted
// the remaining epsilon chain is chased toward the final state.
func (d *DFA) Run(input []byte) bool {
	state := d.initial
	for i := 0; i < len(input); {
		if e := d.states[state][0]; e >= 0 {
			state = e
			continue
		}
		next := d.states[state][input[i]]
		if next < 0 {
			return false
		}
		state = next
		i++
	}
	for state != d.final {
		state = d.states[state][0]
		if state < 0 {
			return false
		}
	}
	return true
}

// Len returns the number of states.
func (d *DFA) Len() int { return len(d.states) }

// String returns a brief description for debugging.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states: %d, initial: %d, final: %d}", len(d.states), d.initial, d.final)
}
