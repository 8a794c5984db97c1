package automaton

import "testing"

// dfaRow builds a transition row with every slot empty except the given ones.
func dfaRow(edges map[byte]StateID) DFAState {
	var row DFAState
	for i := range row {
		row[i] = NoTransition
	}
	for label, to := range edges {
		row[label] = to
	}
	return row
}

func TestDFA_Run(t *testing.T) {
	// ab: 0 -a-> 1 -b-> 2
	d := NewDFA([]DFAState{
		dfaRow(map[byte]StateID{'a': 1}),
		dfaRow(map[byte]StateID{'b': 2}),
		dfaRow(nil),
	}, 0, 2)

	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"", false},
		{"a", false},
		{"b", false},
		{"abc", false},
		{"ba", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := d.Run([]byte(tt.input)); got != tt.want {
				t.Errorf("Run(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDFA_RunResidualEpsilon(t *testing.T) {
	// (ab)+ after collapse: the final state keeps an epsilon back to the
	// start. Mid-input the executor takes it eagerly; at end of input it
	// must NOT need it because state 2 is final.
	d := NewDFA([]DFAState{
		dfaRow(map[byte]StateID{'a': 1}),
		dfaRow(map[byte]StateID{'b': 2}),
		dfaRow(map[byte]StateID{0: 0}),
	}, 0, 2)

	tests := []struct {
		input string
		want  bool
	}{
		{"ab", true},
		{"abab", true},
		{"ababab", true},
		{"", false},
		{"a", false},
		{"aba", false},
		{"abb", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := d.Run([]byte(tt.input)); got != tt.want {
				t.Errorf("Run(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDFA_RunEpsilonChainAtEndOfInput(t *testing.T) {
	// 0 -a-> 1 -ε-> 2 -ε-> 3(final): the chain is chased after the input
	// is exhausted.
	d := NewDFA([]DFAState{
		dfaRow(map[byte]StateID{'a': 1}),
		dfaRow(map[byte]StateID{0: 2}),
		dfaRow(map[byte]StateID{0: 3}),
		dfaRow(nil),
	}, 0, 3)

	if !d.Run([]byte("a")) {
		t.Error("Run(a) = false, want true")
	}
	// A broken chain rejects.
	broken := NewDFA([]DFAState{
		dfaRow(map[byte]StateID{'a': 1}),
		dfaRow(map[byte]StateID{0: 2}),
		dfaRow(nil),
		dfaRow(nil),
	}, 0, 3)
	if broken.Run([]byte("a")) {
		t.Error("Run(a) over broken chain = true, want false")
	}
}

func TestDFA_NulByteNeverMatches(t *testing.T) {
	// Slot 0 is the epsilon slot, so a NUL input byte can never take an
	// ordinary transition.
	d := NewDFA([]DFAState{
		dfaRow(map[byte]StateID{'a': 1}),
		dfaRow(nil),
	}, 0, 1)
	if d.Run([]byte{0}) {
		t.Error("Run(NUL) = true, want false")
	}
}
