// Package automaton implements the finite-automaton toolchain behind the rex
// engine: a mutable scratch representation assembled by the parser, and the
// two immutable runtimes it finalizes into.
//
// The alphabet is raw bytes. Label 0 is reserved for epsilon moves (state
// transitions that consume no input), which keeps every per-state structure a
// flat 256-wide table with no extra tagging; a consequence is that no pattern
// ever matches a literal NUL byte.
//
// The lifecycle is strictly one-way: the parser builds and composes Scratch
// values, Finalize consumes the Scratch and produces either a DFA (dense
// deterministic table) or an NFA (sparse table run by subset construction),
// and the result never changes again. A finalized automaton is safe to share
// across goroutines without synchronization.
package automaton

// StateID identifies an automaton state.
//
// During construction identifiers come from a monotonically increasing
// counter owned by the parser and may be arbitrary; finalization remaps them
// to contiguous indices starting at 0. Negative values never name a state; the
// DFA uses them as the "no transition" sentinel.
type StateID int32

// NoTransition marks an absent edge in a DFA transition row.
const NoTransition StateID = -1

// Automaton is a compiled pattern ready for execution.
type Automaton interface {
	// Run reports whether the automaton accepts input as a whole string.
	Run(input []byte) bool
}
