package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// Scratch is an automaton under construction.
//
// States are keyed by identifier rather than stored densely, because the
// parser composes many small automata whose identifier ranges interleave.
// A Scratch always has exactly one declared initial and one declared final
// state, both present in the state table; every transition destination refers
// to a present state.
//
// The composition operations (Chain, Merge) take ownership of their right
// operand and require the two identifier spaces to be disjoint. They do not
// renumber: the caller renumbers with RenameAll first when copies are
// involved. This keeps composition linear in the operand size.
type Scratch struct {
	states  map[StateID]*State
	initial StateID
	final   StateID
}

// NewScratch creates a scratch automaton from the given state table, inserting
// empty entries for initial and final if the table lacks them. The map is
// owned by the returned Scratch. A nil map is allowed.
func NewScratch(states map[StateID]*State, initial, final StateID) *Scratch {
	if states == nil {
		states = make(map[StateID]*State, 2)
	}
	s := &Scratch{states: states, initial: initial, final: final}
	if _, ok := s.states[initial]; !ok {
		s.states[initial] = new(State)
	}
	if _, ok := s.states[final]; !ok {
		s.states[final] = new(State)
	}
	return s
}

// Initial returns the declared initial state.
func (s *Scratch) Initial() StateID { return s.initial }

// Final returns the declared final state.
func (s *Scratch) Final() StateID { return s.final }

// Len returns the number of states.
func (s *Scratch) Len() int { return len(s.states) }

// AddEdge appends a transition on label from one state to another, creating
// the source state if it does not exist yet. Label 0 adds an epsilon move.
func (s *Scratch) AddEdge(label byte, from, to StateID) {
	st, ok := s.states[from]
	if !ok {
		st = new(State)
		s.states[from] = st
	}
	st[label].Append(to)
}

// ClearEdges removes every transition on label leaving from. Used to carve
// negated character classes out of a full edge fan.
func (s *Scratch) ClearEdges(label byte, from StateID) {
	if st, ok := s.states[from]; ok {
		st[label].Clear()
	}
}

// MergeState inserts a state under the given identifier. If the identifier is
// already taken, the incoming per-label lists are concatenated after the
// existing ones, preserving insertion order.
func (s *Scratch) MergeState(id StateID, edges *State) {
	existing, ok := s.states[id]
	if !ok {
		s.states[id] = edges
		return
	}
	for label := range edges {
		existing[label].appendAll(&edges[label])
	}
}

// RenameState renames old to new: old's edges are re-inserted under new
// (merging if new already exists), every transition referencing old is
// rewritten, and the initial/final declarations are adjusted.
func (s *Scratch) RenameState(old, new StateID) {
	if st, ok := s.states[old]; ok {
		delete(s.states, old)
		s.MergeState(new, st)
	}
	for _, st := range s.states {
		st.renameEdges(old, new)
	}
	if s.initial == old {
		s.initial = new
	}
	if s.final == old {
		s.final = new
	}
}

// RenameAll rewrites every state identifier to a fresh one drawn from the
// counter, in identifier order. Used to make two scratch automata disjoint
// before composing them.
func (s *Scratch) RenameAll(next *StateID) {
	ids := s.sortedIDs()
	mapping := make(map[StateID]StateID, len(ids))
	for _, id := range ids {
		mapping[id] = *next
		*next++
	}
	renamed := make(map[StateID]*State, len(ids))
	for _, id := range ids {
		st := s.states[id]
		for label := range st {
			list := &st[label]
			for i := 0; i < list.Len(); i++ {
				list.set(i, mapping[list.At(i)])
			}
		}
		renamed[mapping[id]] = st
	}
	s.states = renamed
	s.initial = mapping[s.initial]
	s.final = mapping[s.final]
}

// Clone returns a deep copy.
func (s *Scratch) Clone() *Scratch {
	states := make(map[StateID]*State, len(s.states))
	for id, st := range s.states {
		states[id] = st.clone()
	}
	return &Scratch{states: states, initial: s.initial, final: s.final}
}

// Chain concatenates other onto s: s's final state is renamed to other's
// initial (fusing the two), other's states are absorbed, and other's final
// becomes the final of the whole. The identifier spaces must be disjoint;
// other must not be used afterwards.
func (s *Scratch) Chain(other *Scratch) {
	s.RenameState(s.final, other.initial)
	for id, st := range other.states {
		s.MergeState(id, st)
	}
	s.final = other.final
}

// Merge turns s into the alternation of s and other. The caller supplies the
// fresh initial and final identifiers; epsilon moves fan out from initial to
// both old initials and fan in from both old finals to final. The identifier
// spaces must be disjoint; other must not be used afterwards.
func (s *Scratch) Merge(other *Scratch, initial, final StateID) {
	for id, st := range other.states {
		s.MergeState(id, st)
	}
	s.MergeState(initial, MakeState(map[byte][]StateID{
		0: {s.initial, other.initial},
	}))
	s.MergeState(final, new(State))
	s.AddEdge(0, s.final, final)
	s.AddEdge(0, other.final, final)
	s.initial = initial
	s.final = final
}

// IsDeterministic reports whether the automaton is structurally deterministic:
// at most one destination per non-epsilon label in every state, and epsilon
// moves only in states that have no other outgoing edge (never more than one).
// The check is purely structural; it does not subset-construct.
func (s *Scratch) IsDeterministic() bool {
	for _, st := range s.states {
		if st[0].Len() > 1 {
			return false
		}
		hasEpsilon := st[0].Len() > 0
		for label := 1; label < 256; label++ {
			if st[label].Len() > 1 || (st[label].Len() > 0 && hasEpsilon) {
				return false
			}
		}
	}
	return true
}

// hasOnlyOneEpsilonMove reports whether the state's entire edge set is a
// single epsilon move.
func (s *Scratch) hasOnlyOneEpsilonMove(id StateID) bool {
	st := s.states[id]
	if st[0].Len() != 1 {
		return false
	}
	for label := 1; label < 256; label++ {
		if st[label].Len() > 0 {
			return false
		}
	}
	return true
}

// collapseNextEpsilonMove finds one state whose only edge is a single epsilon
// move and folds its destination into it, or clears a trivial epsilon
// self-loop. The final state is never folded away. Reports whether a collapse
// happened.
func (s *Scratch) collapseNextEpsilonMove() bool {
	for _, id := range s.sortedIDs() {
		if !s.hasOnlyOneEpsilonMove(id) {
			continue
		}
		dest := s.states[id][0].At(0)
		if id == dest || id != s.final {
			s.states[id][0].Clear()
			if dest != id {
				s.RenameState(dest, id)
			}
			return true
		}
	}
	return false
}

// CollapseEpsilonMoves repeatedly folds epsilon-only states until none remain.
// Each collapse removes one such state, so the loop terminates.
func (s *Scratch) CollapseEpsilonMoves() {
	for s.collapseNextEpsilonMove() {
	}
}

// Finalize consumes the scratch automaton and converts it into a runnable
// one: epsilon moves are collapsed, and the result is a DFA if the collapsed
// automaton is deterministic or an NFA otherwise. The Scratch must not be
// used afterwards.
func (s *Scratch) Finalize() Automaton {
	s.CollapseEpsilonMoves()
	if s.IsDeterministic() {
		return s.toDFA()
	}
	return s.toNFA()
}

// FinalizeNFA is Finalize with the determinism dispatch disabled: the result
// is always an NFA. Acceptance is identical to Finalize's; the NFA executor
// is merely slower on deterministic automata. Exists so tests can exercise
// the subset-construction path on every pattern.
func (s *Scratch) FinalizeNFA() Automaton {
	s.CollapseEpsilonMoves()
	return s.toNFA()
}

// renumber maps each live identifier, in identifier order, to a dense index.
func (s *Scratch) renumber() ([]StateID, map[StateID]StateID) {
	ids := s.sortedIDs()
	index := make(map[StateID]StateID, len(ids))
	for i, id := range ids {
		index[id] = StateID(i)
	}
	return ids, index
}

// toDFA converts to a dense deterministic table. IsDeterministic must hold.
func (s *Scratch) toDFA() *DFA {
	ids, index := s.renumber()
	states := make([]DFAState, len(ids))
	for i, id := range ids {
		src := s.states[id]
		for label := 0; label < 256; label++ {
			if src[label].Len() == 0 {
				states[i][label] = NoTransition
			} else {
				states[i][label] = index[src[label].At(0)]
			}
		}
	}
	return NewDFA(states, index[s.initial], index[s.final])
}

// toNFA converts to the dense non-deterministic form.
func (s *Scratch) toNFA() *NFA {
	ids, index := s.renumber()
	states := make([]State, len(ids))
	for i, id := range ids {
		src := s.states[id]
		for label := 0; label < 256; label++ {
			list := &src[label]
			for j := 0; j < list.Len(); j++ {
				states[i][label].Append(index[list.At(j)])
			}
		}
	}
	return NewNFA(states, index[s.initial], index[s.final])
}

func (s *Scratch) sortedIDs() []StateID {
	ids := make([]StateID, 0, len(s.states))
	for id := range s.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// String renders the automaton for debugging, one state per line.
func (s *Scratch) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scratch{states: %d, initial: %d, final: %d}\n", len(s.states), s.initial, s.final)
	for _, id := range s.sortedIDs() {
		fmt.Fprintf(&b, "  %d:", id)
		st := s.states[id]
		for label := 0; label < 256; label++ {
			list := &st[label]
			for i := 0; i < list.Len(); i++ {
				if label == 0 {
					fmt.Fprintf(&b, " ε->%d", list.At(i))
				} else {
					fmt.Fprintf(&b, " %q->%d", byte(label), list.At(i))
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
