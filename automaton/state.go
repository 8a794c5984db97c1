package automaton

// EdgeList is an ordered multiset of destination states for one byte label.
//
// Almost every list holds zero or one destination, so the first entry is
// stored inline and a slice is only allocated for longer lists. Insertion
// order is preserved; duplicates are allowed.
type EdgeList struct {
	head StateID
	tail []StateID
	size int32
}

// Len returns the number of destinations.
func (l *EdgeList) Len() int {
	return int(l.size)
}

// At returns the i-th destination in insertion order.
func (l *EdgeList) At(i int) StateID {
	if i == 0 {
		return l.head
	}
	return l.tail[i-1]
}

// Append adds a destination at the end of the list.
func (l *EdgeList) Append(id StateID) {
	if l.size == 0 {
		l.head = id
	} else {
		l.tail = append(l.tail, id)
	}
	l.size++
}

// Clear removes all destinations.
func (l *EdgeList) Clear() {
	l.tail = nil
	l.size = 0
}

func (l *EdgeList) set(i int, id StateID) {
	if i == 0 {
		l.head = id
	} else {
		l.tail[i-1] = id
	}
}

// rename rewrites every occurrence of old to new.
func (l *EdgeList) rename(old, new StateID) {
	for i := 0; i < l.Len(); i++ {
		if l.At(i) == old {
			l.set(i, new)
		}
	}
}

func (l *EdgeList) clone() EdgeList {
	c := EdgeList{head: l.head, size: l.size}
	if len(l.tail) > 0 {
		c.tail = make([]StateID, len(l.tail))
		copy(c.tail, l.tail)
	}
	return c
}

// appendAll concatenates other's destinations after l's, preserving order.
func (l *EdgeList) appendAll(other *EdgeList) {
	for i := 0; i < other.Len(); i++ {
		l.Append(other.At(i))
	}
}

// State is the edge table of a single state: one EdgeList per byte label.
// The list at label 0 holds the state's epsilon moves.
type State [256]EdgeList

// MakeState builds a State from a label-to-destinations map, sparing callers
// the full 256-entry table. Mostly a test convenience.
//
//	// A state that steps to 12 on 'a' and to 4 or 56 on 'f'.
//	MakeState(map[byte][]StateID{
//		'a': {12},
//		'f': {4, 56},
//	})
func MakeState(edges map[byte][]StateID) *State {
	s := new(State)
	for label, dests := range edges {
		for _, d := range dests {
			s[label].Append(d)
		}
	}
	return s
}

func (s *State) clone() *State {
	c := new(State)
	for label := range s {
		c[label] = s[label].clone()
	}
	return c
}

// renameEdges rewrites every transition to old so it points at new.
func (s *State) renameEdges(old, new StateID) {
	for label := range s {
		s[label].rename(old, new)
	}
}
