// Package sparse provides a sparse set over small integer universes.
//
// A sparse set supports O(1) insertion and membership testing and O(1) reset
// while keeping a dense list of its members for fast iteration. The regex
// runtime uses it to track the frontier of live automaton states during
// subset-construction execution, where the universe (the state count) is known
// at construction time.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// The sparse array maps a value to its position in the dense array; a value is
// a member iff that position is in range and the dense entry points back at
// the value. Neither array is ever zeroed, which is what makes Clear O(1).
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a set that can hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. It reports whether the value was newly added;
// inserting an existing member is a no-op returning false.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Clear empties the set without releasing memory.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Values returns the members in insertion order. The slice aliases internal
// storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
