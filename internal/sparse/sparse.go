// Package sparse implements a sparse set over small unsigned integers.
//
// The engine uses sparse sets wherever it tracks automaton states: the
// matcher's active-state generations, closure computation during epsilon
// elimination, and visited tracking for graph walks. All operations are
// O(1) and Clear does not touch the backing arrays, so one set can be
// reused across the characters of an input without reallocation.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// It keeps a dense slice of members (for iteration in insertion order)
// and a sparse index mapping each value to its dense slot (for
// membership tests). Neither slice is zeroed on Clear; validity of a
// sparse entry is established by checking it back against the dense
// slice.
type Set struct {
	dense  []uint32
	sparse []uint32
}

// NewSet returns an empty set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		dense:  make([]uint32, 0, capacity),
		sparse: make([]uint32, capacity),
	}
}

// Insert adds v to the set. Inserting a member again is a no-op.
// v must be below the capacity the set was created with.
func (s *Set) Insert(v uint32) {
	if s.Contains(v) {
		return
	}
	s.sparse[v] = uint32(len(s.dense))
	s.dense = append(s.dense, v)
}

// Contains reports whether v is a member. Values at or above the
// capacity are never members.
func (s *Set) Contains(v uint32) bool {
	if v >= uint32(len(s.sparse)) {
		return false
	}
	i := s.sparse[v]
	return i < uint32(len(s.dense)) && s.dense[i] == v
}

// Clear empties the set in O(1) without releasing storage.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order. The slice aliases the
// set's storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
