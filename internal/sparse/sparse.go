// Package sparse provides a sparse set over small uint32 universes.
//
// The matcher uses it to deduplicate automaton states within one input
// position: insertion, membership, and clearing are all O(1), and clearing
// does not touch the backing arrays.
package sparse

// Set is a set of uint32 values below a fixed capacity.
// The sparse array maps values to indices in the dense array; a value is a
// member iff its slot points at a dense entry holding it back. Stale slots
// from before a Clear are therefore harmless.
type Set struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // member values, insertion order
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set.
// It reports whether the value was newly inserted; inserting an existing
// value is a no-op returning false. Values at or above capacity are rejected.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	if value >= uint32(len(s.sparse)) {
		return false
	}

	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether the value is in the set
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Clear removes all elements in O(1) time
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the member values in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
