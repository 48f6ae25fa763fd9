package automata

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var _ IntSet = &StateSet{}

// StateSet is a mutable set of state positions. Its hash is cached until the
// next change.
type StateSet struct {
	inner       *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(capacity int) *StateSet {
	return &StateSet{
		inner: bitset.New(uint(capacity)),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashInts(s.GetArray())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok || isNilIntSet(is) {
		return false
	}
	return s.Hash() == is.Hash() && slices.Equal(s.GetArray(), is.GetArray())
}

// GetArray returns the positions in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.inner.Count())
	for i, ok := s.inner.NextSet(0); ok; i, ok = s.inner.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

func (s *StateSet) Size() int {
	return int(s.inner.Count())
}

func (s *StateSet) Contains(state int) bool {
	return s.inner.Test(uint(state))
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

func (s *StateSet) Add(state int) {
	if s.inner.Test(uint(state)) {
		return
	}
	s.inner.Set(uint(state))
	s.keyChanged()
}

func (s *StateSet) Remove(state int) {
	if !s.inner.Test(uint(state)) {
		return
	}
	s.inner.Clear(uint(state))
	s.keyChanged()
}

// Freeze snapshots the set so it can be stored as a map key.
func (s *StateSet) Freeze() *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash())
}
