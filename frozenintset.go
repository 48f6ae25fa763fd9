package automata

import "slices"

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable, sorted set of state positions.
type FrozenIntSet struct {
	values   []int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64) *FrozenIntSet {
	return &FrozenIntSet{values: values, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if f == nil || isNilIntSet(is) {
		return f == nil && isNilIntSet(is)
	}
	return f.Hash() == is.Hash() && slices.Equal(f.values, is.GetArray())
}

func isNilIntSet(is IntSet) bool {
	switch v := is.(type) {
	case *FrozenIntSet:
		return v == nil
	case *StateSet:
		return v == nil
	}
	return is == nil
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}
