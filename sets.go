package automata

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Set is an unordered collection of distinct elements. Union, Intersection
// and Difference never modify their operands.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T cmp.Ordered](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

func (s Set[T]) Add(items ...T) {
	for _, v := range items {
		s[v] = struct{}{}
	}
}

func (s Set[T]) Remove(items ...T) {
	for _, v := range items {
		delete(s, v)
	}
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) Clone() Set[T] {
	c := make(Set[T], len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}

// Union returns the elements of s and o.
func (s Set[T]) Union(o Set[T]) Set[T] {
	r := s.Clone()
	for v := range o {
		r[v] = struct{}{}
	}
	return r
}

// Intersection returns the elements of s also in o.
func (s Set[T]) Intersection(o Set[T]) Set[T] {
	r := make(Set[T])
	for v := range s {
		if o.Contains(v) {
			r[v] = struct{}{}
		}
	}
	return r
}

// Difference returns the elements of s that are not in o.
func (s Set[T]) Difference(o Set[T]) Set[T] {
	r := make(Set[T])
	for v := range s {
		if !o.Contains(v) {
			r[v] = struct{}{}
		}
	}
	return r
}

// Equal reports whether s and o hold the same elements.
func (s Set[T]) Equal(o Set[T]) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Sorted returns the elements in ascending order.
func (s Set[T]) Sorted() []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

func (s Set[T]) String() string {
	parts := make([]string, 0, len(s))
	for _, v := range s.Sorted() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
