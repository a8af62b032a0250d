// Package kindset provides an insertion-ordered set keyed by nominal kind
// identity. It backs the derivation of state and event kind sets from a
// transition table: duplicates collapse to their first occurrence, and
// iteration always reflects the order in which kinds were first seen.
package kindset

import "iter"

// Set is an insertion-ordered set of kinds. The zero value is not usable;
// call New. Two kinds are equal only if they denote the exact same named
// kind (nominal equality of the underlying string identity).
type Set[K ~string] struct {
	index map[K]int
	order []K
}

// New creates an empty Set, optionally seeded with the given kinds in order.
func New[K ~string](kinds ...K) *Set[K] {
	s := &Set[K]{
		index: make(map[K]int),
	}

	s.Add(kinds...)

	return s
}

// Add inserts kinds into the set. A kind already present keeps its original
// position; new kinds are appended in the order given.
func (s *Set[K]) Add(kinds ...K) {
	for _, k := range kinds {
		if _, seen := s.index[k]; seen {
			continue
		}

		s.index[k] = len(s.order)
		s.order = append(s.order, k)
	}
}

// Contains reports whether the kind is a member of the set.
func (s *Set[K]) Contains(kind K) bool {
	_, ok := s.index[kind]

	return ok
}

// IndexOf returns the first-seen position of the kind, or -1 if absent.
func (s *Set[K]) IndexOf(kind K) int {
	i, ok := s.index[kind]
	if !ok {
		return -1
	}

	return i
}

// Size returns the number of distinct kinds in the set.
func (s *Set[K]) Size() int {
	return len(s.order)
}

// Values returns the kinds in first-seen order. The returned slice is a copy;
// mutating it does not affect the set.
func (s *Set[K]) Values() []K {
	out := make([]K, len(s.order))
	copy(out, s.order)

	return out
}

// Seq returns an iterator over (position, kind) pairs in first-seen order,
// usable with range-over-func.
func (s *Set[K]) Seq() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		for i, k := range s.order {
			if !yield(i, k) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the set with the same order.
func (s *Set[K]) Clone() *Set[K] {
	out := New[K]()
	out.Add(s.order...)

	return out
}
