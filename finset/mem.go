package finset

import (
	"github.com/mazzegi/finset/slicesx"
)

func (s Finset[T, E]) eq() func(a, b T) bool {
	return eqOf[T, E]()
}

// Contains reports whether a is a member of s.
func (s Finset[T, E]) Contains(a T) bool {
	return slicesx.ContainsFunc(s.items, a, s.eq())
}

// Subset reports whether every member of s is a member of t.
func (s Finset[T, E]) Subset(t Finset[T, E]) bool {
	for _, a := range s.items {
		if !t.Contains(a) {
			return false
		}
	}
	return true
}

// Equal reports whether s and t have the same members.
func (s Finset[T, E]) Equal(t Finset[T, E]) bool {
	return s.Subset(t) && t.Subset(s)
}

func (s Finset[T, E]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s Finset[T, E]) Card() int {
	return len(s.items)
}
