package finset

import (
	"github.com/mazzegi/finset/slicesx"
)

// Insert returns s with a added. If a is already a member, s is returned.
func (s Finset[T, E]) Insert(a T) Finset[T, E] {
	if s.Contains(a) {
		return s
	}
	return wrap[T, E](append(s.items, a))
}

// Erase returns s without a. If a is not a member, s is returned.
func (s Finset[T, E]) Erase(a T) Finset[T, E] {
	if !s.Contains(a) {
		return s
	}
	return wrap[T, E](slicesx.RemoveFunc(s.items, a, s.eq()))
}

func (s Finset[T, E]) Union(t Finset[T, E]) Finset[T, E] {
	switch {
	case t.IsEmpty():
		return s
	case s.IsEmpty():
		return t
	}
	return wrap[T, E](slicesx.UnionFunc(s.items, t.items, s.eq()))
}

func (s Finset[T, E]) Intersection(t Finset[T, E]) Finset[T, E] {
	return wrap[T, E](slicesx.IntersectFunc(s.items, t.items, s.eq()))
}

// Difference returns the members of s which are not members of t.
func (s Finset[T, E]) Difference(t Finset[T, E]) Finset[T, E] {
	return wrap[T, E](slicesx.DifferenceFunc(s.items, t.items, s.eq()))
}

// Filter returns the members of s for which keep is true. keep must agree
// on E-equal arguments, as must the predicates of Exists and ForAll.
func (s Finset[T, E]) Filter(keep func(T) bool) Finset[T, E] {
	return wrap[T, E](slicesx.Filter(s.items, keep))
}

// Exists reports whether pred holds for some member of s.
func (s Finset[T, E]) Exists(pred func(T) bool) bool {
	_, ok := slicesx.FindFunc(s.items, pred)
	return ok
}

// ForAll reports whether pred holds for every member of s.
func (s Finset[T, E]) ForAll(pred func(T) bool) bool {
	return !s.Exists(func(t T) bool {
		return !pred(t)
	})
}
