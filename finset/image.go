package finset

import (
	"github.com/mazzegi/finset/slicesx"
)

// Image returns the set of f-images of the members of s under the equality
// F. Images that coincide are collapsed.
//
// f must map E-equal arguments to F-equal results. Otherwise the result
// depends on which of several equal elements s happens to hold.
//
// The result parameters come first, so a caller names them and lets the
// source be inferred:
//
//	lengths := finset.Image[int, finset.Std[int]](words, func(w string) int { return len(w) })
func Image[U any, F Eq[U], T any, E Eq[T]](s Finset[T, E], f func(T) U) Finset[U, F] {
	return FromSlice[U, F](slicesx.Map(s.items, f))
}

// Map is Image for a comparable result type. f must map E-equal arguments
// to equal results.
func Map[T any, E Eq[T], U comparable](s Finset[T, E], f func(T) U) Set[U] {
	return wrap[U, Std[U]](slicesx.Dedup(slicesx.Map(s.items, f)))
}
