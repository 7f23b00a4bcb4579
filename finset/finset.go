// Package finset provides an immutable finite set over an arbitrary element
// type with an equality capability.
//
// A Finset is backed by a duplicate-free witness slice. Two sets are equal
// when they have the same members, no matter in which order they were built,
// and every operation yields the same set for any reordering of the witness
// slices of its inputs.
package finset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mazzegi/finset/slicesx"
)

var ErrDuplicate = errors.New("duplicate element")

// Finset is a finite set of T under the equality E. The zero value is the
// empty set. A Finset is never modified after construction.
type Finset[T any, E Eq[T]] struct {
	items []T
}

// Set is a finite set of comparable values.
type Set[T comparable] = Finset[T, Std[T]]

// wrap takes ownership of a duplicate-free slice. The slice is clipped so
// appends made by later operations never write into it.
func wrap[T any, E Eq[T]](ts []T) Finset[T, E] {
	return Finset[T, E]{items: slices.Clip(ts)}
}

func Empty[T any, E Eq[T]]() Finset[T, E] {
	return Finset[T, E]{}
}

func Singleton[T any, E Eq[T]](a T) Finset[T, E] {
	return wrap[T, E]([]T{a})
}

// FromSlice returns the set of the elements of ts.
func FromSlice[T any, E Eq[T]](ts []T) Finset[T, E] {
	return wrap[T, E](slicesx.DedupFunc(ts, eqOf[T, E]()))
}

// FromNodup wraps a slice that is already free of duplicates. It fails with
// ErrDuplicate if the slice is not.
func FromNodup[T any, E Eq[T]](ts []T) (Finset[T, E], error) {
	if i, j, dup := slicesx.DuplicateFunc(ts, eqOf[T, E]()); dup {
		return Finset[T, E]{}, fmt.Errorf("%w: %v at %d and %d", ErrDuplicate, ts[j], i, j)
	}
	return wrap[T, E](slices.Clone(ts)), nil
}

// Of returns the set of the passed comparable values.
func Of[T comparable](ts ...T) Set[T] {
	return wrap[T, Std[T]](slicesx.Dedup(ts))
}
