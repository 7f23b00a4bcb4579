package slicesx

import (
	"github.com/mazzegi/finset/set"
)

// Dedup returns the elements of ts with later duplicates dropped. The first
// occurrence of every value keeps its position relative to the others.
func Dedup[S ~[]E, E comparable](ts S) []E {
	seen := set.New[E]()
	dts := make([]E, 0, len(ts))
	for _, t := range ts {
		if seen.Add(t) {
			dts = append(dts, t)
		}
	}
	return dts
}

// DedupFunc is Dedup for an equality oracle.
func DedupFunc[S ~[]E, E any](ts S, eq func(t1, t2 E) bool) []E {
	dts := make([]E, 0, len(ts))
	for _, te := range ts {
		if !ContainsFunc(dts, te, eq) {
			dts = append(dts, te)
		}
	}
	return dts
}

// IsNodupFunc reports whether no element of ts occurs twice.
func IsNodupFunc[S ~[]E, E any](ts S, eq func(t1, t2 E) bool) bool {
	_, _, dup := firstDuplicate(ts, eq)
	return !dup
}

// DuplicateFunc returns the indexes i < j of the first pair of equal
// elements, if any.
func DuplicateFunc[S ~[]E, E any](ts S, eq func(t1, t2 E) bool) (int, int, bool) {
	return firstDuplicate(ts, eq)
}

func firstDuplicate[S ~[]E, E any](ts S, eq func(t1, t2 E) bool) (int, int, bool) {
	for j := 1; j < len(ts); j++ {
		for i := 0; i < j; i++ {
			if eq(ts[i], ts[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
