package finset

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Values returns a witness of s: its members in some order, each once.
func (s Finset[T, E]) Values() []T {
	return slices.Clone(s.items)
}

func (s Finset[T, E]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

func (s Finset[T, E]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, a := range s.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", a)
	}
	sb.WriteString("}")
	return sb.String()
}

// Sorted returns the members of s in ascending order. This is the normal form
// of s: equal sets have identical sorted forms.
func Sorted[T constraints.Ordered](s Set[T]) []T {
	ts := s.Values()
	sort.Slice(ts, func(i, j int) bool {
		return ts[i] < ts[j]
	})
	return ts
}
