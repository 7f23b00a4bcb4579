package expr

import (
	"fmt"
	"strings"

	"github.com/mazzegi/finset/finset"
)

type Kind int

const (
	KindNone Kind = iota
	KindSet
	KindBool
	KindInt
)

// Result is the value of a statement: a set, a truth value or a number. The
// zero Result has KindNone and stands for a failed statement.
type Result struct {
	Kind Kind
	Set  finset.Set[int]
	Bool bool
	Int  int
}

// String renders sets in their sorted normal form.
func (r Result) String() string {
	switch r.Kind {
	case KindBool:
		return fmt.Sprintf("%t", r.Bool)
	case KindInt:
		return fmt.Sprintf("%d", r.Int)
	case KindNone:
		return "<none>"
	default:
		vs := finset.Sorted(r.Set)
		sl := make([]string, len(vs))
		for i, v := range vs {
			sl[i] = fmt.Sprintf("%d", v)
		}
		return "{" + strings.Join(sl, ", ") + "}"
	}
}

// Scope binds names to sets.
type Scope map[string]finset.Set[int]

// ScopeOf builds a scope from raw integer lists.
func ScopeOf(sets map[string][]int) Scope {
	sc := Scope{}
	for name, ns := range sets {
		sc[name] = finset.Of(ns...)
	}
	return sc
}
