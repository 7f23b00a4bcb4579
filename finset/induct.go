package finset

// Decompose splits a non-empty s into a member a and the set rest, such that
// a is not in rest and s equals rest.Insert(a). It returns false for the
// empty set.
func (s Finset[T, E]) Decompose() (a T, rest Finset[T, E], ok bool) {
	n := len(s.items)
	if n == 0 {
		return a, rest, false
	}
	return s.items[n-1], wrap[T, E](s.items[:n-1:n-1]), true
}

// Induct is the recursion principle of Finset: every set is either empty or
// the insertion of a fresh element into a strictly smaller set.
//
// Induct computes the value for s by starting with base for the empty set and
// calling step once per member. step receives the inserted element a, the set
// rest it is inserted into (a is never a member of rest) and the value
// computed for rest.
func Induct[T any, E Eq[T], P any](s Finset[T, E], base P, step func(a T, rest Finset[T, E], acc P) P) P {
	acc := base
	for i, a := range s.items {
		acc = step(a, wrap[T, E](s.items[:i:i]), acc)
	}
	return acc
}

// Fold folds f over the members of s. The visiting order is unspecified, so
// the result is only meaningful when f does not depend on it.
func Fold[T any, E Eq[T], A any](s Finset[T, E], init A, f func(acc A, a T) A) A {
	return Induct(s, init, func(a T, _ Finset[T, E], acc A) A {
		return f(acc, a)
	})
}
