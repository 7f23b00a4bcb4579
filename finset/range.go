package finset

import (
	"golang.org/x/exp/constraints"

	"github.com/mazzegi/finset/mathx"
)

// Range returns {0, 1, ..., n-1}. It is empty for n <= 0.
func Range[N constraints.Integer](n N) Set[N] {
	return wrap[N, Std[N]](mathx.Upto(n).Values())
}
