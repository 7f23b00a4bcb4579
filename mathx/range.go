package mathx

import "golang.org/x/exp/constraints"

// NewInterval returns the half-open interval [lo, hi). An interval with
// hi <= lo is empty.
func NewInterval[T constraints.Integer](lo, hi T) Interval[T] {
	return Interval[T]{
		Lo: lo,
		Hi: hi,
	}
}

// Upto returns [0, n).
func Upto[T constraints.Integer](n T) Interval[T] {
	return NewInterval(0, n)
}

type Interval[T constraints.Integer] struct {
	Lo T
	Hi T
}

func (r Interval[T]) Contains(t T) bool {
	return t >= r.Lo && t < r.Hi
}

func (r Interval[T]) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	// two's complement difference; exact for every integer type since Hi > Lo
	return int(uint64(r.Hi) - uint64(r.Lo))
}

// Values returns the members of r in ascending order.
func (r Interval[T]) Values() []T {
	vs := make([]T, 0, r.Len())
	for t := r.Lo; t < r.Hi; t++ {
		vs = append(vs, t)
	}
	return vs
}
