package mathx

import (
	"golang.org/x/exp/constraints"
)

func Abs[T constraints.Signed](t T) T {
	if t < 0 {
		return -t
	}
	return t
}

func Min[T constraints.Ordered](v1 T, v2 T) T {
	if v1 < v2 {
		return v1
	}
	return v2
}

func Max[T constraints.Ordered](v1 T, v2 T) T {
	if v1 > v2 {
		return v1
	}
	return v2
}
