package slicesx

// The functions in this file expect duplicate-free inputs and keep the
// result duplicate-free.

// UnionFunc returns ts1 followed by the elements of ts2 missing from ts1.
func UnionFunc[S ~[]E, E any](ts1, ts2 S, eq func(t1, t2 E) bool) []E {
	us := make([]E, 0, len(ts1)+len(ts2))
	us = append(us, ts1...)
	for _, t := range ts2 {
		if !ContainsFunc(ts1, t, eq) {
			us = append(us, t)
		}
	}
	return us
}

// IntersectFunc returns the elements of ts1 that also occur in ts2, in ts1 order.
func IntersectFunc[S ~[]E, E any](ts1, ts2 S, eq func(t1, t2 E) bool) []E {
	return Filter(ts1, func(t E) bool {
		return ContainsFunc(ts2, t, eq)
	})
}

// DifferenceFunc returns the elements of ts1 that do not occur in ts2.
func DifferenceFunc[S ~[]E, E any](ts1, ts2 S, eq func(t1, t2 E) bool) []E {
	return Filter(ts1, func(t E) bool {
		return !ContainsFunc(ts2, t, eq)
	})
}
