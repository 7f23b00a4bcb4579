package slicesx

func FindFunc[S ~[]T, T any](ts S, fnc func(t T) bool) (T, bool) {
	for _, t := range ts {
		if fnc(t) {
			return t, true
		}
	}
	var t T
	return t, false
}

func IndexFunc[S ~[]T, T any](ts S, t T, eq func(t1, t2 T) bool) int {
	for i, e := range ts {
		if eq(e, t) {
			return i
		}
	}
	return -1
}

func ContainsFunc[S ~[]T, T any](ts S, t T, eq func(t1, t2 T) bool) bool {
	return IndexFunc(ts, t, eq) >= 0
}
