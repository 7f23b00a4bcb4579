package slicesx

// IsPermFunc reports whether ts2 is a reordering of ts1, counting
// multiplicities under eq.
func IsPermFunc[S ~[]E, E any](ts1, ts2 S, eq func(t1, t2 E) bool) bool {
	if len(ts1) != len(ts2) {
		return false
	}
	used := make([]bool, len(ts2))
outer:
	for _, t := range ts1 {
		for j, u := range ts2 {
			if !used[j] && eq(t, u) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
