package slicesx

func Filter[S ~[]E, E any](ts S, accept func(t E) bool) []E {
	fts := make([]E, 0, len(ts))
	for _, t := range ts {
		if accept(t) {
			fts = append(fts, t)
		}
	}
	return fts
}

// RemoveFunc returns ts without the elements equal to t.
func RemoveFunc[S ~[]E, E any](ts S, t E, eq func(t1, t2 E) bool) []E {
	return Filter(ts, func(e E) bool {
		return !eq(e, t)
	})
}
