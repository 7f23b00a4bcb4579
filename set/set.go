package set

func New[T comparable](ts ...T) Set[T] {
	s := make(Set[T], len(ts))
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

// Set is a hash index over comparable values. It is mutable and meant as a
// scratch structure for dedup and lookup, not as a value type.
type Set[T comparable] map[T]struct{}

func (s Set[T]) Insert(t T) {
	s[t] = struct{}{}
}

// Add inserts t and reports whether it was not present before.
func (s Set[T]) Add(t T) bool {
	if _, ok := s[t]; ok {
		return false
	}
	s[t] = struct{}{}
	return true
}

func (s Set[T]) Delete(t T) {
	delete(s, t)
}

func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}
