package finset

// Eq is the equality capability of an element type. Equal must be an
// equivalence relation.
//
// The capability is a type parameter of Finset, so implementations are
// usually zero-size types:
//
//	type Caseless struct{}
//
//	func (Caseless) Equal(a, b string) bool { return strings.EqualFold(a, b) }
type Eq[T any] interface {
	Equal(a, b T) bool
}

// Std compares with ==. This is only an equivalence relation if == is
// reflexive on every value of T, which excludes NaN floats.
type Std[T comparable] struct{}

func (Std[T]) Equal(a, b T) bool {
	return a == b
}

func eqOf[T any, E Eq[T]]() func(a, b T) bool {
	var e E
	return e.Equal
}
