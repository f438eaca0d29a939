package arraylist

// Comparator orders two elements, returning a negative number, zero
// or a positive number when a sorts before, with, or after b.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// CompareFunc adapts a function to a Comparator.
type CompareFunc[T any] func(a, b T) int

// Compare calls f(a, b).
func (f CompareFunc[T]) Compare(a, b T) int {
	return f(a, b)
}

// Predicate selects elements.
type Predicate[T any] interface {
	Test(v T) bool
}

// PredicateFunc adapts a function to a Predicate.
type PredicateFunc[T any] func(v T) bool

// Test calls f(v).
func (f PredicateFunc[T]) Test(v T) bool {
	return f(v)
}

// Operator transforms an element into its replacement.
type Operator[T any] interface {
	Apply(v T) T
}

// OperatorFunc adapts a function to an Operator.
type OperatorFunc[T any] func(v T) T

// Apply calls f(v).
func (f OperatorFunc[T]) Apply(v T) T {
	return f(v)
}

// Container is a membership test used by RemoveAll and RetainAll.
// *List and *View are Containers.
type Container[T any] interface {
	Contains(v T) bool
}

// ContainsFunc adapts a function to a Container.
type ContainsFunc[T any] func(v T) bool

// Contains calls f(v).
func (f ContainsFunc[T]) Contains(v T) bool {
	return f(v)
}

type set[T comparable] map[T]struct{}

func (s set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// SetOf returns a hash based Container holding the given values.
func SetOf[T comparable](vs ...T) Container[T] {
	s := make(set[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}
