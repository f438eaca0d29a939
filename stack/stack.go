// Package stack implements a mutable stack on top of an array list.
package stack // import "jsouthworth.net/go/mutable/stack"

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"jsouthworth.net/go/mutable/arraylist"
)

// ErrEmptyStack is raised by Pop and Top on an empty stack.
var ErrEmptyStack = errors.New("stack is empty")

// Stack is a mutable LIFO stack. The zero value is an empty stack
// ready to use.
type Stack[T any] struct {
	backingList arraylist.List[T]
}

// New returns a stack with elems pushed in order, so the last
// element is on top.
func New[T any](elems ...T) *Stack[T] {
	out := new(Stack[T])
	out.backingList.AppendAll(elems...)
	return out
}

// From will convert many go types to a stack. The bottom of the stack
// is the first element of value.
//
// *Stack[T]:
//    The elements are copied.
// Anything accepted by arraylist.From:
//    The elements are copied in order.
func From[T any](value interface{}) *Stack[T] {
	if s, ok := value.(*Stack[T]); ok {
		value = &s.backingList
	}
	out := new(Stack[T])
	out.backingList.Restore(arraylist.From[T](value).ToSlice())
	return out
}

// Push places elem at the top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.backingList.Append(elem)
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() T {
	n := s.backingList.Len()
	if n == 0 {
		panic(ErrEmptyStack)
	}
	return s.backingList.RemoveAt(n - 1)
}

// Top returns the top of the stack.
func (s *Stack[T]) Top() T {
	n := s.backingList.Len()
	if n == 0 {
		panic(ErrEmptyStack)
	}
	return s.backingList.Get(n - 1)
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.backingList.Len()
}

// Find whether the value exists in the stack by walking every value
// from the top. Returns the value and whether or not it was found.
func (s *Stack[T]) Find(value T) (T, bool) {
	i := s.backingList.LastIndexOf(value)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.backingList.Get(i), true
}

// Range calls fn on each element from the top of the stack down until
// fn returns false. Pushing or popping from fn panics with
// arraylist.ErrConcurrentModification.
func (s *Stack[T]) Range(fn func(value T) bool) {
	for _, v := range s.backingList.Backward() {
		if !fn(v) {
			return
		}
	}
}

// Seq returns an iterator over the stack from top to bottom.
func (s *Stack[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Range(yield)
	}
}

// String returns a representation of the stack as a string.
func (s *Stack[T]) String() string {
	b := new(strings.Builder)
	fmt.Fprint(b, "[ ")
	s.Range(func(item T) bool {
		fmt.Fprintf(b, "%v ", item)
		return true
	})
	fmt.Fprint(b, "]")
	return b.String()
}
