package arraylist

import (
	"fmt"
	"math"
)

// DefaultCapacity is the capacity a list created without an explicit
// capacity jumps to the first time it grows.
const DefaultCapacity = 10

// maxCapacity is the largest capacity a list will grow to.
const maxCapacity = math.MaxInt >> 1

func errExhausted(min int) error {
	return fmt.Errorf("%w: %d", ErrResourceExhausted, min)
}

// newLength computes the capacity to grow to given the current
// length, the growth that is required and the growth that is
// preferred.
func newLength(oldLength, minGrowth, prefGrowth int) int {
	prefLength := oldLength + max(minGrowth, prefGrowth)
	if 0 < prefLength && prefLength <= maxCapacity {
		return prefLength
	}
	minLength := oldLength + minGrowth
	if minLength < 0 || minLength > maxCapacity {
		panic(errExhausted(minLength))
	}
	return maxCapacity
}

// lazy reports whether the list is still in the default empty state
// that grows straight to DefaultCapacity.
func (l *List[T]) lazy() bool {
	return !l.sized && len(l.elems) == 0
}

// grow reallocates the backing store to hold at least minCapacity
// elements and returns the new store.
func (l *List[T]) grow(minCapacity int) []T {
	if minCapacity < 0 || minCapacity > maxCapacity {
		panic(errExhausted(minCapacity))
	}
	oldCapacity := len(l.elems)
	var n int
	if l.lazy() {
		n = max(DefaultCapacity, minCapacity)
	} else {
		n = newLength(oldCapacity, minCapacity-oldCapacity, oldCapacity>>1)
	}
	elems := make([]T, n)
	copy(elems, l.elems[:l.size])
	l.elems = elems
	return elems
}

// EnsureCapacity grows the backing store, if necessary, so that it can
// hold at least min elements without reallocating.
func (l *List[T]) EnsureCapacity(min int) {
	if min <= len(l.elems) || (l.lazy() && min <= DefaultCapacity) {
		return
	}
	l.mod.Advance()
	l.grow(min)
}

// Trim releases any capacity beyond the current length.
func (l *List[T]) Trim() {
	l.mod.Advance()
	if l.size == len(l.elems) {
		return
	}
	if l.size == 0 {
		l.elems = nil
		l.sized = true
		return
	}
	elems := make([]T, l.size)
	copy(elems, l.elems)
	l.elems = elems
}

// Cap returns the capacity of the backing store.
func (l *List[T]) Cap() int {
	return len(l.elems)
}
