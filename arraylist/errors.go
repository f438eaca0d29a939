package arraylist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is raised for a negative capacity or
	// inverted range bounds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is raised for an index or range outside
	// the list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrConcurrentModification is raised when a traversal,
	// comparison, sort or transform observes a structural change
	// it did not make itself.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrResourceExhausted is raised when the required capacity
	// exceeds the largest capacity the list can grow to.
	ErrResourceExhausted = errors.New("required capacity exceeds maximum")

	// ErrInvalidState is raised by Cursor.Remove and Cursor.Set
	// when there is no current element.
	ErrInvalidState = errors.New("cursor has no current element")

	// ErrExhausted is raised when a cursor is advanced past either
	// end of its range.
	ErrExhausted = errors.New("no more elements")
)

func errIndex(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}

func checkIndex(index, size int) {
	if index < 0 || index >= size {
		panic(errIndex(index, size))
	}
}

func checkPosition(index, size int) {
	if index < 0 || index > size {
		panic(errIndex(index, size))
	}
}

func checkRange(from, to, size int) {
	switch {
	case from < 0:
		panic(fmt.Errorf("%w: from %d", ErrIndexOutOfRange, from))
	case to > size:
		panic(fmt.Errorf("%w: to %d, size %d", ErrIndexOutOfRange, to, size))
	case from > to:
		panic(fmt.Errorf("%w: from %d > to %d", ErrInvalidArgument, from, to))
	}
}
