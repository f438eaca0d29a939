package arraylist

import "jsouthworth.net/go/mutable/internal/modcount"

// Characteristics describes a SplitCursor's source.
type Characteristics uint8

// Characteristics reported by every SplitCursor.
const (
	// SplitOrdered means elements are encountered in index order.
	SplitOrdered Characteristics = 1 << iota
	// SplitSized means EstimateRemaining is exact.
	SplitSized
	// SplitSubsized means cursors produced by TrySplit are also
	// sized.
	SplitSubsized
)

// SplitCursor traverses a half open index range and can be split in
// two repeatedly for divide and conquer consumption.
//
// A split cursor is late binding: its upper bound and modification
// stamp are taken on first use rather than at creation, so changes
// made to the list before then are reflected, and changes made after
// are reported with ErrConcurrentModification.
type SplitCursor[T any] struct {
	root *List[T]
	view *View[T]
	lo   int
	// fence and expected are valid only once bound is set.
	fence    int
	bound    bool
	expected modcount.Stamp
}

func newSplitCursor[T any](root *List[T], view *View[T], lo int) *SplitCursor[T] {
	return &SplitCursor[T]{
		root: root,
		view: view,
		lo:   lo,
	}
}

// bind fixes the fence and stamp the first time it is called.
func (s *SplitCursor[T]) bind() int {
	if s.bound {
		return s.fence
	}
	if s.view != nil {
		s.expected = s.view.mod
		s.fence = s.view.offset + s.view.size
	} else {
		s.expected = s.root.mod.Load()
		s.fence = s.root.size
	}
	s.bound = true
	return s.fence
}

func (s *SplitCursor[T]) checkForComodification() {
	s.root.checkForComodification(s.expected)
}

// EstimateRemaining returns the number of elements left.
func (s *SplitCursor[T]) EstimateRemaining() int {
	return s.bind() - s.lo
}

// Characteristics returns SplitOrdered|SplitSized|SplitSubsized.
func (s *SplitCursor[T]) Characteristics() Characteristics {
	return SplitOrdered | SplitSized | SplitSubsized
}

// TrySplit hands the lower half of the remaining range to a new
// cursor and keeps the upper half. It returns nil when the range is
// too small to split.
func (s *SplitCursor[T]) TrySplit() *SplitCursor[T] {
	hi := s.bind()
	lo := s.lo
	mid := int(uint(lo+hi) >> 1)
	if lo >= mid {
		return nil
	}
	s.lo = mid
	return &SplitCursor[T]{
		root:     s.root,
		view:     s.view,
		lo:       lo,
		fence:    mid,
		bound:    true,
		expected: s.expected,
	}
}

// TryAdvance calls visit on the next element, if there is one, and
// reports whether it did.
func (s *SplitCursor[T]) TryAdvance(visit func(v T)) bool {
	hi := s.bind()
	i := s.lo
	if i >= hi {
		return false
	}
	es := s.root.elems
	if i >= len(es) {
		panic(ErrConcurrentModification)
	}
	s.lo = i + 1
	visit(es[i])
	s.checkForComodification()
	return true
}

// ForEachRemaining calls visit on every remaining element in order.
// Interference is checked once after the pass.
func (s *SplitCursor[T]) ForEachRemaining(visit func(v T)) {
	hi := s.bind()
	es := s.root.elems
	i := s.lo
	if i < 0 || hi > len(es) {
		panic(ErrConcurrentModification)
	}
	s.lo = hi
	for ; i < hi; i++ {
		visit(es[i])
	}
	s.checkForComodification()
}
