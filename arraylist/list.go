package arraylist

import (
	"bytes"
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
	"jsouthworth.net/go/mutable/internal/modcount"
)

// List is a growable sequence of elements stored contiguously.
// The zero value is an empty list ready to use.
type List[T any] struct {
	elems []T
	size  int
	// sized is set once the list has been given an explicit
	// capacity, which turns off the jump to DefaultCapacity.
	sized bool
	mod   modcount.Counter
}

// New returns a list holding the supplied elements. With no elements
// the list starts empty and grows to DefaultCapacity on first use.
func New[T any](elems ...T) *List[T] {
	if len(elems) == 0 {
		return &List[T]{}
	}
	return fromSlice(elems)
}

// WithCapacity returns an empty list whose backing store can hold n
// elements. It panics with ErrInvalidArgument if n is negative.
func WithCapacity[T any](n int) *List[T] {
	switch {
	case n < 0:
		panic(fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, n))
	case n > maxCapacity:
		panic(errExhausted(n))
	}
	return &List[T]{
		elems: make([]T, n),
		sized: true,
	}
}

// From will convert many go types to a list. The result never
// shares storage with value and its capacity equals its length.
//
// *List[T]:
//    The elements are copied.
// *View[T]:
//    The elements in the view's range are copied.
// []T:
//    The slice is copied.
// iter.Seq[T]:
//    The sequence is drained. Care should be taken to provide finite
//    sequences or the list will grow without bound.
//
// Any other value produces an empty list.
func From[T any](value interface{}) *List[T] {
	switch v := value.(type) {
	case *List[T]:
		return fromSlice(v.elems[:v.size])
	case *View[T]:
		return fromSlice(v.ToSlice())
	case []T:
		return fromSlice(v)
	case iter.Seq[T]:
		var elems []T
		for e := range v {
			elems = append(elems, e)
		}
		return fromSlice(elems)
	default:
		return &List[T]{sized: true}
	}
}

func fromSlice[T any](elems []T) *List[T] {
	if len(elems) == 0 {
		return &List[T]{sized: true}
	}
	out := make([]T, len(elems))
	copy(out, elems)
	return &List[T]{
		elems: out,
		size:  len(out),
		sized: true,
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Get returns the element at the supplied index. It will panic if out
// of bounds.
func (l *List[T]) Get(i int) T {
	checkIndex(i, l.size)
	return l.elems[i]
}

// Find returns the value at the supplied index and if that index was
// in bounds for the list. Out of bounds access does not panic but
// returns (zero, false).
func (l *List[T]) Find(i int) (T, bool) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, false
	}
	return l.elems[i], true
}

// Set replaces the element at the supplied index and returns the
// element previously there. Set is not a structural change.
func (l *List[T]) Set(i int, v T) T {
	checkIndex(i, l.size)
	old := l.elems[i]
	l.elems[i] = v
	return old
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) {
	l.mod.Advance()
	es := l.elems
	if l.size == len(es) {
		es = l.grow(l.size + 1)
	}
	es[l.size] = v
	l.size++
}

// Insert adds v at index i shifting the element currently there, and
// everything after it, one position to the right. i may equal Len.
func (l *List[T]) Insert(i int, v T) {
	checkPosition(i, l.size)
	l.mod.Advance()
	s := l.size
	es := l.elems
	if s == len(es) {
		es = l.grow(s + 1)
	}
	copy(es[i+1:s+1], es[i:s])
	es[i] = v
	l.size = s + 1
}

// RemoveAt removes and returns the element at index i shifting
// everything after it one position to the left.
func (l *List[T]) RemoveAt(i int) T {
	checkIndex(i, l.size)
	old := l.elems[i]
	l.fastRemove(l.elems, i)
	return old
}

func (l *List[T]) fastRemove(es []T, i int) {
	l.mod.Advance()
	newSize := l.size - 1
	if newSize > i {
		copy(es[i:], es[i+1:l.size])
	}
	var zero T
	es[newSize] = zero
	l.size = newSize
}

// Remove removes the first element equal to v and reports whether
// one was found.
func (l *List[T]) Remove(v T) bool {
	i := l.indexOfRange(v, 0, l.size)
	if i < 0 {
		return false
	}
	l.fastRemove(l.elems, i)
	return true
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	return l.indexOfRange(v, 0, l.size)
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (l *List[T]) LastIndexOf(v T) int {
	return l.lastIndexOfRange(v, 0, l.size)
}

// Contains reports whether an element equal to v is in the list.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

func (l *List[T]) indexOfRange(v T, from, to int) int {
	es := l.elems
	for i := from; i < to; i++ {
		if equal(v, es[i]) {
			return i
		}
	}
	return -1
}

func (l *List[T]) lastIndexOfRange(v T, from, to int) int {
	es := l.elems
	for i := to - 1; i >= from; i-- {
		if equal(v, es[i]) {
			return i
		}
	}
	return -1
}

// Clear removes every element. The capacity is retained.
func (l *List[T]) Clear() {
	l.mod.Advance()
	clear(l.elems[:l.size])
	l.size = 0
}

// AppendAll adds vs to the end of the list growing the backing store
// at most once. It reports whether the list changed.
func (l *List[T]) AppendAll(vs ...T) bool {
	l.mod.Advance()
	n := len(vs)
	if n == 0 {
		return false
	}
	es := l.elems
	if n > len(es)-l.size {
		es = l.grow(l.size + n)
	}
	copy(es[l.size:], vs)
	l.size += n
	return true
}

// InsertAll adds vs at index i, in order, growing the backing store at
// most once. It reports whether the list changed.
func (l *List[T]) InsertAll(i int, vs ...T) bool {
	checkPosition(i, l.size)
	l.mod.Advance()
	n := len(vs)
	if n == 0 {
		return false
	}
	s := l.size
	es := l.elems
	if n > len(es)-s {
		es = l.grow(s + n)
	}
	if s > i {
		copy(es[i+n:], es[i:s])
	}
	copy(es[i:], vs)
	l.size = s + n
	return true
}

// RemoveRange removes the elements in [from, to).
func (l *List[T]) RemoveRange(from, to int) {
	checkRange(from, to, l.size)
	l.removeRange(from, to)
}

func (l *List[T]) removeRange(from, to int) {
	l.mod.Advance()
	l.shiftTailOverGap(l.elems, from, to)
}

// ToSlice returns a copy of the elements sized exactly to the list.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.size)
	copy(out, l.elems)
	return out
}

// Restore replaces the contents of the list with elems. The capacity
// afterwards equals len(elems) exactly.
func (l *List[T]) Restore(elems []T) {
	l.mod.Advance()
	l.sized = true
	l.size = len(elems)
	if len(elems) == 0 {
		l.elems = nil
		return
	}
	l.elems = make([]T, len(elems))
	copy(l.elems, elems)
}

// Clone returns an independent copy of the list with its own
// modification history.
func (l *List[T]) Clone() *List[T] {
	return fromSlice(l.elems[:l.size])
}

// Equal reports whether o is a *List or *View holding equal elements
// in the same order.
func (l *List[T]) Equal(o interface{}) bool {
	if other, ok := o.(*List[T]); ok && other == l {
		return true
	}
	expected := l.mod.Load()
	eq := l.equalsRange(o, 0, l.size)
	l.checkForComodification(expected)
	return eq
}

// equalsRange compares [from, to) of l with the whole of other.
func (l *List[T]) equalsRange(other interface{}, from, to int) bool {
	mine := l.elems[from:to]
	switch o := other.(type) {
	case *List[T]:
		expected := o.mod.Load()
		eq := rangeEqual(mine, o.elems[:o.size])
		o.checkForComodification(expected)
		return eq
	case *View[T]:
		o.checkForComodification()
		eq := rangeEqual(mine, o.root.elems[o.offset:o.offset+o.size])
		o.checkForComodification()
		return eq
	default:
		return false
	}
}

// Hash returns an order sensitive hash of the elements. Lists that are
// Equal have the same Hash.
func (l *List[T]) Hash() uint64 {
	expected := l.mod.Load()
	h := l.hashRange(0, l.size)
	l.checkForComodification(expected)
	return h
}

func (l *List[T]) hashRange(from, to int) uint64 {
	expected := l.mod.Load()
	es := l.elems
	h := uint64(1)
	for i := from; i < to; i++ {
		h = 31*h + hashOf(es[i])
	}
	l.checkForComodification(expected)
	return h
}

// Sort stably sorts the list using c.
func (l *List[T]) Sort(c Comparator[T]) {
	l.sortRange(c, 0, l.size)
}

func (l *List[T]) sortRange(c Comparator[T], from, to int) {
	expected := l.mod.Load()
	slices.SortStableFunc(l.elems[from:to], c.Compare)
	l.checkForComodification(expected)
	l.mod.Advance()
}

// ReplaceAll replaces each element with the result of applying op to
// it. It is not a structural change.
func (l *List[T]) ReplaceAll(op Operator[T]) {
	l.replaceAllRange(op, 0, l.size)
}

func (l *List[T]) replaceAllRange(op Operator[T], i, end int) {
	expected := l.mod.Load()
	es := l.elems
	for ; !l.mod.Changed(expected) && i < end; i++ {
		es[i] = op.Apply(es[i])
	}
	l.checkForComodification(expected)
}

// RemoveIf removes every element for which p is true and reports
// whether any were removed. p may read the list but must not change
// it.
func (l *List[T]) RemoveIf(p Predicate[T]) bool {
	return l.removeIf(p, 0, l.size)
}

// RemoveAll removes every element c contains and reports whether the
// list changed.
func (l *List[T]) RemoveAll(c Container[T]) bool {
	return l.batchRemove(c, false, 0, l.size)
}

// RetainAll removes every element c does not contain and reports
// whether the list changed.
func (l *List[T]) RetainAll(c Container[T]) bool {
	return l.batchRemove(c, true, 0, l.size)
}

// ForEach calls visit on each element in order.
func (l *List[T]) ForEach(visit func(v T)) {
	l.rangeFrom(l.mod.Load(), 0, l.size, func(_ int, v T) bool {
		visit(v)
		return true
	})
}

// Range calls fn on each index and element in order until fn returns
// false.
func (l *List[T]) Range(fn func(i int, v T) bool) {
	l.rangeFrom(l.mod.Load(), 0, l.size, fn)
}

// rangeFrom visits [from, to) stopping as soon as the list changes
// structurally relative to expected. Indices passed to fn are relative
// to from.
func (l *List[T]) rangeFrom(expected modcount.Stamp, from, to int, fn func(int, T) bool) {
	es := l.elems
	if to > len(es) {
		panic(ErrConcurrentModification)
	}
	for i := from; i < to && !l.mod.Changed(expected); i++ {
		if !fn(i-from, es[i]) {
			return
		}
	}
	l.checkForComodification(expected)
}

func (l *List[T]) rangeBackward(expected modcount.Stamp, from, to int, fn func(int, T) bool) {
	es := l.elems
	if to > len(es) {
		panic(ErrConcurrentModification)
	}
	for i := to - 1; i >= from && !l.mod.Changed(expected); i-- {
		if !fn(i-from, es[i]) {
			return
		}
	}
	l.checkForComodification(expected)
}

// All returns an iterator over the indices and elements in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.rangeFrom(l.mod.Load(), 0, l.size, yield)
	}
}

// Backward returns an iterator over the indices and elements from the
// last to the first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.rangeBackward(l.mod.Load(), 0, l.size, yield)
	}
}

// Values returns an iterator over the elements in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.rangeFrom(l.mod.Load(), 0, l.size, func(_ int, v T) bool {
			return yield(v)
		})
	}
}

// Cursor returns a bidirectional cursor positioned before the first
// element.
func (l *List[T]) Cursor() *Cursor[T] {
	return newCursor(l, nil, 0)
}

// CursorAt returns a bidirectional cursor whose first call to Next
// returns the element at index i. i may equal Len.
func (l *List[T]) CursorAt(i int) *Cursor[T] {
	checkPosition(i, l.size)
	return newCursor(l, nil, i)
}

// Split returns a late binding split cursor over the whole list.
func (l *List[T]) Split() *SplitCursor[T] {
	return newSplitCursor(l, nil, 0)
}

// View returns a live view of [from, to). Changes made through the
// view are visible in the list and vice versa, but structural changes
// made to the list directly invalidate the view.
func (l *List[T]) View(from, to int) *View[T] {
	checkRange(from, to, l.size)
	return &View[T]{
		root:   l,
		offset: from,
		size:   to - from,
		mod:    l.mod.Load(),
	}
}

// String converts the list to a string representation.
func (l *List[T]) String() string {
	return listString(l.elems[:l.size])
}

func (l *List[T]) checkForComodification(expected modcount.Stamp) {
	if l.mod.Changed(expected) {
		panic(ErrConcurrentModification)
	}
}

func listString[T any](elems []T) string {
	buf := new(bytes.Buffer)
	fmt.Fprint(buf, "[")
	if len(elems) != 0 {
		fmt.Fprint(buf, elems[0])
	}
	for i := 1; i < len(elems); i++ {
		fmt.Fprintf(buf, " %v", elems[i])
	}
	fmt.Fprint(buf, "]")
	return buf.String()
}
