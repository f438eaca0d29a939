package arraylist

import (
	"errors"
	"iter"

	"jsouthworth.net/go/mutable/internal/modcount"
)

// View is a live window onto a contiguous range of a List, or of
// another View. It does not own storage: reads and writes go straight
// to the root list with the index translated by the view's offset.
//
// Structural changes made through a view are reflected in the root
// list, in the view itself and in every view it was derived from.
// Structural changes made any other way invalidate the view, and
// using it afterwards panics with ErrConcurrentModification. A view
// must not be used after its root list has been dropped.
type View[T any] struct {
	root   *List[T]
	parent *View[T]
	// offset is absolute in the root's index space.
	offset int
	size   int
	mod    modcount.Stamp
}

func (v *View[T]) checkForComodification() {
	if v.root.mod.Changed(v.mod) {
		panic(ErrConcurrentModification)
	}
}

func (v *View[T]) updateSizeAndModCount(delta int) {
	stamp := v.root.mod.Load()
	for s := v; s != nil; s = s.parent {
		s.size += delta
		s.mod = stamp
	}
}

// structural runs op against the root and then carries the size change
// op made up through this view and its ancestors. If op reports
// interference the view is left stale. Any other panic, such as one
// raised by a membership test, still carries the change because the
// root has already been compacted by then.
func (v *View[T]) structural(op func()) {
	oldSize, stamp := v.root.size, v.root.mod.Load()
	defer func() {
		r := recover()
		if e, ok := r.(error); ok && errors.Is(e, ErrConcurrentModification) {
			panic(r)
		}
		if v.root.mod.Changed(stamp) {
			v.updateSizeAndModCount(v.root.size - oldSize)
		}
		if r != nil {
			panic(r)
		}
	}()
	op()
}

// Len returns the number of elements in the view.
func (v *View[T]) Len() int {
	v.checkForComodification()
	return v.size
}

// IsEmpty reports whether the view has no elements.
func (v *View[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Offset returns the position of the view's first element in the
// root list.
func (v *View[T]) Offset() int {
	v.checkForComodification()
	return v.offset
}

// Get returns the element at index i of the view.
func (v *View[T]) Get(i int) T {
	checkIndex(i, v.size)
	v.checkForComodification()
	return v.root.elems[v.offset+i]
}

// Find returns the element at index i of the view and whether i was
// in bounds.
func (v *View[T]) Find(i int) (T, bool) {
	v.checkForComodification()
	if i < 0 || i >= v.size {
		var zero T
		return zero, false
	}
	return v.root.elems[v.offset+i], true
}

// Set replaces the element at index i of the view and returns the
// previous element.
func (v *View[T]) Set(i int, x T) T {
	checkIndex(i, v.size)
	v.checkForComodification()
	old := v.root.elems[v.offset+i]
	v.root.elems[v.offset+i] = x
	return old
}

// Append adds x after the last element of the view.
func (v *View[T]) Append(x T) {
	v.Insert(v.size, x)
}

// Insert adds x at index i of the view.
func (v *View[T]) Insert(i int, x T) {
	checkPosition(i, v.size)
	v.checkForComodification()
	v.structural(func() {
		v.root.Insert(v.offset+i, x)
	})
}

// RemoveAt removes and returns the element at index i of the view.
func (v *View[T]) RemoveAt(i int) T {
	checkIndex(i, v.size)
	v.checkForComodification()
	var old T
	v.structural(func() {
		old = v.root.RemoveAt(v.offset + i)
	})
	return old
}

// Remove removes the first element of the view equal to x and reports
// whether one was found.
func (v *View[T]) Remove(x T) bool {
	i := v.IndexOf(x)
	if i < 0 {
		return false
	}
	v.RemoveAt(i)
	return true
}

// RemoveRange removes [from, to) of the view.
func (v *View[T]) RemoveRange(from, to int) {
	checkRange(from, to, v.size)
	v.checkForComodification()
	v.structural(func() {
		v.root.removeRange(v.offset+from, v.offset+to)
	})
}

// Clear removes every element of the view from the root list.
func (v *View[T]) Clear() {
	v.RemoveRange(0, v.size)
}

// AppendAll adds xs after the last element of the view.
func (v *View[T]) AppendAll(xs ...T) bool {
	return v.InsertAll(v.size, xs...)
}

// InsertAll adds xs, in order, at index i of the view.
func (v *View[T]) InsertAll(i int, xs ...T) bool {
	checkPosition(i, v.size)
	if len(xs) == 0 {
		return false
	}
	v.checkForComodification()
	v.structural(func() {
		v.root.InsertAll(v.offset+i, xs...)
	})
	return true
}

// ReplaceAll replaces each element of the view with the result of
// applying op to it.
func (v *View[T]) ReplaceAll(op Operator[T]) {
	v.checkForComodification()
	v.root.replaceAllRange(op, v.offset, v.offset+v.size)
}

// RemoveIf removes every element of the view for which p is true.
func (v *View[T]) RemoveIf(p Predicate[T]) bool {
	v.checkForComodification()
	var modified bool
	v.structural(func() {
		modified = v.root.removeIf(p, v.offset, v.offset+v.size)
	})
	return modified
}

// RemoveAll removes every element of the view that c contains.
func (v *View[T]) RemoveAll(c Container[T]) bool {
	return v.batchRemove(c, false)
}

// RetainAll removes every element of the view that c does not
// contain.
func (v *View[T]) RetainAll(c Container[T]) bool {
	return v.batchRemove(c, true)
}

func (v *View[T]) batchRemove(c Container[T], complement bool) bool {
	v.checkForComodification()
	var modified bool
	v.structural(func() {
		modified = v.root.batchRemove(c, complement, v.offset, v.offset+v.size)
	})
	return modified
}

// Sort stably sorts the elements of the view using c.
func (v *View[T]) Sort(c Comparator[T]) {
	v.checkForComodification()
	v.structural(func() {
		v.root.sortRange(c, v.offset, v.offset+v.size)
	})
}

// IndexOf returns the view index of the first element equal to x, or
// -1.
func (v *View[T]) IndexOf(x T) int {
	v.checkForComodification()
	i := v.root.indexOfRange(x, v.offset, v.offset+v.size)
	v.checkForComodification()
	if i < 0 {
		return -1
	}
	return i - v.offset
}

// LastIndexOf returns the view index of the last element equal to x,
// or -1.
func (v *View[T]) LastIndexOf(x T) int {
	v.checkForComodification()
	i := v.root.lastIndexOfRange(x, v.offset, v.offset+v.size)
	v.checkForComodification()
	if i < 0 {
		return -1
	}
	return i - v.offset
}

// Contains reports whether an element equal to x is in the view.
func (v *View[T]) Contains(x T) bool {
	return v.IndexOf(x) >= 0
}

// ToSlice returns a copy of the elements of the view.
func (v *View[T]) ToSlice() []T {
	v.checkForComodification()
	out := make([]T, v.size)
	copy(out, v.root.elems[v.offset:v.offset+v.size])
	return out
}

// Equal reports whether o is a *List or *View holding the same
// elements in the same order as this view.
func (v *View[T]) Equal(o interface{}) bool {
	if other, ok := o.(*View[T]); ok && other == v {
		return true
	}
	v.checkForComodification()
	eq := v.root.equalsRange(o, v.offset, v.offset+v.size)
	v.checkForComodification()
	return eq
}

// Hash returns an order sensitive hash of the elements of the view. It
// matches the Hash of a List holding the same elements.
func (v *View[T]) Hash() uint64 {
	v.checkForComodification()
	h := v.root.hashRange(v.offset, v.offset+v.size)
	v.checkForComodification()
	return h
}

// ForEach calls visit on each element of the view in order.
func (v *View[T]) ForEach(visit func(x T)) {
	v.checkForComodification()
	v.root.rangeFrom(v.mod, v.offset, v.offset+v.size, func(_ int, x T) bool {
		visit(x)
		return true
	})
}

// Range calls fn on each view index and element in order until fn
// returns false.
func (v *View[T]) Range(fn func(i int, x T) bool) {
	v.checkForComodification()
	v.root.rangeFrom(v.mod, v.offset, v.offset+v.size, fn)
}

// All returns an iterator over the view indices and elements in order.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.Range(yield)
	}
}

// Values returns an iterator over the elements of the view in order.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.Range(func(_ int, x T) bool {
			return yield(x)
		})
	}
}

// Cursor returns a bidirectional cursor over the view positioned
// before its first element.
func (v *View[T]) Cursor() *Cursor[T] {
	return v.CursorAt(0)
}

// CursorAt returns a bidirectional cursor over the view whose first
// call to Next returns the element at view index i.
func (v *View[T]) CursorAt(i int) *Cursor[T] {
	v.checkForComodification()
	checkPosition(i, v.size)
	return newCursor(v.root, v, i)
}

// Split returns a late binding split cursor over the view.
func (v *View[T]) Split() *SplitCursor[T] {
	v.checkForComodification()
	return newSplitCursor(v.root, v, v.offset)
}

// View returns a view of [from, to) of this view.
func (v *View[T]) View(from, to int) *View[T] {
	v.checkForComodification()
	checkRange(from, to, v.size)
	return &View[T]{
		root:   v.root,
		parent: v,
		offset: v.offset + from,
		size:   to - from,
		mod:    v.mod,
	}
}

// String converts the view to a string representation.
func (v *View[T]) String() string {
	v.checkForComodification()
	return listString(v.root.elems[v.offset : v.offset+v.size])
}
