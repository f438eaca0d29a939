package arraylist

import "jsouthworth.net/go/mutable/internal/modcount"

// Cursor is a bidirectional, fail-fast cursor over a List or a View.
// A cursor sits between elements: Next returns the element after it
// and Previous the element before it. Remove, Set and Insert are the
// only ways to change the underlying list structurally without
// invalidating the cursor.
type Cursor[T any] struct {
	root *List[T]
	view *View[T]
	// offset is the root index of the cursor's position zero.
	offset   int
	pos      int
	last     int
	expected modcount.Stamp
}

func newCursor[T any](root *List[T], view *View[T], pos int) *Cursor[T] {
	c := &Cursor[T]{
		root:     root,
		view:     view,
		pos:      pos,
		last:     -1,
		expected: root.mod.Load(),
	}
	if view != nil {
		c.offset = view.offset
	}
	return c
}

func (c *Cursor[T]) size() int {
	if c.view != nil {
		return c.view.size
	}
	return c.root.size
}

func (c *Cursor[T]) checkForComodification() {
	c.root.checkForComodification(c.expected)
}

// HasNext reports whether Next would return an element.
func (c *Cursor[T]) HasNext() bool {
	return c.pos != c.size()
}

// HasPrevious reports whether Previous would return an element.
func (c *Cursor[T]) HasPrevious() bool {
	return c.pos != 0
}

// NextIndex returns the index of the element Next would return.
func (c *Cursor[T]) NextIndex() int {
	return c.pos
}

// PreviousIndex returns the index of the element Previous would
// return, -1 at the start.
func (c *Cursor[T]) PreviousIndex() int {
	return c.pos - 1
}

// Next returns the next element and advances the cursor. It panics
// with ErrExhausted at the end.
func (c *Cursor[T]) Next() T {
	c.checkForComodification()
	i := c.pos
	if i >= c.size() {
		panic(ErrExhausted)
	}
	es := c.root.elems
	if c.offset+i >= len(es) {
		panic(ErrConcurrentModification)
	}
	c.pos = i + 1
	c.last = i
	return es[c.offset+i]
}

// Previous returns the previous element and moves the cursor back. It
// panics with ErrExhausted at the start.
func (c *Cursor[T]) Previous() T {
	c.checkForComodification()
	i := c.pos - 1
	if i < 0 {
		panic(ErrExhausted)
	}
	es := c.root.elems
	if c.offset+i >= len(es) {
		panic(ErrConcurrentModification)
	}
	c.pos = i
	c.last = i
	return es[c.offset+i]
}

// Remove removes the element last returned by Next or Previous.
func (c *Cursor[T]) Remove() {
	if c.last < 0 {
		panic(ErrInvalidState)
	}
	c.checkForComodification()
	if c.view != nil {
		c.view.RemoveAt(c.last)
	} else {
		c.root.RemoveAt(c.last)
	}
	c.pos = c.last
	c.last = -1
	c.expected = c.root.mod.Load()
}

// Set replaces the element last returned by Next or Previous.
func (c *Cursor[T]) Set(v T) {
	if c.last < 0 {
		panic(ErrInvalidState)
	}
	c.checkForComodification()
	if c.view != nil {
		c.view.Set(c.last, v)
	} else {
		c.root.Set(c.last, v)
	}
}

// Insert adds v immediately before the element Next would return, and
// after the element Previous would return. A following call to Next is
// unaffected.
func (c *Cursor[T]) Insert(v T) {
	c.checkForComodification()
	i := c.pos
	if c.view != nil {
		c.view.Insert(i, v)
	} else {
		c.root.Insert(i, v)
	}
	c.pos = i + 1
	c.last = -1
	c.expected = c.root.mod.Load()
}

// ForEachRemaining calls visit on every element Next would return, in
// order, leaving the cursor at the end. Interference is checked once
// after the pass.
func (c *Cursor[T]) ForEachRemaining(visit func(v T)) {
	size := c.size()
	i := c.pos
	if i >= size {
		return
	}
	es := c.root.elems
	if c.offset+size > len(es) {
		panic(ErrConcurrentModification)
	}
	for ; i < size; i++ {
		visit(es[c.offset+i])
	}
	c.pos = i
	c.last = i - 1
	c.checkForComodification()
}
