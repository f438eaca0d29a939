package arraylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorForwardAndBackward(t *testing.T) {
	l := New(1, 2, 3)
	c := l.Cursor()
	var fwd []int
	for c.HasNext() {
		fwd = append(fwd, c.Next())
	}
	assert.Equal(t, []int{1, 2, 3}, fwd)
	assert.Equal(t, 3, c.NextIndex())
	assert.Equal(t, 2, c.PreviousIndex())

	var back []int
	for c.HasPrevious() {
		back = append(back, c.Previous())
	}
	assert.Equal(t, []int{3, 2, 1}, back)
	assert.Equal(t, -1, c.PreviousIndex())
}

func TestCursorExhausted(t *testing.T) {
	c := New(1).Cursor()
	assert.ErrorIs(t, panicErr(func() { c.Previous() }), ErrExhausted)
	c.Next()
	assert.ErrorIs(t, panicErr(func() { c.Next() }), ErrExhausted)
}

func TestCursorFailFast(t *testing.T) {
	l := New(1, 2, 3)
	c := l.Cursor()
	c.Next()
	l.Append(4)
	assert.ErrorIs(t, panicErr(func() { c.Next() }), ErrConcurrentModification)
	assert.ErrorIs(t, panicErr(func() { c.Previous() }), ErrConcurrentModification)
	assert.ErrorIs(t, panicErr(func() { c.Remove() }), ErrConcurrentModification)
	assert.ErrorIs(t, panicErr(func() { c.Insert(0) }), ErrConcurrentModification)
}

func TestCursorRemove(t *testing.T) {
	l := New(1, 2, 3, 4, 5)
	c := l.Cursor()
	for c.HasNext() {
		if c.Next()%2 == 0 {
			c.Remove()
		}
	}
	assert.Equal(t, []int{1, 3, 5}, l.ToSlice())

	c = l.CursorAt(l.Len())
	c.Previous()
	c.Remove()
	assert.Equal(t, []int{1, 3}, l.ToSlice())
	assert.Equal(t, 2, c.NextIndex())
}

func TestCursorInvalidState(t *testing.T) {
	l := New(1, 2)
	c := l.Cursor()
	assert.ErrorIs(t, panicErr(func() { c.Remove() }), ErrInvalidState)
	assert.ErrorIs(t, panicErr(func() { c.Set(0) }), ErrInvalidState)
	c.Next()
	c.Remove()
	assert.ErrorIs(t, panicErr(func() { c.Remove() }), ErrInvalidState)
	c.Next()
	c.Insert(7)
	assert.ErrorIs(t, panicErr(func() { c.Set(0) }), ErrInvalidState)
	assert.Equal(t, []int{2, 7}, l.ToSlice())
}

func TestCursorSet(t *testing.T) {
	l := New(1, 2, 3)
	c := l.Cursor()
	for c.HasNext() {
		c.Set(c.Next() * 10)
	}
	assert.Equal(t, []int{10, 20, 30}, l.ToSlice())
	c.Previous()
	c.Set(0)
	assert.Equal(t, []int{10, 20, 0}, l.ToSlice())
}

func TestCursorInsert(t *testing.T) {
	l := New(1, 2, 3)
	c := l.Cursor()
	assert.Equal(t, 1, c.Next())
	c.Insert(100)
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, []int{1, 100, 2, 3}, l.ToSlice())
	assert.Equal(t, 2, c.Previous())
	assert.Equal(t, 100, c.Previous())

	e := New[int]()
	ec := e.Cursor()
	ec.Insert(1)
	ec.Insert(2)
	assert.Equal(t, []int{1, 2}, e.ToSlice())
	assert.False(t, ec.HasNext())
}

func TestCursorForEachRemaining(t *testing.T) {
	l := New(1, 2, 3, 4)
	c := l.Cursor()
	c.Next()
	var rest []int
	c.ForEachRemaining(func(v int) { rest = append(rest, v) })
	assert.Equal(t, []int{2, 3, 4}, rest)
	assert.False(t, c.HasNext())
	c.Remove()
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())

	c = l.Cursor()
	err := panicErr(func() {
		c.ForEachRemaining(func(v int) {
			if v == 1 {
				l.RemoveAt(0)
			}
		})
	})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestCursorOverView(t *testing.T) {
	l := New(1, 2, 3, 4, 5)
	outer := l.View(0, 5)
	v := outer.View(1, 4)
	c := v.Cursor()
	require.True(t, c.HasNext())
	var seen []int
	for c.HasNext() {
		x := c.Next()
		seen = append(seen, x)
		if x == 3 {
			c.Remove()
			c.Insert(30)
			c.Insert(31)
		}
	}
	assert.Equal(t, []int{2, 3, 4}, seen)
	assert.Equal(t, []int{2, 30, 31, 4}, v.ToSlice())
	assert.Equal(t, []int{1, 2, 30, 31, 4, 5}, l.ToSlice())
	assert.Equal(t, 6, outer.Len())

	back := v.CursorAt(v.Len())
	var rev []int
	for back.HasPrevious() {
		rev = append(rev, back.Previous())
	}
	assert.Equal(t, []int{4, 31, 30, 2}, rev)

	assert.ErrorIs(t, panicErr(func() { v.CursorAt(5) }), ErrIndexOutOfRange)
}
