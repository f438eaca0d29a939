package arraylist

import "github.com/bits-and-blooms/bitset"

// shiftTailOverGap slides the elements at and after hi down to lo,
// clears the slots left behind and shrinks the list by hi-lo.
func (l *List[T]) shiftTailOverGap(es []T, lo, hi int) {
	copy(es[lo:], es[hi:l.size])
	to := l.size
	l.size -= hi - lo
	clear(es[l.size:to])
}

// batchRemove keeps, within [from, end), the elements whose membership
// in c equals complement and compacts the survivors. If c panics the
// unread tail is kept so the list stays well formed.
func (l *List[T]) batchRemove(c Container[T], complement bool, from, end int) bool {
	es := l.elems
	r := from
	// initial run of survivors
	for ; ; r++ {
		if r == end {
			return false
		}
		if c.Contains(es[r]) != complement {
			break
		}
	}
	w := r
	r++
	defer func() {
		if r < end {
			copy(es[w:], es[r:end])
			w += end - r
		}
		l.mod.AdvanceBy(end - w)
		l.shiftTailOverGap(es, w, end)
	}()
	for ; r < end; r++ {
		if e := es[r]; c.Contains(e) == complement {
			es[w] = e
			w++
		}
	}
	return true
}

// removeIf removes the elements of [i, end) matching p. Condemned
// elements are found in a first pass that does not mutate anything so
// that p may read the list; a second pass compacts the survivors.
func (l *List[T]) removeIf(p Predicate[T], i, end int) bool {
	expected := l.mod.Load()
	es := l.elems
	for ; i < end && !p.Test(es[i]); i++ {
	}
	if i == end {
		l.checkForComodification(expected)
		return false
	}
	beg := i
	condemned := bitset.New(uint(end - beg))
	condemned.Set(0)
	for i = beg + 1; i < end; i++ {
		if p.Test(es[i]) {
			condemned.Set(uint(i - beg))
		}
	}
	l.checkForComodification(expected)
	l.mod.Advance()
	w := beg
	for i = beg; i < end; i++ {
		if !condemned.Test(uint(i - beg)) {
			es[w] = es[i]
			w++
		}
	}
	l.shiftTailOverGap(es, w, end)
	return true
}
