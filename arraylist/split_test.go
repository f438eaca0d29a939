package arraylist

import (
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func collectSplit[T any](s *SplitCursor[T]) []T {
	var out []T
	s.ForEachRemaining(func(v T) { out = append(out, v) })
	return out
}

// splitAll recursively splits s and returns the elements of every
// piece, lower halves first.
func splitAll[T any](s *SplitCursor[T]) []T {
	if lower := s.TrySplit(); lower != nil {
		return append(splitAll(lower), splitAll(s)...)
	}
	return collectSplit(s)
}

func TestSplitLateBinding(t *testing.T) {
	l := New(1, 2, 3)
	s := l.Split()
	l.Append(4)
	assert.Equal(t, 4, s.EstimateRemaining())
	assert.Equal(t, []int{1, 2, 3, 4}, collectSplit(s))

	s = l.Split()
	assert.True(t, s.TryAdvance(func(int) {}))
	l.Append(5)
	assert.ErrorIs(t, panicErr(func() { s.TryAdvance(func(int) {}) }),
		ErrConcurrentModification)
}

func TestSplitTryAdvance(t *testing.T) {
	l := New(1, 2)
	s := l.Split()
	var got []int
	for s.TryAdvance(func(v int) { got = append(got, v) }) {
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 0, s.EstimateRemaining())
	assert.False(t, s.TryAdvance(func(int) { t.Fatal("visited past the end") }))
}

func TestSplitPreservesOrder(t *testing.T) {
	l := New(ints(100)...)
	assert.Equal(t, ints(100), splitAll(l.Split()))
}

func TestSplitTooSmall(t *testing.T) {
	assert.Nil(t, New(1).Split().TrySplit())
	assert.Nil(t, New[int]().Split().TrySplit())
}

func TestSplitHalves(t *testing.T) {
	l := New(ints(10)...)
	s := l.Split()
	lower := s.TrySplit()
	assert.Equal(t, 5, lower.EstimateRemaining())
	assert.Equal(t, 5, s.EstimateRemaining())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, collectSplit(lower))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, collectSplit(s))
}

func TestSplitForEachRemainingDetectsWrites(t *testing.T) {
	l := New(1, 2, 3)
	s := l.Split()
	err := panicErr(func() {
		s.ForEachRemaining(func(v int) {
			if v == 2 {
				l.Set(0, 10)
				l.Trim()
			}
		})
	})
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestSplitParallelSum(t *testing.T) {
	const n = 1000
	l := New(ints(n)...)
	s := l.Split()
	parts := []*SplitCursor[int]{s}
	for len(parts) < 8 {
		var next []*SplitCursor[int]
		for _, p := range parts {
			if lower := p.TrySplit(); lower != nil {
				next = append(next, lower)
			}
			next = append(next, p)
		}
		parts = next
	}
	sums := make([]int, len(parts))
	var wg sync.WaitGroup
	for i, p := range parts {
		wg.Add(1)
		go func(i int, p *SplitCursor[int]) {
			defer wg.Done()
			p.ForEachRemaining(func(v int) { sums[i] += v })
		}(i, p)
	}
	wg.Wait()
	var total int
	for _, v := range sums {
		total += v
	}
	assert.Equal(t, n*(n-1)/2, total)
}

func TestSplitOverView(t *testing.T) {
	l := New(ints(10)...)
	v := l.View(2, 6)
	s := v.Split()
	assert.Equal(t, 4, s.EstimateRemaining())
	assert.Equal(t, []int{2, 3, 4, 5}, splitAll(s))

	s = v.Split()
	v.Append(100)
	assert.Equal(t, []int{2, 3, 4, 5, 100}, collectSplit(s))

	s = v.Split()
	l.Append(11)
	assert.NotPanics(t, func() { s.EstimateRemaining() })
	assert.ErrorIs(t, panicErr(func() { collectSplit(s) }), ErrConcurrentModification)
}

func TestSplitCharacteristics(t *testing.T) {
	c := New(1).Split().Characteristics()
	assert.NotZero(t, c&SplitOrdered)
	assert.NotZero(t, c&SplitSized)
	assert.NotZero(t, c&SplitSubsized)
}

func TestSplitEstimatesSum(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("split estimates sum to the list length", prop.ForAll(
		func(n, depth int) bool {
			parts := []*SplitCursor[int]{New(ints(n)...).Split()}
			for d := 0; d < depth; d++ {
				var next []*SplitCursor[int]
				for _, p := range parts {
					if lower := p.TrySplit(); lower != nil {
						next = append(next, lower)
					}
					next = append(next, p)
				}
				parts = next
			}
			total := 0
			for _, p := range parts {
				total += p.EstimateRemaining()
			}
			return total == n
		},
		gen.IntRange(0, 500),
		gen.IntRange(0, 6),
	))
	properties.TestingRun(t)
}
