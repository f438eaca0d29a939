// Package modcount implements the structural version stamp shared by
// a list and everything derived from it.
package modcount

import "sync/atomic"

// Stamp is a snapshot of a Counter.
type Stamp uint64

// Counter is a monotonically advancing version stamp. It is a
// diagnostic for detecting interference and does not synchronize
// anything.
type Counter struct {
	val uint64
}

// Advance moves the counter forward by one.
func (c *Counter) Advance() {
	atomic.AddUint64(&c.val, 1)
}

// AdvanceBy moves the counter forward by n. Non-positive n is treated
// as one so every call is observable.
func (c *Counter) AdvanceBy(n int) {
	if n < 1 {
		n = 1
	}
	atomic.AddUint64(&c.val, uint64(n))
}

// Load returns the current stamp.
func (c *Counter) Load() Stamp {
	return Stamp(atomic.LoadUint64(&c.val))
}

// Changed reports whether the counter has moved since s was taken.
func (c *Counter) Changed(s Stamp) bool {
	return c.Load() != s
}
