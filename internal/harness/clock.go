package harness

import "sync/atomic"

// Clock is the monotonic logical clock that stamps trace events.
//
// Trace ordering never depends on wall-clock time, so a suite replayed
// later yields the same seq values. The first call to Next returns 1.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
type Clock struct {
	seq atomic.Int64
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last issued sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

// Reset rewinds the clock so the next call to Next returns 1.
func (c *Clock) Reset() {
	c.seq.Store(0)
}
