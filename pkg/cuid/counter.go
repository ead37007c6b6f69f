package cuid

import "sync/atomic"

// Counter yields strictly increasing values. Implementations shared between
// goroutines must never hand out the same value twice.
type Counter interface {
	Next() uint64
}

// CounterFunc adapts a plain function to Counter.
type CounterFunc func() uint64

// Next calls f.
func (f CounterFunc) Next() uint64 { return f() }

// AtomicCounter is a Counter backed by an atomic integer.
type AtomicCounter struct {
	n atomic.Uint64
}

// NewCounter returns a counter whose first Next call yields start.
func NewCounter(start uint64) *AtomicCounter {
	c := &AtomicCounter{}
	c.n.Store(start)
	return c
}

// Next returns the current value and advances the counter by one.
func (c *AtomicCounter) Next() uint64 {
	return c.n.Add(1) - 1
}
