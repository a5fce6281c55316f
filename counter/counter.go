package counter

import (
	"sync/atomic"
)

// ICounter is a count that can be read while a sweep advances it.
type ICounter interface {
	Value() uint64
}

// Counter is a monotonically increasing number owned by a single goroutine.
type Counter struct {
	value uint64
}

// Inc increments the counter and returns the new value.
func (c *Counter) Inc() uint64 {
	c.value++
	return c.value
}

// Value returns the current count.
func (c *Counter) Value() uint64 {
	return c.value
}

// AtomicCounter will increment a number safely in concurrent environment.
type AtomicCounter struct {
	value atomic.Uint64
}

// Add adds delta atomically and returns the new value.
func (c *AtomicCounter) Add(delta uint64) uint64 {
	return c.value.Add(delta)
}

// Value returns the current count atomically.
func (c *AtomicCounter) Value() uint64 {
	return c.value.Load()
}
