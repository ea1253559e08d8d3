package store

import "sync"

// Counter is a process-wide signed integer.
//
// There is no bounds checking: past math.MaxInt64 the value wraps to
// math.MinInt64 and vice versa, following Go's two's complement arithmetic.
type Counter struct {
	mu sync.Mutex
	n  int64
}

// NewCounter returns a counter starting at start.
func NewCounter(start int64) *Counter {
	return &Counter{n: start}
}

// Increment adds one and returns the new value.
func (c *Counter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n
}

// Decrement subtracts one and returns the new value.
func (c *Counter) Decrement() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n--
	return c.n
}

// Value returns the current value.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
