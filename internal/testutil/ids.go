package testutil

import (
	"fmt"
	"sync"
	"time"

	"productivity-tracker/internal/domain"
)

// IDCounter is a deterministic domain.IDSource
type IDCounter struct {
	mu sync.Mutex
	n  int
}

// NextID implements domain.IDSource
func (c *IDCounter) NextID() domain.ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return domain.ID(fmt.Sprintf("id-%03d", c.n))
}

// FixedClock returns a clock function that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
