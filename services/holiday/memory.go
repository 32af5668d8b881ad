package holiday

import (
	"context"
	"sync"
	"time"

	"workdate/models"
)

// MemoryCache is an in-process Cache for deployments without redis. The
// entry is replaced wholesale on Set and never partially mutated.
type MemoryCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	fetchedAt time.Time
	set       models.HolidaySet
	now       func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context) (models.HolidaySet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.set, true
}

func (c *MemoryCache) Set(_ context.Context, set models.HolidaySet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = set
	c.fetchedAt = c.now()
	return nil
}
