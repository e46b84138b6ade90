// Package cache holds in-process read caches.
package cache

import (
	"context"
	"sync"
	"time"

	"orderhub/internal/core/domain/model/kernel"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// AvailableCreditCache is an LRU of available credit per partner with a TTL.
//
// A value loaded while Invalidate ran for the same partner is returned to its
// caller but not stored: the load may have read the balance before the
// invalidating write committed.
type AvailableCreditCache struct {
	mu          sync.Mutex
	entries     *expirable.LRU[string, kernel.Money]
	generations map[string]uint64
}

func NewAvailableCreditCache(size int, ttl time.Duration) *AvailableCreditCache {
	return &AvailableCreditCache{
		entries:     expirable.NewLRU[string, kernel.Money](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

func (c *AvailableCreditCache) GetOrLoad(
	ctx context.Context,
	id kernel.PublicID,
	load func(ctx context.Context) (kernel.Money, error),
) (kernel.Money, error) {
	key := id.String()

	c.mu.Lock()
	if v, ok := c.entries.Get(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	generation := c.generations[key]
	c.mu.Unlock()

	v, err := load(ctx)
	if err != nil {
		return kernel.Money{}, err
	}

	c.mu.Lock()
	if generation == c.generations[key] {
		c.entries.Add(key, v)
	}
	c.mu.Unlock()

	return v, nil
}

func (c *AvailableCreditCache) Invalidate(id kernel.PublicID) {
	c.mu.Lock()
	key := id.String()
	c.generations[key]++
	c.entries.Remove(key)
	c.mu.Unlock()
}

// Len returns the number of live entries.
func (c *AvailableCreditCache) Len() int {
	return c.entries.Len()
}
