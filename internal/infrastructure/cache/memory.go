// Package cache holds the in-process insights cache used when Redis is not
// configured.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

const insightsKey = "insights"

// MemoryInsightsCache keeps the last insights in process memory. Each replica
// holds its own copy.
type MemoryInsightsCache struct {
	store *gocache.Cache
}

func NewMemoryInsightsCache(ttl time.Duration) *MemoryInsightsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MemoryInsightsCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *MemoryInsightsCache) Get(context.Context) (*domain.Insights, error) {
	v, ok := c.store.Get(insightsKey)
	if !ok {
		return nil, nil
	}
	return v.(*domain.Insights), nil
}

func (c *MemoryInsightsCache) Set(_ context.Context, in *domain.Insights) error {
	c.store.SetDefault(insightsKey, in)
	return nil
}

func (c *MemoryInsightsCache) Invalidate(context.Context) error {
	c.store.Delete(insightsKey)
	return nil
}
