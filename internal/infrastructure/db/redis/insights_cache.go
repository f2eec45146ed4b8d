package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// InsightsKey is bumped whenever the cached payload shape changes.
const InsightsKey = "insights:v1"

const defaultInsightsTTL = 5 * time.Minute

// InsightsCache stores the computed market insights as a JSON string.
type InsightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightsCache wraps client. A non-positive ttl falls back to five minutes.
func NewInsightsCache(client *redis.Client, ttl time.Duration) *InsightsCache {
	if ttl <= 0 {
		ttl = defaultInsightsTTL
	}
	return &InsightsCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) when nothing is cached.
func (c *InsightsCache) Get(ctx context.Context) (*domain.Insights, error) {
	raw, err := c.client.Get(ctx, InsightsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insights cache get: %w", err)
	}

	var out domain.Insights
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("insights cache decode: %w", err)
	}
	return &out, nil
}

func (c *InsightsCache) Set(ctx context.Context, in *domain.Insights) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("insights cache encode: %w", err)
	}
	if err := c.client.Set(ctx, InsightsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insights cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached insights.
func (c *InsightsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, InsightsKey).Err(); err != nil {
		return fmt.Errorf("insights cache invalidate: %w", err)
	}
	return nil
}
