package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

func TestMemoryInsightsCache(t *testing.T) {
	c := NewMemoryInsightsCache(50 * time.Millisecond)
	ctx := context.Background()

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	in := &domain.Insights{TrendingLocations: []domain.CityVisits{{City: "Goa", Visits: 3}}}
	require.NoError(t, c.Set(ctx, in))

	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Same(t, in, got)

	require.NoError(t, c.Invalidate(ctx))
	got, _ = c.Get(ctx)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, in))
	time.Sleep(80 * time.Millisecond)
	got, _ = c.Get(ctx)
	assert.Nil(t, got, "entry should expire after the ttl")
}
