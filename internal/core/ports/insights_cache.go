package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// InsightsCache stores the last computed market insights.
// Get returns (nil, nil) on a miss.
type InsightsCache interface {
	Get(ctx context.Context) (*domain.Insights, error)
	Set(ctx context.Context, in *domain.Insights) error
}
