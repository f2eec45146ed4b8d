package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// AlertRepository persists per-user alerts.
type AlertRepository interface {
	InsertMany(ctx context.Context, alerts []*domain.Alert) error
	FindByID(ctx context.Context, id string) (*domain.Alert, error)
	// ListByUser returns the user's alerts, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Alert, error)
	MarkRead(ctx context.Context, id string) (*domain.Alert, error)
}

// AlertSink accepts alerts for fire-and-forget delivery. Publish never
// reports delivery failures to the caller.
type AlertSink interface {
	Publish(ctx context.Context, alerts []*domain.Alert)
}
