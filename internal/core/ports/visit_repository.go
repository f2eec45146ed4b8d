package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// VisitRequestRepository is the visit-request store.
type VisitRequestRepository interface {
	Create(ctx context.Context, v *domain.VisitRequest) (*domain.VisitRequest, error)
	FindByID(ctx context.Context, id string) (*domain.VisitRequest, error)
	// Decide moves a pending request to status. It returns
	// domain.ErrVisitAlreadyDecided when the request is no longer pending.
	Decide(ctx context.Context, id string, status domain.VisitStatus) (*domain.VisitRequest, error)
	// ListForUser returns requests sent by userID or made for any of listingIDs.
	ListForUser(ctx context.Context, userID string, listingIDs []string) ([]*domain.VisitRequest, error)
	ListAll(ctx context.Context) ([]*domain.VisitRequest, error)
}
