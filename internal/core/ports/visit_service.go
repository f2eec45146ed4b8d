package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

type CreateVisitInput struct {
	ListingID string
	VisitDate string
	VisitTime string
	Message   string
}

type VisitService interface {
	Create(ctx context.Context, acting *domain.Identity, in CreateVisitInput) (*domain.VisitRequest, error)
	List(ctx context.Context, acting *domain.Identity) ([]*domain.VisitRequestView, error)
	Decide(ctx context.Context, acting *domain.Identity, id string, status domain.VisitStatus) (*domain.VisitRequestView, error)
}
