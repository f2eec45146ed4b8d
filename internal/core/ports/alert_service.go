package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

type AlertService interface {
	List(ctx context.Context, acting *domain.Identity) ([]*domain.Alert, error)
	MarkRead(ctx context.Context, acting *domain.Identity, id string) (*domain.Alert, error)
}

type SendContactInput struct {
	Name    string
	Email   string
	Message string
	Staff   string
}

type ContactService interface {
	Send(ctx context.Context, acting *domain.Identity, in SendContactInput) (*domain.ContactMessage, error)
	ListMine(ctx context.Context, acting *domain.Identity) ([]*domain.ContactMessage, error)
	ListAll(ctx context.Context, acting *domain.Identity) ([]*domain.ContactMessage, error)
}

type InsightsService interface {
	Get(ctx context.Context) (*domain.Insights, error)
}
