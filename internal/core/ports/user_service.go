package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// UpdateUserInput carries profile changes; empty strings mean unchanged.
type UpdateUserInput struct {
	Username    string
	Email       string
	Phone       string
	Avatar      string
	AccountType string
	Password    string
}

type UserService interface {
	GetUser(ctx context.Context, acting *domain.Identity, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, acting *domain.Identity, id string, in UpdateUserInput) (*domain.User, error)
	DeleteSelf(ctx context.Context, acting *domain.Identity, id string) error
}
