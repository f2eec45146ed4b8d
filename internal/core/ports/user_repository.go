package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// UserUpdate carries the self-service profile fields. Nil means unchanged.
type UserUpdate struct {
	Username     *string
	Email        *string
	Phone        *string
	Avatar       *string
	AccountType  *domain.AccountType
	PasswordHash *string
}

// UserRepository is the identity & credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users that still exist; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// ListIDsExcept returns the ids of every user other than excludeID.
	ListIDsExcept(ctx context.Context, excludeID string) ([]string, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	SetWishlist(ctx context.Context, id string, listingIDs []string) error
	Delete(ctx context.Context, id string) error
}
