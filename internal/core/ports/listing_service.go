package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

type ListingService interface {
	Create(ctx context.Context, acting *domain.Identity, l *domain.Listing) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Update(ctx context.Context, acting *domain.Identity, id string, l *domain.Listing) (*domain.Listing, error)
	Delete(ctx context.Context, acting *domain.Identity, id string) error
	Search(ctx context.Context, f ListingFilter) ([]*domain.Listing, error)
	ListByOwner(ctx context.Context, acting *domain.Identity, ownerID string) ([]*domain.Listing, error)
}

type WishlistService interface {
	// Toggle adds listingID to the caller's wishlist or removes it if present,
	// returning the resulting wishlist.
	Toggle(ctx context.Context, acting *domain.Identity, listingID string) ([]string, error)
	List(ctx context.Context, acting *domain.Identity) ([]*domain.Listing, error)
}
