package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// ListingFilter carries the public search parameters.
type ListingFilter struct {
	SearchTerm string   // case-insensitive match on name
	Type       string   // rent | sale; empty = both
	Offer      bool     // true narrows to offers only
	Furnished  bool     // true narrows to furnished only
	Parking    bool     // true narrows to listings with parking
	City       string   // exact, case-insensitive
	MinPrice   *float64 // regular_price >= MinPrice
	MaxPrice   *float64 // regular_price <= MaxPrice
	SortBy     string   // createdAt | regularPrice
	Ascending  bool
	Limit      int
	Offset     int
}

// ListingRepository is the listing store.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, f ListingFilter) ([]*domain.Listing, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Listing, error)
	ListAll(ctx context.Context) ([]*domain.Listing, error)
}
