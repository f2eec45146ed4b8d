package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/api/metrics"
	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/policy"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

const (
	DefaultSearchLimit = 9
	MaxSearchLimit     = 100

	SortCreatedAt    = "createdAt"
	SortRegularPrice = "regularPrice"
)

type ListingService struct {
	listings ports.ListingRepository
	users    ports.UserRepository
	alerts   ports.AlertSink
	log      zerolog.Logger
	now      func() time.Time
}

func NewListingService(
	listings ports.ListingRepository,
	users ports.UserRepository,
	alerts ports.AlertSink,
	log zerolog.Logger,
) *ListingService {
	return &ListingService{
		listings: listings,
		users:    users,
		alerts:   alerts,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a listing owned by the caller. When the listing names a city
// every other user receives a listing alert; alert delivery never fails the
// creation.
func (s *ListingService) Create(ctx context.Context, acting *domain.Identity, l *domain.Listing) (*domain.Listing, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	if err := validateListing(l); err != nil {
		return nil, err
	}

	now := s.now()
	l.ID = ""
	l.UserRef = acting.ID
	l.City = strings.TrimSpace(l.City)
	l.CreatedAt = now
	l.UpdatedAt = now

	created, err := s.listings.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	metrics.ListingsCreatedTotal.WithLabelValues(created.Type).Inc()

	s.log.Info().
		Str("listing_id", created.ID).
		Str("user_id", acting.ID).
		Str("city", created.City).
		Msg("listing created")

	if created.City != "" {
		s.broadcastNewListing(ctx, acting.ID, created)
	}
	return created, nil
}

func (s *ListingService) broadcastNewListing(ctx context.Context, creatorID string, l *domain.Listing) {
	recipients, err := s.users.ListIDsExcept(ctx, creatorID)
	if err != nil {
		s.log.Warn().Err(err).Str("listing_id", l.ID).Msg("listing alert recipients lookup failed")
		return
	}
	if len(recipients) == 0 {
		return
	}

	now := s.now()
	alerts := make([]*domain.Alert, 0, len(recipients))
	for _, id := range recipients {
		alerts = append(alerts, &domain.Alert{
			UserID:    id,
			Title:     "New Property Added",
			Message:   fmt.Sprintf("A new property has been added in %s.", l.City),
			Type:      domain.AlertListing,
			CreatedAt: now,
		})
	}
	s.alerts.Publish(ctx, alerts)
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	l, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// Update replaces the mutable fields of a listing the caller owns.
func (s *ListingService) Update(ctx context.Context, acting *domain.Identity, id string, l *domain.Listing) (*domain.Listing, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	existing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	if err := policy.IsResourceOwner(acting, existing); err != nil {
		return nil, err
	}
	if err := validateListing(l); err != nil {
		return nil, err
	}

	l.ID = existing.ID
	l.UserRef = existing.UserRef
	l.City = strings.TrimSpace(l.City)
	l.CreatedAt = existing.CreatedAt
	l.UpdatedAt = s.now()

	updated, err := s.listings.Update(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	s.log.Info().Str("listing_id", id).Str("user_id", acting.ID).Msg("listing updated")
	return updated, nil
}

func (s *ListingService) Delete(ctx context.Context, acting *domain.Identity, id string) error {
	if err := policy.IsAuthenticated(acting); err != nil {
		return err
	}
	existing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if err := policy.IsResourceOwner(acting, existing); err != nil {
		return err
	}
	if err := s.listings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	s.log.Info().Str("listing_id", id).Str("user_id", acting.ID).Msg("listing deleted")
	return nil
}

// Search runs the public listing search with normalized paging and sort.
func (s *ListingService) Search(ctx context.Context, f ports.ListingFilter) ([]*domain.Listing, error) {
	f = NormalizeFilter(f)
	listings, err := s.listings.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return listings, nil
}

func (s *ListingService) ListByOwner(ctx context.Context, acting *domain.Identity, ownerID string) ([]*domain.Listing, error) {
	if err := policy.IsSelf(acting, ownerID); err != nil {
		return nil, err
	}
	listings, err := s.listings.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list user listings: %w", err)
	}
	return listings, nil
}

// NormalizeFilter applies default and maximum paging, a known sort key and a
// known listing type.
func NormalizeFilter(f ports.ListingFilter) ports.ListingFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultSearchLimit
	}
	if f.Limit > MaxSearchLimit {
		f.Limit = MaxSearchLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.SortBy != SortRegularPrice {
		f.SortBy = SortCreatedAt
	}
	if f.Type != domain.ListingTypeRent && f.Type != domain.ListingTypeSale {
		f.Type = ""
	}
	f.SearchTerm = strings.TrimSpace(f.SearchTerm)
	f.City = strings.TrimSpace(f.City)
	return f
}

func validateListing(l *domain.Listing) error {
	if l == nil || strings.TrimSpace(l.Name) == "" {
		return &domain.Error{Kind: domain.ErrBadRequest, Msg: "Listing name is required"}
	}
	if l.Type != domain.ListingTypeRent && l.Type != domain.ListingTypeSale {
		return &domain.Error{Kind: domain.ErrBadRequest, Msg: "Listing type must be rent or sale"}
	}
	if l.RegularPrice < 0 || l.DiscountPrice < 0 {
		return &domain.Error{Kind: domain.ErrBadRequest, Msg: "Prices cannot be negative"}
	}
	if l.Offer && l.DiscountPrice > l.RegularPrice {
		return &domain.Error{Kind: domain.ErrBadRequest, Msg: "Discount price must be lower than regular price"}
	}
	return nil
}
