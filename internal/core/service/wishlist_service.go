package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/policy"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

type WishlistService struct {
	users    ports.UserRepository
	listings ports.ListingRepository
	log      zerolog.Logger
}

func NewWishlistService(users ports.UserRepository, listings ports.ListingRepository, log zerolog.Logger) *WishlistService {
	return &WishlistService{users: users, listings: listings, log: log}
}

// Toggle adds listingID to the caller's wishlist, or removes it when already
// present. Only existing listings can be added.
func (s *WishlistService) Toggle(ctx context.Context, acting *domain.Identity, listingID string) ([]string, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, acting.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle wishlist: %w", err)
	}

	next := make([]string, 0, len(user.Wishlist)+1)
	if user.HasWishlisted(listingID) {
		for _, id := range user.Wishlist {
			if id != listingID {
				next = append(next, id)
			}
		}
	} else {
		if _, err := s.listings.FindByID(ctx, listingID); err != nil {
			return nil, fmt.Errorf("toggle wishlist: %w", err)
		}
		next = append(next, user.Wishlist...)
		next = append(next, listingID)
	}

	if err := s.users.SetWishlist(ctx, acting.ID, next); err != nil {
		return nil, fmt.Errorf("toggle wishlist: %w", err)
	}
	return next, nil
}

// List returns the caller's wishlisted listings in wishlist order, skipping
// listings that have since been deleted.
func (s *WishlistService) List(ctx context.Context, acting *domain.Identity) ([]*domain.Listing, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, acting.ID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	if len(user.Wishlist) == 0 {
		return []*domain.Listing{}, nil
	}

	found, err := s.listings.FindByIDs(ctx, user.Wishlist)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	byID := make(map[string]*domain.Listing, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}
	out := make([]*domain.Listing, 0, len(found))
	for _, id := range user.Wishlist {
		if l, ok := byID[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}
