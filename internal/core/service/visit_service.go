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

type VisitService struct {
	visits   ports.VisitRequestRepository
	listings ports.ListingRepository
	users    ports.UserRepository
	alerts   ports.AlertSink
	log      zerolog.Logger
	now      func() time.Time
}

func NewVisitService(
	visits ports.VisitRequestRepository,
	listings ports.ListingRepository,
	users ports.UserRepository,
	alerts ports.AlertSink,
	log zerolog.Logger,
) *VisitService {
	return &VisitService{
		visits:   visits,
		listings: listings,
		users:    users,
		alerts:   alerts,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *VisitService) Create(ctx context.Context, acting *domain.Identity, in ports.CreateVisitInput) (*domain.VisitRequest, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.VisitDate) == "" || strings.TrimSpace(in.VisitTime) == "" {
		return nil, &domain.Error{Kind: domain.ErrBadRequest, Msg: "Visit date and time are required"}
	}
	if _, err := s.listings.FindByID(ctx, in.ListingID); err != nil {
		return nil, fmt.Errorf("create visit request: %w", err)
	}

	now := s.now()
	created, err := s.visits.Create(ctx, &domain.VisitRequest{
		UserID:    acting.ID,
		ListingID: in.ListingID,
		VisitDate: strings.TrimSpace(in.VisitDate),
		VisitTime: strings.TrimSpace(in.VisitTime),
		Message:   strings.TrimSpace(in.Message),
		Status:    domain.VisitPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create visit request: %w", err)
	}

	s.log.Info().Str("visit_id", created.ID).Str("user_id", acting.ID).Str("listing_id", in.ListingID).Msg("visit requested")
	return created, nil
}

// List returns every request for admins. Other callers see the requests they
// sent plus the requests made for listings they own.
func (s *VisitService) List(ctx context.Context, acting *domain.Identity) ([]*domain.VisitRequestView, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}

	var (
		requests []*domain.VisitRequest
		err      error
	)
	if policy.IsAdminOrSuperadmin(acting) == nil {
		requests, err = s.visits.ListAll(ctx)
	} else {
		var owned []*domain.Listing
		owned, err = s.listings.ListByOwner(ctx, acting.ID)
		if err != nil {
			return nil, fmt.Errorf("list visit requests: %w", err)
		}
		ids := make([]string, 0, len(owned))
		for _, l := range owned {
			ids = append(ids, l.ID)
		}
		requests, err = s.visits.ListForUser(ctx, acting.ID, ids)
	}
	if err != nil {
		return nil, fmt.Errorf("list visit requests: %w", err)
	}
	return s.expand(ctx, requests)
}

// Decide approves or rejects a pending request and notifies the requester.
func (s *VisitService) Decide(ctx context.Context, acting *domain.Identity, id string, status domain.VisitStatus) (*domain.VisitRequestView, error) {
	if err := policy.IsAdminOrSuperadmin(acting); err != nil {
		return nil, err
	}
	if !status.IsDecision() {
		return nil, domain.ErrInvalidVisitStatus
	}

	decided, err := s.visits.Decide(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("decide visit request: %w", err)
	}
	metrics.VisitStatusChangesTotal.WithLabelValues(string(status)).Inc()

	views, err := s.expand(ctx, []*domain.VisitRequest{decided})
	if err != nil {
		return nil, err
	}
	view := views[0]

	listingName := "your selected property"
	if view.Listing != nil && view.Listing.Name != "" {
		listingName = view.Listing.Name
	}
	s.alerts.Publish(ctx, []*domain.Alert{{
		UserID:    decided.UserID,
		Title:     "Visit Request Update",
		Message:   fmt.Sprintf("Your visit request for \"%s\" has been %s.", listingName, status),
		Type:      domain.AlertVisit,
		CreatedAt: s.now(),
	}})

	s.log.Info().Str("visit_id", id).Str("actor_id", acting.ID).Str("status", string(status)).Msg("visit request decided")
	return view, nil
}

func (s *VisitService) expand(ctx context.Context, requests []*domain.VisitRequest) ([]*domain.VisitRequestView, error) {
	userIDs := make([]string, 0, len(requests))
	listingIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		userIDs = append(userIDs, r.UserID)
		listingIDs = append(listingIDs, r.ListingID)
	}

	users := map[string]*domain.UserSummary{}
	listings := map[string]*domain.ListingSummary{}
	if len(requests) > 0 {
		found, err := s.users.FindByIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("expand visit requests: %w", err)
		}
		for _, u := range found {
			users[u.ID] = u.Summary()
		}
		ls, err := s.listings.FindByIDs(ctx, listingIDs)
		if err != nil {
			return nil, fmt.Errorf("expand visit requests: %w", err)
		}
		for _, l := range ls {
			listings[l.ID] = &domain.ListingSummary{
				ID:           l.ID,
				Name:         l.Name,
				UserRef:      l.UserRef,
				Address:      l.Address,
				RegularPrice: l.RegularPrice,
			}
		}
	}

	views := make([]*domain.VisitRequestView, 0, len(requests))
	for _, r := range requests {
		views = append(views, &domain.VisitRequestView{
			ID:        r.ID,
			User:      users[r.UserID],
			Listing:   listings[r.ListingID],
			VisitDate: r.VisitDate,
			VisitTime: r.VisitTime,
			Message:   r.Message,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return views, nil
}
