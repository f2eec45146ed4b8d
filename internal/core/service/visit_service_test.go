package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

type visitFixture struct {
	svc    *VisitService
	visits *stubVisitRepo
	sink   *recordingSink
}

func newVisitFixture() *visitFixture {
	users := newStubUserRepo(
		&domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser},
		&domain.User{ID: "u2", Username: "bob", Email: "bob@example.com", Role: domain.RoleUser},
		&domain.User{ID: "u3", Username: "carol", Role: domain.RoleUser},
	)
	listings := newStubListingRepo(
		&domain.Listing{ID: "l-bob", Name: "Bob's villa", UserRef: "u2", City: "Goa"},
		&domain.Listing{ID: "l-carol", Name: "Carol's flat", UserRef: "u3", City: "Pune"},
	)
	visits := newStubVisitRepo()
	sink := &recordingSink{}
	return &visitFixture{
		svc:    NewVisitService(visits, listings, users, sink, zerolog.Nop()),
		visits: visits,
		sink:   sink,
	}
}

func TestVisitService_Create(t *testing.T) {
	f := newVisitFixture()
	ctx := context.Background()

	v, err := f.svc.Create(ctx, member, ports.CreateVisitInput{ListingID: "l-bob", VisitDate: "2026-03-01", VisitTime: "10:00"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if v.Status != domain.VisitPending || v.UserID != "u1" {
		t.Fatalf("unexpected request: %+v", v)
	}

	if _, err := f.svc.Create(ctx, member, ports.CreateVisitInput{ListingID: "missing", VisitDate: "d", VisitTime: "t"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound for missing listing, got %v", err)
	}
	if _, err := f.svc.Create(ctx, member, ports.CreateVisitInput{ListingID: "l-bob"}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected BadRequest without date/time, got %v", err)
	}
}

func TestVisitService_List_Scoping(t *testing.T) {
	f := newVisitFixture()
	ctx := context.Background()
	carol := &domain.Identity{ID: "u3", Role: domain.RoleUser}
	bob := &domain.Identity{ID: "u2", Role: domain.RoleUser}

	_, _ = f.svc.Create(ctx, member, ports.CreateVisitInput{ListingID: "l-bob", VisitDate: "d", VisitTime: "t"})
	_, _ = f.svc.Create(ctx, member, ports.CreateVisitInput{ListingID: "l-carol", VisitDate: "d", VisitTime: "t"})
	_, _ = f.svc.Create(ctx, carol, ports.CreateVisitInput{ListingID: "l-bob", VisitDate: "d", VisitTime: "t"})

	tests := []struct {
		name  string
		actor *domain.Identity
		want  int
	}{
		{"requester sees own", member, 2},
		{"owner sees requests on their listing", bob, 2},
		{"owner and requester combined", carol, 2},
		{"admin sees all", admin, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := f.svc.List(ctx, tt.actor)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if len(views) != tt.want {
				t.Fatalf("expected %d requests, got %d", tt.want, len(views))
			}
			for _, v := range views {
				if v.User == nil || v.Listing == nil {
					t.Fatalf("references not expanded: %+v", v)
				}
			}
		})
	}
}

func TestVisitService_Decide(t *testing.T) {
	f := newVisitFixture()
	ctx := context.Background()

	v, _ := f.svc.Create(ctx, member, ports.CreateVisitInput{ListingID: "l-bob", VisitDate: "d", VisitTime: "t"})

	if _, err := f.svc.Decide(ctx, member, v.ID, domain.VisitApproved); err != domain.ErrAdminOnly {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
	if _, err := f.svc.Decide(ctx, admin, v.ID, domain.VisitPending); err != domain.ErrInvalidVisitStatus {
		t.Fatalf("expected ErrInvalidVisitStatus, got %v", err)
	}

	view, err := f.svc.Decide(ctx, admin, v.ID, domain.VisitApproved)
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if view.Status != domain.VisitApproved || view.Listing.Name != "Bob's villa" {
		t.Fatalf("unexpected view: %+v", view)
	}

	alerts := f.sink.all()
	if len(alerts) != 1 {
		t.Fatalf("expected one alert, got %d", len(alerts))
	}
	if alerts[0].UserID != "u1" || alerts[0].Type != domain.AlertVisit ||
		alerts[0].Message != `Your visit request for "Bob's villa" has been approved.` {
		t.Fatalf("unexpected alert: %+v", alerts[0])
	}

	if _, err := f.svc.Decide(ctx, superadmin, v.ID, domain.VisitRejected); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected Conflict on second decision, got %v", err)
	}
	if _, err := f.svc.Decide(ctx, admin, "missing", domain.VisitRejected); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
