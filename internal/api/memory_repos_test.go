package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

// memUsers is a minimal in-process user store for routing tests.
type memUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
	order []string
}

func newMemUsers(seed ...*domain.User) *memUsers {
	r := &memUsers{users: make(map[string]*domain.User)}
	for _, u := range seed {
		c := *u
		r.users[u.ID] = &c
		r.order = append(r.order, u.ID)
	}
	return r
}

func (r *memUsers) get(id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return nil, domain.ErrUserExists
	}
	c := *u
	r.users[u.ID] = &c
	r.order = append(r.order, u.ID)
	return r.get(u.ID)
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return r.get(u.ID)
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, err := r.get(id); err == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUsers) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		if u, err := r.get(id); err == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUsers) ListIDsExcept(_ context.Context, excludeID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, id := range r.order {
		if _, ok := r.users[id]; ok && id != excludeID {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *memUsers) Update(_ context.Context, id string, _ ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *memUsers) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return r.get(id)
}

func (r *memUsers) SetWishlist(_ context.Context, id string, listingIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Wishlist = append([]string(nil), listingIDs...)
	return nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// memListings only backs the admin listing overview.
type memListings struct {
	ports.ListingRepository
	all []*domain.Listing
}

func (r *memListings) ListAll(context.Context) ([]*domain.Listing, error) {
	return r.all, nil
}

type memAudit struct {
	mu      sync.Mutex
	entries []*domain.AuditLogEntry
}

func (r *memAudit) Append(_ context.Context, e *domain.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *e
	c.ID = fmt.Sprintf("log-%d", len(r.entries)+1)
	r.entries = append(r.entries, &c)
	return nil
}

func (r *memAudit) List(context.Context) ([]*domain.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.AuditLogEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		c := *r.entries[i]
		out = append(out, &c)
	}
	return out, nil
}
