package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Wishlist = append([]string(nil), u.Wishlist...)
	return &clone
}

// ── users ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	order     []string
	seq       int
	deleteErr error
}

func newStubUserRepo(seed ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range seed {
		if _, err := r.Create(context.Background(), u); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *stubUserRepo) taken(u *domain.User, skipID string) bool {
	for id, other := range r.users {
		if id == skipID {
			continue
		}
		if other.Username == u.Username ||
			(u.Email != "" && other.Email == u.Email) ||
			(u.Phone != "" && other.Phone == u.Phone) {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(u, "") {
		return nil, domain.ErrUserExists
	}
	c := cloneUser(u)
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[c.ID] = c
	r.order = append(r.order, c.ID)
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListIDsExcept(_ context.Context, excludeID string) ([]string, error) {
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

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	next := cloneUser(u)
	if upd.Username != nil {
		next.Username = *upd.Username
	}
	if upd.Email != nil {
		next.Email = *upd.Email
	}
	if upd.Phone != nil {
		next.Phone = *upd.Phone
	}
	if upd.Avatar != nil {
		next.Avatar = *upd.Avatar
	}
	if upd.AccountType != nil {
		next.AccountType = *upd.AccountType
	}
	if upd.PasswordHash != nil {
		next.PasswordHash = *upd.PasswordHash
	}
	if r.taken(next, id) {
		return nil, domain.ErrUserExists
	}
	r.users[id] = next
	return cloneUser(next), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetWishlist(_ context.Context, id string, listingIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Wishlist = append([]string(nil), listingIDs...)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ── listings ──────────────────────────────────────────────────────────────────

type stubListingRepo struct {
	mu         sync.Mutex
	listings   map[string]*domain.Listing
	order      []string
	seq        int
	lastFilter ports.ListingFilter
}

func newStubListingRepo(seed ...*domain.Listing) *stubListingRepo {
	r := &stubListingRepo{listings: make(map[string]*domain.Listing)}
	for _, l := range seed {
		_, _ = r.Create(context.Background(), l)
	}
	return r
}

func (r *stubListingRepo) Create(_ context.Context, l *domain.Listing) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *l
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("listing-%d", r.seq)
	}
	r.listings[c.ID] = &c
	r.order = append(r.order, c.ID)
	out := c
	return &out, nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	c := *l
	return &c, nil
}

func (r *stubListingRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, id := range ids {
		if l, ok := r.listings[id]; ok {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *stubListingRepo) Update(_ context.Context, l *domain.Listing) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[l.ID]; !ok {
		return nil, domain.ErrListingNotFound
	}
	c := *l
	r.listings[l.ID] = &c
	out := c
	return &out, nil
}

func (r *stubListingRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *stubListingRepo) Search(_ context.Context, f ports.ListingFilter) ([]*domain.Listing, error) {
	r.mu.Lock()
	r.lastFilter = f
	r.mu.Unlock()
	all, _ := r.ListAll(context.Background())
	var out []*domain.Listing
	for _, l := range all {
		if f.City != "" && !strings.EqualFold(l.City, f.City) {
			continue
		}
		if f.Type != "" && l.Type != f.Type {
			continue
		}
		out = append(out, l)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *stubListingRepo) ListByOwner(_ context.Context, userID string) ([]*domain.Listing, error) {
	all, _ := r.ListAll(context.Background())
	var out []*domain.Listing
	for _, l := range all {
		if l.UserRef == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubListingRepo) ListAll(_ context.Context) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Listing
	for _, id := range r.order {
		if l, ok := r.listings[id]; ok {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

// ── audit ─────────────────────────────────────────────────────────────────────

type stubAuditRepo struct {
	mu        sync.Mutex
	entries   []*domain.AuditLogEntry
	appendErr error
}

func (r *stubAuditRepo) Append(_ context.Context, e *domain.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	c := *e
	c.ID = fmt.Sprintf("log-%d", len(r.entries)+1)
	r.entries = append(r.entries, &c)
	return nil
}

// List returns entries in insertion order so callers must sort themselves.
func (r *stubAuditRepo) List(_ context.Context) ([]*domain.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.AuditLogEntry, 0, len(r.entries))
	for _, e := range r.entries {
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

// ── visits ────────────────────────────────────────────────────────────────────

type stubVisitRepo struct {
	mu     sync.Mutex
	visits map[string]*domain.VisitRequest
	order  []string
}

func newStubVisitRepo(seed ...*domain.VisitRequest) *stubVisitRepo {
	r := &stubVisitRepo{visits: make(map[string]*domain.VisitRequest)}
	for _, v := range seed {
		_, _ = r.Create(context.Background(), v)
	}
	return r
}

func (r *stubVisitRepo) Create(_ context.Context, v *domain.VisitRequest) (*domain.VisitRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *v
	if c.ID == "" {
		c.ID = fmt.Sprintf("visit-%d", len(r.order)+1)
	}
	r.visits[c.ID] = &c
	r.order = append(r.order, c.ID)
	out := c
	return &out, nil
}

func (r *stubVisitRepo) FindByID(_ context.Context, id string) (*domain.VisitRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.visits[id]
	if !ok {
		return nil, domain.ErrVisitNotFound
	}
	c := *v
	return &c, nil
}

func (r *stubVisitRepo) Decide(_ context.Context, id string, status domain.VisitStatus) (*domain.VisitRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.visits[id]
	if !ok {
		return nil, domain.ErrVisitNotFound
	}
	if v.Status != domain.VisitPending {
		return nil, domain.ErrVisitAlreadyDecided
	}
	v.Status = status
	c := *v
	return &c, nil
}

func (r *stubVisitRepo) ListForUser(_ context.Context, userID string, listingIDs []string) ([]*domain.VisitRequest, error) {
	owned := make(map[string]bool, len(listingIDs))
	for _, id := range listingIDs {
		owned[id] = true
	}
	all, _ := r.ListAll(context.Background())
	var out []*domain.VisitRequest
	for _, v := range all {
		if v.UserID == userID || owned[v.ListingID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *stubVisitRepo) ListAll(_ context.Context) ([]*domain.VisitRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.VisitRequest
	for _, id := range r.order {
		c := *r.visits[id]
		out = append(out, &c)
	}
	return out, nil
}

// ── alerts ────────────────────────────────────────────────────────────────────

type stubAlertRepo struct {
	mu        sync.Mutex
	alerts    []*domain.Alert
	insertErr error
}

func (r *stubAlertRepo) InsertMany(_ context.Context, alerts []*domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, a := range alerts {
		c := *a
		if c.ID == "" {
			c.ID = fmt.Sprintf("alert-%d", len(r.alerts)+1)
		}
		r.alerts = append(r.alerts, &c)
	}
	return nil
}

func (r *stubAlertRepo) FindByID(_ context.Context, id string) (*domain.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alerts {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, domain.ErrAlertNotFound
}

func (r *stubAlertRepo) ListByUser(_ context.Context, userID string) ([]*domain.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Alert
	for i := len(r.alerts) - 1; i >= 0; i-- {
		if r.alerts[i].UserID == userID {
			c := *r.alerts[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *stubAlertRepo) MarkRead(_ context.Context, id string) (*domain.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alerts {
		if a.ID == id {
			a.IsRead = true
			c := *a
			return &c, nil
		}
	}
	return nil, domain.ErrAlertNotFound
}

// recordingSink captures published alerts instead of delivering them.
type recordingSink struct {
	mu        sync.Mutex
	published []*domain.Alert
}

func (s *recordingSink) Publish(_ context.Context, alerts []*domain.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, alerts...)
}

func (s *recordingSink) all() []*domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Alert(nil), s.published...)
}

// ── contacts ──────────────────────────────────────────────────────────────────

type stubContactRepo struct {
	mu       sync.Mutex
	messages []*domain.ContactMessage
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *m
	c.ID = fmt.Sprintf("contact-%d", len(r.messages)+1)
	r.messages = append(r.messages, &c)
	out := c
	return &out, nil
}

func (r *stubContactRepo) ListBySender(_ context.Context, userID string) ([]*domain.ContactMessage, error) {
	all, _ := r.ListAll(context.Background())
	var out []*domain.ContactMessage
	for _, m := range all {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubContactRepo) ListAll(_ context.Context) ([]*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ContactMessage
	for i := len(r.messages) - 1; i >= 0; i-- {
		c := *r.messages[i]
		out = append(out, &c)
	}
	return out, nil
}

// ── clock ─────────────────────────────────────────────────────────────────────

// tickingClock returns a clock that advances one second per call.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Second)
		return cur
	}
}
