package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/api/metrics"
	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/policy"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

const (
	actionDeleteUser = "delete_user"
	actionChangeRole = "change_role"
)

// AdminService implements the moderation operations. The primary mutation and
// the audit append are independent writes: if the append fails the mutation
// stays applied and the call reports an internal error.
type AdminService struct {
	users    ports.UserRepository
	listings ports.ListingRepository
	audit    ports.AuditLogRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewAdminService(
	users ports.UserRepository,
	listings ports.ListingRepository,
	audit ports.AuditLogRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:    users,
		listings: listings,
		audit:    audit,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AdminService) ListUsers(ctx context.Context, acting *domain.Identity) ([]*domain.User, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *AdminService) ListListings(ctx context.Context, acting *domain.Identity) ([]*domain.Listing, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// DeleteUser removes a regular user account and records a DELETE_USER entry.
func (s *AdminService) DeleteUser(ctx context.Context, acting *domain.Identity, targetID string) (res *ports.DeleteUserResult, err error) {
	defer func() { metrics.AdminActionsTotal.WithLabelValues(actionDeleteUser, outcomeOf(err)).Inc() }()

	if err := policy.IsAdminOrSuperadmin(acting); err != nil {
		return nil, err
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	if target.Role.IsPrivileged() {
		return nil, domain.ErrProtectedAccount
	}

	// The row is gone after Delete; keep what the audit entry needs.
	deleted := &ports.DeleteUserResult{DeletedID: target.ID, DeletedUsername: target.Username}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	entry := &domain.AuditLogEntry{
		ActionBy:     acting.ID,
		ActionOn:     deleted.DeletedID,
		ActionOnName: deleted.DeletedUsername,
		ActionType:   domain.ActionDeleteUser,
		Message:      fmt.Sprintf("User %s deleted by %s", deleted.DeletedUsername, acting.Role),
		CreatedAt:    s.now(),
	}
	if err := s.appendAudit(ctx, entry); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().
		Str("actor_id", acting.ID).
		Str("user_id", deleted.DeletedID).
		Str("username", deleted.DeletedUsername).
		Msg("user deleted")

	return deleted, nil
}

// ChangeUserRole moves a user between the user and admin roles and records a
// CHANGE_ROLE entry. Setting the current role again is persisted and logged.
func (s *AdminService) ChangeUserRole(ctx context.Context, acting *domain.Identity, targetID string, newRole domain.Role) (updated *domain.User, err error) {
	defer func() { metrics.AdminActionsTotal.WithLabelValues(actionChangeRole, outcomeOf(err)).Inc() }()

	if err := policy.IsSuperadmin(acting); err != nil {
		return nil, err
	}
	if newRole == "" {
		return nil, domain.ErrRoleRequired
	}
	if !newRole.IsAssignable() {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}
	if target.Role == domain.RoleSuperadmin {
		return nil, domain.ErrSuperadminLocked
	}

	oldRole := target.Role
	updated, err = s.users.UpdateRole(ctx, target.ID, newRole)
	if err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}

	entry := &domain.AuditLogEntry{
		ActionBy:     acting.ID,
		ActionOn:     target.ID,
		ActionOnName: target.Username,
		ActionType:   domain.ActionChangeRole,
		Message:      fmt.Sprintf("Role changed from %s to %s", oldRole, newRole),
		CreatedAt:    s.now(),
	}
	if err := s.appendAudit(ctx, entry); err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}

	s.log.Info().
		Str("actor_id", acting.ID).
		Str("user_id", target.ID).
		Str("old_role", string(oldRole)).
		Str("new_role", string(newRole)).
		Msg("user role changed")

	return updated, nil
}

// ListLogs returns the audit log newest first with user references expanded.
// References to users that no longer exist expand to nil.
func (s *AdminService) ListLogs(ctx context.Context, acting *domain.Identity) ([]*domain.AuditLogView, error) {
	if err := policy.IsAdminOrSuperadmin(acting); err != nil {
		return nil, err
	}

	entries, err := s.audit.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	ids := make([]string, 0, len(entries)*2)
	seen := make(map[string]struct{}, len(entries)*2)
	for _, e := range entries {
		for _, id := range []string{e.ActionBy, e.ActionOn} {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	byID := make(map[string]*domain.UserSummary, len(ids))
	if len(ids) > 0 {
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list logs: expand users: %w", err)
		}
		for _, u := range users {
			byID[u.ID] = u.Summary()
		}
	}

	views := make([]*domain.AuditLogView, 0, len(entries))
	for _, e := range entries {
		views = append(views, &domain.AuditLogView{
			ID:           e.ID,
			ActionBy:     byID[e.ActionBy],
			ActionOn:     byID[e.ActionOn],
			ActionOnName: e.ActionOnName,
			ActionType:   e.ActionType,
			Message:      e.Message,
			CreatedAt:    e.CreatedAt,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

func (s *AdminService) appendAudit(ctx context.Context, entry *domain.AuditLogEntry) error {
	if err := s.audit.Append(ctx, entry); err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		s.log.Error().
			Err(err).
			Str("actor_id", entry.ActionBy).
			Str("user_id", entry.ActionOn).
			Str("action", string(entry.ActionType)).
			Msg("audit append failed after mutation was applied")
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrForbidden):
		return "denied"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrBadRequest):
		return "invalid"
	default:
		return "error"
	}
}
