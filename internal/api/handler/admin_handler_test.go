package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

type stubAdminService struct {
	listUsersFn    func(ctx context.Context, acting *domain.Identity) ([]*domain.User, error)
	listListingsFn func(ctx context.Context, acting *domain.Identity) ([]*domain.Listing, error)
	deleteUserFn   func(ctx context.Context, acting *domain.Identity, targetID string) (*ports.DeleteUserResult, error)
	changeRoleFn   func(ctx context.Context, acting *domain.Identity, targetID string, role domain.Role) (*domain.User, error)
	listLogsFn     func(ctx context.Context, acting *domain.Identity) ([]*domain.AuditLogView, error)
}

func (s *stubAdminService) ListUsers(ctx context.Context, acting *domain.Identity) ([]*domain.User, error) {
	return s.listUsersFn(ctx, acting)
}

func (s *stubAdminService) ListListings(ctx context.Context, acting *domain.Identity) ([]*domain.Listing, error) {
	return s.listListingsFn(ctx, acting)
}

func (s *stubAdminService) DeleteUser(ctx context.Context, acting *domain.Identity, targetID string) (*ports.DeleteUserResult, error) {
	return s.deleteUserFn(ctx, acting, targetID)
}

func (s *stubAdminService) ChangeUserRole(ctx context.Context, acting *domain.Identity, targetID string, role domain.Role) (*domain.User, error) {
	return s.changeRoleFn(ctx, acting, targetID, role)
}

func (s *stubAdminService) ListLogs(ctx context.Context, acting *domain.Identity) ([]*domain.AuditLogView, error) {
	return s.listLogsFn(ctx, acting)
}

func TestAdminHandler_DeleteUser_Success(t *testing.T) {
	stub := &stubAdminService{
		deleteUserFn: func(ctx context.Context, acting *domain.Identity, targetID string) (*ports.DeleteUserResult, error) {
			if acting != adminID || targetID != "u2" {
				t.Fatalf("unexpected args: %+v %s", acting, targetID)
			}
			return &ports.DeleteUserResult{DeletedID: "u2", DeletedUsername: "bob"}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(testRequest{
		method:   http.MethodDelete,
		target:   "/api/admin/delete/u2",
		identity: adminID,
		params:   map[string]string{"id": "u2"},
	})
	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	mustStatus(t, rec, http.StatusOK)
	body := decode(t, rec)
	if body["success"] != true || body["deletedId"] != "u2" || body["deletedUsername"] != "bob" {
		t.Fatalf("unexpected payload: %+v", body)
	}
}

func TestAdminHandler_DeleteUser_ProtectedPassesThrough(t *testing.T) {
	stub := &stubAdminService{
		deleteUserFn: func(ctx context.Context, acting *domain.Identity, targetID string) (*ports.DeleteUserResult, error) {
			return nil, domain.ErrProtectedAccount
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newContext(testRequest{
		method:   http.MethodDelete,
		target:   "/api/admin/delete/ad",
		identity: superadminID,
		params:   map[string]string{"id": "ad"},
	})
	if err := h.DeleteUser(c); !errors.Is(err, domain.ErrProtectedAccount) {
		t.Fatalf("expected protected account error, got %v", err)
	}
}

func TestAdminHandler_ChangeRole_PassesRole(t *testing.T) {
	stub := &stubAdminService{
		changeRoleFn: func(ctx context.Context, acting *domain.Identity, targetID string, role domain.Role) (*domain.User, error) {
			if targetID != "u1" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s", targetID, role)
			}
			return &domain.User{ID: "u1", Username: "alice", Role: role}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(testRequest{
		method:   http.MethodPut,
		target:   "/api/admin/role/u1",
		body:     strings.NewReader(`{"role":"admin"}`),
		identity: superadminID,
		params:   map[string]string{"id": "u1"},
	})
	if err := h.ChangeRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	mustStatus(t, rec, http.StatusOK)
	body := decode(t, rec)
	user, ok := body["user"].(map[string]any)
	if !ok || user["role"] != "admin" {
		t.Fatalf("unexpected payload: %+v", body)
	}
}

func TestAdminHandler_ChangeRole_EmptyRoleReachesService(t *testing.T) {
	stub := &stubAdminService{
		changeRoleFn: func(ctx context.Context, acting *domain.Identity, targetID string, role domain.Role) (*domain.User, error) {
			if role != "" {
				t.Fatalf("expected empty role, got %q", role)
			}
			return nil, domain.ErrRoleRequired
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newContext(testRequest{
		method:   http.MethodPut,
		target:   "/api/admin/role/u1",
		body:     strings.NewReader(`{}`),
		identity: superadminID,
		params:   map[string]string{"id": "u1"},
	})
	if err := h.ChangeRole(c); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestAdminHandler_Logs_RendersDeletedReferencesAsNull(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stub := &stubAdminService{
		listLogsFn: func(ctx context.Context, acting *domain.Identity) ([]*domain.AuditLogView, error) {
			return []*domain.AuditLogView{{
				ID:           "log1",
				ActionBy:     &domain.UserSummary{ID: "ad", Username: "mod", Role: domain.RoleAdmin},
				ActionOn:     nil,
				ActionOnName: "bob",
				ActionType:   domain.ActionDeleteUser,
				Message:      "User bob deleted by admin",
				CreatedAt:    at,
			}}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newContext(testRequest{method: http.MethodGet, target: "/api/admin/logs", identity: adminID})
	if err := h.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	mustStatus(t, rec, http.StatusOK)
	want := `[{"_id":"log1","actionBy":{"_id":"ad","username":"mod","role":"admin"},"actionOn":null,` +
		`"actionOnName":"bob","actionType":"DELETE_USER","message":"User bob deleted by admin","createdAt":"2024-05-01T10:00:00Z"}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", got, want)
	}
}
