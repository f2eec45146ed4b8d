package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// DeleteUserResult identifies the account removed by a moderation delete.
type DeleteUserResult struct {
	DeletedID       string `json:"deletedId"`
	DeletedUsername string `json:"deletedUsername"`
}

// AdminService orchestrates moderation actions. Every mutation is checked
// against the authorization policy and recorded in the audit log.
type AdminService interface {
	ListUsers(ctx context.Context, acting *domain.Identity) ([]*domain.User, error)
	ListListings(ctx context.Context, acting *domain.Identity) ([]*domain.Listing, error)
	DeleteUser(ctx context.Context, acting *domain.Identity, targetID string) (*DeleteUserResult, error)
	ChangeUserRole(ctx context.Context, acting *domain.Identity, targetID string, newRole domain.Role) (*domain.User, error)
	ListLogs(ctx context.Context, acting *domain.Identity) ([]*domain.AuditLogView, error)
}
