package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// AuditLogRepository is the append-only moderation log. There is no update
// or delete operation.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *domain.AuditLogEntry) error
	// List returns every entry, newest first.
	List(ctx context.Context) ([]*domain.AuditLogEntry, error)
}
