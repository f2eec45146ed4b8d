package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// ContactRepository stores inbound contact messages.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	// ListBySender returns messages sent by userID, newest first.
	ListBySender(ctx context.Context, userID string) ([]*domain.ContactMessage, error)
	// ListAll returns every message, newest first.
	ListAll(ctx context.Context) ([]*domain.ContactMessage, error)
}
