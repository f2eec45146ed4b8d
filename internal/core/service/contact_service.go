package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/policy"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

type ContactService struct {
	contacts ports.ContactRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewContactService(contacts ports.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *ContactService) Send(ctx context.Context, acting *domain.Identity, in ports.SendContactInput) (*domain.ContactMessage, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	msg := &domain.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Message:   strings.TrimSpace(in.Message),
		Staff:     strings.TrimSpace(in.Staff),
		UserID:    acting.ID,
		CreatedAt: s.now(),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, &domain.Error{Kind: domain.ErrBadRequest, Msg: "Name, email and message are required"}
	}

	created, err := s.contacts.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("send contact message: %w", err)
	}
	s.log.Info().Str("contact_id", created.ID).Str("user_id", acting.ID).Str("staff", created.Staff).Msg("contact message received")
	return created, nil
}

func (s *ContactService) ListMine(ctx context.Context, acting *domain.Identity) ([]*domain.ContactMessage, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	msgs, err := s.contacts.ListBySender(ctx, acting.ID)
	if err != nil {
		return nil, fmt.Errorf("list my messages: %w", err)
	}
	return msgs, nil
}

func (s *ContactService) ListAll(ctx context.Context, acting *domain.Identity) ([]*domain.ContactMessage, error) {
	if err := policy.IsAdminOrSuperadmin(acting); err != nil {
		return nil, err
	}
	msgs, err := s.contacts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
