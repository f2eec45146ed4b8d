package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/policy"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

// UserService covers self-service profile management. Role is never writable
// here; see AdminService.ChangeUserRole.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetUser(ctx context.Context, acting *domain.Identity, id string) (*domain.User, error) {
	if err := policy.IsAuthenticated(acting); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, acting *domain.Identity, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if err := policy.IsSelf(acting, id); err != nil {
		return nil, err
	}

	var upd ports.UserUpdate
	if v := strings.TrimSpace(in.Username); v != "" {
		upd.Username = &v
	}
	if v := strings.ToLower(strings.TrimSpace(in.Email)); v != "" {
		upd.Email = &v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		upd.Phone = &v
	}
	if v := strings.TrimSpace(in.Avatar); v != "" {
		upd.Avatar = &v
	}
	if in.AccountType != "" {
		at := domain.AccountType(in.AccountType)
		if !at.IsValid() {
			return nil, &domain.Error{Kind: domain.ErrBadRequest, Msg: "Invalid account type"}
		}
		upd.AccountType = &at
	}
	if in.Password != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().Str("user_id", id).Bool("password_changed", upd.PasswordHash != nil).Msg("profile updated")
	return user, nil
}

// DeleteSelf removes the caller's own account. It is not a moderation action
// and is not audited.
func (s *UserService) DeleteSelf(ctx context.Context, acting *domain.Identity, id string) error {
	if err := policy.IsSelf(acting, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("account deleted by owner")
	return nil
}
