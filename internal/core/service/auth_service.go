package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

// AuthService implements registration and sign-in. Every account it creates
// starts with the user role; privilege is only granted through moderation.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	if username == "" || in.Password == "" {
		return nil, &domain.Error{Kind: domain.ErrBadRequest, Msg: "Username and password are required"}
	}
	if email == "" && phone == "" {
		return nil, domain.ErrContactRequired
	}

	accountType := domain.AccountBuyer
	if in.AccountType != "" {
		accountType = domain.AccountType(in.AccountType)
		if !accountType.IsValid() {
			return nil, &domain.Error{Kind: domain.ErrBadRequest, Msg: "Invalid account type"}
		}
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Avatar:       domain.DefaultAvatar,
		Role:         domain.RoleUser,
		AccountType:  accountType,
		Wishlist:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user signed up")
	return s.session(user, true)
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("signin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.session(user, false)
}

// Google signs in the account matching the verified Google email, creating
// one with a random password when none exists.
func (s *AuthService) Google(ctx context.Context, in ports.GoogleInput) (*ports.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.ErrContactRequired
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return s.session(existing, false)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("google signin: %w", err)
	}

	hash, err := hashPassword(uuid.NewString())
	if err != nil {
		return nil, err
	}
	avatar := in.Photo
	if avatar == "" {
		avatar = domain.DefaultAvatar
	}

	now := s.now()
	user, err := s.users.Create(ctx, &domain.User{
		Username:     usernameFromName(in.Name, email),
		Email:        email,
		PasswordHash: hash,
		Avatar:       avatar,
		Role:         domain.RoleUser,
		AccountType:  domain.AccountBuyer,
		Wishlist:     []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("google signin: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user signed up with google")
	return s.session(user, true)
}

func (s *AuthService) session(user *domain.User, created bool) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(domain.Identity{
		ID:       user.ID,
		Role:     user.Role,
		Email:    user.Email,
		Username: user.Username,
	})
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user, Created: created}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// usernameFromName collapses a display name into a lowercase handle with a
// short random suffix, e.g. "Jane Doe" -> "janedoe3f9a".
func usernameFromName(name, email string) string {
	base := strings.ToLower(strings.Join(strings.Fields(name), ""))
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
	}
	return base + strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
}
