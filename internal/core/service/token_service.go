package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/pkg/config"
)

var signingMethod = jwt.SigningMethodHS256

// sessionClaims is the signed token payload. Older tokens carry the subject
// id under "_id" instead of "id"; both are accepted on verification.
type sessionClaims struct {
	ID       string `json:"id,omitempty"`
	LegacyID string `json:"_id,omitempty"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless session tokens. Tokens carry no
// expiry; a session lasts until the signing secret rotates or the client
// drops its credential.
type TokenService struct {
	cfg config.TokenConfig
	now func() time.Time
}

func NewTokenService(cfg config.TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token service: secret is required")
	}
	return &TokenService{cfg: cfg, now: time.Now}, nil
}

// Issue signs a token for the given identity.
func (s *TokenService) Issue(id domain.Identity) (string, error) {
	if id.ID == "" {
		return "", fmt.Errorf("issue token: identity id is required")
	}
	if !id.Role.IsValid() {
		return "", fmt.Errorf("issue token: invalid role %q", id.Role)
	}

	claims := sessionClaims{
		ID:       id.ID,
		Role:     string(id.Role),
		Email:    id.Email,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.cfg.Issuer,
			Subject:  id.ID,
			IssuedAt: jwt.NewNumericDate(s.now()),
			ID:       uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Verify validates the token and returns the normalized identity.
// An empty token is Unauthenticated; anything unverifiable is Forbidden.
func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}

	if claims.Issuer != "" && claims.Issuer != s.cfg.Issuer {
		return nil, fmt.Errorf("%w: unexpected issuer %q", domain.ErrForbidden, claims.Issuer)
	}

	id := claims.ID
	if id == "" {
		id = claims.LegacyID
	}
	if id == "" {
		id = claims.Subject
	}
	role := domain.Role(claims.Role)
	if id == "" || !role.IsValid() {
		return nil, fmt.Errorf("%w: token missing identity claims", domain.ErrForbidden)
	}

	return &domain.Identity{
		ID:       id,
		Role:     role,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
