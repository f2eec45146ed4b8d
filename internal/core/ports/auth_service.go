package ports

import (
	"context"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

// TokenVerifier validates session tokens and yields the caller identity.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// SignupInput carries self-service registration data.
type SignupInput struct {
	Username    string
	Email       string
	Phone       string
	Password    string
	AccountType string
}

// GoogleInput carries the profile returned by the Google sign-in popup.
type GoogleInput struct {
	Email string
	Name  string
	Photo string
}

// AuthResult is returned by every sign-in flow.
type AuthResult struct {
	Token string
	User  *domain.User
	// Created is true when the flow registered a new account.
	Created bool
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Signin(ctx context.Context, email, password string) (*AuthResult, error)
	Google(ctx context.Context, in GoogleInput) (*AuthResult, error)
}
