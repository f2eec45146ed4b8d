package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
	"github.com/propertyhub/marketplace/internal/pkg/config"
)

func newAuthFixture(t *testing.T) (*AuthService, *stubUserRepo, *TokenService) {
	t.Helper()
	tokens, err := NewTokenService(config.TokenConfig{Secret: "secret", Issuer: "propertyhub"})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	users := newStubUserRepo()
	return NewAuthService(users, tokens, zerolog.Nop()), users, tokens
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	res, err := svc.Signup(context.Background(), ports.SignupInput{
		Username: "alice", Email: "Alice@Example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if !res.Created {
		t.Fatalf("expected Created=true")
	}
	u := res.User
	if u.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if u.Role != domain.RoleUser || u.AccountType != domain.AccountBuyer {
		t.Fatalf("unexpected defaults: role=%s accountType=%s", u.Role, u.AccountType)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}

	id, err := tokens.Verify(res.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if id.ID != u.ID || id.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestAuthService_Signup_PhoneOnly(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	res, err := svc.Signup(context.Background(), ports.SignupInput{
		Username: "bob", Phone: "+15550100", Password: "pw", AccountType: "seller",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if res.User.AccountType != domain.AccountSeller {
		t.Fatalf("expected seller, got %s", res.User.AccountType)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, ports.SignupInput{Username: "x", Password: "pw"}); err != domain.ErrContactRequired {
		t.Fatalf("expected ErrContactRequired, got %v", err)
	}
	if _, err := svc.Signup(ctx, ports.SignupInput{Email: "x@example.com", Password: "pw"}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected BadRequest for missing username, got %v", err)
	}
	if _, err := svc.Signup(ctx, ports.SignupInput{Username: "x", Email: "x@example.com", Password: "pw", AccountType: "landlord"}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected BadRequest for bad account type, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _ = svc.Signup(ctx, ports.SignupInput{Username: "bob", Email: "bob@example.com", Password: "pass"})
	if _, err := svc.Signup(ctx, ports.SignupInput{Username: "bobby", Email: "bob@example.com", Password: "pass2"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestAuthService_Signin_Success(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, ports.SignupInput{Username: "carol", Email: "carol@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	res, err := svc.Signin(ctx, "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if res.Token == "" || res.Created {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.User.Username != "carol" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
}

func TestAuthService_Signin_InvalidPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _ = svc.Signup(ctx, ports.SignupInput{Username: "dave", Email: "dave@example.com", Password: "goodpass"})
	if _, err := svc.Signin(ctx, "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Signin_UserNotFound(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Signin(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Google_CreatesThenSignsIn(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	ctx := context.Background()

	first, err := svc.Google(ctx, ports.GoogleInput{Email: "jane@example.com", Name: "Jane Doe", Photo: "https://img/p.png"})
	if err != nil {
		t.Fatalf("google signup: %v", err)
	}
	if !first.Created {
		t.Fatalf("expected account to be created")
	}
	if !strings.HasPrefix(first.User.Username, "janedoe") || len(first.User.Username) != len("janedoe")+4 {
		t.Fatalf("unexpected username %q", first.User.Username)
	}
	if first.User.Avatar != "https://img/p.png" || first.User.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", first.User)
	}

	second, err := svc.Google(ctx, ports.GoogleInput{Email: "jane@example.com", Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("google signin: %v", err)
	}
	if second.Created || second.User.ID != first.User.ID {
		t.Fatalf("expected existing account, got %+v", second)
	}
	all, _ := users.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected a single account, got %d", len(all))
	}
}
