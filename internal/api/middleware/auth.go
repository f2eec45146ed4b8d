package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

const identityKey = "identity"

// Authenticate resolves the session token from the cookie named cookieName,
// falling back to an "Authorization: Bearer" header, and stores the verified
// identity on the context. A missing token fails with 401, a bad one with 403.
func Authenticate(verifier ports.TokenVerifier, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := verifier.Verify(tokenFrom(c, cookieName))
			if err != nil {
				return err
			}

			SetIdentity(c, id)
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func SetIdentity(c echo.Context, id *domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity stored by Authenticate, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	id, _ := c.Get(identityKey).(*domain.Identity)
	return id
}
