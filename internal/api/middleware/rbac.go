package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/core/policy"
)

// Require rejects the request unless the caller satisfies every predicate.
// It must run after Authenticate.
func Require(preds ...policy.Predicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := IdentityFrom(c)
			for _, pred := range preds {
				if err := pred(id); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}
