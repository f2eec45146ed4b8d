package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/api/middleware"
	"github.com/propertyhub/marketplace/internal/core/domain"
)

// messageResponse is the acknowledgement body for mutations that return no
// resource.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// identity returns the caller injected by the Authenticate middleware.
// Nil on public routes; services reject a nil identity where one is needed.
func identity(c echo.Context) *domain.Identity {
	return middleware.IdentityFrom(c)
}

// bind decodes the request into req and runs struct validation.
// Both failures are client errors.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// errorBody documents the envelope rendered by the API error handler.
type errorBody struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
