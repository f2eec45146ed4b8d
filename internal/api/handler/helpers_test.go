package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/propertyhub/marketplace/internal/api/middleware"
	"github.com/propertyhub/marketplace/internal/core/domain"
)

type testRequest struct {
	method   string
	target   string
	body     io.Reader
	identity *domain.Identity
	params   map[string]string
}

func newContext(tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(tr.method, tr.target, tr.body)
	if tr.body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(tr.params))
	values := make([]string, 0, len(tr.params))
	for k, v := range tr.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if tr.identity != nil {
		middleware.SetIdentity(c, tr.identity)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, rec.Body.String())
	}
	return body
}

func expectHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d (%v)", code, he.Code, he.Message)
	}
}

var (
	superadminID = &domain.Identity{ID: "sa", Role: domain.RoleSuperadmin, Username: "root"}
	adminID      = &domain.Identity{ID: "ad", Role: domain.RoleAdmin, Username: "mod"}
	userID       = &domain.Identity{ID: "u1", Role: domain.RoleUser, Username: "alice"}
)

func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
}
