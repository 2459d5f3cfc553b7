package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront/internal/api/handler"
	"github.com/99minutos/storefront/internal/core/domain"
)

type stubAuthenticator struct {
	users map[string]*domain.User
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrInvalidToken
}

var tokens = stubAuthenticator{users: map[string]*domain.User{
	"good":       {ID: 1, Email: "alice@example.com", Role: domain.RoleCustomer, IsActive: true, IsVerified: true},
	"unverified": {ID: 2, Email: "bob@example.com", Role: domain.RoleCustomer, IsActive: true},
	"admin":      {ID: 3, Email: "root@example.com", Role: domain.RoleAdmin, IsActive: true, IsVerified: true},
}}

func run(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}
	for i := len(mws) - 1; i >= 0; i-- {
		next = mws[i](next)
	}
	err := next(c)
	return rec, called, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens)
	h := mw(func(c echo.Context) error {
		u, _ := c.Get(handler.ContextUserKey).(*domain.User)
		if u == nil || u.ID != 1 {
			t.Fatalf("user not set: %+v", u)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, called, err := run(t, "", Auth(tokens))
	var he *echo.HTTPError
	if called || !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v (called=%v)", err, called)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("expected WWW-Authenticate header")
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		_, called, err := run(t, header, Auth(tokens))
		var he *echo.HTTPError
		if called || !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %v", header, err)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	_, called, err := run(t, "Bearer not-a-token", Auth(tokens))
	if called || !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRequireVerified(t *testing.T) {
	if _, called, err := run(t, "Bearer good", Auth(tokens), RequireVerified()); err != nil || !called {
		t.Fatalf("verified user rejected: %v", err)
	}
	if _, called, err := run(t, "Bearer unverified", Auth(tokens), RequireVerified()); called || !errors.Is(err, domain.ErrUnverifiedAccount) {
		t.Fatalf("expected ErrUnverifiedAccount, got %v", err)
	}
}
