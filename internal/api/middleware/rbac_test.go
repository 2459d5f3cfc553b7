package middleware

import (
	"errors"
	"testing"

	"github.com/99minutos/storefront/internal/core/domain"
)

func TestRBAC_Allows(t *testing.T) {
	if _, called, err := run(t, "Bearer admin", Auth(tokens), RBAC(domain.RoleAdmin)); err != nil || !called {
		t.Fatalf("admin rejected: %v", err)
	}
}

func TestRBAC_Forbids(t *testing.T) {
	if _, called, err := run(t, "Bearer good", Auth(tokens), RBAC(domain.RoleAdmin)); called || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_WithoutUser(t *testing.T) {
	if _, called, err := run(t, "", RBAC(domain.RoleAdmin, domain.RoleCustomer)); called || !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
