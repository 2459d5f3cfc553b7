package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront/internal/api/handler"
	"github.com/99minutos/storefront/internal/core/domain"
)

// RBAC enforces role-based access control on the user set by Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(handler.ContextUserKey).(*domain.User)
			if user == nil {
				return domain.ErrForbidden
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
