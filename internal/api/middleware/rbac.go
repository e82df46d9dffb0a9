package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// RBAC restricts a route to a fixed allow-list of roles. It must run after
// Auth; a request without an attached identity is rejected rather than
// allowed through. There is no default-allow path. Rejections surface as
// domain.ErrForbidden so the central error handler renders them.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrForbidden
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
