package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after
// RequireSession in the chain.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrNotAuthenticated
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrAdminOnly
			}
			return next(c)
		}
	}
}
