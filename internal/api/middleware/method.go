package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// AllowMethods rejects any verb outside the allowed set with 405. Routes are
// registered for every verb and filtered here instead of in the router, so
// the check runs after authentication and role enforcement: a caller with a
// bad method and no session sees 401, not 405.
func AllowMethods(methods ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[c.Request().Method]; !ok {
				return domain.ErrMethodNotAllowed
			}
			return next(c)
		}
	}
}
