package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/barangayhub/admin-api/internal/api/middleware"
	"github.com/barangayhub/admin-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the session middleware.
// Its presence proves the middleware ran; a protected handler reached
// without it rejects with 401 rather than acting as nobody.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrNotAuthenticated
	}
	return identity, nil
}
