package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "admin_session"

// identityKey is the echo context key the resolved identity lives under.
const identityKey = "identity"

// RequireSession resolves the session cookie to an identity and injects it
// into the request context. It runs before any role or method check, so an
// unauthenticated caller always sees 401 regardless of what else is wrong
// with the request.
func RequireSession(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := auth.Current(c.Request().Context(), SessionToken(c))
			if err != nil {
				return err
			}
			if identity == nil {
				return domain.ErrNotAuthenticated
			}

			c.Set(identityKey, *identity)
			return next(c)
		}
	}
}

// SessionToken returns the raw session token from the request cookie, or ""
// when the cookie is absent.
func SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// IdentityFrom extracts the identity injected by RequireSession.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
