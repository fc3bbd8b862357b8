package ports

import (
	"context"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// AuthService establishes and resolves authenticated sessions.
type AuthService interface {
	// Login verifies credentials and opens a session. It returns the signed
	// session token destined for the cookie together with the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout destroys the session named by the token. Unknown or malformed
	// tokens are a no-op.
	Logout(ctx context.Context, token string) error
	// Current resolves the identity bound to the token. A missing, invalid
	// or expired session yields (nil, nil): callers decide whether to reject.
	Current(ctx context.Context, token string) (*domain.Identity, error)
}
