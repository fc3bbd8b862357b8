package ports

import (
	"context"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// SessionStore persists ephemeral session records. Get returns (nil, nil)
// when no record exists; absence is the empty case, not an error.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
