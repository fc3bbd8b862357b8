package ports

import (
	"context"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// UserRepository is the credential store. Implementations must guarantee
// email uniqueness (surfacing domain.ErrEmailExists on a duplicate insert)
// and perform each mutation as a single atomic statement.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id, firstName, lastName string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
