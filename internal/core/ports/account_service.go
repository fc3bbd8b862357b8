package ports

import (
	"context"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// CreateUserInput carries the fields for a new account. Role defaults to
// barangay_official when empty.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      domain.Role
}

// UpdateUserInput mutates the display names and role of an existing account.
// Email and id are immutable after creation.
type UpdateUserInput struct {
	ID        string
	FirstName string
	LastName  string
	Role      domain.Role
}

// AccountService exposes the admin-only account management operations.
// Authentication and role checks happen before these are reached; the acting
// identity is still passed in where an operation depends on it.
type AccountService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, actor domain.Identity, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor domain.Identity, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
	// ResetPassword replaces the account's password, generating one when
	// password is empty, and returns the plaintext for the admin to relay.
	ResetPassword(ctx context.Context, actor domain.Identity, id, password string) (string, error)
}
