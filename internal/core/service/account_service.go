package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
)

const minPasswordLength = 6

// AccountService implements the admin-only account management operations.
// Validation runs in a fixed order per operation so that the first failing
// rule determines the reported error.
type AccountService struct {
	repo     ports.UserRepository
	audit    ports.AuditRecorder
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *AccountService {
	return &AccountService{
		repo:     repo,
		audit:    audit,
		validate: validator.New(),
		logger:   logger,
	}
}

// List returns all accounts, newest first. Password hashes stay behind the
// domain.User json:"-" tag and never reach a response.
func (s *AccountService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Create registers a new account. Validation order: all fields present,
// email syntax, role membership, password length, email uniqueness (the
// last enforced by the store's unique index, so concurrent creates cannot
// both succeed).
func (s *AccountService) Create(ctx context.Context, actor domain.Identity, in ports.CreateUserInput) (*domain.User, error) {
	email := strings.TrimSpace(in.Email)
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)

	role := in.Role
	if role == "" {
		role = domain.RoleBarangayOfficial
	}

	if email == "" || firstName == "" || lastName == "" || in.Password == "" {
		return nil, domain.ErrFieldsRequired
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Str("actor", actor.Email).Msg("user created")
	s.record(domain.AuditEvent{
		ActorID:     actor.UserID,
		ActorEmail:  actor.Email,
		Action:      domain.AuditUserCreated,
		TargetID:    created.ID,
		TargetEmail: created.Email,
		Timestamp:   time.Now().UTC(),
	})
	return created, nil
}

// Update changes the display names and role of an existing account.
// Repeating an identical update is a no-op on the record.
func (s *AccountService) Update(ctx context.Context, actor domain.Identity, in ports.UpdateUserInput) (*domain.User, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)

	if in.ID == "" || firstName == "" || lastName == "" || in.Role == "" {
		return nil, domain.ErrFieldsRequired
	}
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	updated, err := s.repo.Update(ctx, in.ID, firstName, lastName, in.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("actor", actor.Email).Msg("user updated")
	s.record(domain.AuditEvent{
		ActorID:     actor.UserID,
		ActorEmail:  actor.Email,
		Action:      domain.AuditUserUpdated,
		TargetID:    updated.ID,
		TargetEmail: updated.Email,
		Timestamp:   time.Now().UTC(),
	})
	return updated, nil
}

// Delete removes an account. Self-deletion is rejected unconditionally,
// before the account lookup, so an admin can never lock themselves out by
// removing their own record.
func (s *AccountService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	if id == "" {
		return domain.ErrUserIDRequired
	}
	if id == actor.UserID {
		return domain.ErrSelfDeletion
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("actor", actor.Email).Msg("user deleted")
	s.record(domain.AuditEvent{
		ActorID:    actor.UserID,
		ActorEmail: actor.Email,
		Action:     domain.AuditUserDeleted,
		TargetID:   id,
		Timestamp:  time.Now().UTC(),
	})
	return nil
}

// ResetPassword replaces an account's password and returns the plaintext
// once, for the admin to relay to the affected user. When no password is
// supplied a random one is generated server-side; clients may preview a
// candidate but the persisted value is always decided here.
func (s *AccountService) ResetPassword(ctx context.Context, actor domain.Identity, id, password string) (string, error) {
	if id == "" {
		return "", domain.ErrUserIDRequired
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if password == "" {
		password, err = generatePassword()
		if err != nil {
			return "", err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Str("actor", actor.Email).Msg("password reset")
	s.record(domain.AuditEvent{
		ActorID:     actor.UserID,
		ActorEmail:  actor.Email,
		Action:      domain.AuditPasswordReset,
		TargetID:    user.ID,
		TargetEmail: user.Email,
		Timestamp:   time.Now().UTC(),
	})
	return password, nil
}

func (s *AccountService) record(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
