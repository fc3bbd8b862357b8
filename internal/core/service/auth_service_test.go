package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
)

type fakeSessionStore struct {
	sessions map[string]*domain.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, session *domain.Session) error {
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeSessionStore) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	return NewAuthService(repo, sessions, "test-secret", time.Hour), repo, sessions
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role domain.Role) *domain.User {
	t.Helper()
	accounts := NewAccountService(repo, nil, zerolog.Nop())
	user, err := accounts.Create(context.Background(), admin, ports.CreateUserInput{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  password,
		Role:      role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "carol@example.com", "s3cret1", domain.RoleAdmin)

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one session record, got %d", len(sessions.sessions))
	}

	identity, err := svc.Current(context.Background(), token)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if identity == nil || identity.Role != domain.RoleAdmin || identity.Email != "carol@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "dave@example.com", "goodpass", domain.RoleBarangayOfficial)

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	// Unknown email and wrong password are indistinguishable to the caller.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_DestroysSession(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "erin@example.com", "secret1", domain.RoleAdmin)

	token, _, err := svc.Login(context.Background(), "erin@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	identity, err := svc.Current(context.Background(), token)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("expected no identity after logout, got %+v", identity)
	}
}

func TestAuthService_Current_EmptyCases(t *testing.T) {
	svc, _, _ := newTestAuthService()

	for _, token := range []string{"", "not-a-token"} {
		identity, err := svc.Current(context.Background(), token)
		if err != nil {
			t.Fatalf("current(%q) returned error: %v", token, err)
		}
		if identity != nil {
			t.Fatalf("current(%q) should resolve to nobody, got %+v", token, identity)
		}
	}
}

func TestAuthService_Current_WrongSigningKey(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "frank@example.com", "secret1", domain.RoleAdmin)

	token, _, err := svc.Login(context.Background(), "frank@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	other := NewAuthService(repo, sessions, "different-secret", time.Hour)
	identity, err := other.Current(context.Background(), token)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("token signed with another key must not resolve, got %+v", identity)
	}
}

func TestResetPassword_ThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	accounts := NewAccountService(repo, nil, zerolog.Nop())
	auth := NewAuthService(repo, newFakeSessionStore(), "test-secret", time.Hour)
	ctx := context.Background()

	user := seedUser(t, repo, "gail@example.com", "original1", domain.RoleBarangayOfficial)

	plaintext, err := accounts.ResetPassword(ctx, admin, user.ID, "")
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	// The returned plaintext authenticates, and the old password no longer does.
	if _, _, err := auth.Login(ctx, "gail@example.com", plaintext); err != nil {
		t.Fatalf("login with reset password failed: %v", err)
	}
	if _, _, err := auth.Login(ctx, "gail@example.com", "original1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password should be invalid, got %v", err)
	}

	// A second reset invalidates the first generated password.
	if _, err := accounts.ResetPassword(ctx, admin, user.ID, "replacement1"); err != nil {
		t.Fatalf("second reset failed: %v", err)
	}
	if _, _, err := auth.Login(ctx, "gail@example.com", plaintext); err != domain.ErrInvalidCredentials {
		t.Fatalf("first reset password should be invalid after second reset, got %v", err)
	}
}
