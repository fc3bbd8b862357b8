package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
)

// AuthService implements login, logout, and session resolution. The signed
// token it hands out only names a server-side session record: presenting a
// structurally valid token whose session has been destroyed or expired
// resolves to nobody.
type AuthService struct {
	repo       ports.UserRepository
	sessions   ports.SessionStore
	signingKey []byte
	sessionTTL time.Duration
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionStore, signingKey string, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:       repo,
		sessions:   sessions,
		signingKey: []byte(signingKey),
		sessionTTL: sessionTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email reports the same way as a wrong password.
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.signToken(session.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	sessionID, ok := s.parseToken(token)
	if !ok {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) Current(ctx context.Context, token string) (*domain.Identity, error) {
	sessionID, ok := s.parseToken(token)
	if !ok {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	identity := session.Identity()
	return &identity, nil
}

func (s *AuthService) signToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(s.sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.signingKey)
}

// parseToken returns the session ID named by a valid token, or ok=false for
// anything malformed, expired, or signed with the wrong key.
func (s *AuthService) parseToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.signingKey, nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sessionID, _ := claims["sid"].(string)
	return sessionID, sessionID != ""
}
