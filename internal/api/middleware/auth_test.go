package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

type stubAuthService struct {
	currentFn func(ctx context.Context, token string) (*domain.Identity, error)
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Logout(context.Context, string) error {
	panic("not used")
}

func (s *stubAuthService) Current(ctx context.Context, token string) (*domain.Identity, error) {
	return s.currentFn(ctx, token)
}

func newTestContext(method string, cookie string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireSession_ValidSession(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(_ context.Context, token string) (*domain.Identity, error) {
			if token != "tok-1" {
				t.Fatalf("unexpected token %q", token)
			}
			return &domain.Identity{UserID: "u1", Email: "a@b.com", Role: domain.RoleAdmin}, nil
		},
	}

	c := newTestContext(http.MethodGet, "tok-1")
	called := false
	handler := RequireSession(stub)(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok || identity.UserID != "u1" {
			t.Fatalf("identity not injected: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireSession_MissingCookie(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(_ context.Context, token string) (*domain.Identity, error) {
			if token != "" {
				t.Fatalf("expected empty token, got %q", token)
			}
			return nil, nil
		},
	}

	c := newTestContext(http.MethodGet, "")
	handler := RequireSession(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestRequireSession_DeadSession(t *testing.T) {
	stub := &stubAuthService{
		currentFn: func(context.Context, string) (*domain.Identity, error) {
			return nil, nil
		},
	}

	c := newTestContext(http.MethodGet, "expired-token")
	handler := RequireSession(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestRequireSession_StoreFailure(t *testing.T) {
	storeErr := errors.New("redis down")
	stub := &stubAuthService{
		currentFn: func(context.Context, string) (*domain.Identity, error) {
			return nil, storeErr
		},
	}

	c := newTestContext(http.MethodGet, "tok-1")
	handler := RequireSession(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
}

// The gate runs session, then role, then method, so the earliest failing check
// decides the status regardless of what else is wrong with the request.
func TestGate_StatusPrecedence(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	chain := func(identity *domain.Identity) echo.HandlerFunc {
		stub := &stubAuthService{
			currentFn: func(context.Context, string) (*domain.Identity, error) {
				return identity, nil
			},
		}
		return RequireSession(stub)(RequireRole(domain.RoleAdmin)(AllowMethods(http.MethodPost)(next)))
	}

	// No session and a bad method: authentication wins.
	c := newTestContext(http.MethodGet, "")
	if err := chain(nil)(c); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	// Authenticated non-admin with a bad method: role wins.
	official := &domain.Identity{UserID: "u2", Role: domain.RoleBarangayOfficial}
	c = newTestContext(http.MethodGet, "tok")
	if err := chain(official)(c); !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}

	// Admin with a bad method: only now does the method check fire.
	adm := &domain.Identity{UserID: "u1", Role: domain.RoleAdmin}
	c = newTestContext(http.MethodGet, "tok")
	if err := chain(adm)(c); !errors.Is(err, domain.ErrMethodNotAllowed) {
		t.Fatalf("expected ErrMethodNotAllowed, got %v", err)
	}

	// Admin with the right method passes all three.
	c = newTestContext(http.MethodPost, "tok")
	if err := chain(adm)(c); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}
