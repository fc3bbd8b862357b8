package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

func TestResolveError_Taxonomy(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/users/create", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrNotAuthenticated, http.StatusUnauthorized, "Unauthorized"},
		{domain.ErrAdminOnly, http.StatusForbidden, "Access denied. Admin only."},
		{domain.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect email or password"},
		{domain.ErrFieldsRequired, http.StatusBadRequest, "All fields are required"},
		{domain.ErrInvalidEmail, http.StatusBadRequest, "Invalid email format"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
		{domain.ErrPasswordTooShort, http.StatusBadRequest, "Password must be at least 6 characters"},
		{domain.ErrUserIDRequired, http.StatusBadRequest, "User ID is required"},
		{domain.ErrSelfDeletion, http.StatusBadRequest, "You cannot delete your own account"},
		{domain.ErrEmailExists, http.StatusConflict, "Email already exists"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{errors.New("mongo: connection reset"), http.StatusInternalServerError, "Database error"},
	}

	for _, tc := range cases {
		code, msg := resolveError(tc.err, log, c)
		if code != tc.code || msg != tc.message {
			t.Fatalf("resolveError(%v) = (%d, %q), want (%d, %q)", tc.err, code, msg, tc.code, tc.message)
		}
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(domain.ErrAdminOnly, c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false, got %v", resp["success"])
	}
	if resp["message"] != "Access denied. Admin only." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestHTTPErrorHandler_WrappedError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/users/delete", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(wrapped, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
