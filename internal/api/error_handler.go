package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// errorResponse is the canonical envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their fixed HTTP status codes and
//     user-facing messages.
//   - Logs unexpected errors internally without leaking storage details
//     to the client.
//   - Renders the consistent envelope: {"success": false, "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to fixed codes and messages.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrAdminOnly):
		return http.StatusForbidden, "Access denied. Admin only."
	case errors.Is(err, domain.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, "Method not allowed"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errors.Is(err, domain.ErrFieldsRequired):
		return http.StatusBadRequest, "All fields are required"
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email format"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, "Password must be at least 6 characters"
	case errors.Is(err, domain.ErrUserIDRequired):
		return http.StatusBadRequest, "User ID is required"
	case errors.Is(err, domain.ErrSelfDeletion):
		return http.StatusBadRequest, "You cannot delete your own account"
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict, "Email already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Database error"
}
