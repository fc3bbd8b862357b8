package domain

import "errors"

// Sentinel errors for the whole request taxonomy. The HTTP layer resolves
// each of them to a fixed status code and user-facing message; err.Error()
// text stays internal.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAdminOnly          = errors.New("admin role required")
	ErrMethodNotAllowed   = errors.New("method not allowed")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrFieldsRequired   = errors.New("missing required fields")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidRole      = errors.New("invalid role")
	ErrPasswordTooShort = errors.New("password too short")
	ErrUserIDRequired   = errors.New("user id required")
	ErrSelfDeletion     = errors.New("self deletion rejected")

	ErrEmailExists  = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
)
