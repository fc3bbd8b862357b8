package handler

import (
	"time"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// --- Request types ---

type createUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type updateUserRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type deleteUserRequest struct {
	ID string `json:"id"`
}

type resetPasswordRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes. The password hash has no field here at all.

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type listUsersResponse struct {
	Success bool           `json:"success"`
	Users   []userResponse `json:"users"`
}

type createUserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// updatedUser mirrors the fields an update can change, plus the id.
type updatedUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type updateUserResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    updatedUser `json:"user"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type resetPasswordResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	NewPassword string `json:"new_password"`
}
