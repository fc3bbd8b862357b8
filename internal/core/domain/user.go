package domain

import "time"

// Role is the closed set of permission levels an account can hold.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleBarangayOfficial Role = "barangay_official"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleBarangayOfficial
}

// User is a persisted panel account. PasswordHash carries the bcrypt hash
// and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated actor resolved once per request from the
// session and threaded explicitly through protected operations.
type Identity struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}
