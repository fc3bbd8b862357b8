package domain

import "time"

// Session is the ephemeral server-side record binding a client to an
// authenticated identity. It lives in Redis for the configured TTL and is
// the single source of truth for "who is logged in"; the signed cookie
// only names it.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity returns the actor bound to this session.
func (s *Session) Identity() Identity {
	return Identity{
		UserID:    s.UserID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Role:      s.Role,
	}
}
