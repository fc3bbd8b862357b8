package domain

import "time"

// AuditAction identifies which administrative operation produced an event.
type AuditAction string

const (
	AuditUserCreated   AuditAction = "user_created"
	AuditUserUpdated   AuditAction = "user_updated"
	AuditUserDeleted   AuditAction = "user_deleted"
	AuditPasswordReset AuditAction = "password_reset"
)

// AuditEvent records one successful mutating admin operation. Events are
// persisted asynchronously; a lost event never fails the operation itself.
type AuditEvent struct {
	ActorID     string      `json:"actor_id"`
	ActorEmail  string      `json:"actor_email"`
	Action      AuditAction `json:"action"`
	TargetID    string      `json:"target_id"`
	TargetEmail string      `json:"target_email,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}
