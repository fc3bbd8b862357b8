package ports

import (
	"context"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence.
// Record must not block the calling operation beyond queueing.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository is the persistent audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
