package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository persists the append-only trail of admin operations.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ActorID     string    `bson:"actor_id"`
	ActorEmail  string    `bson:"actor_email"`
	Action      string    `bson:"action"`
	TargetID    string    `bson:"target_id"`
	TargetEmail string    `bson:"target_email,omitempty"`
	Timestamp   time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := auditDoc{
		ActorID:     event.ActorID,
		ActorEmail:  event.ActorEmail,
		Action:      string(event.Action),
		TargetID:    event.TargetID,
		TargetEmail: event.TargetEmail,
		Timestamp:   event.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
