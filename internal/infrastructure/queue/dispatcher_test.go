package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/barangayhub/admin-api/internal/core/domain"
)

type captureAuditRepo struct {
	inserted chan domain.AuditEvent
}

func newCaptureAuditRepo() *captureAuditRepo {
	return &captureAuditRepo{inserted: make(chan domain.AuditEvent, 64)}
}

func (r *captureAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	r.inserted <- *event
	return nil
}

func waitForEvent(t *testing.T, repo *captureAuditRepo) domain.AuditEvent {
	t.Helper()
	select {
	case event := <-repo.inserted:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit event")
		return domain.AuditEvent{}
	}
}

func TestDispatcher_RecordPersistsEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newCaptureAuditRepo()
	d := NewDispatcher(2, repo, zerolog.Nop())
	d.Start(ctx)

	want := domain.AuditEvent{
		Action:     domain.AuditUserCreated,
		ActorID:    "u1",
		ActorEmail: "admin@example.com",
		TargetID:   "u2",
		Timestamp:  time.Now().UTC(),
	}
	d.Record(want)

	got := waitForEvent(t, repo)
	if got.Action != want.Action || got.ActorID != want.ActorID || got.TargetID != want.TargetID {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newCaptureAuditRepo(), zerolog.Nop())

	for i := 0; i < 20; i++ {
		actor := fmt.Sprintf("actor-%d", i)
		first := d.shardIndex(actor)
		for j := 0; j < 5; j++ {
			if got := d.shardIndex(actor); got != first {
				t.Fatalf("shard for %q moved from %d to %d", actor, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shard %d out of range", first)
		}
	}
}

func TestDispatcher_SameActorSameWorkerOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newCaptureAuditRepo()
	d := NewDispatcher(3, repo, zerolog.Nop())
	d.Start(ctx)

	actions := []domain.AuditAction{
		domain.AuditUserCreated,
		domain.AuditUserUpdated,
		domain.AuditPasswordReset,
		domain.AuditUserDeleted,
	}
	for _, action := range actions {
		d.Record(domain.AuditEvent{Action: action, ActorID: "u1"})
	}

	for _, want := range actions {
		got := waitForEvent(t, repo)
		if got.Action != want {
			t.Fatalf("events out of order: got %s, want %s", got.Action, want)
		}
	}
}

func TestDispatcher_WorkerCountFallback(t *testing.T) {
	d := NewDispatcher(0, newCaptureAuditRepo(), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
