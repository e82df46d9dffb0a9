package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

type recordingAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	fail   func(event domain.AuditEvent) error
}

func (r *recordingAuditRepo) Insert(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		if err := r.fail(event); err != nil {
			return err
		}
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditRepo) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_PreservesPerEntityOrder(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Enqueue(domain.AuditEvent{
			EntityType: "product",
			EntityID:   "prod-1",
			Action:     domain.AuditUpdate,
			Actor:      fmt.Sprintf("actor-%d", i),
			Timestamp:  time.Now(),
		})
	}

	waitFor(t, func() bool { return len(repo.snapshot()) == n })

	events := repo.snapshot()
	for i, e := range events {
		want := fmt.Sprintf("actor-%d", i)
		if e.Actor != want {
			t.Fatalf("event %d: actor = %q, want %q", i, e.Actor, want)
		}
	}
}

func TestDispatcher_ShardsAcrossWorkers(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[d.shardIndex(fmt.Sprintf("entity-%d", i))] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected events to spread across workers, got %d shard(s)", len(seen))
	}

	// the same entity always lands on the same shard
	a := d.shardIndex("CAT001")
	for i := 0; i < 10; i++ {
		if d.shardIndex("CAT001") != a {
			t.Fatal("shard index not deterministic")
		}
	}
}

func TestDispatcher_WorkerSurvivesInsertFailure(t *testing.T) {
	failed := false
	repo := &recordingAuditRepo{
		fail: func(event domain.AuditEvent) error {
			if event.Actor == "boom" && !failed {
				failed = true
				return errors.New("insert failed")
			}
			return nil
		},
	}
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuditEvent{EntityID: "x", Actor: "boom"})
	d.Enqueue(domain.AuditEvent{EntityID: "x", Actor: "after"})

	waitFor(t, func() bool {
		events := repo.snapshot()
		return len(events) == 1 && events[0].Actor == "after"
	})
}
