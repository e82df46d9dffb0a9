package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/timekeeper/inventory-system/internal/api/metrics"
	"github.com/timekeeper/inventory-system/internal/core/domain"
	"github.com/timekeeper/inventory-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity-trail events to a fixed set of workers using
// consistent hashing on the entity identifier, guaranteeing per-entity
// event ordering.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its entity. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.AuditEvent) {
	d.workers[d.shardIndex(event.EntityID)] <- event
}

// shardIndex maps an entity identifier deterministically to a worker index.
func (d *Dispatcher) shardIndex(entityID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, event); err != nil {
				metrics.AuditEventsTotal.WithLabelValues("failed").Inc()
				d.log.Error().Err(err).
					Str("entity_type", event.EntityType).
					Str("entity_id", event.EntityID).
					Int("worker_id", id).
					Msg("audit event persistence failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues("persisted").Inc()
		}
	}
}
