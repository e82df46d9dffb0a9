package ports

import (
	"context"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// AuditSink accepts activity-trail events for asynchronous processing.
// Enqueue must not block the request path beyond buffer capacity.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

// AuditRepository persists activity-trail events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
