package domain

import "time"

// AuditAction enumerates the mutations recorded in the activity trail.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditEvent records a single catalog mutation for the activity trail.
// Events for the same entity are processed in order.
type AuditEvent struct {
	EntityType string      `json:"entity_type"`
	EntityID   string      `json:"entity_id"`
	Action     AuditAction `json:"action"`
	Actor      string      `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
}
