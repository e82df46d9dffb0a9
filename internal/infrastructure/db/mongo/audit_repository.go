package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/timekeeper/inventory-system/internal/core/domain"
)

const auditCollection = "audit_events"

type auditDoc struct {
	EntityType string             `bson:"entity_type"`
	EntityID   string             `bson:"entity_id"`
	Action     domain.AuditAction `bson:"action"`
	Actor      string             `bson:"actor"`
	Timestamp  time.Time          `bson:"timestamp"`
}

// AuditRepository persists activity-trail events in MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(auditCollection)}
}

// Insert appends an event to the activity trail.
func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Action:     event.Action,
		Actor:      event.Actor,
		Timestamp:  event.Timestamp,
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}
