package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

const auditCollection = "auth_audit"

// AuditRepository persists one document per session-lifecycle decision.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Kind       string `bson:"kind"`
	Identifier string `bson:"identifier,omitempty"`
	Role       string `bson:"role,omitempty"`
	Reason     string `bson:"reason,omitempty"`
	RecordedAt int64  `bson:"recorded_at"`
}

// Record inserts the event. Callers treat a returned error as log-worthy,
// never as fatal to the auth flow itself.
func (r *AuditRepository) Record(ctx context.Context, event domain.AuditEvent) error {
	doc := auditDoc{
		Kind:       event.Kind,
		Identifier: event.Identifier,
		Role:       event.Role,
		Reason:     event.Reason,
		RecordedAt: time.Now().UTC().Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
