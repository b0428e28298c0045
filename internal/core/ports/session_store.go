package ports

import (
	"context"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

// SessionStore persists the credential/profile pair for each session.
// Save and Clear act on both fields together; a stored profile that fails to
// parse loads as absent rather than erroring.
type SessionStore interface {
	Save(ctx context.Context, id, credential string, profile domain.Profile) error
	Load(ctx context.Context, id string) (domain.Snapshot, error)
	Clear(ctx context.Context, id string) error
}

// FlightLock serialises concurrent logins for the same identifier.
type FlightLock interface {
	// Acquire returns false when the key is already held.
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// AuditLog records session-lifecycle decisions. Implementations must never
// make a write failure fatal to the calling flow.
type AuditLog interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
