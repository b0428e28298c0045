package ports

import (
	"context"
	"encoding/json"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

// SessionService owns the session lifecycle: login, logout, guard snapshots
// and revocation.
type SessionService interface {
	Login(ctx context.Context, identifier, password string) (*domain.LoginResult, error)

	// Logout clears the session. Safe to call when no session exists.
	Logout(ctx context.Context, sessionID string) error

	// Snapshot returns the session's current contents, recomputed on every
	// call — guard decisions are never cached across requests.
	Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error)

	// Revoke clears a session whose role turned out to be unauthorized and
	// records why.
	Revoke(ctx context.Context, sessionID, reason string) error

	// Verify forwards the session's credential to the backend's verify
	// endpoint.
	Verify(ctx context.Context, sessionID string) (json.RawMessage, error)
}
