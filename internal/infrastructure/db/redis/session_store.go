package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
	"github.com/runpro9ja/admin-gateway/internal/infrastructure/seal"
)

const (
	fieldCredential = "credential"
	fieldProfile    = "profile"
)

// SessionStore keeps each session as a Redis hash holding the sealed
// credential and the serialized profile. The two fields are written in one
// command and deleted in one command, so a reader never observes a
// half-written session.
type SessionStore struct {
	client *redis.Client
	sealer *seal.Sealer
	ttl    time.Duration
}

// NewSessionStore wraps the given Redis client.
func NewSessionStore(client *redis.Client, sealer *seal.Sealer, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, sealer: sealer, ttl: ttl}
}

// Save persists both values, overwriting any prior session under this ID.
func (s *SessionStore) Save(ctx context.Context, id, credential string, profile domain.Profile) error {
	sealed, err := s.sealer.Seal(credential)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	raw := profile.Raw
	if len(raw) == 0 {
		raw, err = json.Marshal(map[string]string{
			"role":  profile.Role,
			"name":  profile.Name,
			"image": profile.Image,
		})
		if err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.key(id), fieldCredential, sealed, fieldProfile, string(raw))
		pipe.Expire(ctx, s.key(id), s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the session's current contents. A missing session, an
// unreadable credential, or a malformed profile all surface as absent
// fields, never as an error — the guard treats them as not authenticated.
func (s *SessionStore) Load(ctx context.Context, id string) (domain.Snapshot, error) {
	fields, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load session: %w", err)
	}

	var snap domain.Snapshot
	if sealed, ok := fields[fieldCredential]; ok {
		if credential, err := s.sealer.Open(sealed); err == nil {
			snap.Credential = credential
		}
	}
	if raw, ok := fields[fieldProfile]; ok {
		if profile, ok := domain.ParseProfile([]byte(raw)); ok {
			snap.Profile = &profile
		}
	}
	return snap, nil
}

// Clear removes the session and the legacy token key written by earlier
// deployments. Idempotent.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id), "authtoken:"+id).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
