package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/runpro9ja/admin-gateway/internal/api/metrics"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
	"github.com/runpro9ja/admin-gateway/internal/core/ports"
)

// SessionService implements the session lifecycle: login against the RunPro
// backend, gateway token minting, snapshot reads for the guard, and
// revocation.
type SessionService struct {
	store     ports.SessionStore
	upstream  ports.Upstream
	flights   ports.FlightLock
	audit     ports.AuditLog
	jwtSecret string
	ttl       time.Duration
	log       zerolog.Logger
}

func NewSessionService(store ports.SessionStore, up ports.Upstream, flights ports.FlightLock, audit ports.AuditLog, jwtSecret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		store:     store,
		upstream:  up,
		flights:   flights,
		audit:     audit,
		jwtSecret: jwtSecret,
		ttl:       ttl,
		log:       log,
	}
}

// Login trims the credentials, forwards them to the backend, enforces the
// login policy, and opens a session on success. Nothing is persisted on any
// failure path.
func (s *SessionService) Login(ctx context.Context, identifier, password string) (*domain.LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	password = strings.TrimSpace(password)
	if identifier == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("denied_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.flights.Acquire(ctx, "login:"+identifier)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("in_flight").Inc()
		return nil, domain.ErrLoginInFlight
	}
	defer func() {
		if err := s.flights.Release(context.WithoutCancel(ctx), "login:"+identifier); err != nil {
			s.log.Warn().Err(err).Msg("failed to release login flight lock")
		}
	}()

	credential, profile, err := s.upstream.Login(ctx, identifier, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("denied_credentials").Inc()
		case errors.Is(err, domain.ErrInvalidUpstreamResponse):
			metrics.LoginsTotal.WithLabelValues("invalid_response").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("upstream_error").Inc()
		}
		return nil, err
	}

	if !domain.LoginPolicy.Allows(profile.Role) {
		metrics.LoginsTotal.WithLabelValues("denied_role").Inc()
		s.recordAudit(ctx, domain.AuditEvent{
			Kind:       domain.AuditLoginDenied,
			Identifier: identifier,
			Role:       profile.Role,
			Reason:     "role outside login policy",
		})
		return nil, domain.ErrAccessDenied
	}

	sessionID := uuid.NewString()
	if err := s.store.Save(ctx, sessionID, credential, profile); err != nil {
		return nil, err
	}

	token, err := s.mintToken(sessionID, profile.Role)
	if err != nil {
		// Roll the half-open session back so no orphan survives.
		_ = s.store.Clear(ctx, sessionID)
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("granted").Inc()
	s.recordAudit(ctx, domain.AuditEvent{
		Kind:       domain.AuditLoginGranted,
		Identifier: identifier,
		Role:       profile.Role,
	})
	s.log.Info().Str("role", profile.Role).Msg("login granted")

	return &domain.LoginResult{
		Token:    token,
		Profile:  profile,
		Redirect: "/dashboard",
	}, nil
}

// Logout clears the session. A missing session is a no-op, not an error.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.recordAudit(ctx, domain.AuditEvent{Kind: domain.AuditLogout})
	return nil
}

// Snapshot reads the session's current contents from the store.
func (s *SessionService) Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	return s.store.Load(ctx, sessionID)
}

// Revoke clears a session whose role failed the dashboard policy. Fail
// closed: once a session is known unauthorized it must not linger.
func (s *SessionService) Revoke(ctx context.Context, sessionID, reason string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.recordAudit(ctx, domain.AuditEvent{
		Kind:   domain.AuditSessionRevoked,
		Reason: reason,
	})
	s.log.Warn().Str("reason", reason).Msg("session revoked")
	return nil
}

// Verify forwards the session's stored credential to the backend's verify
// endpoint and passes the response through.
func (s *SessionService) Verify(ctx context.Context, sessionID string) (json.RawMessage, error) {
	snap, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !snap.Authenticated() {
		return nil, domain.ErrSessionNotFound
	}
	return s.upstream.Verify(ctx, snap.Credential)
}

func (s *SessionService) mintToken(sessionID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sessionID,
		"role": role,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// recordAudit writes the event and logs on failure; audit problems never
// fail the auth flow.
func (s *SessionService) recordAudit(ctx context.Context, event domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.log.Error().Err(err).Str("kind", event.Kind).Msg("failed to record audit event")
	}
}
