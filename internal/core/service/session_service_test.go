package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

type storedSession struct {
	credential string
	profile    domain.Profile
}

type stubStore struct {
	sessions map[string]storedSession
	saveErr  error
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]storedSession)}
}

func (s *stubStore) Save(_ context.Context, id, credential string, profile domain.Profile) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions[id] = storedSession{credential: credential, profile: profile}
	return nil
}

func (s *stubStore) Load(_ context.Context, id string) (domain.Snapshot, error) {
	stored, ok := s.sessions[id]
	if !ok {
		return domain.Snapshot{}, nil
	}
	p := stored.profile
	return domain.Snapshot{Credential: stored.credential, Profile: &p}, nil
}

func (s *stubStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type stubFlights struct {
	held     map[string]bool
	released []string
}

func newStubFlights() *stubFlights {
	return &stubFlights{held: make(map[string]bool)}
}

func (f *stubFlights) Acquire(_ context.Context, key string) (bool, error) {
	if f.held[key] {
		return false, nil
	}
	f.held[key] = true
	return true, nil
}

func (f *stubFlights) Release(_ context.Context, key string) error {
	delete(f.held, key)
	f.released = append(f.released, key)
	return nil
}

type stubAudit struct {
	events []domain.AuditEvent
}

func (a *stubAudit) Record(_ context.Context, event domain.AuditEvent) error {
	a.events = append(a.events, event)
	return nil
}

// stubUpstream satisfies ports.Upstream. Unset function fields report the
// backend as unreachable.
type stubUpstream struct {
	loginFn  func(ctx context.Context, identifier, password string) (string, domain.Profile, error)
	verifyFn func(ctx context.Context, credential string) (json.RawMessage, error)

	deliveriesFn func(ctx context.Context, credential string) ([]domain.ActiveDelivery, error)
	requestsFn   func(ctx context.Context, credential string, limit int, status string) ([]domain.ServiceRequest, error)
}

func (u *stubUpstream) Login(ctx context.Context, identifier, password string) (string, domain.Profile, error) {
	if u.loginFn == nil {
		return "", domain.Profile{}, domain.ErrUpstreamUnavailable
	}
	return u.loginFn(ctx, identifier, password)
}

func (u *stubUpstream) Verify(ctx context.Context, credential string) (json.RawMessage, error) {
	if u.verifyFn == nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	return u.verifyFn(ctx, credential)
}

func (u *stubUpstream) DashboardOverview(context.Context, string, string) (domain.DashboardOverview, error) {
	return domain.DashboardOverview{}, domain.ErrUpstreamUnavailable
}

func (u *stubUpstream) ServiceRequests(ctx context.Context, credential string, limit int, status string) ([]domain.ServiceRequest, error) {
	if u.requestsFn == nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	return u.requestsFn(ctx, credential, limit, status)
}

func (u *stubUpstream) DeliveryDetails(context.Context, string, int) ([]domain.DeliveryDetail, error) {
	return nil, domain.ErrUpstreamUnavailable
}

func (u *stubUpstream) ActiveDeliveries(ctx context.Context, credential string) ([]domain.ActiveDelivery, error) {
	if u.deliveriesFn == nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	return u.deliveriesFn(ctx, credential)
}

func (u *stubUpstream) ServiceProviders(context.Context, string, int, string) ([]domain.ServiceProvider, error) {
	return nil, domain.ErrUpstreamUnavailable
}

func (u *stubUpstream) PotentialProviders(context.Context, string, int) ([]domain.PotentialProvider, error) {
	return nil, domain.ErrUpstreamUnavailable
}

func (u *stubUpstream) SupportCases(context.Context, string) ([]domain.SupportCase, error) {
	return nil, domain.ErrUpstreamUnavailable
}

func (u *stubUpstream) RecentPayments(context.Context, string, int) ([]domain.Payment, error) {
	return nil, domain.ErrUpstreamUnavailable
}

func (u *stubUpstream) TopAgents(context.Context, string, int) ([]domain.ServiceProvider, error) {
	return nil, domain.ErrUpstreamUnavailable
}

func (u *stubUpstream) Proxy(context.Context, string, string, string, url.Values, io.Reader) (json.RawMessage, int, error) {
	return nil, 0, domain.ErrUpstreamUnavailable
}

func grantingUpstream(role string) *stubUpstream {
	return &stubUpstream{
		loginFn: func(_ context.Context, identifier, password string) (string, domain.Profile, error) {
			raw := json.RawMessage(`{"role":"` + role + `","name":"Ada"}`)
			return "backend-token", domain.Profile{Role: role, Name: "Ada", Raw: raw}, nil
		},
	}
}

func newTestService(store *stubStore, up *stubUpstream, flights *stubFlights, audit *stubAudit) *SessionService {
	return NewSessionService(store, up, flights, audit, "jwt-secret", time.Hour, zerolog.Nop())
}

func TestSessionService_Login_TrimsCredentials(t *testing.T) {
	var gotIdentifier, gotPassword string
	up := grantingUpstream(domain.RoleSuperAdmin)
	inner := up.loginFn
	up.loginFn = func(ctx context.Context, identifier, password string) (string, domain.Profile, error) {
		gotIdentifier, gotPassword = identifier, password
		return inner(ctx, identifier, password)
	}

	svc := newTestService(newStubStore(), up, newStubFlights(), &stubAudit{})
	if _, err := svc.Login(context.Background(), "  admin@runpro.com  ", " s3cret "); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if gotIdentifier != "admin@runpro.com" || gotPassword != "s3cret" {
		t.Fatalf("credentials not trimmed: %q / %q", gotIdentifier, gotPassword)
	}
}

func TestSessionService_Login_EmptyAfterTrim(t *testing.T) {
	up := &stubUpstream{
		loginFn: func(context.Context, string, string) (string, domain.Profile, error) {
			t.Fatalf("upstream should not be called")
			return "", domain.Profile{}, nil
		},
	}

	svc := newTestService(newStubStore(), up, newStubFlights(), &stubAudit{})
	if _, err := svc.Login(context.Background(), "   ", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Login_InvalidUpstreamResponse(t *testing.T) {
	store := newStubStore()
	up := &stubUpstream{
		loginFn: func(context.Context, string, string) (string, domain.Profile, error) {
			return "", domain.Profile{}, domain.ErrInvalidUpstreamResponse
		},
	}

	svc := newTestService(store, up, newStubFlights(), &stubAudit{})
	if _, err := svc.Login(context.Background(), "admin@runpro.com", "pass"); !errors.Is(err, domain.ErrInvalidUpstreamResponse) {
		t.Fatalf("expected ErrInvalidUpstreamResponse, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("no session should be persisted on failure")
	}
}

func TestSessionService_Login_RoleOutsidePolicy(t *testing.T) {
	store := newStubStore()
	audit := &stubAudit{}

	svc := newTestService(store, grantingUpstream(domain.RoleAgentService), newStubFlights(), audit)
	if _, err := svc.Login(context.Background(), "agent@runpro.com", "pass"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("no session should be persisted on a denied role")
	}
	if len(audit.events) != 1 || audit.events[0].Kind != domain.AuditLoginDenied {
		t.Fatalf("expected a login_denied audit event, got %+v", audit.events)
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	store := newStubStore()
	flights := newStubFlights()
	audit := &stubAudit{}

	svc := newTestService(store, grantingUpstream(domain.RoleSuperAdmin), flights, audit)
	result, err := svc.Login(context.Background(), "admin@runpro.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a gateway token")
	}
	if result.Redirect != "/dashboard" {
		t.Fatalf("unexpected redirect: %s", result.Redirect)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("jwt-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("token missing session ID")
	}
	if claims["role"] != domain.RoleSuperAdmin {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}

	stored, ok := store.sessions[sid]
	if !ok {
		t.Fatalf("session %s not persisted", sid)
	}
	if stored.credential != "backend-token" {
		t.Fatalf("unexpected stored credential: %s", stored.credential)
	}

	if len(flights.released) != 1 {
		t.Fatalf("flight lock not released: %v", flights.released)
	}
	if len(audit.events) != 1 || audit.events[0].Kind != domain.AuditLoginGranted {
		t.Fatalf("expected a login_granted audit event, got %+v", audit.events)
	}
}

func TestSessionService_Login_InFlight(t *testing.T) {
	flights := newStubFlights()
	flights.held["login:admin@runpro.com"] = true

	svc := newTestService(newStubStore(), grantingUpstream(domain.RoleSuperAdmin), flights, &stubAudit{})
	if _, err := svc.Login(context.Background(), "admin@runpro.com", "pass"); !errors.Is(err, domain.ErrLoginInFlight) {
		t.Fatalf("expected ErrLoginInFlight, got %v", err)
	}
}

func TestSessionService_Logout(t *testing.T) {
	store := newStubStore()
	store.sessions["sid-1"] = storedSession{credential: "tok", profile: domain.Profile{Role: domain.RoleAdminHead}}
	audit := &stubAudit{}

	svc := newTestService(store, &stubUpstream{}, newStubFlights(), audit)
	if err := svc.Logout(context.Background(), "sid-1"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := store.sessions["sid-1"]; ok {
		t.Fatalf("session not cleared")
	}
	if len(audit.events) != 1 || audit.events[0].Kind != domain.AuditLogout {
		t.Fatalf("expected a logout audit event, got %+v", audit.events)
	}

	// Logging out with no session is a no-op.
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty logout should be a no-op: %v", err)
	}
}

func TestSessionService_Revoke(t *testing.T) {
	store := newStubStore()
	store.sessions["sid-2"] = storedSession{credential: "tok", profile: domain.Profile{Role: "client"}}
	audit := &stubAudit{}

	svc := newTestService(store, &stubUpstream{}, newStubFlights(), audit)
	if err := svc.Revoke(context.Background(), "sid-2", "role outside dashboard policy"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, ok := store.sessions["sid-2"]; ok {
		t.Fatalf("session not cleared")
	}
	if len(audit.events) != 1 || audit.events[0].Kind != domain.AuditSessionRevoked {
		t.Fatalf("expected a session_revoked audit event, got %+v", audit.events)
	}
}

func TestSessionService_Verify_NoSession(t *testing.T) {
	svc := newTestService(newStubStore(), &stubUpstream{}, newStubFlights(), &stubAudit{})
	if _, err := svc.Verify(context.Background(), "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_Verify_ForwardsCredential(t *testing.T) {
	store := newStubStore()
	store.sessions["sid-3"] = storedSession{credential: "backend-token", profile: domain.Profile{Role: domain.RoleAdminHead}}

	var gotCredential string
	up := &stubUpstream{
		verifyFn: func(_ context.Context, credential string) (json.RawMessage, error) {
			gotCredential = credential
			return json.RawMessage(`{"valid":true}`), nil
		},
	}

	svc := newTestService(store, up, newStubFlights(), &stubAudit{})
	body, err := svc.Verify(context.Background(), "sid-3")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if gotCredential != "backend-token" {
		t.Fatalf("stored credential not forwarded: %s", gotCredential)
	}
	if string(body) != `{"valid":true}` {
		t.Fatalf("unexpected verify body: %s", body)
	}
}
