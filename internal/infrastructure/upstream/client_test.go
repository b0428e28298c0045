package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

func newTestClient(url string) *Client {
	return NewClient(url, 5*time.Second, zerolog.Nop())
}

func TestClient_Login_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["identifier"] != "admin@runpro.com" || body["password"] != "s3cret" {
			t.Fatalf("unexpected credentials: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "backend-token",
			"user":  map[string]string{"role": "super_admin", "name": "Ada"},
		})
	}))
	defer srv.Close()

	token, profile, err := newTestClient(srv.URL).Login(context.Background(), "admin@runpro.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "backend-token" {
		t.Fatalf("unexpected token: %s", token)
	}
	if profile.Role != domain.RoleSuperAdmin || profile.Name != "Ada" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if len(profile.Raw) == 0 {
		t.Fatalf("raw user document not preserved")
	}
}

func TestClient_Login_RejectedCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Login(context.Background(), "admin@runpro.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "Invalid email or password") {
		t.Fatalf("backend message lost: %s", got)
	}
}

func TestClient_Login_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"role": "super_admin"},
		})
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Login(context.Background(), "admin@runpro.com", "pass")
	if !errors.Is(err, domain.ErrInvalidUpstreamResponse) {
		t.Fatalf("expected ErrInvalidUpstreamResponse, got %v", err)
	}
}

func TestClient_Login_UserWithoutRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "backend-token",
			"user":  map[string]string{"name": "no role here"},
		})
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Login(context.Background(), "admin@runpro.com", "pass")
	if !errors.Is(err, domain.ErrInvalidUpstreamResponse) {
		t.Fatalf("expected ErrInvalidUpstreamResponse, got %v", err)
	}
}

func TestClient_Fetch_AttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":         true,
			"serviceRequests": []map[string]string{{"requestId": "IP-100"}},
		})
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).ServiceRequests(context.Background(), "backend-token", 50, "")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotAuth != "Bearer backend-token" {
		t.Fatalf("bearer not attached: %q", gotAuth)
	}
	if len(records) != 1 || records[0].RequestID != "IP-100" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

// An absent credential still sends the request; rejecting it is the
// backend's decision.
func TestClient_Fetch_EmptyCredentialStillSends(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("no authorization header expected, got %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ActiveDeliveries(context.Background(), "")
	if !requested {
		t.Fatalf("request was never sent")
	}
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Fetch_Non2xxNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).RecentPayments(context.Background(), "tok", 10); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Fetch_SuccessFalseNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).SupportCases(context.Background(), "tok"); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Fetch_UnreachableHost(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond, zerolog.Nop())
	if _, err := c.ServiceProviders(context.Background(), "tok", 50, ""); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Proxy_PassesBodyAndStatusThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" {
			t.Fatalf("query not forwarded: %s", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	body, status, err := newTestClient(srv.URL).Proxy(context.Background(), "tok", http.MethodGet, "/api/admin/accounts", map[string][]string{"page": {"2"}}, nil)
	if err != nil {
		t.Fatalf("proxy failed: %v", err)
	}
	if status != http.StatusNotFound {
		t.Fatalf("status not passed through: %d", status)
	}
	if string(body) != `{"error":"not found"}` {
		t.Fatalf("body not passed through: %s", body)
	}
}
