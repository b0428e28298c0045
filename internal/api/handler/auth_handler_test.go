package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/api/middleware"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

type stubSessions struct {
	loginFn    func(ctx context.Context, identifier, password string) (*domain.LoginResult, error)
	loggedOut  []string
	verifyBody json.RawMessage
}

func (s *stubSessions) Login(ctx context.Context, identifier, password string) (*domain.LoginResult, error) {
	if s.loginFn == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.loginFn(ctx, identifier, password)
}

func (s *stubSessions) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

func (s *stubSessions) Snapshot(context.Context, string) (domain.Snapshot, error) {
	return domain.Snapshot{}, nil
}

func (s *stubSessions) Revoke(context.Context, string, string) error { return nil }

func (s *stubSessions) Verify(context.Context, string) (json.RawMessage, error) {
	if s.verifyBody == nil {
		return nil, domain.ErrSessionNotFound
	}
	return s.verifyBody, nil
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	sessions := &stubSessions{
		loginFn: func(_ context.Context, identifier, password string) (*domain.LoginResult, error) {
			if identifier != "admin@runpro.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %q / %q", identifier, password)
			}
			return &domain.LoginResult{
				Token:    "gateway-token",
				Profile:  domain.Profile{Role: domain.RoleSuperAdmin, Raw: json.RawMessage(`{"role":"super_admin"}`)},
				Redirect: "/dashboard",
			}, nil
		},
	}

	c, rec := newLoginContext(e, `{"identifier":"admin@runpro.com","password":"s3cret"}`)
	if err := NewAuthHandler(sessions).Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token    string          `json:"token"`
		User     json.RawMessage `json:"user"`
		Redirect string          `json:"redirect"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "gateway-token" || resp.Redirect != "/dashboard" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.User) == 0 {
		t.Fatalf("user document missing from response")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := newLoginContext(e, `{"identifier":"admin@runpro.com"}`)
	if err := NewAuthHandler(&stubSessions{}).Login(c); err != nil {
		t.Fatalf("validation failures should render directly: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_WhitespaceOnly(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	c, rec := newLoginContext(e, `{"identifier":"   ","password":"  "}`)
	if err := NewAuthHandler(&stubSessions{}).Login(c); err != nil {
		t.Fatalf("whitespace-only input should render directly: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_ErrorsPropagate(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	sessions := &stubSessions{
		loginFn: func(context.Context, string, string) (*domain.LoginResult, error) {
			return nil, domain.ErrAccessDenied
		},
	}

	c, _ := newLoginContext(e, `{"identifier":"agent@runpro.com","password":"pass"}`)
	err := NewAuthHandler(sessions).Login(c)
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxSessionID, "sid-1")
	c.Set(middleware.CtxSnapshot, domain.Snapshot{
		Credential: "backend-token",
		Profile:    &domain.Profile{Role: domain.RoleAdminHead},
	})

	if err := NewAuthHandler(sessions).Logout(c); err != nil {
		t.Fatalf("logout handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(sessions.loggedOut) != 1 || sessions.loggedOut[0] != "sid-1" {
		t.Fatalf("session not logged out: %v", sessions.loggedOut)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["redirect"] != "/login" {
		t.Fatalf("unexpected redirect: %s", resp["redirect"])
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{verifyBody: json.RawMessage(`{"valid":true}`)}

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxSessionID, "sid-1")
	c.Set(middleware.CtxSnapshot, domain.Snapshot{
		Credential: "backend-token",
		Profile:    &domain.Profile{Role: domain.RoleAdminHead},
	})

	if err := NewAuthHandler(sessions).Verify(c); err != nil {
		t.Fatalf("verify handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"valid":true}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
