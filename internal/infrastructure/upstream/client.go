// Package upstream implements the HTTP client for the RunPro backend API.
// It owns credential attachment and failure normalization: callers never
// branch on transport errors, only on domain.ErrUpstreamUnavailable.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/runpro9ja/admin-gateway/internal/api/metrics"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

// Client talks to the RunPro API.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Login posts the (already trimmed) credentials to the backend. A non-2xx
// response surfaces as ErrInvalidCredentials carrying the backend's message;
// a 2xx response missing the token or the user record surfaces as
// ErrInvalidUpstreamResponse.
func (c *Client) Login(ctx context.Context, identifier, password string) (string, domain.Profile, error) {
	payload, err := json.Marshal(map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	if err != nil {
		return "", domain.Profile{}, fmt.Errorf("login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", domain.Profile{}, fmt.Errorf("login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("/api/auth/login", "error").Inc()
		return "", domain.Profile{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded struct {
		Token   string          `json:"token"`
		User    json.RawMessage `json:"user"`
		Message string          `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues("/api/auth/login", "error").Inc()
		msg := decoded.Message
		if msg == "" {
			msg = "HTTP " + strconv.Itoa(resp.StatusCode)
		}
		return "", domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, msg)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("/api/auth/login", "ok").Inc()

	if decoded.Token == "" || len(decoded.User) == 0 {
		return "", domain.Profile{}, domain.ErrInvalidUpstreamResponse
	}
	profile, ok := domain.ParseProfile(decoded.User)
	if !ok {
		return "", domain.Profile{}, domain.ErrInvalidUpstreamResponse
	}

	return decoded.Token, profile, nil
}

// Verify calls the backend's token-verification endpoint and returns its
// response body untouched.
func (c *Client) Verify(ctx context.Context, credential string) (json.RawMessage, error) {
	body, status, err := c.Proxy(ctx, credential, http.MethodGet, "/api/auth/verify", nil, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: verify returned HTTP %d", domain.ErrUpstreamUnavailable, status)
	}
	return body, nil
}

func (c *Client) DashboardOverview(ctx context.Context, credential, period string) (domain.DashboardOverview, error) {
	var env struct {
		Success   bool                     `json:"success"`
		Dashboard domain.DashboardOverview `json:"dashboard"`
	}
	q := url.Values{"period": {period}}
	if err := c.fetch(ctx, credential, "/api/admin/dashboard/overview", q, &env, &env.Success); err != nil {
		return domain.DashboardOverview{}, err
	}
	return env.Dashboard, nil
}

func (c *Client) ServiceRequests(ctx context.Context, credential string, limit int, status string) ([]domain.ServiceRequest, error) {
	var env struct {
		Success         bool                    `json:"success"`
		ServiceRequests []domain.ServiceRequest `json:"serviceRequests"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if status != "" {
		q.Set("status", status)
	}
	if err := c.fetch(ctx, credential, "/api/admin/service-requests", q, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.ServiceRequests, nil
}

func (c *Client) DeliveryDetails(ctx context.Context, credential string, limit int) ([]domain.DeliveryDetail, error) {
	var env struct {
		Success         bool                    `json:"success"`
		DeliveryDetails []domain.DeliveryDetail `json:"deliveryDetails"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.fetch(ctx, credential, "/api/admin/delivery-details", q, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.DeliveryDetails, nil
}

func (c *Client) ActiveDeliveries(ctx context.Context, credential string) ([]domain.ActiveDelivery, error) {
	var env struct {
		Success    bool                    `json:"success"`
		Deliveries []domain.ActiveDelivery `json:"deliveries"`
	}
	if err := c.fetch(ctx, credential, "/api/admin/active-deliveries", nil, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.Deliveries, nil
}

func (c *Client) ServiceProviders(ctx context.Context, credential string, limit int, status string) ([]domain.ServiceProvider, error) {
	var env struct {
		Success          bool                     `json:"success"`
		ServiceProviders []domain.ServiceProvider `json:"serviceProviders"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if status != "" {
		q.Set("status", status)
	}
	if err := c.fetch(ctx, credential, "/api/admin/service-providers", q, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.ServiceProviders, nil
}

func (c *Client) PotentialProviders(ctx context.Context, credential string, limit int) ([]domain.PotentialProvider, error) {
	var env struct {
		Success            bool                       `json:"success"`
		PotentialProviders []domain.PotentialProvider `json:"potentialProviders"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.fetch(ctx, credential, "/api/admin/potential-providers", q, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.PotentialProviders, nil
}

func (c *Client) SupportCases(ctx context.Context, credential string) ([]domain.SupportCase, error) {
	var env struct {
		Success bool                 `json:"success"`
		Cases   []domain.SupportCase `json:"cases"`
	}
	if err := c.fetch(ctx, credential, "/api/admin/support-messages", nil, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.Cases, nil
}

func (c *Client) RecentPayments(ctx context.Context, credential string, limit int) ([]domain.Payment, error) {
	var env struct {
		Success  bool             `json:"success"`
		Payments []domain.Payment `json:"payments"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.fetch(ctx, credential, "/api/admin/recent-payments", q, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.Payments, nil
}

func (c *Client) TopAgents(ctx context.Context, credential string, limit int) ([]domain.ServiceProvider, error) {
	var env struct {
		Success bool                     `json:"success"`
		Agents  []domain.ServiceProvider `json:"agents"`
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.fetch(ctx, credential, "/api/admin/top-agents", q, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.Agents, nil
}

// Proxy forwards the call verbatim and returns the backend's body and
// status. Only transport-level failures become errors.
func (c *Client) Proxy(ctx context.Context, credential, method, path string, query url.Values, body io.Reader) (json.RawMessage, int, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, 0, fmt.Errorf("proxy request: %w", err)
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(path, "error").Inc()
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(path, "error").Inc()
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	outcome := "ok"
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = "error"
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(path, outcome).Inc()

	return payload, resp.StatusCode, nil
}

// fetch issues a GET, attaching the bearer credential when present, and
// normalizes every failure mode — transport error, non-2xx, undecodable
// body, missing success indicator — to ErrUpstreamUnavailable.
func (c *Client) fetch(ctx context.Context, credential, path string, query url.Values, out any, success *bool) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("fetch request: %w", err)
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(path, "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues(path, "error").Inc()
		return fmt.Errorf("%w: HTTP %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(path, "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if !*success {
		metrics.UpstreamRequestsTotal.WithLabelValues(path, "error").Inc()
		return fmt.Errorf("%w: missing success indicator", domain.ErrUpstreamUnavailable)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(path, "ok").Inc()
	return nil
}
