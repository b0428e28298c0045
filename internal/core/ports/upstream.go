package ports

import (
	"context"
	"encoding/json"
	"io"
	"net/url"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

// Upstream is the RunPro API surface the gateway consumes. Methods taking a
// credential attach it as a bearer token when non-empty; an empty credential
// still sends the request — rejecting it is the backend's job, not this
// layer's. Fetch failures are normalized to domain.ErrUpstreamUnavailable.
type Upstream interface {
	// Login exchanges trimmed credentials for the backend's token and user
	// record.
	Login(ctx context.Context, identifier, password string) (string, domain.Profile, error)

	// Verify passes the credential to the backend's verify endpoint and
	// returns its response untouched.
	Verify(ctx context.Context, credential string) (json.RawMessage, error)

	DashboardOverview(ctx context.Context, credential, period string) (domain.DashboardOverview, error)
	ServiceRequests(ctx context.Context, credential string, limit int, status string) ([]domain.ServiceRequest, error)
	DeliveryDetails(ctx context.Context, credential string, limit int) ([]domain.DeliveryDetail, error)
	ActiveDeliveries(ctx context.Context, credential string) ([]domain.ActiveDelivery, error)
	ServiceProviders(ctx context.Context, credential string, limit int, status string) ([]domain.ServiceProvider, error)
	PotentialProviders(ctx context.Context, credential string, limit int) ([]domain.PotentialProvider, error)
	SupportCases(ctx context.Context, credential string) ([]domain.SupportCase, error)
	RecentPayments(ctx context.Context, credential string, limit int) ([]domain.Payment, error)
	TopAgents(ctx context.Context, credential string, limit int) ([]domain.ServiceProvider, error)

	// Proxy forwards an arbitrary call (accounts, notifications, payment
	// summaries) and returns the backend's body and status verbatim.
	Proxy(ctx context.Context, credential, method, path string, query url.Values, body io.Reader) (json.RawMessage, int, error)
}
