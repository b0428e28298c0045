package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/runpro9ja/admin-gateway/internal/api/metrics"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
	"github.com/runpro9ja/admin-gateway/internal/core/ports"
)

// FeedService serves every dashboard data set with the fetch-or-fallback
// policy: one upstream attempt, no retry, and the fixed sample set when the
// attempt fails. Methods return a tagged Feed instead of an error — a feed
// fetch is never a hard failure for the dashboard.
type FeedService struct {
	upstream ports.Upstream
	log      zerolog.Logger
}

func NewFeedService(up ports.Upstream, log zerolog.Logger) *FeedService {
	return &FeedService{upstream: up, log: log}
}

func (s *FeedService) DashboardOverview(ctx context.Context, credential, period string) domain.Feed[domain.DashboardOverview] {
	overview, err := s.upstream.DashboardOverview(ctx, credential, period)
	if err != nil {
		s.fallback("dashboard_overview", err)
		return domain.Sample(domain.SampleDashboardOverview())
	}
	return domain.Live(overview)
}

func (s *FeedService) ServiceRequests(ctx context.Context, credential string, limit int, status string) domain.Feed[[]domain.ServiceRequest] {
	records, err := s.upstream.ServiceRequests(ctx, credential, limit, status)
	if err != nil {
		s.fallback("service_requests", err)
		return domain.Sample(domain.SampleServiceRequests())
	}
	return domain.Live(records)
}

func (s *FeedService) DeliveryDetails(ctx context.Context, credential string, limit int) domain.Feed[[]domain.DeliveryDetail] {
	records, err := s.upstream.DeliveryDetails(ctx, credential, limit)
	if err != nil {
		s.fallback("delivery_details", err)
		return domain.Sample(domain.SampleDeliveryDetails())
	}
	return domain.Live(records)
}

func (s *FeedService) ActiveDeliveries(ctx context.Context, credential string) domain.Feed[[]domain.ActiveDelivery] {
	records, err := s.upstream.ActiveDeliveries(ctx, credential)
	if err != nil {
		s.fallback("active_deliveries", err)
		return domain.Sample(domain.SampleActiveDeliveries())
	}
	return domain.Live(records)
}

func (s *FeedService) ServiceProviders(ctx context.Context, credential string, limit int, status string) domain.Feed[[]domain.ServiceProvider] {
	records, err := s.upstream.ServiceProviders(ctx, credential, limit, status)
	if err != nil {
		s.fallback("service_providers", err)
		return domain.Sample(domain.SampleServiceProviders())
	}
	return domain.Live(records)
}

func (s *FeedService) PotentialProviders(ctx context.Context, credential string, limit int) domain.Feed[[]domain.PotentialProvider] {
	records, err := s.upstream.PotentialProviders(ctx, credential, limit)
	if err != nil {
		s.fallback("potential_providers", err)
		return domain.Sample(domain.SamplePotentialProviders())
	}
	return domain.Live(records)
}

func (s *FeedService) SupportCases(ctx context.Context, credential string) domain.Feed[[]domain.SupportCase] {
	records, err := s.upstream.SupportCases(ctx, credential)
	if err != nil {
		s.fallback("support_cases", err)
		return domain.Sample(domain.SampleSupportCases())
	}
	return domain.Live(records)
}

func (s *FeedService) RecentPayments(ctx context.Context, credential string, limit int) domain.Feed[[]domain.Payment] {
	records, err := s.upstream.RecentPayments(ctx, credential, limit)
	if err != nil {
		s.fallback("recent_payments", err)
		return domain.Sample(domain.SamplePayments())
	}
	return domain.Live(records)
}

func (s *FeedService) TopAgents(ctx context.Context, credential string, limit int) domain.Feed[[]domain.ServiceProvider] {
	records, err := s.upstream.TopAgents(ctx, credential, limit)
	if err != nil {
		s.fallback("top_agents", err)
		return domain.Sample(domain.SampleServiceProviders())
	}
	return domain.Live(records)
}

func (s *FeedService) fallback(feed string, err error) {
	metrics.FeedFallbacksTotal.WithLabelValues(feed).Inc()
	s.log.Warn().Err(err).Str("feed", feed).Msg("upstream fetch failed, serving sample data")
}
