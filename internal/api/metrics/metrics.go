// Package metrics defines and registers all custom Prometheus metrics for
// the RunPro admin gateway. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "runpro"

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "granted", "denied_role", "denied_credentials", "invalid_response", "in_flight", "upstream_error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// GuardDecisionsTotal counts auth-guard evaluations on protected routes.
// Labels:
//   - decision: "granted" or "denied"
//   - reason: "ok", "unauthenticated", "role_not_allowed"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of auth-guard evaluations, by decision and reason.",
	},
	[]string{"decision", "reason"},
)

// FeedFallbacksTotal counts feeds served from the hardcoded sample data.
// Label:
//   - feed: feed identifier (e.g. "service_requests")
var FeedFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_fallbacks_total",
		Help:      "Total number of dashboard feeds served from fallback sample data.",
	},
	[]string{"feed"},
)

// UpstreamRequestsTotal counts calls to the RunPro API.
// Labels:
//   - path: upstream path template
//   - outcome: "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the RunPro API, by path and outcome.",
	},
	[]string{"path", "outcome"},
)
