package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/api/metrics"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
	"github.com/runpro9ja/admin-gateway/internal/core/ports"
)

// Policy enforces a role allow-list over the snapshot Auth injected. A
// session whose role falls outside the policy is actively revoked before the
// request is rejected — a session known to be unauthorized must not linger.
func Policy(sessions ports.SessionService, policy domain.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap, ok := c.Get(CtxSnapshot).(domain.Snapshot)
			if !ok {
				metrics.GuardDecisionsTotal.WithLabelValues("denied", "unauthenticated").Inc()
				c.Response().Header().Set("X-Redirect", LoginPath)
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			if !snap.AuthorizedFor(policy) {
				sessionID, _ := c.Get(CtxSessionID).(string)
				if sessionID != "" {
					if err := sessions.Revoke(c.Request().Context(), sessionID, "role outside "+policy.Name()+" policy"); err != nil {
						return err
					}
				}
				metrics.GuardDecisionsTotal.WithLabelValues("denied", "role_not_allowed").Inc()
				c.Response().Header().Set("X-Redirect", LoginPath)
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
			}

			metrics.GuardDecisionsTotal.WithLabelValues("granted", "ok").Inc()
			return next(c)
		}
	}
}
