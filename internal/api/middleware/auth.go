package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/api/metrics"
	"github.com/runpro9ja/admin-gateway/internal/core/ports"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	CtxSessionID = "session_id"
	CtxSnapshot  = "session_snapshot"
)

// LoginPath is where denied requests are pointed back to.
const LoginPath = "/login"

// Auth validates the gateway JWT, loads the session snapshot from the store
// and requires both credential and profile to be present. The snapshot is
// re-read on every request — the store may have changed since the last
// render, and the decision is never cached.
func Auth(jwtSecret string, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return deny(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return deny(c, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return deny(c, "invalid token")
			}

			sessionID, _ := claims["sid"].(string)
			if sessionID == "" {
				return deny(c, "invalid token")
			}

			snap, err := sessions.Snapshot(c.Request().Context(), sessionID)
			if err != nil {
				return err
			}
			if !snap.Authenticated() {
				return deny(c, "unauthorized")
			}

			c.Set(CtxSessionID, sessionID)
			c.Set(CtxSnapshot, snap)

			return next(c)
		}
	}
}

func deny(c echo.Context, msg string) error {
	metrics.GuardDecisionsTotal.WithLabelValues("denied", "unauthenticated").Inc()
	c.Response().Header().Set("X-Redirect", LoginPath)
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
