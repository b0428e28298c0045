package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/api/middleware"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
)

// ctxSession extracts what the Auth middleware injected. Presence of the
// snapshot proves the middleware ran; a handler reached without it is a
// routing mistake and fails closed with 401.
func ctxSession(c echo.Context) (sessionID string, snap domain.Snapshot, err error) {
	snap, ok := c.Get(middleware.CtxSnapshot).(domain.Snapshot)
	if !ok {
		return "", domain.Snapshot{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	sessionID, _ = c.Get(middleware.CtxSessionID).(string)
	return sessionID, snap, nil
}
