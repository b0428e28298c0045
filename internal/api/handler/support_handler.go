package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/ports"
	"github.com/runpro9ja/admin-gateway/internal/core/service"
)

// SupportHandler serves the customer-support view: conversations with
// fallback, plus straight proxies for the employee roster and the pending
// queue.
type SupportHandler struct {
	feeds    *service.FeedService
	upstream ports.Upstream
}

func NewSupportHandler(feeds *service.FeedService, up ports.Upstream) *SupportHandler {
	return &SupportHandler{feeds: feeds, upstream: up}
}

// Cases returns the support conversations.
//
// @Summary      List support cases
// @Tags         support
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /api/support/messages [get]
func (h *SupportHandler) Cases(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	feed := h.feeds.SupportCases(c.Request().Context(), snap.Credential)
	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "cases", feed.Data))
}

// Employees proxies the support-employee roster.
//
// @Summary      List support employees
// @Tags         support
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Failure      502  {object}  map[string]string
// @Router       /api/support/employees [get]
func (h *SupportHandler) Employees(c echo.Context) error {
	return h.proxy(c, "/api/admin/support-employees")
}

// PendingRequests proxies the pending-request queue.
//
// @Summary      List pending requests
// @Tags         support
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Failure      502  {object}  map[string]string
// @Router       /api/support/pending-requests [get]
func (h *SupportHandler) PendingRequests(c echo.Context) error {
	return h.proxy(c, "/api/admin/pending-requests")
}

func (h *SupportHandler) proxy(c echo.Context, path string) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	body, status, err := h.upstream.Proxy(c.Request().Context(), snap.Credential, http.MethodGet, path, c.QueryParams(), nil)
	if err != nil {
		return err
	}
	return c.JSONBlob(status, body)
}
