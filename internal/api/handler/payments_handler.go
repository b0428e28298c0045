package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/ports"
	"github.com/runpro9ja/admin-gateway/internal/core/service"
)

// PaymentsHandler serves the recent-payments feed and proxies the payment
// summaries and flows.
type PaymentsHandler struct {
	feeds    *service.FeedService
	upstream ports.Upstream
}

func NewPaymentsHandler(feeds *service.FeedService, up ports.Upstream) *PaymentsHandler {
	return &PaymentsHandler{feeds: feeds, upstream: up}
}

// Recent returns the recent-payments table.
//
// @Summary      List recent payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum rows"  default(10)
// @Success      200    {object}  map[string]any
// @Router       /api/admin/recent-payments [get]
func (h *PaymentsHandler) Recent(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 10)

	feed := h.feeds.RecentPayments(c.Request().Context(), snap.Credential, limit)
	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "payments", feed.Data))
}

// Summary proxies the payments summary for a period.
//
// @Summary      Payments summary
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "daily, weekly or monthly"  default(daily)
// @Success      200     {object}  object
// @Failure      502     {object}  map[string]string
// @Router       /api/admin/payments-summary [get]
func (h *PaymentsHandler) Summary(c echo.Context) error {
	return h.proxy(c, "/api/admin/payments-summary")
}

// Inflow proxies the payment inflow table.
//
// @Summary      Payments inflow
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Failure      502  {object}  map[string]string
// @Router       /api/admin/payments-inflow [get]
func (h *PaymentsHandler) Inflow(c echo.Context) error {
	return h.proxy(c, "/api/admin/payments-inflow")
}

// Outflow proxies the payment outflow table.
//
// @Summary      Payments outflow
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Failure      502  {object}  map[string]string
// @Router       /api/admin/payments-outflow [get]
func (h *PaymentsHandler) Outflow(c echo.Context) error {
	return h.proxy(c, "/api/admin/payments-outflow")
}

func (h *PaymentsHandler) proxy(c echo.Context, path string) error {
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
