package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/domain"
	"github.com/runpro9ja/admin-gateway/internal/core/ports"
	"github.com/runpro9ja/admin-gateway/internal/core/service"
)

// DashboardHandler serves the overview feed behind the dashboard landing
// view, plus the company analytics rollup.
type DashboardHandler struct {
	feeds    *service.FeedService
	upstream ports.Upstream
}

func NewDashboardHandler(feeds *service.FeedService, up ports.Upstream) *DashboardHandler {
	return &DashboardHandler{feeds: feeds, upstream: up}
}

// Overview returns the dashboard metrics for a period.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "week, month or year"  default(week)
// @Success      200     {object}  map[string]any
// @Router       /api/admin/dashboard/overview [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	period := c.QueryParam("period")
	switch period {
	case "week", "month", "year":
	default:
		period = "week"
	}

	feed := h.feeds.DashboardOverview(c.Request().Context(), snap.Credential, period)
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"fallback":  feed.Fallback(),
		"period":    period,
		"dashboard": feed.Data,
	})
}

// AnalyticsSummary proxies the company analytics rollup. No fallback: an
// unreachable backend surfaces as an error like the other proxied routes.
//
// @Summary      Company analytics summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Failure      502  {object}  map[string]string
// @Router       /api/admin/analytics/summary [get]
func (h *DashboardHandler) AnalyticsSummary(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	body, status, err := h.upstream.Proxy(c.Request().Context(), snap.Credential, http.MethodGet, "/api/admin/analytics/summary", c.QueryParams(), nil)
	if err != nil {
		return err
	}
	return c.JSONBlob(status, body)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or unparseable.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// feedEnvelope renders the canonical feed response: the original envelope
// plus the fallback advisory flag the dashboard shows its banner off.
func feedEnvelope(fallback bool, field string, data any) map[string]any {
	return map[string]any{
		"success":  true,
		"fallback": fallback,
		field:      data,
	}
}

type serviceRequestView struct {
	domain.ServiceRequest
	StatusLabel string `json:"statusLabel"`
}

func serviceRequestViews(records []domain.ServiceRequest) []serviceRequestView {
	out := make([]serviceRequestView, 0, len(records))
	for _, r := range records {
		out = append(out, serviceRequestView{ServiceRequest: r, StatusLabel: domain.StatusLabel(r.Status)})
	}
	return out
}
