package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/service"
)

// ProvidersHandler serves the provider roster, the pending applications and
// the top-agents board.
type ProvidersHandler struct {
	feeds *service.FeedService
}

func NewProvidersHandler(feeds *service.FeedService) *ProvidersHandler {
	return &ProvidersHandler{feeds: feeds}
}

// ServiceProviders returns the active provider roster.
//
// @Summary      List service providers
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int     false  "Maximum rows"  default(50)
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  map[string]any
// @Router       /api/admin/service-providers [get]
func (h *ProvidersHandler) ServiceProviders(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 50)
	status := c.QueryParam("status")

	feed := h.feeds.ServiceProviders(c.Request().Context(), snap.Credential, limit, status)
	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "serviceProviders", feed.Data))
}

// PotentialProviders returns pending provider applications.
//
// @Summary      List potential providers
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum rows"  default(20)
// @Success      200    {object}  map[string]any
// @Router       /api/admin/potential-providers [get]
func (h *ProvidersHandler) PotentialProviders(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 20)

	feed := h.feeds.PotentialProviders(c.Request().Context(), snap.Credential, limit)
	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "potentialProviders", feed.Data))
}

// TopAgents returns the best-performing agents.
//
// @Summary      List top agents
// @Tags         providers
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum rows"  default(10)
// @Success      200    {object}  map[string]any
// @Router       /api/admin/top-agents [get]
func (h *ProvidersHandler) TopAgents(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 10)

	feed := h.feeds.TopAgents(c.Request().Context(), snap.Credential, limit)
	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "agents", feed.Data))
}
