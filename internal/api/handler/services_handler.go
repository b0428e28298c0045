package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/service"
)

// ServicesHandler serves the service-request table and the delivery-details
// table.
type ServicesHandler struct {
	feeds *service.FeedService
}

func NewServicesHandler(feeds *service.FeedService) *ServicesHandler {
	return &ServicesHandler{feeds: feeds}
}

// ServiceRequests returns the service-request table, optionally filtered by
// status.
//
// @Summary      List service requests
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int     false  "Maximum rows"  default(50)
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  map[string]any
// @Router       /api/admin/service-requests [get]
func (h *ServicesHandler) ServiceRequests(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 50)
	status := c.QueryParam("status")

	feed := h.feeds.ServiceRequests(c.Request().Context(), snap.Credential, limit, status)
	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "serviceRequests", serviceRequestViews(feed.Data)))
}

// DeliveryDetails returns the delivery-details table.
//
// @Summary      List delivery details
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum rows"  default(20)
// @Success      200    {object}  map[string]any
// @Router       /api/admin/delivery-details [get]
func (h *ServicesHandler) DeliveryDetails(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	limit := queryInt(c, "limit", 20)

	feed := h.feeds.DeliveryDetails(c.Request().Context(), snap.Credential, limit)
	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "deliveryDetails", feed.Data))
}
