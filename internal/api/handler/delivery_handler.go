package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/service"
	"github.com/runpro9ja/admin-gateway/internal/infrastructure/poller"
)

// DeliveryHandler serves the delivery-map markers. It reads the poller's
// snapshot so the map view does not hit the RunPro API on every render; the
// poller refreshes the snapshot on its fixed interval.
type DeliveryHandler struct {
	feeds *service.FeedService
	pol   *poller.Poller
}

func NewDeliveryHandler(feeds *service.FeedService, pol *poller.Poller) *DeliveryHandler {
	return &DeliveryHandler{feeds: feeds, pol: pol}
}

// ActiveDeliveries returns the markers for the delivery map.
//
// @Summary      List active deliveries
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /api/admin/active-deliveries [get]
func (h *DeliveryHandler) ActiveDeliveries(c echo.Context) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	feed, ok := h.pol.Snapshot()
	if !ok {
		// First request before the poller has completed a cycle: fetch
		// directly with the session's credential.
		feed = h.feeds.ActiveDeliveries(c.Request().Context(), snap.Credential)
	}

	return c.JSON(http.StatusOK, feedEnvelope(feed.Fallback(), "deliveries", feed.Data))
}
