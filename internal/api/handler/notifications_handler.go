package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/ports"
)

// NotificationsHandler proxies the header's notification bell through to the
// backend.
type NotificationsHandler struct {
	upstream ports.Upstream
}

func NewNotificationsHandler(up ports.Upstream) *NotificationsHandler {
	return &NotificationsHandler{upstream: up}
}

// List proxies the notification listing.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries"  default(10)
// @Success      200    {object}  object
// @Failure      502    {object}  map[string]string
// @Router       /api/notifications [get]
func (h *NotificationsHandler) List(c echo.Context) error {
	return h.forward(c, http.MethodGet, "/api/notifications")
}

// MarkRead proxies marking one notification as read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification ID"
// @Success      200  {object}  object
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationsHandler) MarkRead(c echo.Context) error {
	return h.forward(c, http.MethodPatch, "/api/notifications/"+c.Param("id")+"/read")
}

// MarkAllRead proxies marking every notification as read.
//
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Router       /api/notifications/read-all [patch]
func (h *NotificationsHandler) MarkAllRead(c echo.Context) error {
	return h.forward(c, http.MethodPatch, "/api/notifications/read-all")
}

// UnreadCount proxies the unread-notification counter.
//
// @Summary      Unread notification count
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Router       /api/notifications/unread-count [get]
func (h *NotificationsHandler) UnreadCount(c echo.Context) error {
	return h.forward(c, http.MethodGet, "/api/notifications/unread-count")
}

func (h *NotificationsHandler) forward(c echo.Context, method, path string) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	payload, status, err := h.upstream.Proxy(c.Request().Context(), snap.Credential, method, path, c.QueryParams(), nil)
	if err != nil {
		return err
	}
	return c.JSONBlob(status, payload)
}
