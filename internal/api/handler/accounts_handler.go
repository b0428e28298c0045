package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/ports"
)

// AccountsHandler proxies account management through to the backend. These
// operations mutate real data, so there is no fallback — an unreachable
// backend surfaces as an error, unlike the read-only feeds.
type AccountsHandler struct {
	upstream ports.Upstream
}

func NewAccountsHandler(up ports.Upstream) *AccountsHandler {
	return &AccountsHandler{upstream: up}
}

// List proxies the paged account listing.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        type    query     string  false  "users or agents"  default(users)
// @Param        page    query     int     false  "Page"             default(1)
// @Param        limit   query     int     false  "Page size"        default(13)
// @Param        search  query     string  false  "Search term"
// @Success      200     {object}  object
// @Failure      502     {object}  map[string]string
// @Router       /api/admin/accounts [get]
func (h *AccountsHandler) List(c echo.Context) error {
	return h.forward(c, http.MethodGet, "/api/admin/accounts")
}

// Update proxies an account update.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Account ID"
// @Success      200   {object}  object
// @Failure      502   {object}  map[string]string
// @Router       /api/admin/accounts/{id} [put]
func (h *AccountsHandler) Update(c echo.Context) error {
	return h.forward(c, http.MethodPut, "/api/admin/accounts/"+c.Param("id"))
}

// Delete proxies a bulk account deletion.
//
// @Summary      Delete accounts
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Failure      502  {object}  map[string]string
// @Router       /api/admin/accounts [delete]
func (h *AccountsHandler) Delete(c echo.Context) error {
	return h.forward(c, http.MethodDelete, "/api/admin/accounts")
}

func (h *AccountsHandler) forward(c echo.Context, method, path string) error {
	_, snap, err := ctxSession(c)
	if err != nil {
		return err
	}

	var body = c.Request().Body
	if method == http.MethodGet {
		body = nil
	}

	payload, status, err := h.upstream.Proxy(c.Request().Context(), snap.Credential, method, path, c.QueryParams(), body)
	if err != nil {
		return err
	}
	return c.JSONBlob(status, payload)
}
