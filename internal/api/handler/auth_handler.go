package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/runpro9ja/admin-gateway/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	User     any    `json:"user"`
	Redirect string `json:"redirect"`
}

// Login authenticates an administrator against the RunPro backend and opens
// a gateway session.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if strings.TrimSpace(req.Identifier) == "" || strings.TrimSpace(req.Password) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "identifier and password are required"})
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    result.Token,
		User:     result.Profile.Raw,
		Redirect: result.Redirect,
	})
}

// Logout closes the current session. Calling it without a live session is a
// no-op.
//
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), sessionID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"redirect": "/login"})
}

// Verify forwards the stored credential to the backend's verify endpoint.
//
// @Summary      Verify the session's backend token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  object
// @Failure      401  {object}  map[string]string
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	sessionID, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	body, err := h.sessions.Verify(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, body)
}
