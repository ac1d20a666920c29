// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"tutortrack/internal/delivery/http/response"
	"tutortrack/internal/delivery/http/session"
	"tutortrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for credential issuance and logout.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	cookies   *session.CookieAdapter
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessionUC usecase.SessionUsecase, cookies *session.CookieAdapter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessionUC: sessionUC,
		cookies:   cookies,
		logger:    logger,
	}
}

// IssueToken handles the login request: it signs a credential for the
// supplied identity claim and attaches it as an http-only cookie.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var input usecase.IssueTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "email is required")
	}

	token, err := h.sessionUC.IssueToken(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Attach(c, token)

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "credential issued")
}

// Logout clears the credential cookie. The token itself is stateless,
// so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "logged out")
}
