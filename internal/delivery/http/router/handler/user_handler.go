package handler

import (
	"log/slog"
	"net/http"

	"tutortrack/internal/delivery/http/middleware"
	"tutortrack/internal/delivery/http/response"
	"tutortrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for registered-user handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// GetUser handles GET /register-user/:email. Public profile lookup.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "user retrieved")
}

// GetMyProfile handles GET /register-user. Gated; the lookup is keyed
// by the credential's own email, so no parameter comparison is needed.
func (h *UserHandler) GetMyProfile(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "unauthorized access")
	}

	user, err := h.userUC.GetUserByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "profile retrieved")
}

// RegisterUser handles POST /registerUsers. Public registration.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "email is required")
	}

	out, err := h.userUC.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out, "user registered")
}
