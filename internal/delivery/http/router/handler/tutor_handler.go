package handler

import (
	"log/slog"
	"net/http"

	"tutortrack/internal/delivery/http/middleware"
	"tutortrack/internal/delivery/http/response"
	"tutortrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TutorHandler holds dependencies for tutor-listing handlers.
type TutorHandler struct {
	tutorUC usecase.TutorUsecase
	logger  *slog.Logger
}

// NewTutorHandler is the constructor for TutorHandler, injected by Fx.
func NewTutorHandler(tutorUC usecase.TutorUsecase, logger *slog.Logger) *TutorHandler {
	return &TutorHandler{
		tutorUC: tutorUC,
		logger:  logger,
	}
}

// ListTutors handles GET /allTutors. Public.
func (h *TutorHandler) ListTutors(c echo.Context) error {
	tutors, err := h.tutorUC.ListTutors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tutors, "tutors retrieved")
}

// GetTutor handles GET /allTutors/:id. Public.
func (h *TutorHandler) GetTutor(c echo.Context) error {
	tutor, err := h.tutorUC.GetTutor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tutor, "tutor retrieved")
}

// ListTutorsByLanguage handles GET /allTutors/lang/:lang. Public.
func (h *TutorHandler) ListTutorsByLanguage(c echo.Context) error {
	tutors, err := h.tutorUC.ListTutorsByLanguage(c.Request().Context(), c.Param("lang"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tutors, "tutors retrieved")
}

// ListMyTutorials handles GET /my-tutorials/:email. Gated; the path
// email must match the credential's claim.
func (h *TutorHandler) ListMyTutorials(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "unauthorized access")
	}

	email := c.Param("email")
	if claims.Email != email {
		return response.Forbidden(c, "FORBIDDEN", "forbidden: email mismatch")
	}

	tutors, err := h.tutorUC.ListTutorsByOwner(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tutors, "tutorials retrieved")
}

// GetMyTutorial handles GET /my-added-tutorial/:id. Gated.
func (h *TutorHandler) GetMyTutorial(c echo.Context) error {
	tutor, err := h.tutorUC.GetTutor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tutor, "tutor retrieved")
}

// CreateTutor handles POST /allTutors. Gated; the body email must match
// the credential's claim — the claim, not the body, decides identity.
func (h *TutorHandler) CreateTutor(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "unauthorized access")
	}

	var input usecase.CreateTutorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid tutor input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "email, language and price are required")
	}

	if claims.Email != input.Email {
		return response.Forbidden(c, "FORBIDDEN", "forbidden: email mismatch")
	}

	out, err := h.tutorUC.CreateTutor(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out, "tutor added")
}

// UpdateTutor handles PUT /update-tutorials/:id. Gated.
func (h *TutorHandler) UpdateTutor(c echo.Context) error {
	var input usecase.UpdateTutorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid tutorial input")
	}

	if err := h.tutorUC.UpdateTutor(c.Request().Context(), c.Param("id"), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "tutorial updated")
}

// IncreaseReviews handles PATCH /increase-reviews/:id. Public; the
// increment happens store-side so concurrent calls never lose updates.
func (h *TutorHandler) IncreaseReviews(c echo.Context) error {
	tutor, err := h.tutorUC.IncrementReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tutor, "review count increased")
}

// DeleteTutor handles DELETE /my-tutorials/:id. Gated.
func (h *TutorHandler) DeleteTutor(c echo.Context) error {
	if err := h.tutorUC.DeleteTutor(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "tutorial deleted")
}
