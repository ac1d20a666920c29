package handler

import (
	"log/slog"
	"net/http"

	"tutortrack/internal/delivery/http/middleware"
	"tutortrack/internal/delivery/http/response"
	"tutortrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BookingHandler holds dependencies for booked-tutor handlers.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(bookingUC usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		logger:    logger,
	}
}

// ListBookings handles GET /booked-tutors. Gated.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingUC.ListBookings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings, "booked tutors retrieved")
}

// ListMyBookings handles GET /booked-tutors/:email. Gated; the path
// email must match the credential's claim so one user can never read
// another's bookings.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "unauthorized access")
	}

	email := c.Param("email")
	if claims.Email != email {
		return response.Forbidden(c, "FORBIDDEN", "forbidden: email mismatch")
	}

	bookings, err := h.bookingUC.ListBookingsByEmail(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings, "booked tutors retrieved")
}

// bookingReviewRequest is the PATCH /booked-tutors/:id body.
type bookingReviewRequest struct {
	Review string `json:"review"`
}

// CreateBooking handles POST /booked-tutors. Public, matching the
// source system's booking flow.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var input usecase.CreateBookingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid booking input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "email is required")
	}

	out, err := h.bookingUC.CreateBooking(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out, "booked tutor added")
}

// SetReview handles PATCH /booked-tutors/:id. Public review submission.
func (h *BookingHandler) SetReview(c echo.Context) error {
	var req bookingReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid review input")
	}

	booking, err := h.bookingUC.SetReview(c.Request().Context(), c.Param("id"), req.Review)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking, "review updated")
}
