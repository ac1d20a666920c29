package usecase

import (
	"context"

	"tutortrack/internal/domain/entity"
)

// CreateBookingInput defines the data required to book a tutor.
type CreateBookingInput struct {
	TutorID  string  `json:"tutorId"`
	Email    string  `json:"email" validate:"required"`
	Image    string  `json:"image"`
	Language string  `json:"language"`
	Price    float64 `json:"price"`
}

// BookingUsecase defines the interface for booked-tutor operations.
type BookingUsecase interface {
	ListBookings(ctx context.Context) ([]*entity.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*InsertOutput, error)
	SetReview(ctx context.Context, id string, review string) (*entity.Booking, error)
}
