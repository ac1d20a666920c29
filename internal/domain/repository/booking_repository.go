package repository

import (
	"context"
	"errors"

	"tutortrack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrBookingNotFound is a domain-specific error returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the standard operations over booked-tutor documents.
type BookingRepository interface {
	// FindAll retrieves every booking document.
	FindAll(ctx context.Context) ([]*entity.Booking, error)

	// FindByEmail retrieves all bookings made by the given email.
	FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error)

	// Insert persists a new booking and returns the generated document id.
	Insert(ctx context.Context, booking *entity.Booking) (primitive.ObjectID, error)

	// SetReview overwrites the review field of a booking and returns the
	// updated document. Returns ErrBookingNotFound when the filter
	// matched nothing; a review must never create a booking.
	SetReview(ctx context.Context, id primitive.ObjectID, review string) (*entity.Booking, error)
}
