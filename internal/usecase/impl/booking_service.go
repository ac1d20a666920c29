package impl

import (
	"context"
	"log/slog"

	"tutortrack/internal/domain/entity"
	domainerrors "tutortrack/internal/domain/errors"
	"tutortrack/internal/domain/repository"
	"tutortrack/internal/usecase"

	"github.com/pkg/errors"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListBookings retrieves every booking document.
func (srv *bookingService) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch booked tutors")
	}

	return bookings, nil
}

// ListBookingsByEmail retrieves all bookings made by the given email.
// An empty result is reported as not-found.
func (srv *bookingService) ListBookingsByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	bookings, err := srv.bookingRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch booked tutors")
	}
	if len(bookings) == 0 {
		return nil, domainerrors.ErrBookingNotFound.WithDetails("no tutors found for this email")
	}

	return bookings, nil
}

// CreateBooking stores a new booked-tutor document.
func (srv *bookingService) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (*usecase.InsertOutput, error) {
	booking := &entity.Booking{
		TutorID:  input.TutorID,
		Email:    input.Email,
		Image:    input.Image,
		Language: input.Language,
		Price:    input.Price,
	}

	id, err := srv.bookingRepo.Insert(ctx, booking)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add booked tutor")
	}

	srv.logger.Info("booking created", slog.String("id", id.Hex()), slog.String("email", input.Email))

	return &usecase.InsertOutput{InsertedID: id.Hex()}, nil
}

// SetReview overwrites the free-text review of a booking and returns
// the updated document.
func (srv *bookingService) SetReview(ctx context.Context, id string, review string) (*entity.Booking, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	if review == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("review value is missing in request body")
	}

	booking, err := srv.bookingRepo.SetReview(ctx, oid, review)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update booking review")
	}

	return booking, nil
}
