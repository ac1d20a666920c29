// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"tutortrack/internal/domain/entity"
	domainerrors "tutortrack/internal/domain/errors"
	"tutortrack/internal/domain/repository"
	"tutortrack/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// tutorService implements the TutorUsecase interface.
type tutorService struct {
	tutorRepo repository.TutorRepository
	logger    *slog.Logger
}

// NewTutorService is the constructor for tutorService.
func NewTutorService(
	tutorRepo repository.TutorRepository,
	logger *slog.Logger,
) usecase.TutorUsecase {
	return &tutorService{
		tutorRepo: tutorRepo,
		logger:    logger,
	}
}

// parseObjectID validates the ObjectId shape of a path identifier. It
// runs before any store access so a malformed id never reaches the
// repository.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidID.WrapMessage(id)
	}

	return oid, nil
}

// validateEmail applies the same shallow format check the rest of the
// system uses: an address must at least contain an '@'.
func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return domainerrors.ErrInvalidEmail.WrapMessage(email)
	}

	return nil
}

// ListTutors retrieves every tutor listing.
func (srv *tutorService) ListTutors(ctx context.Context) ([]*entity.Tutor, error) {
	tutors, err := srv.tutorRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch tutors")
	}

	return tutors, nil
}

// GetTutor retrieves a single listing by id.
func (srv *tutorService) GetTutor(ctx context.Context, id string) (*entity.Tutor, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	tutor, err := srv.tutorRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrTutorNotFound) {
			return nil, domainerrors.ErrTutorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch tutor by id")
	}

	return tutor, nil
}

// ListTutorsByLanguage retrieves all listings for a language. An empty
// result is reported as not-found, matching the by-email lookups.
func (srv *tutorService) ListTutorsByLanguage(ctx context.Context, language string) ([]*entity.Tutor, error) {
	tutors, err := srv.tutorRepo.FindByLanguage(ctx, language)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch tutors by language")
	}
	if len(tutors) == 0 {
		return nil, domainerrors.ErrTutorNotFound.WithDetails("no tutors found for the given language")
	}

	return tutors, nil
}

// ListTutorsByOwner retrieves all listings created by the given email.
func (srv *tutorService) ListTutorsByOwner(ctx context.Context, email string) ([]*entity.Tutor, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	tutors, err := srv.tutorRepo.FindByOwner(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch tutorials")
	}
	if len(tutors) == 0 {
		return nil, domainerrors.ErrTutorNotFound.WithDetails("no tutorials found for this email")
	}

	return tutors, nil
}

// CreateTutor publishes a new listing. The review counter always starts
// at zero regardless of client input.
func (srv *tutorService) CreateTutor(ctx context.Context, input *usecase.CreateTutorInput) (*usecase.InsertOutput, error) {
	tutor := &entity.Tutor{
		Name:        input.Name,
		Email:       input.Email,
		Image:       input.Image,
		Language:    input.Language,
		Price:       input.Price,
		Description: input.Description,
		Review:      0,
	}

	id, err := srv.tutorRepo.Insert(ctx, tutor)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add tutor")
	}

	srv.logger.Info("tutor listing created", slog.String("id", id.Hex()), slog.String("owner", input.Email))

	return &usecase.InsertOutput{InsertedID: id.Hex()}, nil
}

// UpdateTutor overwrites the allowlisted fields of a listing. Zero
// matched documents means the target did not exist.
func (srv *tutorService) UpdateTutor(ctx context.Context, id string, input *usecase.UpdateTutorInput) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	fields := &entity.TutorUpdate{
		Image:       input.Image,
		Language:    input.Language,
		Price:       input.Price,
		Description: input.Description,
	}

	matched, err := srv.tutorRepo.UpdateFields(ctx, oid, fields)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tutorials")
	}
	if matched == 0 {
		return domainerrors.ErrTutorNotFound
	}

	return nil
}

// IncrementReview bumps the review counter atomically and returns the
// updated listing.
func (srv *tutorService) IncrementReview(ctx context.Context, id string) (*entity.Tutor, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	tutor, err := srv.tutorRepo.IncrementReview(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrTutorNotFound) {
			return nil, domainerrors.ErrTutorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to increase review count")
	}

	return tutor, nil
}

// DeleteTutor removes a listing by id.
func (srv *tutorService) DeleteTutor(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	deleted, err := srv.tutorRepo.Delete(ctx, oid)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tutorial")
	}
	if deleted == 0 {
		return domainerrors.ErrTutorNotFound.WithDetails("no document found to delete")
	}

	return nil
}
