// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tutortrack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrTutorNotFound is a domain-specific error returned when a tutor listing is not found.
var ErrTutorNotFound = errors.New("tutor not found")

// TutorRepository defines the standard operations over tutor listing documents.
// The application layer depends on this interface, not the concrete implementation.
type TutorRepository interface {
	// FindAll retrieves every tutor listing.
	FindAll(ctx context.Context) ([]*entity.Tutor, error)

	// FindByID retrieves a single listing by its document id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tutor, error)

	// FindByLanguage retrieves all listings whose language field matches exactly.
	FindByLanguage(ctx context.Context, language string) ([]*entity.Tutor, error)

	// FindByOwner retrieves all listings created by the given email.
	FindByOwner(ctx context.Context, email string) ([]*entity.Tutor, error)

	// Insert persists a new listing and returns the generated document id.
	Insert(ctx context.Context, tutor *entity.Tutor) (primitive.ObjectID, error)

	// UpdateFields overwrites the allowlisted fields of a listing and
	// reports how many documents the filter matched. Upserted documents
	// do not count as matches; zero means the listing did not exist.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields *entity.TutorUpdate) (int64, error)

	// IncrementReview atomically increments the review counter and returns
	// the updated listing. A read-modify-write here would lose concurrent
	// increments, so the increment must happen store-side.
	IncrementReview(ctx context.Context, id primitive.ObjectID) (*entity.Tutor, error)

	// Delete removes a listing by id and reports how many documents were deleted.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
