// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tutortrack/internal/domain/entity"
)

// --- Input DTOs ---

// CreateTutorInput defines the data required to publish a tutor listing.
type CreateTutorInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email" validate:"required"`
	Image       string  `json:"image"`
	Language    string  `json:"language" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Description string  `json:"description"`
}

// UpdateTutorInput defines the allowlisted fields an owner may overwrite.
type UpdateTutorInput struct {
	Image       string  `json:"image"`
	Language    string  `json:"language"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// --- Output DTOs ---

// InsertOutput surfaces the generated document id after an insert.
type InsertOutput struct {
	InsertedID string `json:"insertedId"`
}

// TutorUsecase defines the interface for tutor-listing operations.
// This is the contract that the delivery layer (API handlers) depends on.
// Identifier strings are validated for ObjectId shape before any store
// access; malformed ids never reach the repository.
type TutorUsecase interface {
	ListTutors(ctx context.Context) ([]*entity.Tutor, error)
	GetTutor(ctx context.Context, id string) (*entity.Tutor, error)
	ListTutorsByLanguage(ctx context.Context, language string) ([]*entity.Tutor, error)
	ListTutorsByOwner(ctx context.Context, email string) ([]*entity.Tutor, error)
	CreateTutor(ctx context.Context, input *CreateTutorInput) (*InsertOutput, error)
	UpdateTutor(ctx context.Context, id string, input *UpdateTutorInput) error
	IncrementReview(ctx context.Context, id string) (*entity.Tutor, error)
	DeleteTutor(ctx context.Context, id string) error
}
