package usecase

import (
	"context"

	"tutortrack/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required"`
	Photo string `json:"photo"`
}

// UserUsecase defines the interface for registered-user operations.
type UserUsecase interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error)
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*InsertOutput, error)
}
