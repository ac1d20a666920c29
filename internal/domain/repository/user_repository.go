package repository

import (
	"context"
	"errors"

	"tutortrack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is a domain-specific error returned when a registered user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations over registered-user documents.
// Users are created once at registration and are read-only afterwards.
type UserRepository interface {
	// FindByEmail retrieves a single registered user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error)

	// Insert persists a new registered user and returns the generated document id.
	Insert(ctx context.Context, user *entity.RegisteredUser) (primitive.ObjectID, error)
}
