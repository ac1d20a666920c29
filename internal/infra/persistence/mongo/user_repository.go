package mongo

import (
	"context"
	"time"

	"tutortrack/internal/domain/entity"
	"tutortrack/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface over the
// registerUserCollection collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(registerUserCollection),
	}
}

// FindByEmail retrieves a single registered user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error) {
	var user entity.RegisteredUser
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return &user, nil
}

// Insert persists a new registered user and returns the generated document id.
func (repo *userRepository) Insert(ctx context.Context, user *entity.RegisteredUser) (primitive.ObjectID, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	result, err := repo.coll.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to insert user")
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}

	return id, nil
}
