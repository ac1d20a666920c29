package mongo

import (
	"context"

	"tutortrack/internal/domain/entity"
	"tutortrack/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// tutorRepository implements the repository.TutorRepository interface over the
// tutorCollection collection.
type tutorRepository struct {
	coll *mongo.Collection
}

// NewTutorRepository is the constructor for tutorRepository.
// It returns the repository as a repository.TutorRepository interface, adhering to dependency inversion.
func NewTutorRepository(db *mongo.Database) repository.TutorRepository {
	return &tutorRepository{
		coll: db.Collection(tutorCollection),
	}
}

// FindAll retrieves every tutor listing.
func (repo *tutorRepository) FindAll(ctx context.Context) ([]*entity.Tutor, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tutors")
	}

	var tutors []*entity.Tutor
	if err := cursor.All(ctx, &tutors); err != nil {
		return nil, errors.Wrap(err, "failed to decode tutors")
	}

	return tutors, nil
}

// FindByID retrieves a single listing by its document id.
func (repo *tutorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tutor, error) {
	var tutor entity.Tutor
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&tutor); err != nil {
		// If no document matched, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTutorNotFound
		}

		return nil, errors.Wrap(err, "failed to find tutor by id")
	}

	return &tutor, nil
}

// FindByLanguage retrieves all listings whose language field matches exactly.
func (repo *tutorRepository) FindByLanguage(ctx context.Context, language string) ([]*entity.Tutor, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"language": language})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tutors by language")
	}

	var tutors []*entity.Tutor
	if err := cursor.All(ctx, &tutors); err != nil {
		return nil, errors.Wrap(err, "failed to decode tutors")
	}

	return tutors, nil
}

// FindByOwner retrieves all listings created by the given email.
func (repo *tutorRepository) FindByOwner(ctx context.Context, email string) ([]*entity.Tutor, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tutors by owner")
	}

	var tutors []*entity.Tutor
	if err := cursor.All(ctx, &tutors); err != nil {
		return nil, errors.Wrap(err, "failed to decode tutors")
	}

	return tutors, nil
}

// Insert persists a new listing and returns the generated document id.
func (repo *tutorRepository) Insert(ctx context.Context, tutor *entity.Tutor) (primitive.ObjectID, error) {
	result, err := repo.coll.InsertOne(ctx, tutor)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to insert tutor")
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}

	return id, nil
}

// UpdateFields overwrites the allowlisted listing fields. The $set keeps
// client-supplied documents from replacing the whole record. The count
// deliberately excludes upserts: an upsert against an unused id means
// the listing did not exist, and callers map zero matched to not-found.
func (repo *tutorRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields *entity.TutorUpdate) (int64, error) {
	update := bson.M{"$set": bson.M{
		"image":       fields.Image,
		"language":    fields.Language,
		"price":       fields.Price,
		"description": fields.Description,
	}}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return 0, errors.Wrap(err, "failed to update tutor")
	}

	return result.MatchedCount, nil
}

// IncrementReview performs the increment store-side in a single round
// trip. Concurrent increments on the same listing both land.
func (repo *tutorRepository) IncrementReview(ctx context.Context, id primitive.ObjectID) (*entity.Tutor, error) {
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var tutor entity.Tutor
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"review": 1}}, opts).Decode(&tutor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTutorNotFound
		}

		return nil, errors.Wrap(err, "failed to increment tutor review count")
	}

	return &tutor, nil
}

// Delete removes a listing by id and reports how many documents were deleted.
func (repo *tutorRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete tutor")
	}

	return result.DeletedCount, nil
}
