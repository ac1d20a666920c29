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

// bookingRepository implements the repository.BookingRepository interface over
// the bookedTutorsCollection collection.
type bookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &bookingRepository{
		coll: db.Collection(bookedTutorsCollection),
	}
}

// FindAll retrieves every booking document.
func (repo *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings")
	}

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, errors.Wrap(err, "failed to decode bookings")
	}

	return bookings, nil
}

// FindByEmail retrieves all bookings made by the given email.
func (repo *bookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by email")
	}

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, errors.Wrap(err, "failed to decode bookings")
	}

	return bookings, nil
}

// Insert persists a new booking and returns the generated document id.
func (repo *bookingRepository) Insert(ctx context.Context, booking *entity.Booking) (primitive.ObjectID, error) {
	result, err := repo.coll.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "failed to insert booking")
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}

	return id, nil
}

// SetReview overwrites the review field and returns the updated
// document. No upsert: a review against an unused id must surface as
// ErrBookingNotFound, never create a review-only booking.
func (repo *bookingRepository) SetReview(ctx context.Context, id primitive.ObjectID, review string) (*entity.Booking, error) {
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var booking entity.Booking
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"review": review}}, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to update booking review")
	}

	return &booking, nil
}
