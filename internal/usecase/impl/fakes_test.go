package impl

import (
	"context"

	"tutortrack/internal/domain/entity"
	"tutortrack/internal/domain/repository"
	"tutortrack/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeTutorRepo is a hand-rolled stub that records every invocation so
// tests can assert that validation failures never reach the store.
type fakeTutorRepo struct {
	calls int

	tutors  []*entity.Tutor
	tutor   *entity.Tutor
	insert  primitive.ObjectID
	matched int64
	deleted int64
	err     error
}

func (f *fakeTutorRepo) FindAll(_ context.Context) ([]*entity.Tutor, error) {
	f.calls++

	return f.tutors, f.err
}

func (f *fakeTutorRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*entity.Tutor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.tutor, nil
}

func (f *fakeTutorRepo) FindByLanguage(_ context.Context, _ string) ([]*entity.Tutor, error) {
	f.calls++

	return f.tutors, f.err
}

func (f *fakeTutorRepo) FindByOwner(_ context.Context, _ string) ([]*entity.Tutor, error) {
	f.calls++

	return f.tutors, f.err
}

func (f *fakeTutorRepo) Insert(_ context.Context, _ *entity.Tutor) (primitive.ObjectID, error) {
	f.calls++

	return f.insert, f.err
}

func (f *fakeTutorRepo) UpdateFields(_ context.Context, _ primitive.ObjectID, _ *entity.TutorUpdate) (int64, error) {
	f.calls++

	return f.matched, f.err
}

func (f *fakeTutorRepo) IncrementReview(_ context.Context, _ primitive.ObjectID) (*entity.Tutor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.tutor, nil
}

func (f *fakeTutorRepo) Delete(_ context.Context, _ primitive.ObjectID) (int64, error) {
	f.calls++

	return f.deleted, f.err
}

var _ repository.TutorRepository = (*fakeTutorRepo)(nil)

// fakeBookingRepo stubs the booking repository with invocation counting.
type fakeBookingRepo struct {
	calls int

	bookings []*entity.Booking
	booking  *entity.Booking
	insert   primitive.ObjectID
	err      error
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	f.calls++

	return f.bookings, f.err
}

func (f *fakeBookingRepo) FindByEmail(_ context.Context, _ string) ([]*entity.Booking, error) {
	f.calls++

	return f.bookings, f.err
}

func (f *fakeBookingRepo) Insert(_ context.Context, _ *entity.Booking) (primitive.ObjectID, error) {
	f.calls++

	return f.insert, f.err
}

func (f *fakeBookingRepo) SetReview(_ context.Context, _ primitive.ObjectID, _ string) (*entity.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.booking, nil
}

var _ repository.BookingRepository = (*fakeBookingRepo)(nil)

// fakeUserRepo stubs the user repository with invocation counting.
type fakeUserRepo struct {
	calls int

	user   *entity.RegisteredUser
	insert primitive.ObjectID
	err    error
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entity.RegisteredUser, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.user, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, _ *entity.RegisteredUser) (primitive.ObjectID, error) {
	f.calls++

	return f.insert, f.err
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeTokenService stubs credential signing.
type fakeTokenService struct {
	token string
	err   error
}

func (f *fakeTokenService) Issue(_ string) (string, error) {
	return f.token, f.err
}

func (f *fakeTokenService) Verify(_ string) (*service.Claims, error) {
	panic("Verify is not exercised by session tests")
}

var _ service.TokenService = (*fakeTokenService)(nil)
