package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tutortrack/config"
	"tutortrack/internal/delivery/http/middleware"
	"tutortrack/internal/delivery/http/session"
	"tutortrack/internal/delivery/http/validator"
	"tutortrack/internal/domain/entity"
	"tutortrack/internal/domain/service"
	"tutortrack/internal/infra/auth"
	"tutortrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// fakeTutorUsecase returns canned values and counts invocations so
// tests can assert that guarded handlers never reach the usecase.
type fakeTutorUsecase struct {
	calls int

	tutors []*entity.Tutor
	tutor  *entity.Tutor
	out    *usecase.InsertOutput
	err    error
}

func (f *fakeTutorUsecase) ListTutors(context.Context) ([]*entity.Tutor, error) {
	f.calls++

	return f.tutors, f.err
}

func (f *fakeTutorUsecase) GetTutor(context.Context, string) (*entity.Tutor, error) {
	f.calls++

	return f.tutor, f.err
}

func (f *fakeTutorUsecase) ListTutorsByLanguage(context.Context, string) ([]*entity.Tutor, error) {
	f.calls++

	return f.tutors, f.err
}

func (f *fakeTutorUsecase) ListTutorsByOwner(context.Context, string) ([]*entity.Tutor, error) {
	f.calls++

	return f.tutors, f.err
}

func (f *fakeTutorUsecase) CreateTutor(context.Context, *usecase.CreateTutorInput) (*usecase.InsertOutput, error) {
	f.calls++

	return f.out, f.err
}

func (f *fakeTutorUsecase) UpdateTutor(context.Context, string, *usecase.UpdateTutorInput) error {
	f.calls++

	return f.err
}

func (f *fakeTutorUsecase) IncrementReview(context.Context, string) (*entity.Tutor, error) {
	f.calls++

	return f.tutor, f.err
}

func (f *fakeTutorUsecase) DeleteTutor(context.Context, string) error {
	f.calls++

	return f.err
}

type fakeBookingUsecase struct {
	calls int

	bookings []*entity.Booking
	booking  *entity.Booking
	out      *usecase.InsertOutput
	err      error
}

func (f *fakeBookingUsecase) ListBookings(context.Context) ([]*entity.Booking, error) {
	f.calls++

	return f.bookings, f.err
}

func (f *fakeBookingUsecase) ListBookingsByEmail(context.Context, string) ([]*entity.Booking, error) {
	f.calls++

	return f.bookings, f.err
}

func (f *fakeBookingUsecase) CreateBooking(context.Context, *usecase.CreateBookingInput) (*usecase.InsertOutput, error) {
	f.calls++

	return f.out, f.err
}

func (f *fakeBookingUsecase) SetReview(context.Context, string, string) (*entity.Booking, error) {
	f.calls++

	return f.booking, f.err
}

type fakeUserUsecase struct {
	calls int

	user *entity.RegisteredUser
	out  *usecase.InsertOutput
	err  error
}

func (f *fakeUserUsecase) GetUserByEmail(context.Context, string) (*entity.RegisteredUser, error) {
	f.calls++

	return f.user, f.err
}

func (f *fakeUserUsecase) RegisterUser(context.Context, *usecase.RegisterUserInput) (*usecase.InsertOutput, error) {
	f.calls++

	return f.out, f.err
}

var (
	_ usecase.TutorUsecase   = (*fakeTutorUsecase)(nil)
	_ usecase.BookingUsecase = (*fakeBookingUsecase)(nil)
	_ usecase.UserUsecase    = (*fakeUserUsecase)(nil)
)

// newTestTokenService builds a real JWT service so gated handlers run
// behind the actual authentication gate in tests.
func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "handler-test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

// serveGated runs a handler behind the authentication gate with a
// credential cookie for the given email, mirroring production routing.
// pattern is the Echo route pattern, target the concrete request URL.
func serveGated(t *testing.T, method, pattern, target string, body io.Reader, email string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	tokenSvc := newTestTokenService(t)
	token, err := tokenSvc.Issue(email)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	e.Add(method, pattern, h, middleware.NewAuthMiddleware(tokenSvc).Authenticate)

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
