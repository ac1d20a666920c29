package impl

import (
	"context"
	"log/slog"

	"tutortrack/internal/domain/entity"
	domainerrors "tutortrack/internal/domain/errors"
	"tutortrack/internal/domain/repository"
	"tutortrack/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByEmail retrieves a registered user by email address.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.RegisteredUser, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch user")
	}

	return user, nil
}

// RegisterUser stores a new registered-user document.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.InsertOutput, error) {
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	user := &entity.RegisteredUser{
		Name:  input.Name,
		Email: input.Email,
		Photo: input.Photo,
	}

	id, err := srv.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add user")
	}

	srv.logger.Info("user registered", slog.String("email", input.Email))

	return &usecase.InsertOutput{InsertedID: id.Hex()}, nil
}
