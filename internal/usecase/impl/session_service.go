package impl

import (
	"context"
	"log/slog"

	domainerrors "tutortrack/internal/domain/errors"
	"tutortrack/internal/domain/service"
	"tutortrack/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// IssueToken signs a credential for the supplied identity claim.
func (srv *sessionService) IssueToken(_ context.Context, input *usecase.IssueTokenInput) (string, error) {
	if err := validateEmail(input.Email); err != nil {
		return "", err
	}

	token, err := srv.tokenSvc.Issue(input.Email)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage("failed to sign credential")
	}

	srv.logger.Debug("credential issued", slog.String("email", input.Email))

	return token, nil
}
