package usecase

import (
	"context"
)

// IssueTokenInput defines the identity claim supplied at login.
type IssueTokenInput struct {
	Email string `json:"email" validate:"required"`
}

// SessionUsecase defines the interface for issuing session credentials.
// Credentials are stateless: nothing is persisted server-side, so there
// is no logout counterpart here — clearing the cookie is a transport
// concern handled by the delivery layer.
type SessionUsecase interface {
	IssueToken(ctx context.Context, input *IssueTokenInput) (string, error)
}
