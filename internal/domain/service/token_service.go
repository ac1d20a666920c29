// Package service defines interfaces for domain-level services that the
// use cases depend on, keeping their concrete implementations in infra.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload embedded in a signed credential. The
// email address is the sole source of truth for "who is making this
// request"; body- or query-supplied emails are only cross-checked
// against it.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService creates and verifies the signed, time-limited credential
// carried by the session cookie.
type TokenService interface {
	// Issue encodes the email claim plus issuance/expiry timestamps and
	// signs the result.
	Issue(email string) (string, error)

	// Verify decodes the token and checks signature and expiry. The
	// returned error distinguishes malformed tokens, bad signatures and
	// expired tokens via the jwt sentinel errors; callers that gate
	// requests collapse all of them to a single unauthorized outcome.
	Verify(tokenString string) (*Claims, error)
}
