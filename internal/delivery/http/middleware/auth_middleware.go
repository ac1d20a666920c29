package middleware

import (
	"tutortrack/internal/delivery/http/response"
	"tutortrack/internal/delivery/http/session"
	"tutortrack/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// claimsKey is the well-known echo.Context key under which the gate
// stores the verified claims for downstream handlers.
const claimsKey = "claims"

// AuthMiddleware is the request authentication gate. It only ever
// inspects the credential cookie — never the body or route parameters —
// and it is the sole place signatures are verified.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the credential cookie. Missing cookie,
// malformed token, bad signature and expired token all collapse to a
// single 401; on success the claims are attached to the context and the
// handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "unauthorized access")
		}

		claims, err := m.tokenSvc.Verify(cookie.Value)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "unauthorized access")
		}

		c.Set(claimsKey, claims)

		return next(c)
	}
}

// GetClaims returns the claims the gate attached to the context.
// The second return is false on ungated routes or when the gate never ran.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok
}
