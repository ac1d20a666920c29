// Package session binds the signed credential to an HTTP cookie with
// defined lifetime and transport-security attributes.
package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CookieName is the well-known name of the credential cookie.
const CookieName = "token"

// CookieAdapter issues and clears the credential cookie. The transport
// attributes depend on the environment: the deployed frontend lives on a
// different origin over TLS, so production needs Secure + SameSite=None,
// while local development runs over plaintext and would silently drop
// such a cookie. The toggle must stay a toggle.
type CookieAdapter struct {
	production bool
}

// NewCookieAdapter is the constructor for CookieAdapter.
func NewCookieAdapter(production bool) *CookieAdapter {
	return &CookieAdapter{production: production}
}

// attributes returns a cookie skeleton with the environment-dependent
// transport attributes. Clearing a cookie requires attribute parity
// with the original set, so both paths share this.
func (a *CookieAdapter) attributes() *http.Cookie {
	cookie := &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
	}

	if a.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.Secure = false
		cookie.SameSite = http.SameSiteStrictMode
	}

	return cookie
}

// Attach sets the credential cookie on the response. No Max-Age is set:
// the cookie is session-lived from the transport's perspective and the
// token's embedded expiry governs real lifetime.
func (a *CookieAdapter) Attach(c echo.Context, token string) {
	cookie := a.attributes()
	cookie.Value = token
	c.SetCookie(cookie)
}

// Clear removes the credential cookie using matching attributes.
func (a *CookieAdapter) Clear(c echo.Context) {
	cookie := a.attributes()
	cookie.Value = ""
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}
