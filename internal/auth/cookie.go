package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// AttachCookie encodes a fresh token for the payload and binds it to the
// response cookie. HTTP-only always; Secure only when the caller says so
// (production). The cookie payload is never trusted on the way back in
// without full token verification.
func AttachCookie(c *gin.Context, payload TokenPayload, secret []byte, lifetime time.Duration, secure bool) error {
	token, err := CreateToken(payload, secret, lifetime)
	if err != nil {
		return err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(lifetime),
		HttpOnly: true,
		Secure:   secure,
	})
	return nil
}

// DetachCookie overwrites the session cookie with a sentinel value and an
// already-past expiry so the client drops it. This is the entire logout
// mechanism: there is no server-side revocation, so a copied cookie stays
// valid until its embedded expiry.
func DetachCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "logout",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HttpOnly: true,
	})
}
