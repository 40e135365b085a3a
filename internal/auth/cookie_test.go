package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestAttachCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should set an HTTP-only cookie holding a decodable token", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		payload := testPayload()
		require.NoError(t, AttachCookie(c, payload, testSecret, 24*time.Hour, false))

		cookie := sessionCookie(t, w)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), cookie.Expires, time.Minute)

		decoded, err := DecodeToken(cookie.Value, testSecret)
		require.NoError(t, err)
		assert.Equal(t, payload.UserID, decoded.UserID)
		assert.Equal(t, payload.Role, decoded.Role)
	})
	t.Run("Should mark the cookie Secure in production", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		require.NoError(t, AttachCookie(c, testPayload(), testSecret, time.Hour, true))
		assert.True(t, sessionCookie(t, w).Secure)
	})
}

func TestDetachCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should overwrite the cookie with a sentinel and a past expiry", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		DetachCookie(c)

		cookie := sessionCookie(t, w)
		assert.Equal(t, "logout", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Expires.Before(time.Now()))

		_, err := DecodeToken(cookie.Value, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("Should not invalidate a previously issued token", func(t *testing.T) {
		// there is no server-side revocation: a copy of the old cookie value
		// keeps decoding fine until its embedded expiry
		token, err := CreateToken(testPayload(), testSecret, time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		DetachCookie(c)

		_, err = DecodeToken(token, testSecret)
		assert.NoError(t, err)
	})
}
