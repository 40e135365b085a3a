package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/models"
)

// renderErrors stands in for the application's centralized error middleware:
// gates only record errors, somebody above them turns them into responses.
func renderErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		var apiErr *apperror.Error
		if errors.As(last.Err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"msg": apiErr.Msg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "something went wrong, try again later"})
	}
}

func newGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(renderErrors())

	router.GET("/protected", Authenticate(testSecret), func(c *gin.Context) {
		payload := MustGetUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": payload.UserID, "role": payload.Role})
	})
	router.GET("/admin", Authenticate(testSecret), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "ok"})
	})
	return router
}

func doRequest(router *gin.Engine, path string, cookieValue string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieValue})
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	router := newGateRouter()

	t.Run("Should populate the request identity for a valid token", func(t *testing.T) {
		payload := testPayload()
		token, err := CreateToken(payload, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(router, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), payload.UserID)
	})

	t.Run("Should fail identically for missing, tampered and expired tokens", func(t *testing.T) {
		expired, err := CreateToken(testPayload(), testSecret, -time.Minute)
		require.NoError(t, err)
		valid, err := CreateToken(testPayload(), testSecret, time.Hour)
		require.NoError(t, err)
		tampered := flipLastSignatureBit(t, valid)

		responses := map[string]*httptest.ResponseRecorder{
			"missing":  doRequest(router, "/protected", ""),
			"garbage":  doRequest(router, "/protected", "not-a-token"),
			"tampered": doRequest(router, "/protected", tampered),
			"expired":  doRequest(router, "/protected", expired),
		}
		for name, w := range responses {
			assert.Equal(t, http.StatusUnauthorized, w.Code, name)
			assert.JSONEq(t, `{"msg":"authentication invalid"}`, w.Body.String(), name)
		}
	})
}

func TestRequireRole(t *testing.T) {
	router := newGateRouter()

	t.Run("Should pass an admin through an admin-only route", func(t *testing.T) {
		token, err := CreateToken(TokenPayload{UserID: "1", Name: "Ann", Role: models.RoleAdmin}, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(router, "/admin", token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
	t.Run("Should reject a plain user on an admin-only route", func(t *testing.T) {
		token, err := CreateToken(TokenPayload{UserID: "2", Name: "Bob", Role: models.RoleUser}, testSecret, time.Hour)
		require.NoError(t, err)

		w := doRequest(router, "/admin", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
	t.Run("Should reject an unauthenticated caller before role evaluation", func(t *testing.T) {
		w := doRequest(router, "/admin", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
