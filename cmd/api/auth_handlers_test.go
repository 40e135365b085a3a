package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("Should promote the first registrant to admin and set a session cookie", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		w := serve(t, h, http.MethodPost, "/api/v1/auth/register", gin.H{
			"name": "Ann", "email": "a@x.com", "password": "secret1",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		claim := body["user"].(map[string]any)
		assert.Equal(t, "admin", claim["role"])
		assert.Equal(t, "Ann", claim["name"])

		cookie := sessionCookieFrom(t, w)
		assert.True(t, cookie.HttpOnly)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("Should register later users with the user role", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		_, adminClaim := registerUser(t, h, "Ann", "a@x.com", "secret1")
		_, userClaim := registerUser(t, h, "Bob", "b@x.com", "secret2")

		assert.Equal(t, "admin", adminClaim["role"])
		assert.Equal(t, "user", userClaim["role"])
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		registerUser(t, h, "Ann", "a@x.com", "secret1")
		w := serve(t, h, http.MethodPost, "/api/v1/auth/register", gin.H{
			"name": "Imposter", "email": "a@x.com", "password": "secret9",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"msg":"email already in use"}`, w.Body.String())
	})

	t.Run("Should reject missing fields", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		w := serve(t, h, http.MethodPost, "/api/v1/auth/register", gin.H{"email": "a@x.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Should log in registered users with the same subject id", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		_, registered := registerUser(t, h, "Ann", "a@x.com", "secret1")

		w := serve(t, h, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email": "a@x.com", "password": "secret1",
		})
		require.Equal(t, http.StatusOK, w.Code)

		loggedIn := decodeBody(t, w)["user"].(map[string]any)
		assert.Equal(t, registered["userId"], loggedIn["userId"])
		sessionCookieFrom(t, w)
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()
		registerUser(t, h, "Ann", "a@x.com", "secret1")

		w := serve(t, h, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email": "a@x.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"msg":"invalid credentials"}`, w.Body.String())
	})

	t.Run("Should reject an unknown email with the same response", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		w := serve(t, h, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email": "nobody@x.com", "password": "whatever",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"msg":"invalid credentials"}`, w.Body.String())
	})
}

func TestLogout(t *testing.T) {
	t.Run("Should overwrite the session cookie with a past expiry", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		w := serve(t, h, http.MethodPost, "/api/v1/auth/logout", nil)
		require.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookieFrom(t, w)
		assert.Equal(t, "logout", cookie.Value)
		assert.True(t, cookie.Expires.Before(time.Now()))
	})
}

func TestNoRoute(t *testing.T) {
	t.Run("Should answer unknown routes with a dedicated 404", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		w := serve(t, h, http.MethodGet, "/api/v1/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"route not found"}`, w.Body.String())
	})
}
