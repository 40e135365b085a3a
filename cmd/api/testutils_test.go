package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/j7amo/e-commerce-api/internal/auth"
	"github.com/j7amo/e-commerce-api/internal/models/mocks"
	"github.com/j7amo/e-commerce-api/internal/payments"
)

const testJWTSecret = "test-signing-secret"

func newTestApplication(t *testing.T) (*application, *mocks.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := mocks.NewStores()
	app := &application{
		config: config{
			env:          "development",
			jwtSecret:    testJWTSecret,
			jwtLifetime:  24 * time.Hour,
			uploadDir:    t.TempDir(),
			maxImageSize: 1 << 20,
		},
		errorLog: log.New(io.Discard, "", 0),
		infoLog:  log.New(io.Discard, "", 0),
		users:    stores.Users,
		products: stores.Products,
		reviews:  stores.Reviews,
		orders:   stores.Orders,
		payments: payments.NewFakeStripe(),
	}
	return app, stores
}

func serve(t *testing.T, h http.Handler, method, urlPath string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, urlPath, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// registerUser registers through the real endpoint and returns the session
// cookie plus the claim from the response body.
func registerUser(t *testing.T, h http.Handler, name, email, password string) (*http.Cookie, map[string]any) {
	t.Helper()

	w := serve(t, h, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	claim, ok := body["user"].(map[string]any)
	require.True(t, ok)
	return sessionCookieFrom(t, w), claim
}

// setupUsers registers Ann first (admin by bootstrap) and Bob second (user).
func setupUsers(t *testing.T, h http.Handler) (adminCookie, userCookie *http.Cookie, adminClaim, userClaim map[string]any) {
	t.Helper()
	adminCookie, adminClaim = registerUser(t, h, "Ann", "a@x.com", "secret1")
	userCookie, userClaim = registerUser(t, h, "Bob", "b@x.com", "secret2")
	return adminCookie, userCookie, adminClaim, userClaim
}
