package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productBody(overrides gin.H) gin.H {
	body := gin.H{
		"name":        "wooden desk",
		"price":       259.99,
		"description": "a sturdy desk for the home office",
		"category":    "office",
		"company":     "ikea",
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func createProduct(t *testing.T, h http.Handler, cookie *http.Cookie, overrides gin.H) map[string]any {
	t.Helper()
	w := serve(t, h, http.MethodPost, "/api/v1/products", productBody(overrides), cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)["product"].(map[string]any)
}

func TestCreateProduct(t *testing.T) {
	t.Run("Should be admin-only", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()
		adminCookie, userCookie, _, _ := setupUsers(t, h)

		w := serve(t, h, http.MethodPost, "/api/v1/products", productBody(nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = serve(t, h, http.MethodPost, "/api/v1/products", productBody(nil), userCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = serve(t, h, http.MethodPost, "/api/v1/products", productBody(nil), adminCookie)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Should always take the caller as owner, ignoring client input", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()
		adminCookie, _, adminClaim, userClaim := setupUsers(t, h)

		product := createProduct(t, h, adminCookie, gin.H{"user": userClaim["userId"]})
		assert.Equal(t, adminClaim["userId"], product["user"])
	})

	t.Run("Should apply defaults for image, colors and inventory", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()
		adminCookie, _, _, _ := setupUsers(t, h)

		product := createProduct(t, h, adminCookie, nil)
		assert.Equal(t, "/uploads/example.jpeg", product["image"])
		assert.Equal(t, []any{"#222"}, product["colors"])
		assert.Equal(t, float64(15), product["inventory"])
	})

	t.Run("Should reject an unknown category", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()
		adminCookie, _, _, _ := setupUsers(t, h)

		w := serve(t, h, http.MethodPost, "/api/v1/products", productBody(gin.H{"category": "garage"}), adminCookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProducts(t *testing.T) {
	t.Run("Should be publicly readable with a count", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()
		adminCookie, _, _, _ := setupUsers(t, h)
		product := createProduct(t, h, adminCookie, nil)

		w := serve(t, h, http.MethodGet, "/api/v1/products", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["count"])

		w = serve(t, h, http.MethodGet, "/api/v1/products/"+product["id"].(string), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should return 404 for unknown and malformed product ids", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()

		w := serve(t, h, http.MethodGet, "/api/v1/products/64a000000000000000000000", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = serve(t, h, http.MethodGet, "/api/v1/products/not-an-id", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Should update fields for admins", func(t *testing.T) {
		app, _ := newTestApplication(t)
		h := app.routes()
		adminCookie, userCookie, _, _ := setupUsers(t, h)
		product := createProduct(t, h, adminCookie, nil)
		path := "/api/v1/products/" + product["id"].(string)

		w := serve(t, h, http.MethodPatch, path, productBody(gin.H{"price": 199.99}), userCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = serve(t, h, http.MethodPatch, path, productBody(gin.H{"price": 199.99}), adminCookie)
		require.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody(t, w)["product"].(map[string]any)
		assert.Equal(t, 199.99, updated["price"])
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Should cascade to the product's reviews", func(t *testing.T) {
		app, stores := newTestApplication(t)
		h := app.routes()
		adminCookie, userCookie, _, _ := setupUsers(t, h)
		product := createProduct(t, h, adminCookie, nil)
		productID := product["id"].(string)

		w := serve(t, h, http.MethodPost, "/api/v1/reviews", gin.H{
			"rating": 5, "title": "great desk", "comment": "solid and easy to build", "product": productID,
		}, userCookie)
		require.Equal(t, http.StatusCreated, w.Code)

		w = serve(t, h, http.MethodDelete, "/api/v1/products/"+productID, nil, adminCookie)
		require.Equal(t, http.StatusOK, w.Code)

		reviews, err := stores.Reviews.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})
}
