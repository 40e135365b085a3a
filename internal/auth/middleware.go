package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/models"
)

// Authenticate is the authentication gate. It reads the session cookie,
// verifies the token and injects the identity claim into the request context.
// Missing, malformed and expired tokens all produce the exact same 401 so a
// caller cannot probe which case they hit.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			abortWithError(c, apperror.Unauthenticated("authentication invalid"))
			return
		}

		payload, err := DecodeToken(tokenString, secret)
		if err != nil {
			abortWithError(c, apperror.Unauthenticated("authentication invalid"))
			return
		}

		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), payload))
		c.Next()
	}
}

// RequireRole is the authorization gate: it assumes Authenticate already ran
// and rejects identities whose role is not in the accepted set.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := GetUser(c)
		if !ok {
			abortWithError(c, apperror.Unauthenticated("authentication invalid"))
			return
		}

		for _, role := range roles {
			if payload.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, apperror.Unauthorized("not authorized to access this resource"))
	}
}

// abortWithError records the error for the centralized error middleware and
// stops the chain; gates never format responses themselves.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
