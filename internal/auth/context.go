package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type so our keys cannot collide with other packages.
type contextKey string

const contextKeyUser contextKey = "auth_user"

// WithUser adds the decoded identity claim to the context.
func WithUser(ctx context.Context, payload TokenPayload) context.Context {
	return context.WithValue(ctx, contextKeyUser, payload)
}

// UserFromContext retrieves the identity claim from the context.
func UserFromContext(ctx context.Context) (TokenPayload, bool) {
	payload, ok := ctx.Value(contextKeyUser).(TokenPayload)
	return payload, ok
}

// GetUser retrieves the identity claim for the current request.
func GetUser(c *gin.Context) (TokenPayload, bool) {
	return UserFromContext(c.Request.Context())
}

// MustGetUser retrieves the identity claim or panics. Only for handlers that
// are guaranteed to run behind the authentication gate.
func MustGetUser(c *gin.Context) TokenPayload {
	payload, ok := GetUser(c)
	if !ok {
		panic("auth: identity claim not found in request context")
	}
	return payload
}
