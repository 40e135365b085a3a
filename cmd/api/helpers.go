package main

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/j7amo/e-commerce-api/internal/auth"
)

// abortWithError hands the error to the centralized error middleware.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// idParam parses the :id route parameter into an ObjectID.
func idParam(c *gin.Context) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param("id"))
}

// attachSessionCookie re-encodes the identity claim into a fresh session
// cookie; used on register, login and profile update.
func (app *application) attachSessionCookie(c *gin.Context, payload auth.TokenPayload) error {
	secure := app.config.env == "production"
	return auth.AttachCookie(c, payload, []byte(app.config.jwtSecret), app.config.jwtLifetime, secure)
}
