package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/auth"
	"github.com/j7amo/e-commerce-api/internal/models"
)

type updateUserRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=20"`
	Email string `json:"email" binding:"required,email"`
}

type updateUserPasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=20"`
}

func (app *application) getAllUsers(c *gin.Context) {
	users, err := app.users.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (app *application) getSingleUser(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("user not found"))
		return
	}

	user, err := app.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("user not found"))
			return
		}
		abortWithError(c, err)
		return
	}

	payload := auth.MustGetUser(c)
	if err := auth.CheckOwnership(payload, user.ID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// showCurrentUser answers straight from the claim; no store round trip.
func (app *application) showCurrentUser(c *gin.Context) {
	payload := auth.MustGetUser(c)
	c.JSON(http.StatusOK, gin.H{"user": payload})
}

func (app *application) updateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}

	payload := auth.MustGetUser(c)
	id, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	user, err := app.users.Update(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoRecord):
			abortWithError(c, apperror.NotFound("user not found"))
		case errors.Is(err, models.ErrDuplicateEmail):
			abortWithError(c, apperror.BadRequest("email already in use"))
		default:
			abortWithError(c, err)
		}
		return
	}

	// name/email live inside the claim, so the session cookie is re-issued
	freshPayload := auth.NewTokenPayload(user)
	if err := app.attachSessionCookie(c, freshPayload); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": freshPayload})
}

func (app *application) updateUserPassword(c *gin.Context) {
	var req updateUserPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}
	ctx := c.Request.Context()

	payload := auth.MustGetUser(c)
	id, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	user, err := app.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("user not found"))
			return
		}
		abortWithError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		abortWithError(c, apperror.Unauthenticated("invalid credentials"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := app.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		abortWithError(c, err)
		return
	}

	// password is not part of the claim, so no cookie re-issue here
	c.JSON(http.StatusOK, gin.H{"msg": "password updated"})
}
