package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/auth"
	"github.com/j7amo/e-commerce-api/internal/models"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=20"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (app *application) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}
	ctx := c.Request.Context()

	// The very first registrant becomes the admin. Count-then-insert is not
	// atomic: two concurrent first registrations can both observe an empty
	// collection and both be promoted.
	count, err := app.users.Count(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		abortWithError(c, err)
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := app.users.Insert(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			abortWithError(c, apperror.BadRequest("email already in use"))
			return
		}
		abortWithError(c, err)
		return
	}

	payload := auth.NewTokenPayload(user)
	if err := app.attachSessionCookie(c, payload); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": payload})
}

func (app *application) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}
	ctx := c.Request.Context()

	user, err := app.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.Unauthenticated("invalid credentials"))
			return
		}
		abortWithError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		abortWithError(c, apperror.Unauthenticated("invalid credentials"))
		return
	}

	payload := auth.NewTokenPayload(user)
	if err := app.attachSessionCookie(c, payload); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": payload})
}

func (app *application) logout(c *gin.Context) {
	auth.DetachCookie(c)
	c.JSON(http.StatusOK, gin.H{"msg": "logout"})
}
