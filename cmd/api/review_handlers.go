package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/auth"
	"github.com/j7amo/e-commerce-api/internal/models"
)

type createReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"required,min=5,max=30"`
	Comment string `json:"comment" binding:"required,min=5,max=100"`
	Product string `json:"product" binding:"required"`
}

type updateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"required,min=5,max=30"`
	Comment string `json:"comment" binding:"required,min=5,max=100"`
}

func (app *application) createReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}
	ctx := c.Request.Context()

	productID, err := primitive.ObjectIDFromHex(req.Product)
	if err != nil {
		abortWithError(c, apperror.NotFound("product not found"))
		return
	}
	if _, err := app.products.Get(ctx, productID); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("product not found"))
			return
		}
		abortWithError(c, err)
		return
	}

	payload := auth.MustGetUser(c)
	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	review := &models.Review{
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		UserID:    userID,
		ProductID: productID,
	}
	if err := app.reviews.Insert(ctx, review); err != nil {
		if errors.Is(err, models.ErrDuplicateReview) {
			abortWithError(c, apperror.BadRequest("review already submitted for this product"))
			return
		}
		abortWithError(c, err)
		return
	}

	// explicit store-then-recompute: the aggregate can go stale if we crash
	// in between, until the next review mutation
	if err := app.reviews.RecalculateRating(ctx, productID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (app *application) getAllReviews(c *gin.Context) {
	reviews, err := app.reviews.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

func (app *application) getSingleReview(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("review not found"))
		return
	}

	review, err := app.reviews.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("review not found"))
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (app *application) updateReview(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("review not found"))
		return
	}

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}
	ctx := c.Request.Context()

	review, err := app.reviews.Get(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("review not found"))
			return
		}
		abortWithError(c, err)
		return
	}

	if err := auth.CheckOwnership(auth.MustGetUser(c), review.UserID); err != nil {
		abortWithError(c, err)
		return
	}

	updated, err := app.reviews.Update(ctx, id, req.Rating, req.Title, req.Comment)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := app.reviews.RecalculateRating(ctx, review.ProductID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": updated})
}

func (app *application) deleteReview(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("review not found"))
		return
	}
	ctx := c.Request.Context()

	review, err := app.reviews.Get(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("review not found"))
			return
		}
		abortWithError(c, err)
		return
	}

	if err := auth.CheckOwnership(auth.MustGetUser(c), review.UserID); err != nil {
		abortWithError(c, err)
		return
	}

	if err := app.reviews.Delete(ctx, id); err != nil {
		abortWithError(c, err)
		return
	}
	if err := app.reviews.RecalculateRating(ctx, review.ProductID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "review removed"})
}
