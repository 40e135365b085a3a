package main

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/auth"
	"github.com/j7amo/e-commerce-api/internal/models"
)

// productRequest deliberately has no owner field: the owner is always the
// authenticated caller, never client input.
type productRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Description  string   `json:"description" binding:"required,max=1000"`
	Image        string   `json:"image"`
	Category     string   `json:"category" binding:"required,oneof=office kitchen bedroom"`
	Company      string   `json:"company" binding:"required,oneof=ikea liddy marcos"`
	Colors       []string `json:"colors"`
	Featured     bool     `json:"featured"`
	FreeShipping bool     `json:"freeShipping"`
	Inventory    int      `json:"inventory"`
}

func (app *application) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}

	payload := auth.MustGetUser(c)
	ownerID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	product := &models.Product{
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Image:        req.Image,
		Category:     req.Category,
		Company:      req.Company,
		Colors:       req.Colors,
		Featured:     req.Featured,
		FreeShipping: req.FreeShipping,
		Inventory:    req.Inventory,
		UserID:       ownerID,
	}
	if product.Image == "" {
		product.Image = "/uploads/example.jpeg"
	}
	if product.Colors == nil {
		product.Colors = []string{"#222"}
	}
	if product.Inventory == 0 {
		product.Inventory = 15
	}

	if err := app.products.Insert(c.Request.Context(), product); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (app *application) getAllProducts(c *gin.Context) {
	products, err := app.products.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (app *application) getSingleProduct(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("product not found"))
		return
	}

	product, err := app.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("product not found"))
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (app *application) getProductReviews(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("product not found"))
		return
	}

	reviews, err := app.reviews.GetByProduct(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

func (app *application) updateProduct(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("product not found"))
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}

	product := &models.Product{
		ID:           id,
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Image:        req.Image,
		Category:     req.Category,
		Company:      req.Company,
		Colors:       req.Colors,
		Featured:     req.Featured,
		FreeShipping: req.FreeShipping,
		Inventory:    req.Inventory,
	}

	updated, err := app.products.Update(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("product not found"))
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": updated})
}

func (app *application) deleteProduct(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("product not found"))
		return
	}

	// delete cascades to the product's reviews at the store layer
	if err := app.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("product not found"))
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "product removed"})
}

func (app *application) uploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		abortWithError(c, apperror.BadRequest("no image file provided"))
		return
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image") {
		abortWithError(c, apperror.BadRequest("only image uploads are supported"))
		return
	}
	if file.Size > app.config.maxImageSize {
		abortWithError(c, apperror.BadRequest("image must be smaller than 1MB"))
		return
	}

	name := filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(app.config.uploadDir, name)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": "/uploads/" + name})
}
