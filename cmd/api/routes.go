package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/j7amo/e-commerce-api/internal/auth"
	"github.com/j7amo/e-commerce-api/internal/models"
)

func (app *application) routes() http.Handler {
	if app.config.env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(app.recoverPanic(), app.logRequest(), app.errorHandler())

	// unknown routes get a dedicated 404, distinct from resource-not-found
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "route not found"})
	})

	router.Static("/uploads", app.config.uploadDir)

	authenticate := auth.Authenticate([]byte(app.config.jwtSecret))
	adminOnly := auth.RequireRole(models.RoleAdmin)

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", app.register)
		authRoutes.POST("/login", app.login)
		authRoutes.POST("/logout", app.logout)
	}

	users := v1.Group("/users", authenticate)
	{
		users.GET("", adminOnly, app.getAllUsers)
		users.GET("/showMe", app.showCurrentUser)
		users.PATCH("/updateUser", app.updateUser)
		users.PATCH("/updateUserPassword", app.updateUserPassword)
		// keep /:id last so showMe/updateUser don't match as ids
		users.GET("/:id", app.getSingleUser)
	}

	products := v1.Group("/products")
	{
		products.GET("", app.getAllProducts)
		products.POST("", authenticate, adminOnly, app.createProduct)
		products.POST("/uploadImage", authenticate, adminOnly, app.uploadProductImage)
		products.GET("/:id", app.getSingleProduct)
		products.GET("/:id/reviews", app.getProductReviews)
		products.PATCH("/:id", authenticate, adminOnly, app.updateProduct)
		products.DELETE("/:id", authenticate, adminOnly, app.deleteProduct)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.GET("", app.getAllReviews)
		reviews.POST("", authenticate, app.createReview)
		reviews.GET("/:id", app.getSingleReview)
		reviews.PATCH("/:id", authenticate, app.updateReview)
		reviews.DELETE("/:id", authenticate, app.deleteReview)
	}

	orders := v1.Group("/orders", authenticate)
	{
		orders.GET("", adminOnly, app.getAllOrders)
		orders.POST("", app.createOrder)
		orders.GET("/showAllMyOrders", app.getCurrentUserOrders)
		orders.GET("/:id", app.getSingleOrder)
		orders.PATCH("/:id", app.updateOrder)
	}

	return router
}
