package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/auth"
	"github.com/j7amo/e-commerce-api/internal/models"
)

type cartItemRequest struct {
	Product string `json:"product" binding:"required"`
	Amount  int    `json:"amount" binding:"required,min=1"`
}

type createOrderRequest struct {
	Items       []cartItemRequest `json:"items"`
	Tax         float64           `json:"tax"`
	ShippingFee float64           `json:"shippingFee"`
}

type updateOrderRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

func (app *application) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}
	ctx := c.Request.Context()

	if len(req.Items) == 0 {
		abortWithError(c, apperror.BadRequest("no cart items provided"))
		return
	}
	if req.Tax <= 0 || req.ShippingFee <= 0 {
		abortWithError(c, apperror.BadRequest("please provide tax and shipping fee"))
		return
	}

	// every line item is priced from the stored product, never from the
	// client; the order fails before anything is written if one is missing
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	subtotal := 0.0
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			abortWithError(c, apperror.NotFound(fmt.Sprintf("product with id %s not found", item.Product)))
			return
		}
		product, err := app.products.Get(ctx, productID)
		if err != nil {
			if errors.Is(err, models.ErrNoRecord) {
				abortWithError(c, apperror.NotFound(fmt.Sprintf("product with id %s not found", item.Product)))
				return
			}
			abortWithError(c, err)
			return
		}

		orderItems = append(orderItems, models.OrderItem{
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.Price,
			Amount:    item.Amount,
			ProductID: product.ID,
		})
		subtotal += product.Price * float64(item.Amount)
	}

	total := req.Tax + req.ShippingFee + subtotal
	intent, err := app.payments.CreatePaymentIntent(ctx, total, "usd")
	if err != nil {
		abortWithError(c, err)
		return
	}

	payload := auth.MustGetUser(c)
	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	order := &models.Order{
		Tax:          req.Tax,
		ShippingFee:  req.ShippingFee,
		Subtotal:     subtotal,
		Total:        total,
		CartItems:    orderItems,
		Status:       models.OrderStatusPending,
		UserID:       userID,
		ClientSecret: intent.ClientSecret,
	}
	if err := app.orders.Insert(ctx, order); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order, "clientSecret": order.ClientSecret})
}

func (app *application) getAllOrders(c *gin.Context) {
	orders, err := app.orders.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (app *application) getCurrentUserOrders(c *gin.Context) {
	payload := auth.MustGetUser(c)
	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	orders, err := app.orders.GetByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(orders) == 0 {
		abortWithError(c, apperror.NotFound("no orders found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (app *application) getSingleOrder(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("order not found"))
		return
	}

	order, err := app.orders.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("order not found"))
			return
		}
		abortWithError(c, err)
		return
	}

	if err := auth.CheckOwnership(auth.MustGetUser(c), order.UserID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (app *application) updateOrder(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		abortWithError(c, apperror.NotFound("order not found"))
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apperror.BadRequest(err.Error()))
		return
	}
	ctx := c.Request.Context()

	order, err := app.orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			abortWithError(c, apperror.NotFound("order not found"))
			return
		}
		abortWithError(c, err)
		return
	}

	if err := auth.CheckOwnership(auth.MustGetUser(c), order.UserID); err != nil {
		abortWithError(c, err)
		return
	}

	updated, err := app.orders.MarkPaid(ctx, id, req.PaymentIntentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": updated})
}
