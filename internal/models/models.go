package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a closed set: anything outside admin/user is invalid.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusFailed, OrderStatusPaid, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price" json:"price"`
	Description   string             `bson:"description" json:"description"`
	Image         string             `bson:"image" json:"image"`
	Category      string             `bson:"category" json:"category"`
	Company       string             `bson:"company" json:"company"`
	Colors        []string           `bson:"colors" json:"colors"`
	Featured      bool               `bson:"featured" json:"featured"`
	FreeShipping  bool               `bson:"free_shipping" json:"freeShipping"`
	Inventory     int                `bson:"inventory" json:"inventory"`
	AverageRating float64            `bson:"average_rating" json:"averageRating"`
	NumOfReviews  int                `bson:"num_of_reviews" json:"numOfReviews"`
	UserID        primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Rating    int                `bson:"rating" json:"rating"`
	Title     string             `bson:"title" json:"title"`
	Comment   string             `bson:"comment" json:"comment"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OrderItem is a snapshot of a product at order time: name, image and price
// are frozen so later product edits do not rewrite order history.
type OrderItem struct {
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	Amount    int                `bson:"amount" json:"amount"`
	ProductID primitive.ObjectID `bson:"product" json:"product"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tax             float64            `bson:"tax" json:"tax"`
	ShippingFee     float64            `bson:"shipping_fee" json:"shippingFee"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Total           float64            `bson:"total" json:"total"`
	CartItems       []OrderItem        `bson:"cart_items" json:"cartItems"`
	Status          OrderStatus        `bson:"status" json:"status"`
	UserID          primitive.ObjectID `bson:"user" json:"user"`
	ClientSecret    string             `bson:"client_secret" json:"clientSecret"`
	PaymentIntentID string             `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
