package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces are what the handlers depend on. The Mongo-backed models in
// this package implement them for real; internal/models/mocks carries
// in-memory versions for handler tests.

type UserStore interface {
	Insert(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, name, email string) (*User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}

type ProductStore interface {
	Insert(ctx context.Context, product *Product) error
	GetAll(ctx context.Context) ([]*Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Product, error)
	Update(ctx context.Context, product *Product) (*Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ReviewStore interface {
	Insert(ctx context.Context, review *Review) error
	GetAll(ctx context.Context) ([]*Review, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Review, error)
	GetByProduct(ctx context.Context, productID primitive.ObjectID) ([]*Review, error)
	Update(ctx context.Context, id primitive.ObjectID, rating int, title, comment string) (*Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	RecalculateRating(ctx context.Context, productID primitive.ObjectID) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *Order) error
	GetAll(ctx context.Context) ([]*Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Order, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*Order, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, paymentIntentID string) (*Order, error)
}
