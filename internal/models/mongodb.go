package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB bundles the Mongo-backed stores around a single database handle.
type MongoDB struct {
	Users    *UserModel
	Products *ProductModel
	Reviews  *ReviewModel
	Orders   *OrderModel
}

func OpenMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

func NewMongoDB(db *mongo.Database) *MongoDB {
	users := db.Collection("users")
	products := db.Collection("products")
	reviews := db.Collection("reviews")
	orders := db.Collection("orders")

	return &MongoDB{
		Users:    &UserModel{C: users},
		Products: &ProductModel{C: products, Reviews: reviews},
		Reviews:  &ReviewModel{C: reviews, Products: products},
		Orders:   &OrderModel{C: orders},
	}
}

// EnsureIndexes creates the unique email index and the one-review-per-user
// compound index. Both constraints are enforced here, at the store layer, and
// surface as ErrDuplicateEmail/ErrDuplicateReview on insert.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := m.Users.C.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.Reviews.C.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product", Value: 1}, {Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
