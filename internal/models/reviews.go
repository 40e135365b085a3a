package models

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewModel struct {
	C        *mongo.Collection
	Products *mongo.Collection
}

func (m *ReviewModel) Insert(ctx context.Context, review *Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}

	_, err := m.C.InsertOne(ctx, review)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateReview
	}
	return err
}

func (m *ReviewModel) GetAll(ctx context.Context) ([]*Review, error) {
	cur, err := m.C.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []*Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *ReviewModel) Get(ctx context.Context, id primitive.ObjectID) (*Review, error) {
	var review Review
	err := m.C.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (m *ReviewModel) GetByProduct(ctx context.Context, productID primitive.ObjectID) ([]*Review, error) {
	cur, err := m.C.Find(ctx, bson.M{"product": productID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []*Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *ReviewModel) Update(ctx context.Context, id primitive.ObjectID, rating int, title, comment string) (*Review, error) {
	update := bson.M{"$set": bson.M{
		"rating":     rating,
		"title":      title,
		"comment":    comment,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review Review
	err := m.C.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (m *ReviewModel) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.C.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

// RecalculateRating recomputes the product's aggregate rating from the full
// review set and writes it back. Callers run it after every review mutation;
// it is not transactional with the triggering write, so the aggregate can go
// stale until the next recomputation.
func (m *ReviewModel) RecalculateRating(ctx context.Context, productID primitive.ObjectID) error {
	pipeline := []bson.M{
		{"$match": bson.M{"product": productID}},
		{"$group": bson.M{
			"_id":            "$product",
			"average_rating": bson.M{"$avg": "$rating"},
			"num_of_reviews": bson.M{"$sum": 1},
		}},
	}

	cur, err := m.C.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var results []struct {
		AverageRating float64 `bson:"average_rating"`
		NumOfReviews  int     `bson:"num_of_reviews"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return err
	}

	averageRating := 0.0
	numOfReviews := 0
	if len(results) > 0 {
		averageRating = math.Ceil(results[0].AverageRating)
		numOfReviews = results[0].NumOfReviews
	}

	update := bson.M{"$set": bson.M{
		"average_rating": averageRating,
		"num_of_reviews": numOfReviews,
	}}
	_, err = m.Products.UpdateOne(ctx, bson.M{"_id": productID}, update)
	return err
}
