package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductModel struct {
	C       *mongo.Collection
	Reviews *mongo.Collection
}

func (m *ProductModel) Insert(ctx context.Context, product *Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	_, err := m.C.InsertOne(ctx, product)
	return err
}

func (m *ProductModel) GetAll(ctx context.Context) ([]*Product, error) {
	cur, err := m.C.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []*Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *ProductModel) Get(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var product Product
	err := m.C.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (m *ProductModel) Update(ctx context.Context, product *Product) (*Product, error) {
	update := bson.M{"$set": bson.M{
		"name":          product.Name,
		"price":         product.Price,
		"description":   product.Description,
		"image":         product.Image,
		"category":      product.Category,
		"company":       product.Company,
		"colors":        product.Colors,
		"featured":      product.Featured,
		"free_shipping": product.FreeShipping,
		"inventory":     product.Inventory,
		"updated_at":    time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Product
	err := m.C.FindOneAndUpdate(ctx, bson.M{"_id": product.ID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the product and all reviews that reference it. The two
// deletes are not transactional; a crash in between orphans no data but can
// leave reviews pointing at a missing product until retried.
func (m *ProductModel) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.C.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}

	_, err = m.Reviews.DeleteMany(ctx, bson.M{"product": id})
	return err
}
