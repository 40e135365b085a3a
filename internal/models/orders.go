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

type OrderModel struct {
	C *mongo.Collection
}

func (m *OrderModel) Insert(ctx context.Context, order *Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.Status == "" {
		order.Status = OrderStatusPending
	}

	_, err := m.C.InsertOne(ctx, order)
	return err
}

func (m *OrderModel) GetAll(ctx context.Context) ([]*Order, error) {
	cur, err := m.C.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []*Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *OrderModel) Get(ctx context.Context, id primitive.ObjectID) (*Order, error) {
	var order Order
	err := m.C.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (m *OrderModel) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*Order, error) {
	cur, err := m.C.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []*Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *OrderModel) MarkPaid(ctx context.Context, id primitive.ObjectID, paymentIntentID string) (*Order, error) {
	update := bson.M{"$set": bson.M{
		"status":            OrderStatusPaid,
		"payment_intent_id": paymentIntentID,
		"updated_at":        time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order Order
	err := m.C.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
