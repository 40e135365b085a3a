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

type UserModel struct {
	C *mongo.Collection
}

func (m *UserModel) Insert(ctx context.Context, user *User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := m.C.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (m *UserModel) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := m.C.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *UserModel) GetByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	err := m.C.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll returns non-admin users. The password hash is excluded at the
// projection level on top of the json:"-" tag.
func (m *UserModel) GetAll(ctx context.Context) ([]*User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cur, err := m.C.Find(ctx, bson.M{"role": RoleUser}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []*User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *UserModel) Count(ctx context.Context) (int64, error) {
	return m.C.CountDocuments(ctx, bson.M{})
}

func (m *UserModel) Update(ctx context.Context, id primitive.ObjectID, name, email string) (*User, error) {
	update := bson.M{"$set": bson.M{
		"name":       name,
		"email":      email,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err := m.C.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoRecord
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *UserModel) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password":   passwordHash,
		"updated_at": time.Now(),
	}}
	res, err := m.C.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoRecord
	}
	return nil
}
