// Package mocks provides in-memory implementations of the store interfaces
// for handler tests. They mirror the Mongo stores' behavior, including the
// unique email and one-review-per-(product,user) constraints.
package mocks

import (
	"context"
	"math"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/j7amo/e-commerce-api/internal/models"
)

type Stores struct {
	Users    *UserStore
	Products *ProductStore
	Reviews  *ReviewStore
	Orders   *OrderStore
}

// NewStores wires the cross-references the Mongo stores get from sharing a
// database: product deletes cascade into reviews, rating recomputation writes
// back into products.
func NewStores() *Stores {
	users := &UserStore{users: map[primitive.ObjectID]*models.User{}}
	products := &ProductStore{products: map[primitive.ObjectID]*models.Product{}}
	reviews := &ReviewStore{reviews: map[primitive.ObjectID]*models.Review{}, products: products}
	products.reviews = reviews
	orders := &OrderStore{orders: map[primitive.ObjectID]*models.Order{}}

	return &Stores{Users: users, Products: products, Reviews: reviews, Orders: orders}
}

type UserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func (s *UserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return models.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, models.ErrNoRecord
}

func (s *UserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	user := *u
	return &user, nil
}

func (s *UserStore) GetAll(_ context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []*models.User{}
	for _, u := range s.users {
		if u.Role != models.RoleUser {
			continue
		}
		user := *u
		user.PasswordHash = ""
		users = append(users, &user)
	}
	return users, nil
}

func (s *UserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

func (s *UserStore) Update(_ context.Context, id primitive.ObjectID, name, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	for otherID, other := range s.users {
		if otherID != id && other.Email == email {
			return nil, models.ErrDuplicateEmail
		}
	}
	u.Name = name
	u.Email = email
	u.UpdatedAt = time.Now()

	user := *u
	return &user, nil
}

func (s *UserStore) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.ErrNoRecord
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

type ProductStore struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*models.Product
	reviews  *ReviewStore
}

func (s *ProductStore) Insert(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	s.products[product.ID] = &stored
	return nil
}

func (s *ProductStore) GetAll(_ context.Context) ([]*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := []*models.Product{}
	for _, p := range s.products {
		product := *p
		products = append(products, &product)
	}
	return products, nil
}

func (s *ProductStore) Get(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	product := *p
	return &product, nil
}

func (s *ProductStore) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[product.ID]
	if !ok {
		return nil, models.ErrNoRecord
	}
	p.Name = product.Name
	p.Price = product.Price
	p.Description = product.Description
	p.Image = product.Image
	p.Category = product.Category
	p.Company = product.Company
	p.Colors = product.Colors
	p.Featured = product.Featured
	p.FreeShipping = product.FreeShipping
	p.Inventory = product.Inventory
	p.UpdatedAt = time.Now()

	updated := *p
	return &updated, nil
}

func (s *ProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	if _, ok := s.products[id]; !ok {
		s.mu.Unlock()
		return models.ErrNoRecord
	}
	delete(s.products, id)
	s.mu.Unlock()

	s.reviews.deleteByProduct(id)
	return nil
}

type ReviewStore struct {
	mu       sync.Mutex
	reviews  map[primitive.ObjectID]*models.Review
	products *ProductStore
}

func (s *ReviewStore) Insert(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.ProductID == review.ProductID && r.UserID == review.UserID {
			return models.ErrDuplicateReview
		}
	}
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	stored := *review
	s.reviews[review.ID] = &stored
	return nil
}

func (s *ReviewStore) GetAll(_ context.Context) ([]*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := []*models.Review{}
	for _, r := range s.reviews {
		review := *r
		reviews = append(reviews, &review)
	}
	return reviews, nil
}

func (s *ReviewStore) Get(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	review := *r
	return &review, nil
}

func (s *ReviewStore) GetByProduct(_ context.Context, productID primitive.ObjectID) ([]*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := []*models.Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			review := *r
			reviews = append(reviews, &review)
		}
	}
	return reviews, nil
}

func (s *ReviewStore) Update(_ context.Context, id primitive.ObjectID, rating int, title, comment string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	r.Rating = rating
	r.Title = title
	r.Comment = comment
	r.UpdatedAt = time.Now()

	review := *r
	return &review, nil
}

func (s *ReviewStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return models.ErrNoRecord
	}
	delete(s.reviews, id)
	return nil
}

func (s *ReviewStore) RecalculateRating(_ context.Context, productID primitive.ObjectID) error {
	s.mu.Lock()
	sum, count := 0, 0
	for _, r := range s.reviews {
		if r.ProductID == productID {
			sum += r.Rating
			count++
		}
	}
	s.mu.Unlock()

	averageRating := 0.0
	if count > 0 {
		averageRating = math.Ceil(float64(sum) / float64(count))
	}

	s.products.mu.Lock()
	defer s.products.mu.Unlock()
	if p, ok := s.products.products[productID]; ok {
		p.AverageRating = averageRating
		p.NumOfReviews = count
	}
	return nil
}

func (s *ReviewStore) deleteByProduct(productID primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.reviews {
		if r.ProductID == productID {
			delete(s.reviews, id)
		}
	}
}

type OrderStore struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*models.Order
}

func (s *OrderStore) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	stored := *order
	s.orders[order.ID] = &stored
	return nil
}

func (s *OrderStore) GetAll(_ context.Context) ([]*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := []*models.Order{}
	for _, o := range s.orders {
		order := *o
		orders = append(orders, &order)
	}
	return orders, nil
}

func (s *OrderStore) Get(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	order := *o
	return &order, nil
}

func (s *OrderStore) GetByUser(_ context.Context, userID primitive.ObjectID) ([]*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := []*models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			order := *o
			orders = append(orders, &order)
		}
	}
	return orders, nil
}

func (s *OrderStore) MarkPaid(_ context.Context, id primitive.ObjectID, paymentIntentID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	o.Status = models.OrderStatusPaid
	o.PaymentIntentID = paymentIntentID
	o.UpdatedAt = time.Now()

	order := *o
	return &order, nil
}
