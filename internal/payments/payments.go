package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// PaymentIntent is the opaque handle a gateway returns for a pending charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       float64
	Currency     string
}

// Client creates payment intents for orders.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount float64, currency string) (*PaymentIntent, error)
}

// FakeStripe stands in for a real payment gateway: it fabricates intent ids
// and client secrets without talking to anyone.
type FakeStripe struct{}

func NewFakeStripe() *FakeStripe {
	return &FakeStripe{}
}

func (s *FakeStripe) CreatePaymentIntent(_ context.Context, amount float64, currency string) (*PaymentIntent, error) {
	id, err := randomHex(12)
	if err != nil {
		return nil, err
	}
	secret, err := randomHex(16)
	if err != nil {
		return nil, err
	}

	return &PaymentIntent{
		ID:           fmt.Sprintf("pi_%s", id),
		ClientSecret: fmt.Sprintf("pi_%s_secret_%s", id, secret),
		Amount:       amount,
		Currency:     currency,
	}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
