package core

import (
	"context"
	"fmt"
	"math"

	"careconnect-backend-go/internal/models"
)

type paymentService struct {
	client   PaymentClient
	currency string
}

// NewPaymentService creates the pass-through bridge to the payment
// processor. currency is the ISO code intents are created in.
func NewPaymentService(client PaymentClient, currency string) PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &paymentService{client: client, currency: currency}
}

// CreateIntent validates the amount, converts it to the processor's
// minor-unit representation, and requests an intent tagged with the
// caller's id. No state is persisted locally.
func (s *paymentService) CreateIntent(ctx context.Context, caller models.Identity, amount float64) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, NewFieldError("amount", "must be a positive number")
	}

	amountMinor := int64(math.Round(amount * 100))
	intent, err := s.client.CreateIntent(ctx, amountMinor, s.currency, map[string]string{
		"userId": caller.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return intent, nil
}
