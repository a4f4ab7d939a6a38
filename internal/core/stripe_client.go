package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// stripePaymentClient implements PaymentClient against the Stripe API.
type stripePaymentClient struct {
	api *client.API
}

// NewStripePaymentClient creates a Stripe-backed PaymentClient using the
// given secret key.
func NewStripePaymentClient(secretKey string) PaymentClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripePaymentClient{api: api}
}

func (c *stripePaymentClient) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(uuid.NewString()),
		},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}
	return &PaymentIntent{IntentID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
