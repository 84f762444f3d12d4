package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var (
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrStripeNotEnabled = errors.New("stripe secret key is not configured")
)

// ToMinorUnits converts a major-unit amount to minor units, truncating any
// fraction of a cent.
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	minor := math.Trunc(amount * 100)
	if minor <= 0 || minor > math.MaxInt64/2 {
		return 0, ErrInvalidAmount
	}
	return int64(minor), nil
}

type StripeClient struct {
	api      *client.API
	currency string
}

func NewStripeClient(secretKey, currency string) *StripeClient {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	var api *client.API
	if secretKey != "" {
		api = client.New(secretKey, nil)
	}
	return &StripeClient{api: api, currency: currency}
}

// CreatePaymentIntent requests a card payment intent for amount minor units
// and returns its client secret.
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if c.api == nil {
		return "", ErrStripeNotEnabled
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
