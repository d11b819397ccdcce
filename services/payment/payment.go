package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"dentalcare/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

var ErrInvalidAmount = errors.New("invalid payment amount")

// Gateway creates card payment intents with the payment provider.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntent, error)
}

// StripeGateway creates Stripe PaymentIntents for card payments.
type StripeGateway struct {
	api      *client.API
	currency string
	logger   *zap.Logger
}

// NewStripeGateway builds a gateway on the given API key. backends may be nil
// to use the default Stripe endpoints.
func NewStripeGateway(key, currency string, backends *stripe.Backends, logger *zap.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(key, backends)
	return &StripeGateway{api: api, currency: currency, logger: logger}
}

// AmountInCents converts a price in major units to the smallest currency unit.
func AmountInCents(price float64) (int64, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidAmount
	}
	return int64(math.Round(price * 100)), nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntent, error) {
	amount, err := AmountInCents(price)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("stripe payment intent failed", zap.Int64("amount", amount), zap.Error(err))
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	g.logger.Info("payment intent created", zap.String("intent", pi.ID), zap.Int64("amount", amount))
	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
