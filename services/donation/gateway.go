package donation

import (
	"context"
	"errors"
	"strings"
	"time"

	"dharmachain/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// PaymentResult is what a gateway reports for a captured payment.
type PaymentResult struct {
	PaymentID string
	Status    string
}

// PaymentGateway takes a donation payment.
type PaymentGateway interface {
	Name() string
	Charge(ctx context.Context, req models.PaymentRequest) (*PaymentResult, error)
}

// --- MockGateway ---

// MockGateway simulates a card payment. It is the default while the site runs in testing mode.
type MockGateway struct {
	Delay  time.Duration
	logger *zap.Logger
}

func NewMockGateway(delay time.Duration, logger *zap.Logger) *MockGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockGateway{Delay: delay, logger: logger}
}

func (g *MockGateway) Name() string { return "mock" }

func (g *MockGateway) Charge(ctx context.Context, req models.PaymentRequest) (*PaymentResult, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	res := &PaymentResult{PaymentID: "pi_" + uuid.New().String(), Status: "succeeded"}
	g.logger.Info("Simulated card payment successful", zap.String("paymentId", res.PaymentID), zap.Int64("amount", req.Amount))
	return res, nil
}

// --- StripeGateway ---

type paymentIntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway charges through a confirmed PaymentIntent. Amounts are sent in paise.
type StripeGateway struct {
	intents       paymentIntentAPI
	paymentMethod string
	logger        *zap.Logger
}

// NewStripeGateway builds a gateway for a secret key. Test keys with the default
// payment method "pm_card_visa" simulate a successful card.
func NewStripeGateway(apiKey string, logger *zap.Logger) (*StripeGateway, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("stripe: api key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	sc := client.New(apiKey, nil)
	return &StripeGateway{intents: sc.PaymentIntents, paymentMethod: "pm_card_visa", logger: logger}, nil
}

func (g *StripeGateway) Name() string { return "stripe" }

func (g *StripeGateway) Charge(ctx context.Context, req models.PaymentRequest) (*PaymentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.Amount * 100),
		Currency:      stripe.String(strings.ToLower(req.Currency)),
		PaymentMethod: stripe.String(g.paymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Stripe payment intent created", zap.String("paymentIntent", pi.ID), zap.String("status", string(pi.Status)))
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, ErrPaymentDeclined
	}
	return &PaymentResult{PaymentID: pi.ID, Status: string(pi.Status)}, nil
}
