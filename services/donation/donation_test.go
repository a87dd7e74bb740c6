package donation

import (
	"context"
	"errors"
	"testing"

	"dharmachain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	sent []models.DonationConfirmation
	err  error
}

func (n *recordingNotifier) NotifyDonation(ctx context.Context, c models.DonationConfirmation) error {
	n.sent = append(n.sent, c)
	return n.err
}

type countingGateway struct {
	calls int
	err   error
	last  models.PaymentRequest
}

func (g *countingGateway) Name() string { return "counting" }

func (g *countingGateway) Charge(ctx context.Context, req models.PaymentRequest) (*PaymentResult, error) {
	g.calls++
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return &PaymentResult{PaymentID: "pi_test", Status: "succeeded"}, nil
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	var fields []string
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		req    models.DonationRequest
		fields []string
	}{
		{"valid named", models.DonationRequest{Amount: 101, Name: "Asha", Email: "asha@example.org"}, nil},
		{"valid anonymous", models.DonationRequest{Amount: 10, Anonymous: true}, nil},
		{"too small", models.DonationRequest{Amount: 9, Anonymous: true}, []string{"amount"}},
		{"missing name", models.DonationRequest{Amount: 501, Email: "a@example.org"}, []string{"name"}},
		{"bad email", models.DonationRequest{Amount: 501, Name: "Asha", Email: "not-an-email"}, []string{"email"}},
		{"email without domain dot", models.DonationRequest{Amount: 501, Name: "Asha", Email: "asha@example"}, []string{"email"}},
		{"padded email", models.DonationRequest{Amount: 501, Name: "Asha", Email: " asha@example.org "}, nil},
		{"display-name email", models.DonationRequest{Amount: 501, Name: "Asha", Email: "Asha <a@example.org>"}, []string{"email"}},
		{"everything wrong", models.DonationRequest{Amount: 0, Name: "  "}, []string{"amount", "name", "email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.req)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.fields, fieldsOf(t, err))
		})
	}
}

func TestValidateAnonymousDropsIdentity(t *testing.T) {
	req, err := Validate(models.DonationRequest{Amount: 1111, Anonymous: true, Name: "Asha", Email: "bad"})
	require.NoError(t, err)
	assert.Empty(t, req.Name)
	assert.Empty(t, req.Email)
	assert.Equal(t, "the cause", req.Category)
}

func TestDonateChargesAndNotifies(t *testing.T) {
	gw := &countingGateway{}
	n := &recordingNotifier{}
	svc := NewDonationService(gw, n, nil)

	receipt, err := svc.Donate(context.Background(), models.DonationRequest{
		Amount: 501, Category: "Gowshala (Cow Shelter)", Name: "Asha", Email: "asha@example.org", Message: "For the cows",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_test", receipt.PaymentID)
	assert.Equal(t, int64(501), receipt.Amount)
	assert.Equal(t, "inr", receipt.Currency)
	assert.Equal(t, receipt.ReceiptID, gw.last.Idempotency)

	require.Len(t, n.sent, 1)
	assert.Equal(t, "Asha", n.sent[0].Name)
	assert.Equal(t, receipt.ReceiptID, n.sent[0].ReceiptID)
}

func TestDonateInvalidNeverCharges(t *testing.T) {
	gw := &countingGateway{}
	n := &recordingNotifier{}
	svc := NewDonationService(gw, n, nil)

	_, err := svc.Donate(context.Background(), models.DonationRequest{Amount: 5})
	require.Error(t, err)
	assert.Zero(t, gw.calls)
	assert.Empty(t, n.sent)
}

func TestDonatePaymentFailure(t *testing.T) {
	svc := NewDonationService(&countingGateway{err: errors.New("card declined")}, &recordingNotifier{}, nil)

	_, err := svc.Donate(context.Background(), models.DonationRequest{Amount: 101, Anonymous: true})
	var perr *PaymentError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "counting", perr.Gateway)
}

func TestDonateSurvivesNotifierFailure(t *testing.T) {
	n := &recordingNotifier{err: errors.New("smtp down")}
	svc := NewDonationService(&countingGateway{}, n, nil)

	receipt, err := svc.Donate(context.Background(), models.DonationRequest{Amount: 101, Anonymous: true})
	require.NoError(t, err)
	assert.True(t, receipt.Anonymous)
	require.Len(t, n.sent, 1)
	assert.Equal(t, "Anonymous Donor", n.sent[0].Name)
}

func TestPresetsAreCopied(t *testing.T) {
	svc := NewDonationService(&countingGateway{}, nil, nil)
	p := svc.Presets()
	p[0] = 1
	assert.Equal(t, []int64{101, 501, 1111, 2501}, svc.Presets())
}

func TestMockGatewayHonoursContext(t *testing.T) {
	g := NewMockGateway(0, nil)
	res, err := g.Charge(context.Background(), models.PaymentRequest{Amount: 10})
	require.NoError(t, err)
	assert.Contains(t, res.PaymentID, "pi_")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewMockGateway(1e9, nil).Charge(ctx, models.PaymentRequest{Amount: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeIntents struct {
	params *stripe.PaymentIntentParams
	status stripe.PaymentIntentStatus
}

func (f *fakeIntents) New(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = p
	return &stripe.PaymentIntent{ID: "pi_stripe", Status: f.status}, nil
}

func TestStripeGatewayChargesInPaise(t *testing.T) {
	intents := &fakeIntents{status: stripe.PaymentIntentStatusSucceeded}
	g := &StripeGateway{intents: intents, paymentMethod: "pm_card_visa", logger: zap.NewNop()}

	res, err := g.Charge(context.Background(), models.PaymentRequest{
		Amount: 101, Currency: "INR", Idempotency: "r-1", Metadata: map[string]string{"category": "Eye Camps"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_stripe", res.PaymentID)
	assert.Equal(t, int64(10100), *intents.params.Amount)
	assert.Equal(t, "inr", *intents.params.Currency)
	assert.Equal(t, "r-1", *intents.params.IdempotencyKey)
	assert.Equal(t, "Eye Camps", intents.params.Metadata["category"])
}

func TestStripeGatewayRejectsUnfinishedIntent(t *testing.T) {
	g := &StripeGateway{intents: &fakeIntents{status: stripe.PaymentIntentStatusRequiresAction}, paymentMethod: "pm_card_visa", logger: zap.NewNop()}
	_, err := g.Charge(context.Background(), models.PaymentRequest{Amount: 101, Currency: "inr"})
	assert.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestNewStripeGatewayRequiresKey(t *testing.T) {
	_, err := NewStripeGateway(" ", nil)
	assert.Error(t, err)
}
