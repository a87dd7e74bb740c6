// Package donation runs the donation form: validation, a (simulated) payment and the
// confirmation hand-off.
package donation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"dharmachain/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier receives confirmations of completed donations.
type Notifier interface {
	NotifyDonation(ctx context.Context, confirmation models.DonationConfirmation) error
}

type DonationService interface {
	Donate(ctx context.Context, req models.DonationRequest) (*models.Receipt, error)
	Presets() []int64
}

type DefaultDonationService struct {
	Gateway  PaymentGateway
	Notifier Notifier // optional
	Logger   *zap.Logger
	now      func() time.Time
}

func NewDonationService(gateway PaymentGateway, notifier Notifier, logger *zap.Logger) *DefaultDonationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDonationService{Gateway: gateway, Notifier: notifier, Logger: logger, now: time.Now}
}

func (s *DefaultDonationService) Presets() []int64 {
	out := make([]int64, len(models.PresetAmounts))
	copy(out, models.PresetAmounts)
	return out
}

// Donate validates the form, charges the gateway and hands a confirmation to the notifier.
// A failed notification is logged and never fails the donation.
func (s *DefaultDonationService) Donate(ctx context.Context, req models.DonationRequest) (*models.Receipt, error) {
	req, err := Validate(req)
	if err != nil {
		return nil, err
	}

	receiptID := uuid.New().String()
	payment := models.PaymentRequest{
		Amount:      req.Amount,
		Currency:    models.DonationCurrency,
		Idempotency: receiptID,
		Description: fmt.Sprintf("Donation to %s", req.Category),
		Email:       req.Email,
		Metadata: map[string]string{
			"receiptId": receiptID,
			"category":  req.Category,
			"anonymous": strconv.FormatBool(req.Anonymous),
		},
	}

	result, err := s.Gateway.Charge(ctx, payment)
	if err != nil {
		s.Logger.Error("Donation payment failed", zap.String("gateway", s.Gateway.Name()), zap.Error(err))
		return nil, &PaymentError{Gateway: s.Gateway.Name(), Err: err}
	}

	receipt := &models.Receipt{
		ReceiptID: receiptID,
		PaymentID: result.PaymentID,
		Amount:    req.Amount,
		Currency:  models.DonationCurrency,
		Category:  req.Category,
		Status:    result.Status,
		Anonymous: req.Anonymous,
		CreatedAt: s.now(),
	}
	s.Logger.Info("Donation received",
		zap.String("receiptId", receipt.ReceiptID),
		zap.Int64("amount", receipt.Amount),
		zap.String("category", receipt.Category))

	if s.Notifier != nil {
		name := req.Name
		if req.Anonymous {
			name = "Anonymous Donor"
		}
		confirmation := models.DonationConfirmation{
			ReceiptID: receiptID,
			Name:      name,
			Email:     req.Email,
			Amount:    req.Amount,
			Category:  req.Category,
			Message:   req.Message,
		}
		if err := s.Notifier.NotifyDonation(ctx, confirmation); err != nil {
			s.Logger.Warn("Failed to send donation confirmation", zap.String("receiptId", receiptID), zap.Error(err))
		}
	}
	return receipt, nil
}
