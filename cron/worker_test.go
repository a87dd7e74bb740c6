package cron

import (
	"context"
	"errors"
	"testing"

	"dharmachain/models"
	"dharmachain/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type notifierFunc func(ctx context.Context, c models.DonationConfirmation) error

func (f notifierFunc) NotifyDonation(ctx context.Context, c models.DonationConfirmation) error {
	return f(ctx, c)
}

func TestConfirmationHandlerDelivers(t *testing.T) {
	var got models.DonationConfirmation
	h := handleConfirmationTask(notifierFunc(func(ctx context.Context, c models.DonationConfirmation) error {
		got = c
		return nil
	}), zap.NewNop())

	task, _, err := tasks.NewDonationConfirmationTask(models.DonationConfirmation{ReceiptID: "r-1", Amount: 101})
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(context.Background(), task))
	assert.Equal(t, "r-1", got.ReceiptID)
}

func TestConfirmationHandlerReturnsErrorsForRetry(t *testing.T) {
	h := handleConfirmationTask(notifierFunc(func(ctx context.Context, c models.DonationConfirmation) error {
		return errors.New("resend unavailable")
	}), zap.NewNop())

	task, _, _ := tasks.NewDonationConfirmationTask(models.DonationConfirmation{ReceiptID: "r-2"})
	assert.Error(t, h.ProcessTask(context.Background(), task))

	err := h.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeDonationConfirmation, []byte("nope")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
