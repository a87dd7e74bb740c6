package tasks

import (
	"errors"
	"testing"

	"dharmachain/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationTaskRoundTrip(t *testing.T) {
	in := models.DonationConfirmation{ReceiptID: "r-1", Name: "Asha", Email: "asha@example.org", Amount: 501, Category: "Eye Camps"}

	task, opts, err := NewDonationConfirmationTask(in)
	require.NoError(t, err)
	assert.Equal(t, TypeDonationConfirmation, task.Type())
	assert.Len(t, opts, 3)

	out, err := ParseDonationConfirmation(task)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseRejectsGarbageWithoutRetry(t *testing.T) {
	_, err := ParseDonationConfirmation(asynq.NewTask(TypeDonationConfirmation, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
