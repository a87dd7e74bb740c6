package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"dharmachain/models"

	"github.com/hibiken/asynq"
)

const TypeDonationConfirmation = "donation:confirmation"

// NewDonationConfirmationTask wraps a confirmation for the email worker.
func NewDonationConfirmationTask(c models.DonationConfirmation) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDonationConfirmation, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
		asynq.TaskID("confirmation:" + c.ReceiptID),
	}
	return task, opts, nil
}

// ParseDonationConfirmation decodes the payload of a confirmation task.
func ParseDonationConfirmation(task *asynq.Task) (models.DonationConfirmation, error) {
	var c models.DonationConfirmation
	if err := json.Unmarshal(task.Payload(), &c); err != nil {
		return c, fmt.Errorf("%w: invalid confirmation payload: %v", asynq.SkipRetry, err)
	}
	return c, nil
}
