package notification

import (
	"context"
	"errors"
	"fmt"

	"dharmachain/models"
	"dharmachain/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuedNotifier hands confirmations to the background worker instead of mailing inline.
type QueuedNotifier struct {
	client enqueuer
	logger *zap.Logger
}

func NewQueuedNotifier(client *asynq.Client, logger *zap.Logger) *QueuedNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueuedNotifier{client: client, logger: logger}
}

func (q *QueuedNotifier) NotifyDonation(ctx context.Context, c models.DonationConfirmation) error {
	task, opts, err := tasks.NewDonationConfirmationTask(c)
	if err != nil {
		return err
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue confirmation: %w", err)
	}
	q.logger.Debug("Donation confirmation queued", zap.String("taskId", info.ID), zap.String("queue", info.Queue))
	return nil
}
