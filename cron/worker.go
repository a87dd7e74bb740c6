package cron

import (
	"context"
	"time"

	"dharmachain/services/notification"
	"dharmachain/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitConfirmationWorker starts the background worker that mails queued donation
// confirmations. The returned server is shut down by the caller.
func InitConfirmationWorker(ctx context.Context, opts asynq.RedisClientOpt, notifier notification.Notifier, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		opts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDonationConfirmation, handleConfirmationTask(notifier, logger))

	go monitorRedisConnection(ctx, opts, logger)

	go func() {
		logger.Info("Starting confirmation worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Failed to start confirmation worker", zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Confirmation worker not started, queued emails will wait")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()
	return srv
}

func handleConfirmationTask(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		c, err := tasks.ParseDonationConfirmation(task)
		if err != nil {
			logger.Error("Invalid confirmation payload", zap.Error(err))
			return err
		}
		if err := notifier.NotifyDonation(ctx, c); err != nil {
			logger.Warn("Failed to send donation confirmation", zap.String("receiptId", c.ReceiptID), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue Redis periodically to surface outages in the logs.
func monitorRedisConnection(ctx context.Context, opts asynq.RedisClientOpt, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	defer client.Close()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Queue redis connection lost", zap.Error(err))
			}
		}
	}
}
