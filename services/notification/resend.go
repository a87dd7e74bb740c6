package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendSender sends emails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewResendSender(apiKey, from string, logger *zap.Logger) *ResendSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResendSender{client: resend.NewClient(apiKey), from: from, logger: logger}
}

func (s *ResendSender) Send(ctx context.Context, email Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("resend send failed", zap.Strings("to", email.To), zap.String("subject", email.Subject), zap.Error(err))
		return "", fmt.Errorf("resend send failed: %w", err)
	}
	s.logger.Info("resend sent", zap.String("messageId", sent.Id), zap.Strings("to", email.To))
	return sent.Id, nil
}

// LogSender only logs emails. Used when no Resend key is configured.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, email Email) (string, error) {
	s.logger.Info("email not sent, no provider configured",
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject))
	return "", nil
}
