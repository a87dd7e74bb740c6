// Package notification delivers donation confirmations by email, directly or through
// the background queue.
package notification

import (
	"context"

	"dharmachain/models"
)

// Notifier receives confirmations of completed donations.
type Notifier interface {
	NotifyDonation(ctx context.Context, confirmation models.DonationConfirmation) error
}

// Email is one outgoing message.
type Email struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// EmailSender sends a single email and returns the provider message id.
type EmailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}
