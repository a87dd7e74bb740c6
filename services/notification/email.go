package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"dharmachain/models"

	"go.uber.org/zap"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`<p>Dear {{.Name}},</p>
<p>Thank you for your generous donation of ₹{{.Amount}} to {{.Category}}!</p>
{{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
<p>Receipt: {{.ReceiptID}}</p>
<p>DharmaChain</p>`))

// EmailNotifier mails the donor (when an address was given) and the trust.
type EmailNotifier struct {
	sender     EmailSender
	trustInbox string
	logger     *zap.Logger
}

func NewEmailNotifier(sender EmailSender, trustInbox string, logger *zap.Logger) *EmailNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailNotifier{sender: sender, trustInbox: trustInbox, logger: logger}
}

func (n *EmailNotifier) NotifyDonation(ctx context.Context, c models.DonationConfirmation) error {
	body, err := renderConfirmation(c)
	if err != nil {
		return err
	}

	var errs []error
	if c.Email != "" {
		if _, err := n.sender.Send(ctx, Email{
			To:      []string{c.Email},
			Subject: "Thank you for your donation to DharmaChain",
			HTML:    body,
		}); err != nil {
			errs = append(errs, fmt.Errorf("donor email: %w", err))
		}
	}
	if n.trustInbox != "" {
		if _, err := n.sender.Send(ctx, Email{
			To:      []string{n.trustInbox},
			Subject: "New Donation to DharmaChain!",
			HTML:    body,
			ReplyTo: c.Email,
		}); err != nil {
			errs = append(errs, fmt.Errorf("trust email: %w", err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	n.logger.Info("Donation confirmation sent", zap.String("receiptId", c.ReceiptID))
	return nil
}

func renderConfirmation(c models.DonationConfirmation) (string, error) {
	if c.Name == "" {
		c.Name = "Anonymous Donor"
	}
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return buf.String(), nil
}
