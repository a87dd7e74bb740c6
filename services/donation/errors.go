package donation

import (
	"errors"
	"strings"
)

// ErrPaymentDeclined is returned when the gateway did not capture the payment.
var ErrPaymentDeclined = errors.New("payment was not completed")

// ValidationError describes one rejected field of a donation form.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every rejected field of a request.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "invalid donation: " + strings.Join(msgs, "; ")
}

// PaymentError wraps a gateway failure.
type PaymentError struct {
	Gateway string
	Err     error
}

func (e *PaymentError) Error() string {
	return e.Gateway + " payment failed: " + e.Err.Error()
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
