package models

import "time"

// --- PaymentRequest & Receipt ---
type PaymentRequest struct {
	Amount      int64 // whole rupees
	Currency    string
	Idempotency string
	Metadata    map[string]string
	Description string
	Email       string
}

// Receipt is issued once a (simulated) donation payment completes.
type Receipt struct {
	ReceiptID string    `json:"receiptId"`
	PaymentID string    `json:"paymentId"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Anonymous bool      `json:"anonymous"`
	CreatedAt time.Time `json:"createdAt"`
}
