package gateway

import (
	"dzpay/internal/models"
)

// InitiationResult is what a successful InitiatePayment returns to the
// caller: the new transaction ID plus everything the front-end needs to
// walk the customer through the rail.
type InitiationResult struct {
	TransactionID string        `json:"transaction_id"`
	Method        models.Method `json:"method"`

	// Instructions is the ordered, numbered procedure for this rail.
	Instructions []string `json:"instructions"`

	// Online rails only.
	PaymentURL string `json:"payment_url,omitempty"`
	QRCode     string `json:"qr_code,omitempty"`

	// BaridiMob transfer reference the payer must quote.
	PaymentCode string `json:"payment_code,omitempty"`

	// Method-specific display data: recipient account, bank details, etc.
	Details models.JSON `json:"details,omitempty"`

	// Cash on delivery follow-up steps.
	NextSteps []string `json:"next_steps,omitempty"`
}

// VerificationResult reports the transaction state after a verification
// or confirmation attempt.
type VerificationResult struct {
	Status      string              `json:"status"`
	Message     string              `json:"message,omitempty"`
	Transaction *models.Transaction `json:"transaction"`
}

// Stats aggregates the whole transaction set.
type Stats struct {
	Total            int                   `json:"total"`
	ByMethod         map[models.Method]int `json:"by_method"`
	ByStatus         map[string]int        `json:"by_status"`
	TotalAmount      int64                 `json:"total_amount"`
	SuccessfulAmount int64                 `json:"successful_amount"`
}
