package models

// PaymentRequest carries everything a rail may need to open a transaction.
// OrderID and Amount are required for every method; the customer fields are
// validated per rail before any record is created.
type PaymentRequest struct {
	OrderID         string `json:"order_id"`
	Amount          int64  `json:"amount"`
	Method          Method `json:"method"`
	Currency        string `json:"currency"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	Description     string `json:"description"`
	ReturnURL       string `json:"return_url"`
	CallbackURL     string `json:"callback_url"`
}

// VerificationRequest is the caller-supplied proof for VerifyPayment.
// Which fields matter depends on the transaction's rail.
type VerificationRequest struct {
	// Redotpay callback fields (trusted as-is, simulated boundary).
	Status               string `json:"status"`
	GatewayTransactionID string `json:"transaction_id"`

	// BaridiMob transfer reference code.
	PaymentCode string `json:"payment_code"`

	// Manual rails: receipt proof.
	ReceiptNumber string `json:"receipt_number"`
	ReceiptImage  string `json:"receipt_image"`
	Notes         string `json:"notes"`
}

// PaymentMethodInfo describes one rail for method listings.
type PaymentMethodInfo struct {
	ID           Method   `json:"id"`
	Name         string   `json:"name"`
	Online       bool     `json:"online"`
	Fee          int64    `json:"fee"`
	Description  string   `json:"description"`
	Instructions []string `json:"instructions"`
}
