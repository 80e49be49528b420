package models

import (
	"time"
)

// Method identifies a supported payment rail. The set is closed: every
// switch over it must handle all five values.
type Method string

const (
	MethodRedotpay       Method = "redotpay"
	MethodCashOnDelivery Method = "cash_on_delivery"
	MethodCCP            Method = "ccp"
	MethodBaridiMob      Method = "baridimob"
	MethodBankTransfer   Method = "bank_transfer"
)

// Methods lists every supported rail in display order.
func Methods() []Method {
	return []Method{
		MethodRedotpay,
		MethodCashOnDelivery,
		MethodCCP,
		MethodBaridiMob,
		MethodBankTransfer,
	}
}

// Valid reports whether m is one of the supported rails.
func (m Method) Valid() bool {
	switch m {
	case MethodRedotpay, MethodCashOnDelivery, MethodCCP, MethodBaridiMob, MethodBankTransfer:
		return true
	}
	return false
}

// Transaction statuses
const (
	StatusPending             = "pending"
	StatusPaid                = "paid"
	StatusPendingVerification = "pending_verification"
	StatusPendingDelivery     = "pending_delivery"
	StatusExpired             = "expired"
	StatusRejected            = "rejected"
)

// TerminalStatus reports whether a status admits no further transition.
func TerminalStatus(status string) bool {
	return status == StatusPaid || status == StatusRejected || status == StatusExpired
}

// VerificationRecord holds the proof a customer submitted for a manual rail.
type VerificationRecord struct {
	ReceiptNumber string    `json:"receiptNumber"`
	ReceiptImage  string    `json:"receiptImage,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Transaction records one payment attempt for one order via one rail.
// The gateway service owns every record; callers only ever hold the ID.
type Transaction struct {
	ID      string `json:"id" gorm:"primarykey"`
	OrderID string `json:"orderId" gorm:"index;not null"`
	Amount  int64  `json:"amount" gorm:"not null"` // DZD, no minor unit
	Method  Method `json:"method" gorm:"not null"`
	Status  string `json:"status" gorm:"not null;default:'pending'"`

	// Data is the method-specific payload written at creation: postal
	// account details, the generated payment code, bank reference, etc.
	Data JSON `json:"data" gorm:"type:jsonb"`

	GatewayTransactionID string              `json:"gatewayTransactionId,omitempty"`
	VerificationData     *VerificationRecord `json:"verificationData,omitempty" gorm:"serializer:json"`
	AdminNotes           string              `json:"adminNotes,omitempty"`
	RejectionReason      string              `json:"rejectionReason,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	VerifiedAt  *time.Time `json:"verifiedAt,omitempty"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
}

// Expired reports whether the transaction's deadline has passed at now.
// Transactions without a deadline (cash on delivery) never expire.
func (t *Transaction) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// Clone returns a deep copy so callers never alias the stored record.
func (t *Transaction) Clone() *Transaction {
	cp := *t
	if t.Data != nil {
		data := make(JSON, len(t.Data))
		for k, v := range t.Data {
			data[k] = v
		}
		cp.Data = data
	}
	if t.VerificationData != nil {
		vd := *t.VerificationData
		cp.VerificationData = &vd
	}
	if t.ExpiresAt != nil {
		ts := *t.ExpiresAt
		cp.ExpiresAt = &ts
	}
	if t.VerifiedAt != nil {
		ts := *t.VerifiedAt
		cp.VerifiedAt = &ts
	}
	if t.ConfirmedAt != nil {
		ts := *t.ConfirmedAt
		cp.ConfirmedAt = &ts
	}
	if t.RejectedAt != nil {
		ts := *t.RejectedAt
		cp.RejectedAt = &ts
	}
	return &cp
}
