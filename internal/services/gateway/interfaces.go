package gateway

import (
	"context"
	"time"

	"dzpay/internal/events"
	"dzpay/internal/models"
)

// Service is the payment gateway contract exposed to the order subsystem,
// the bot and the admin tooling. Every operation is total: failures come
// back as sentinel errors from this package, never as panics.
type Service interface {
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (*InitiationResult, error)
	VerifyPayment(ctx context.Context, transactionID string, req models.VerificationRequest) (*VerificationResult, error)
	ConfirmManualPayment(ctx context.Context, transactionID string, confirmed bool, notes string) (*VerificationResult, error)

	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	GetOrderTransactions(ctx context.Context, orderID string) ([]*models.Transaction, error)

	GetPaymentMethods() []models.PaymentMethodInfo
	CalculateFee(amount int64, method models.Method) int64
	TotalWithFee(amount int64, method models.Method) int64

	Stats(ctx context.Context) (*Stats, error)
	ExportTransactions(ctx context.Context) ([]byte, error)
	ImportTransactions(ctx context.Context, data []byte) (int, error)

	Subscribe(event string, handler events.Handler)
	RegisterWebhook(method models.Method, handler events.WebhookHandler)
	HandleWebhook(method models.Method, payload events.Payload)

	// RunCleanup deletes transactions older than the retention period and
	// returns how many were removed. StartCleanup runs it on a fixed
	// interval until the context is cancelled.
	RunCleanup(ctx context.Context) (int, error)
	StartCleanup(ctx context.Context)
}

// CacheOperator is the optional read-through cache in front of the
// repository. Failures are treated as misses.
type CacheOperator interface {
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	SetTransaction(ctx context.Context, tx *models.Transaction) error
	InvalidateTransaction(ctx context.Context, id string) error
}

// methodHandler knows how to open a transaction on one rail. Each of the
// five rails has exactly one implementation; the registry over them is
// built once in NewService.
type methodHandler interface {
	Method() models.Method
	// Initiate validates the rail's required fields, then builds the
	// transaction record and the caller-facing result. It must not touch
	// the store; persistence is the registry's job.
	Initiate(req models.PaymentRequest, now time.Time) (*models.Transaction, *InitiationResult, error)
}
