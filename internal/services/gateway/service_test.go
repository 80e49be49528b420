package gateway

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/events"
	"dzpay/internal/models"
	"dzpay/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory TransactionRepository for tests.
type memRepo struct {
	mu      sync.Mutex
	records map[string]*models.Transaction
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*models.Transaction)}
}

func (r *memRepo) Get(id string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.records[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return tx.Clone(), nil
}

func (r *memRepo) Save(tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[tx.ID] = tx.Clone()
	return nil
}

func (r *memRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *memRepo) All() ([]*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Transaction, 0, len(r.records))
	for _, tx := range r.records {
		out = append(out, tx.Clone())
	}
	return out, nil
}

func (r *memRepo) ByOrder(orderID string) ([]*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Transaction
	for _, tx := range r.records {
		if tx.OrderID == orderID {
			out = append(out, tx.Clone())
		}
	}
	return out, nil
}

func (r *memRepo) Close() error { return nil }

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func testConfig() config.PaymentConfig {
	return config.PaymentConfig{
		RedotpayURL:      "https://redotpay.example/pay",
		RedotpayMerchant: "TEST_MERCHANT",
		SignatureSecret:  "test-secret",

		CCPNumber: "12345678901234567890",
		CCPName:   "Digital Algeria",
		CCPBranch: "Alger Centre",

		BaridiMobNumber: "0550123456",
		BaridiMobName:   "Digital Algeria",

		BankName:      "BNA",
		AccountNumber: "00100234567890123456",
		AccountName:   "Digital Algeria SARL",
		IBAN:          "DZ580002100001234567890123",
		BIC:           "BNALDZAL",
		BankReference: "DA",

		SupportPhone: "0550123456",
		SupportEmail: "support@example.dz",

		RedotpayExpiry:  30 * time.Minute,
		BaridiMobExpiry: 24 * time.Hour,
		BankExpiry:      3 * 24 * time.Hour,
		CCPExpiry:       7 * 24 * time.Hour,

		RetentionPeriod: 30 * 24 * time.Hour,
		CleanupInterval: time.Hour,
	}
}

func newTestService(t *testing.T) (*service, *memRepo, events.Bus) {
	t.Helper()
	repo := newMemRepo()
	bus := events.NewBus()
	svc, ok := NewService(repo, nil, bus, testConfig()).(*service)
	require.True(t, ok)
	// Deterministic clock; individual tests override as needed.
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo, bus
}

func codRequest(orderID string) models.PaymentRequest {
	return models.PaymentRequest{
		OrderID:         orderID,
		Amount:          2000,
		Method:          models.MethodCashOnDelivery,
		CustomerName:    "A",
		CustomerPhone:   "0550000000",
		CustomerAddress: "X",
	}
}

func TestInitiatePayment_Baridimob(t *testing.T) {
	svc, repo, _ := newTestService(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	result, err := svc.InitiatePayment(context.Background(), models.PaymentRequest{
		OrderID: "O1",
		Amount:  5000,
		Method:  models.MethodBaridiMob,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.TransactionID, "brm_"))
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), result.PaymentCode)
	assert.NotEmpty(t, result.Instructions)

	tx, err := repo.Get(result.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, tx.Status)
	assert.Equal(t, int64(5000), tx.Amount)
	assert.Equal(t, result.PaymentCode, tx.Data["paymentCode"])
	require.NotNil(t, tx.ExpiresAt)
	assert.Equal(t, now.Add(24*time.Hour), *tx.ExpiresAt)
}

func TestInitiatePayment_CashOnDelivery(t *testing.T) {
	svc, repo, _ := newTestService(t)

	t.Run("missing required fields", func(t *testing.T) {
		req := codRequest("O2")
		req.CustomerAddress = ""

		_, err := svc.InitiatePayment(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidPaymentData)
		assert.Zero(t, repo.count())
	})

	t.Run("successful initiation", func(t *testing.T) {
		result, err := svc.InitiatePayment(context.Background(), codRequest("O2"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(result.TransactionID, "cod_"))
		assert.NotEmpty(t, result.NextSteps)

		tx, err := repo.Get(result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, tx.Status)
		assert.Nil(t, tx.ExpiresAt, "cash on delivery must never expire")
	})
}

func TestInitiatePayment_Redotpay(t *testing.T) {
	svc, repo, _ := newTestService(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	result, err := svc.InitiatePayment(context.Background(), models.PaymentRequest{
		OrderID:       "O3",
		Amount:        12000,
		Method:        models.MethodRedotpay,
		CustomerName:  "B",
		CustomerEmail: "b@example.dz",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.TransactionID, "txn_"))
	assert.True(t, strings.HasPrefix(result.PaymentURL, "https://redotpay.example/pay?"))
	assert.Contains(t, result.PaymentURL, "order_id=O3")
	assert.Contains(t, result.PaymentURL, "signature=")
	assert.Contains(t, result.QRCode, "api.qrserver.com")

	tx, err := repo.Get(result.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, tx.ExpiresAt)
	assert.Equal(t, now.Add(30*time.Minute), *tx.ExpiresAt)

	sig, _ := tx.Data["signature"].(string)
	assert.Len(t, sig, 64, "blake2b-256 hex signature")
}

func TestInitiatePayment_BankTransfer(t *testing.T) {
	svc, repo, _ := newTestService(t)

	t.Run("requires customer name", func(t *testing.T) {
		_, err := svc.InitiatePayment(context.Background(), models.PaymentRequest{
			OrderID: "O4",
			Amount:  90000,
			Method:  models.MethodBankTransfer,
		})
		assert.ErrorIs(t, err, ErrInvalidPaymentData)
	})

	t.Run("derives the transfer reference", func(t *testing.T) {
		result, err := svc.InitiatePayment(context.Background(), models.PaymentRequest{
			OrderID:      "O4",
			Amount:       90000,
			Method:       models.MethodBankTransfer,
			CustomerName: "C",
		})
		require.NoError(t, err)

		tx, err := repo.Get(result.TransactionID)
		require.NoError(t, err)
		assert.Equal(t, "DA-O4", tx.Data["reference"])
		assert.Equal(t, "DA-O4", result.Details["reference"])
	})
}

func TestInitiatePayment_CommonValidation(t *testing.T) {
	svc, repo, _ := newTestService(t)

	tests := []struct {
		name    string
		req     models.PaymentRequest
		wantErr error
	}{
		{
			name:    "unsupported method",
			req:     models.PaymentRequest{OrderID: "O5", Amount: 100, Method: "paypal"},
			wantErr: ErrUnsupportedMethod,
		},
		{
			name:    "missing order",
			req:     models.PaymentRequest{Amount: 100, Method: models.MethodCCP},
			wantErr: ErrInvalidPaymentData,
		},
		{
			name:    "non-positive amount",
			req:     models.PaymentRequest{OrderID: "O5", Amount: 0, Method: models.MethodCCP},
			wantErr: ErrInvalidPaymentData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.InitiatePayment(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, repo.count(), "failed initiations must leave no records")
}

func TestInitiatePayment_IDPrefixesAndUniqueness(t *testing.T) {
	svc, _, _ := newTestService(t)

	prefixes := map[models.Method]string{
		models.MethodRedotpay:       "txn_",
		models.MethodCashOnDelivery: "cod_",
		models.MethodCCP:            "ccp_",
		models.MethodBaridiMob:      "brm_",
		models.MethodBankTransfer:   "bnk_",
	}

	seen := make(map[string]bool)
	for method, prefix := range prefixes {
		for i := 0; i < 5; i++ {
			req := models.PaymentRequest{
				OrderID:         "O6",
				Amount:          1000,
				Method:          method,
				CustomerName:    "D",
				CustomerPhone:   "0550000001",
				CustomerAddress: "Y",
			}
			result, err := svc.InitiatePayment(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(result.TransactionID, prefix))
			assert.False(t, seen[result.TransactionID], "transaction IDs must be unique")
			seen[result.TransactionID] = true
		}
	}
}

func TestInitiatePayment_PublishesEvent(t *testing.T) {
	svc, _, bus := newTestService(t)

	var got events.Payload
	bus.Subscribe(events.PaymentInitiated, func(p events.Payload) { got = p })

	result, err := svc.InitiatePayment(context.Background(), codRequest("O7"))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, result.TransactionID, got["transactionId"])
	assert.Equal(t, "O7", got["orderId"])
	assert.Equal(t, models.MethodCashOnDelivery, got["method"])
	assert.Equal(t, int64(2000), got["amount"])
}

func TestGetOrderTransactions(t *testing.T) {
	svc, _, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.InitiatePayment(context.Background(), codRequest("O8"))
		require.NoError(t, err)
	}
	_, err := svc.InitiatePayment(context.Background(), codRequest("other"))
	require.NoError(t, err)

	txs, err := svc.GetOrderTransactions(context.Background(), "O8")
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}

func TestGetPaymentMethodsAndFees(t *testing.T) {
	svc, _, _ := newTestService(t)

	methods := svc.GetPaymentMethods()
	require.Len(t, methods, 5)
	for _, m := range methods {
		assert.True(t, m.ID.Valid())
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Description)
		assert.NotEmpty(t, m.Instructions)
	}

	assert.Equal(t, int64(FeeCashOnDelivery), svc.CalculateFee(2000, models.MethodCashOnDelivery))
	assert.Equal(t, int64(2400), svc.TotalWithFee(2000, models.MethodCashOnDelivery))
	assert.Equal(t, int64(0), svc.CalculateFee(2000, "unknown"))
}

func TestStats(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.InitiatePayment(ctx, models.PaymentRequest{OrderID: "O9", Amount: 5000, Method: models.MethodBaridiMob})
	require.NoError(t, err)
	_, err = svc.InitiatePayment(ctx, codRequest("O9"))
	require.NoError(t, err)

	tx, err := svc.GetTransaction(ctx, res.TransactionID)
	require.NoError(t, err)
	code, _ := tx.Data["paymentCode"].(string)
	_, err = svc.VerifyPayment(ctx, res.TransactionID, models.VerificationRequest{PaymentCode: code})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByMethod[models.MethodBaridiMob])
	assert.Equal(t, 1, stats.ByStatus[models.StatusPaid])
	assert.Equal(t, int64(7000), stats.TotalAmount)
	assert.Equal(t, int64(5000), stats.SuccessfulAmount)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	res1, err := svc.InitiatePayment(ctx, models.PaymentRequest{OrderID: "O10", Amount: 3000, Method: models.MethodCCP})
	require.NoError(t, err)
	res2, err := svc.InitiatePayment(ctx, codRequest("O10"))
	require.NoError(t, err)

	data, err := svc.ExportTransactions(ctx)
	require.NoError(t, err)

	// Import into a fresh service and compare record for record.
	svc2, repo2, _ := newTestService(t)
	count, err := svc2.ImportTransactions(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, id := range []string{res1.TransactionID, res2.TransactionID} {
		want, err := repo.Get(id)
		require.NoError(t, err)
		got, err := repo2.Get(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
