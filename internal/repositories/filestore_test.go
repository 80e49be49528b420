package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"dzpay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction(id, orderID string) *models.Transaction {
	created := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	expires := created.Add(24 * time.Hour)
	verified := created.Add(2 * time.Hour)
	return &models.Transaction{
		ID:      id,
		OrderID: orderID,
		Amount:  5000,
		Method:  models.MethodBaridiMob,
		Status:  models.StatusPaid,
		Data: models.JSON{
			"recipientNumber": "0550123456",
			"paymentCode":     "123456",
		},
		VerificationData: &models.VerificationRecord{
			ReceiptNumber: "RCPT-5",
			Notes:         "verified by support",
			SubmittedAt:   verified,
		},
		CreatedAt:  created,
		ExpiresAt:  &expires,
		VerifiedAt: &verified,
	}
}

func TestFileStore_CRUD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	tx := sampleTransaction("brm_1", "O1")
	require.NoError(t, store.Save(tx))

	got, err := store.Get("brm_1")
	require.NoError(t, err)
	assert.Equal(t, tx, got)

	_, err = store.Get("brm_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete("brm_1"))
	_, err = store.Get("brm_1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing ID is not an error.
	assert.NoError(t, store.Delete("brm_1"))
}

func TestFileStore_GetReturnsACopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(sampleTransaction("brm_2", "O2")))

	got, err := store.Get("brm_2")
	require.NoError(t, err)
	got.Status = models.StatusRejected
	got.Data["paymentCode"] = "tampered"

	again, err := store.Get("brm_2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, again.Status)
	assert.Equal(t, "123456", again.Data["paymentCode"])
}

func TestFileStore_ByOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(sampleTransaction("brm_3", "O3")))
	require.NoError(t, store.Save(sampleTransaction("brm_4", "O3")))
	require.NoError(t, store.Save(sampleTransaction("brm_5", "other")))

	txs, err := store.ByOrder("O3")
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	all, err := store.All()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFileStore_ReloadReproducesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	want := []*models.Transaction{
		sampleTransaction("brm_6", "O4"),
		sampleTransaction("ccp_7", "O4"),
	}
	// A record with only the required fields set.
	want = append(want, &models.Transaction{
		ID:        "cod_8",
		OrderID:   "O5",
		Amount:    2000,
		Method:    models.MethodCashOnDelivery,
		Status:    models.StatusPending,
		CreatedAt: time.Date(2026, 2, 11, 8, 0, 0, 0, time.UTC),
	})
	for _, tx := range want {
		require.NoError(t, store.Save(tx))
	}
	require.NoError(t, store.Close())

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	defer reloaded.Close()

	for _, tx := range want {
		got, err := reloaded.Get(tx.ID)
		require.NoError(t, err)
		assert.Equal(t, tx, got, "record %s must survive a reload field for field", tx.ID)
	}
}
