// Package repositories provides the data access layer for transactions.
// The gateway service only ever sees the TransactionRepository interface;
// the backing store is chosen at startup (JSON file or PostgreSQL).
package repositories

import (
	"errors"

	"dzpay/internal/models"
)

// ErrNotFound is returned when a transaction does not exist in the store.
var ErrNotFound = errors.New("transaction not found")

// TransactionRepository owns all transaction records.
type TransactionRepository interface {
	// Get returns the transaction with the given ID or ErrNotFound.
	Get(id string) (*models.Transaction, error)
	// Save inserts or replaces a transaction record.
	Save(tx *models.Transaction) error
	// Delete removes a transaction. Deleting a missing ID is not an error.
	Delete(id string) error
	// All returns every stored transaction in unspecified order.
	All() ([]*models.Transaction, error)
	// ByOrder returns every transaction referencing the given order.
	ByOrder(orderID string) ([]*models.Transaction, error)
	// Close flushes pending writes and releases resources.
	Close() error
}
