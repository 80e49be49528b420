package gateway

import (
	"context"
	"errors"

	"dzpay/internal/models"
)

var errCacheMiss = errors.New("cache miss")

// NoopCache satisfies CacheOperator when no redis is configured.
type NoopCache struct{}

func (NoopCache) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return nil, errCacheMiss
}

func (NoopCache) SetTransaction(ctx context.Context, tx *models.Transaction) error { return nil }

func (NoopCache) InvalidateTransaction(ctx context.Context, id string) error { return nil }
