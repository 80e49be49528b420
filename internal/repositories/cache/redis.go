package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dzpay/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// TransactionCache is a read-through cache in front of the repository.
// A miss or a redis failure is never fatal; callers fall back to the store.
type TransactionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTransactionCache(client *redis.Client, ttl time.Duration) *TransactionCache {
	if client == nil {
		panic("redis client is required")
	}
	if ttl == 0 {
		ttl = time.Hour
	}
	return &TransactionCache{client: client, ttl: ttl}
}

func transactionKey(id string) string {
	return fmt.Sprintf("transaction:%s", id)
}

func (c *TransactionCache) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	val, err := c.client.Get(ctx, transactionKey(id)).Result()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	if err := json.Unmarshal([]byte(val), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *TransactionCache) SetTransaction(ctx context.Context, tx *models.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, transactionKey(tx.ID), data, c.ttl).Err()
}

func (c *TransactionCache) InvalidateTransaction(ctx context.Context, id string) error {
	return c.client.Del(ctx, transactionKey(id)).Err()
}

// HealthCheck pings redis.
func (c *TransactionCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (c *TransactionCache) Close() error {
	return c.client.Close()
}
