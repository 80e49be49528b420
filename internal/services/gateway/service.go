package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/events"
	"dzpay/internal/models"
	"dzpay/internal/repositories"
)

type service struct {
	repo     repositories.TransactionRepository
	cache    CacheOperator
	bus      events.Bus
	webhooks *events.WebhookRegistry
	cfg      config.PaymentConfig
	handlers map[models.Method]methodHandler
	locks    *idLocker
	sweeping atomic.Bool
	now      func() time.Time
}

// NewService creates the payment gateway service. The cache is optional;
// everything else is required.
func NewService(
	repo repositories.TransactionRepository,
	cache CacheOperator,
	bus events.Bus,
	cfg config.PaymentConfig,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if bus == nil {
		panic("bus is required")
	}
	if cache == nil {
		cache = NoopCache{}
	}

	s := &service{
		repo:     repo,
		cache:    cache,
		bus:      bus,
		webhooks: events.NewWebhookRegistry(),
		cfg:      cfg,
		locks:    newIDLocker(),
		now:      time.Now,
	}

	s.handlers = make(map[models.Method]methodHandler, 5)
	for _, h := range []methodHandler{
		&redotpayHandler{cfg: cfg},
		&codHandler{cfg: cfg},
		&ccpHandler{cfg: cfg},
		&baridimobHandler{cfg: cfg},
		&bankTransferHandler{cfg: cfg},
	} {
		s.handlers[h.Method()] = h
	}

	return s
}

// InitiatePayment dispatches to the rail handler, persists the new
// transaction and announces it. A handler failure leaves no trace: nothing
// is stored and nothing is published.
func (s *service) InitiatePayment(ctx context.Context, req models.PaymentRequest) (*InitiationResult, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("%w: order_id is required", ErrInvalidPaymentData)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidPaymentData)
	}

	handler, ok := s.handlers[req.Method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, req.Method)
	}

	tx, result, err := handler.Initiate(req, s.now())
	if err != nil {
		return nil, err
	}

	s.persist(ctx, tx)

	s.bus.Publish(events.PaymentInitiated, events.Payload{
		"transactionId": tx.ID,
		"method":        tx.Method,
		"amount":        tx.Amount,
		"orderId":       tx.OrderID,
	})

	return result, nil
}

func (s *service) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	if tx, err := s.cache.GetTransaction(ctx, transactionID); err == nil {
		return tx, nil
	}

	tx, err := s.repo.Get(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.cache.SetTransaction(ctx, tx); err != nil {
		log.Printf("failed to cache transaction %s: %v", tx.ID, err)
	}
	return tx, nil
}

func (s *service) GetOrderTransactions(ctx context.Context, orderID string) ([]*models.Transaction, error) {
	txs, err := s.repo.ByOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return txs, nil
}

// GetPaymentMethods returns the fixed rail catalog.
func (s *service) GetPaymentMethods() []models.PaymentMethodInfo {
	out := make([]models.PaymentMethodInfo, len(methodCatalog))
	copy(out, methodCatalog)
	return out
}

func (s *service) CalculateFee(amount int64, method models.Method) int64 {
	for _, m := range methodCatalog {
		if m.ID == method {
			return m.Fee
		}
	}
	return 0
}

func (s *service) TotalWithFee(amount int64, method models.Method) int64 {
	return amount + s.CalculateFee(amount, method)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	txs, err := s.repo.All()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	stats := &Stats{
		ByMethod: make(map[models.Method]int),
		ByStatus: make(map[string]int),
	}
	for _, tx := range txs {
		stats.Total++
		stats.ByMethod[tx.Method]++
		stats.ByStatus[tx.Status]++
		stats.TotalAmount += tx.Amount
		if tx.Status == models.StatusPaid {
			stats.SuccessfulAmount += tx.Amount
		}
	}
	return stats, nil
}

// ExportTransactions serializes every stored transaction.
func (s *service) ExportTransactions(ctx context.Context) ([]byte, error) {
	txs, err := s.repo.All()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return json.MarshalIndent(txs, "", "  ")
}

// ImportTransactions merges previously exported records into the store
// and returns how many were imported.
func (s *service) ImportTransactions(ctx context.Context, data []byte) (int, error) {
	var txs []*models.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPaymentData, err)
	}

	for _, tx := range txs {
		s.persist(ctx, tx)
	}
	return len(txs), nil
}

func (s *service) Subscribe(event string, handler events.Handler) {
	s.bus.Subscribe(event, handler)
}

func (s *service) RegisterWebhook(method models.Method, handler events.WebhookHandler) {
	s.webhooks.Register(method, handler)
}

func (s *service) HandleWebhook(method models.Method, payload events.Payload) {
	s.webhooks.Handle(method, payload)
}

// persist writes through to the repository and refreshes the cache.
// Durability is best-effort: the in-memory record is authoritative for the
// process lifetime, so a failed write is logged and never fails the caller.
func (s *service) persist(ctx context.Context, tx *models.Transaction) {
	if err := s.repo.Save(tx); err != nil {
		log.Printf("failed to persist transaction %s: %v", tx.ID, err)
	}
	if err := s.cache.SetTransaction(ctx, tx); err != nil {
		log.Printf("failed to cache transaction %s: %v", tx.ID, err)
	}
}
