package events

import (
	"log"
	"sync"

	"dzpay/internal/models"
)

// WebhookHandler processes an inbound provider notification for one rail.
type WebhookHandler func(payload Payload) error

// WebhookRegistry dispatches inbound webhook payloads to the handlers
// registered for a payment method. Handler failures are logged and do
// not stop delivery to the remaining handlers.
type WebhookRegistry struct {
	mu       sync.RWMutex
	handlers map[models.Method][]WebhookHandler
}

func NewWebhookRegistry() *WebhookRegistry {
	return &WebhookRegistry{handlers: make(map[models.Method][]WebhookHandler)}
}

func (r *WebhookRegistry) Register(method models.Method, handler WebhookHandler) {
	if handler == nil {
		panic("handler is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[method] = append(r.handlers[method], handler)
}

func (r *WebhookRegistry) Handle(method models.Method, payload Payload) {
	r.mu.RLock()
	handlers := make([]WebhookHandler, len(r.handlers[method]))
	copy(handlers, r.handlers[method])
	r.mu.RUnlock()

	for _, h := range handlers {
		if err := safeHandle(h, payload); err != nil {
			log.Printf("webhook handler for %s failed: %v", method, err)
		}
	}
}

func safeHandle(h WebhookHandler, payload Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("webhook handler panicked: %v", r)
		}
	}()
	return h(payload)
}
