// Package events provides in-process publish/subscribe for payment
// lifecycle events. Delivery is synchronous and isolated: a panicking
// subscriber never prevents delivery to the others and never reaches
// the publishing operation's caller.
package events

import (
	"log"
	"sync"
)

// Lifecycle event names.
const (
	PaymentInitiated             = "paymentInitiated"
	PaymentVerified              = "paymentVerified"
	PaymentVerificationSubmitted = "paymentVerificationSubmitted"
	PaymentConfirmed             = "paymentConfirmed"
	PaymentRejected              = "paymentRejected"
)

// Payload carries the event fields; keys follow the wire names
// (transactionId, orderId, method, amount, status, reason).
type Payload map[string]interface{}

// Handler receives one event delivery.
type Handler func(payload Payload)

// Bus fans events out to registered subscribers.
type Bus interface {
	Subscribe(event string, handler Handler)
	Publish(event string, payload Payload)
}

type bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty event bus.
func NewBus() Bus {
	return &bus{handlers: make(map[string][]Handler)}
}

func (b *bus) Subscribe(event string, handler Handler) {
	if handler == nil {
		panic("handler is required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], handler)
}

func (b *bus) Publish(event string, payload Payload) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event]))
	copy(handlers, b.handlers[event])
	b.mu.RUnlock()

	for _, h := range handlers {
		deliver(event, h, payload)
	}
}

func deliver(event string, h Handler, payload Payload) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event handler for %s panicked: %v", event, r)
		}
	}()
	h(payload)
}
