package events

import (
	"errors"
	"testing"

	"dzpay/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second Payload
	bus.Subscribe(PaymentInitiated, func(p Payload) { first = p })
	bus.Subscribe(PaymentInitiated, func(p Payload) { second = p })

	bus.Publish(PaymentInitiated, Payload{"transactionId": "txn_1"})

	assert.Equal(t, "txn_1", first["transactionId"])
	assert.Equal(t, "txn_1", second["transactionId"])
}

func TestBus_PanickingSubscriberIsIsolated(t *testing.T) {
	bus := NewBus()

	var delivered bool
	bus.Subscribe(PaymentVerified, func(p Payload) { panic("boom") })
	bus.Subscribe(PaymentVerified, func(p Payload) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish(PaymentVerified, Payload{})
	})
	assert.True(t, delivered, "panic in one subscriber must not block the others")
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(PaymentRejected, Payload{"reason": "none"})
	})
}

func TestWebhookRegistry_FailuresAreIsolated(t *testing.T) {
	registry := NewWebhookRegistry()

	var calls []string
	registry.Register(models.MethodRedotpay, func(p Payload) error {
		calls = append(calls, "failing")
		return errors.New("provider error")
	})
	registry.Register(models.MethodRedotpay, func(p Payload) error {
		calls = append(calls, "panicking")
		panic("boom")
	})
	registry.Register(models.MethodRedotpay, func(p Payload) error {
		calls = append(calls, "ok")
		return nil
	})

	assert.NotPanics(t, func() {
		registry.Handle(models.MethodRedotpay, Payload{"status": "paid"})
	})
	assert.Equal(t, []string{"failing", "panicking", "ok"}, calls)
}

func TestWebhookRegistry_UnregisteredMethod(t *testing.T) {
	registry := NewWebhookRegistry()
	assert.NotPanics(t, func() {
		registry.Handle(models.MethodCCP, Payload{})
	})
}
