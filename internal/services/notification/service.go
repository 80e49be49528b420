package notification

import (
	"log"

	"dzpay/internal/events"
)

// Service notifies the order subsystem of payment outcomes. The current
// implementation logs; a real deployment would push to the bot or send
// an email from here.
type Service struct{}

// NewService creates a new notification service.
func NewService() *Service { return &Service{} }

// Register subscribes the service to every payment lifecycle event.
func (s *Service) Register(bus events.Bus) {
	bus.Subscribe(events.PaymentInitiated, func(p events.Payload) {
		log.Printf("payment initiated: transaction=%v order=%v method=%v amount=%v",
			p["transactionId"], p["orderId"], p["method"], p["amount"])
	})
	bus.Subscribe(events.PaymentVerified, func(p events.Payload) {
		log.Printf("payment verified: transaction=%v order=%v status=%v",
			p["transactionId"], p["orderId"], p["status"])
	})
	bus.Subscribe(events.PaymentVerificationSubmitted, func(p events.Payload) {
		log.Printf("receipt submitted for review: transaction=%v order=%v method=%v",
			p["transactionId"], p["orderId"], p["method"])
	})
	bus.Subscribe(events.PaymentConfirmed, func(p events.Payload) {
		log.Printf("payment confirmed: transaction=%v order=%v", p["transactionId"], p["orderId"])
	})
	bus.Subscribe(events.PaymentRejected, func(p events.Payload) {
		log.Printf("payment rejected: transaction=%v order=%v reason=%v",
			p["transactionId"], p["orderId"], p["reason"])
	})
}
