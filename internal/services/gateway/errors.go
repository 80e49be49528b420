package gateway

import "errors"

// Service errors
var (
	ErrUnsupportedMethod       = errors.New("unsupported payment method")
	ErrInvalidPaymentData      = errors.New("invalid payment data")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrTransactionExpired      = errors.New("transaction expired")
	ErrInvalidVerificationCode = errors.New("invalid payment code")
	ErrInvalidStatus           = errors.New("invalid transaction status")
	ErrPersistence             = errors.New("persistence failure")
)
