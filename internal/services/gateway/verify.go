package gateway

import (
	"context"
	"errors"
	"fmt"

	"dzpay/internal/events"
	"dzpay/internal/models"
	"dzpay/internal/repositories"
)

// VerifyPayment applies caller-supplied verification data to a pending
// transaction. The expiry check runs before any rail-specific logic and
// wins over everything: a valid code submitted after the deadline still
// expires the transaction.
func (s *service) VerifyPayment(ctx context.Context, transactionID string, req models.VerificationRequest) (*VerificationResult, error) {
	unlock := s.locks.lock(transactionID)
	defer unlock()

	tx, err := s.repo.Get(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	now := s.now()
	if tx.Expired(now) {
		tx.Status = models.StatusExpired
		s.persist(ctx, tx)
		return nil, ErrTransactionExpired
	}

	switch tx.Method {
	case models.MethodRedotpay:
		return s.verifyRedotpay(ctx, tx, req)
	case models.MethodBaridiMob:
		return s.verifyBaridiMob(ctx, tx, req)
	case models.MethodCCP, models.MethodBankTransfer:
		return s.verifyManual(ctx, tx, req)
	case models.MethodCashOnDelivery:
		return s.verifyCashOnDelivery(ctx, tx)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, tx.Method)
}

// verifyRedotpay trusts the caller-supplied outcome. This is the simulated
// provider boundary: a real integration would re-check against the
// provider's API before accepting the status.
func (s *service) verifyRedotpay(ctx context.Context, tx *models.Transaction, req models.VerificationRequest) (*VerificationResult, error) {
	status := req.Status
	if status == "" {
		status = models.StatusPaid
	}

	now := s.now()
	tx.Status = status
	tx.GatewayTransactionID = req.GatewayTransactionID
	tx.VerifiedAt = &now
	s.persist(ctx, tx)

	s.publishVerified(tx)
	return &VerificationResult{Status: tx.Status, Transaction: tx}, nil
}

// verifyBaridiMob matches the submitted code against the code generated
// at initiation. A mismatch leaves the transaction untouched.
func (s *service) verifyBaridiMob(ctx context.Context, tx *models.Transaction, req models.VerificationRequest) (*VerificationResult, error) {
	expected, _ := tx.Data["paymentCode"].(string)
	if req.PaymentCode == "" || req.PaymentCode != expected {
		return nil, ErrInvalidVerificationCode
	}

	now := s.now()
	tx.Status = models.StatusPaid
	tx.VerifiedAt = &now
	s.persist(ctx, tx)

	s.publishVerified(tx)
	return &VerificationResult{Status: tx.Status, Transaction: tx}, nil
}

// verifyManual records the submitted receipt and parks the transaction in
// pending_verification until an admin reviews it. This never confirms the
// payment on its own.
func (s *service) verifyManual(ctx context.Context, tx *models.Transaction, req models.VerificationRequest) (*VerificationResult, error) {
	now := s.now()
	tx.Status = models.StatusPendingVerification
	tx.VerificationData = &models.VerificationRecord{
		ReceiptNumber: req.ReceiptNumber,
		ReceiptImage:  req.ReceiptImage,
		Notes:         req.Notes,
		SubmittedAt:   now,
	}
	s.persist(ctx, tx)

	s.bus.Publish(events.PaymentVerificationSubmitted, events.Payload{
		"transactionId": tx.ID,
		"orderId":       tx.OrderID,
		"method":        tx.Method,
	})

	return &VerificationResult{
		Status:      tx.Status,
		Message:     "Payment receipt received, under review",
		Transaction: tx,
	}, nil
}

// verifyCashOnDelivery marks the transaction as waiting for the physical
// hand-over. The actual settlement happens through ConfirmManualPayment
// once the courier reports delivery.
func (s *service) verifyCashOnDelivery(ctx context.Context, tx *models.Transaction) (*VerificationResult, error) {
	tx.Status = models.StatusPendingDelivery
	s.persist(ctx, tx)

	s.publishVerified(tx)
	return &VerificationResult{Status: tx.Status, Transaction: tx}, nil
}

// ConfirmManualPayment is the admin decision on a reviewed transaction:
// approve to paid or reject with a reason. Terminal transactions refuse
// further transitions.
func (s *service) ConfirmManualPayment(ctx context.Context, transactionID string, confirmed bool, notes string) (*VerificationResult, error) {
	unlock := s.locks.lock(transactionID)
	defer unlock()

	tx, err := s.repo.Get(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if models.TerminalStatus(tx.Status) {
		return nil, fmt.Errorf("%w: transaction already %s", ErrInvalidStatus, tx.Status)
	}

	now := s.now()
	if confirmed {
		tx.Status = models.StatusPaid
		tx.ConfirmedAt = &now
		tx.AdminNotes = notes
		s.persist(ctx, tx)

		s.bus.Publish(events.PaymentConfirmed, events.Payload{
			"transactionId": tx.ID,
			"orderId":       tx.OrderID,
			"method":        tx.Method,
		})
	} else {
		tx.Status = models.StatusRejected
		tx.RejectedAt = &now
		tx.RejectionReason = notes
		s.persist(ctx, tx)

		s.bus.Publish(events.PaymentRejected, events.Payload{
			"transactionId": tx.ID,
			"orderId":       tx.OrderID,
			"reason":        notes,
		})
	}

	return &VerificationResult{Status: tx.Status, Transaction: tx}, nil
}

func (s *service) publishVerified(tx *models.Transaction) {
	s.bus.Publish(events.PaymentVerified, events.Payload{
		"transactionId": tx.ID,
		"status":        tx.Status,
		"orderId":       tx.OrderID,
	})
}
