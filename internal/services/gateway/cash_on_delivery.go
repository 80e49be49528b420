package gateway

import (
	"fmt"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/models"
)

// codHandler opens a cash-on-delivery transaction. There is no online
// step and no deadline: the transaction stays pending until the courier
// confirms the hand-over.
type codHandler struct {
	cfg config.PaymentConfig
}

func (h *codHandler) Method() models.Method { return models.MethodCashOnDelivery }

func (h *codHandler) Initiate(req models.PaymentRequest, now time.Time) (*models.Transaction, *InitiationResult, error) {
	if req.CustomerName == "" {
		return nil, nil, fmt.Errorf("%w: customer_name is required", ErrInvalidPaymentData)
	}
	if req.CustomerPhone == "" {
		return nil, nil, fmt.Errorf("%w: customer_phone is required", ErrInvalidPaymentData)
	}
	if req.CustomerAddress == "" {
		return nil, nil, fmt.Errorf("%w: customer_address is required", ErrInvalidPaymentData)
	}

	tx := &models.Transaction{
		ID:      newTransactionID(models.MethodCashOnDelivery),
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  models.MethodCashOnDelivery,
		Status:  models.StatusPending,
		Data: models.JSON{
			"customerName":    req.CustomerName,
			"customerPhone":   req.CustomerPhone,
			"customerAddress": req.CustomerAddress,
		},
		CreatedAt: now,
		// No ExpiresAt: cash on delivery never auto-expires.
	}

	result := &InitiationResult{
		TransactionID: tx.ID,
		Method:        models.MethodCashOnDelivery,
		Instructions: []string{
			"Your order is confirmed",
			"You will pay cash when the product is delivered",
			fmt.Sprintf("We will contact you on: %s", req.CustomerPhone),
			fmt.Sprintf("Delivery address: %s", req.CustomerAddress),
			"Delivery time: 2-5 business days",
			fmt.Sprintf("Support line: %s", h.cfg.SupportPhone),
		},
		NextSteps: []string{
			"Wait for the courier's call",
			"Have the exact cash amount ready",
			"Inspect the product before paying",
			"Ask for a purchase receipt",
		},
	}
	return tx, result, nil
}
