package gateway

import (
	"fmt"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/models"
)

// ccpHandler opens a postal-account transaction: the customer wires the
// amount to the store's CCP account at any post office, then submits the
// receipt for manual review.
type ccpHandler struct {
	cfg config.PaymentConfig
}

func (h *ccpHandler) Method() models.Method { return models.MethodCCP }

func (h *ccpHandler) Initiate(req models.PaymentRequest, now time.Time) (*models.Transaction, *InitiationResult, error) {
	expiresAt := now.Add(h.cfg.CCPExpiry)
	tx := &models.Transaction{
		ID:      newTransactionID(models.MethodCCP),
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  models.MethodCCP,
		Status:  models.StatusPending,
		Data: models.JSON{
			"ccpNumber":    h.cfg.CCPNumber,
			"ccpName":      h.cfg.CCPName,
			"ccpBranch":    h.cfg.CCPBranch,
			"customerName": req.CustomerName,
		},
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}

	result := &InitiationResult{
		TransactionID: tx.ID,
		Method:        models.MethodCCP,
		Instructions: []string{
			"Paying through the postal account:",
			"1. Go to any post office",
			fmt.Sprintf("2. Give the CCP account number: %s", h.cfg.CCPNumber),
			fmt.Sprintf("3. Beneficiary name: %s", h.cfg.CCPName),
			fmt.Sprintf("4. Amount: %d DZD", req.Amount),
			fmt.Sprintf("5. Branch: %s", h.cfg.CCPBranch),
			fmt.Sprintf("6. Quote the order number: %s", req.OrderID),
			"",
			"After paying:",
			"- Keep the payment receipt",
			"- Send a photo of the receipt to support",
			"- Your order is activated within 24 hours",
		},
		Details: models.JSON{
			"number": h.cfg.CCPNumber,
			"name":   h.cfg.CCPName,
			"branch": h.cfg.CCPBranch,
		},
	}
	return tx, result, nil
}
