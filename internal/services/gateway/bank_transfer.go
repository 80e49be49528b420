package gateway

import (
	"fmt"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/models"
)

// bankTransferHandler opens a wire-transfer transaction with the store's
// bank details and a per-order reference. Resolved by manual receipt review.
type bankTransferHandler struct {
	cfg config.PaymentConfig
}

func (h *bankTransferHandler) Method() models.Method { return models.MethodBankTransfer }

func (h *bankTransferHandler) Initiate(req models.PaymentRequest, now time.Time) (*models.Transaction, *InitiationResult, error) {
	if req.CustomerName == "" {
		return nil, nil, fmt.Errorf("%w: customer_name is required", ErrInvalidPaymentData)
	}

	reference := fmt.Sprintf("%s-%s", h.cfg.BankReference, req.OrderID)

	expiresAt := now.Add(h.cfg.BankExpiry)
	tx := &models.Transaction{
		ID:      newTransactionID(models.MethodBankTransfer),
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  models.MethodBankTransfer,
		Status:  models.StatusPending,
		Data: models.JSON{
			"bankName":      h.cfg.BankName,
			"accountNumber": h.cfg.AccountNumber,
			"accountName":   h.cfg.AccountName,
			"iban":          h.cfg.IBAN,
			"bic":           h.cfg.BIC,
			"reference":     reference,
			"customerName":  req.CustomerName,
		},
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}

	result := &InitiationResult{
		TransactionID: tx.ID,
		Method:        models.MethodBankTransfer,
		Instructions: []string{
			"Paying by bank transfer:",
			fmt.Sprintf("1. Go to any %s branch", h.cfg.BankName),
			"2. Give the following account details:",
			fmt.Sprintf("   - Account number: %s", h.cfg.AccountNumber),
			fmt.Sprintf("   - Account name: %s", h.cfg.AccountName),
			fmt.Sprintf("   - IBAN: %s", h.cfg.IBAN),
			fmt.Sprintf("   - BIC: %s", h.cfg.BIC),
			fmt.Sprintf("3. Amount: %d DZD", req.Amount),
			fmt.Sprintf("4. Write in the reference field: %s", reference),
			"5. Complete the transfer",
			"",
			"After the transfer:",
			fmt.Sprintf("- Send a photo of the transfer receipt to: %s", h.cfg.SupportEmail),
			fmt.Sprintf("- Quote the order number: %s", req.OrderID),
			"- Your order is activated within 24 business hours",
		},
		Details: models.JSON{
			"bank":          h.cfg.BankName,
			"accountNumber": h.cfg.AccountNumber,
			"accountName":   h.cfg.AccountName,
			"iban":          h.cfg.IBAN,
			"reference":     reference,
		},
	}
	return tx, result, nil
}
