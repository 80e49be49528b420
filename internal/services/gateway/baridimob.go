package gateway

import (
	"fmt"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/models"
)

// baridimobHandler opens a mobile-wallet transaction. A random 6-digit
// payment code is generated at initiation; the payer writes it in the
// transfer note and verification matches it back automatically.
type baridimobHandler struct {
	cfg config.PaymentConfig
}

func (h *baridimobHandler) Method() models.Method { return models.MethodBaridiMob }

func (h *baridimobHandler) Initiate(req models.PaymentRequest, now time.Time) (*models.Transaction, *InitiationResult, error) {
	paymentCode := newPaymentCode()

	expiresAt := now.Add(h.cfg.BaridiMobExpiry)
	tx := &models.Transaction{
		ID:      newTransactionID(models.MethodBaridiMob),
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  models.MethodBaridiMob,
		Status:  models.StatusPending,
		Data: models.JSON{
			"recipientNumber": h.cfg.BaridiMobNumber,
			"recipientName":   h.cfg.BaridiMobName,
			"paymentCode":     paymentCode,
			"customerPhone":   req.CustomerPhone,
		},
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}

	result := &InitiationResult{
		TransactionID: tx.ID,
		Method:        models.MethodBaridiMob,
		PaymentCode:   paymentCode,
		Instructions: []string{
			"Paying through BaridiMob:",
			"1. Open the BaridiMob app on your phone",
			"2. Choose \"Transfer money\"",
			fmt.Sprintf("3. Enter the wallet number: %s", h.cfg.BaridiMobNumber),
			fmt.Sprintf("4. Beneficiary name: %s", h.cfg.BaridiMobName),
			fmt.Sprintf("5. Amount: %d DZD", req.Amount),
			fmt.Sprintf("6. Write in the note field: %s", paymentCode),
			"7. Complete the transfer",
			"",
			"After the transfer:",
			"- Verification is automatic within minutes",
			"- Keep the operation number",
			fmt.Sprintf("- Support line: %s", h.cfg.SupportPhone),
		},
		Details: models.JSON{
			"number": h.cfg.BaridiMobNumber,
			"name":   h.cfg.BaridiMobName,
		},
	}
	return tx, result, nil
}
