package gateway

import (
	"fmt"
	"strconv"
	"time"

	"dzpay/internal/config"
	"dzpay/internal/models"
)

// redotpayHandler simulates the hosted card gateway: it signs the request,
// builds the redirect URL and a scannable QR for it. The customer finishes
// the payment on the provider page and the provider calls back with the
// outcome.
type redotpayHandler struct {
	cfg config.PaymentConfig
}

func (h *redotpayHandler) Method() models.Method { return models.MethodRedotpay }

func (h *redotpayHandler) Initiate(req models.PaymentRequest, now time.Time) (*models.Transaction, *InitiationResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = "DZD"
	}
	description := req.Description
	if description == "" {
		description = "Purchase from Digital Algeria store"
	}

	timestamp := now.UnixMilli()
	payload := map[string]string{
		"merchant_id":    h.cfg.RedotpayMerchant,
		"order_id":       req.OrderID,
		"amount":         strconv.FormatInt(req.Amount, 10),
		"currency":       currency,
		"customer_name":  req.CustomerName,
		"customer_email": req.CustomerEmail,
		"customer_phone": req.CustomerPhone,
		"description":    description,
		"return_url":     req.ReturnURL,
		"callback_url":   req.CallbackURL,
		"timestamp":      strconv.FormatInt(timestamp, 10),
		"signature":      signRequest(h.cfg.SignatureSecret, req.OrderID, req.Amount, timestamp),
	}

	paymentURL := buildRedirectURL(h.cfg.RedotpayURL, payload)

	data := make(models.JSON, len(payload))
	for k, v := range payload {
		data[k] = v
	}

	expiresAt := now.Add(h.cfg.RedotpayExpiry)
	tx := &models.Transaction{
		ID:        newTransactionID(models.MethodRedotpay),
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Method:    models.MethodRedotpay,
		Status:    models.StatusPending,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}

	result := &InitiationResult{
		TransactionID: tx.ID,
		Method:        models.MethodRedotpay,
		PaymentURL:    paymentURL,
		QRCode:        qrCodeURL(paymentURL),
		Instructions: []string{
			"1. Open the payment link or scan the QR code",
			"2. Complete the payment on the secure Redotpay page",
			"3. You will be redirected automatically once the payment completes",
			fmt.Sprintf("4. Keep your transaction number for follow-up: %s", tx.ID),
		},
	}
	return tx, result, nil
}
