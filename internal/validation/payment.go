package validation

import (
	"dzpay/internal/models"
)

// Payment validates a payment initiation request. Rail-specific required
// fields are checked here so a malformed request fails before any record
// is created.
func (v *Validator) Payment(req *models.PaymentRequest) {
	v.Required("order_id", req.OrderID)
	v.Positive("amount", req.Amount)
	v.Check(req.Method.Valid(), "method", "must be a supported payment method")

	switch req.Method {
	case models.MethodCashOnDelivery:
		v.Required("customer_name", req.CustomerName)
		v.Required("customer_phone", req.CustomerPhone)
		v.Required("customer_address", req.CustomerAddress)
		if req.CustomerPhone != "" {
			v.Phone("customer_phone", req.CustomerPhone)
		}
	case models.MethodBankTransfer:
		v.Required("customer_name", req.CustomerName)
	}
}
