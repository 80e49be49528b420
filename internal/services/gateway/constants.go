package gateway

import "dzpay/internal/models"

// Transaction ID prefixes, one per rail.
const (
	PrefixRedotpay       = "txn_"
	PrefixCashOnDelivery = "cod_"
	PrefixCCP            = "ccp_"
	PrefixBaridiMob      = "brm_"
	PrefixBankTransfer   = "bnk_"
)

// IDPrefix returns the transaction ID prefix for a rail.
func IDPrefix(method models.Method) string {
	switch method {
	case models.MethodRedotpay:
		return PrefixRedotpay
	case models.MethodCashOnDelivery:
		return PrefixCashOnDelivery
	case models.MethodCCP:
		return PrefixCCP
	case models.MethodBaridiMob:
		return PrefixBaridiMob
	case models.MethodBankTransfer:
		return PrefixBankTransfer
	}
	return "txn_"
}

// Flat fees per rail, in DZD.
const (
	FeeRedotpay       = 0
	FeeCashOnDelivery = 400
	FeeCCP            = 50
	FeeBaridiMob      = 0
	FeeBankTransfer   = 100
)

// methodCatalog is the fixed configuration table behind GetPaymentMethods.
var methodCatalog = []models.PaymentMethodInfo{
	{
		ID:          models.MethodRedotpay,
		Name:        "Redotpay",
		Online:      true,
		Fee:         FeeRedotpay,
		Description: "Secure online payment by card",
		Instructions: []string{
			"Fast and secure",
			"All cards accepted",
			"Instant confirmation",
		},
	},
	{
		ID:          models.MethodCashOnDelivery,
		Name:        "Cash on delivery",
		Online:      false,
		Fee:         FeeCashOnDelivery,
		Description: "Pay cash when the product is delivered",
		Instructions: []string{
			"No upfront payment",
			"Pay on delivery",
			"Algeria only",
		},
	},
	{
		ID:          models.MethodCCP,
		Name:        "CCP postal account",
		Online:      false,
		Fee:         FeeCCP,
		Description: "Payment through the postal current account",
		Instructions: []string{
			"Available at every post office",
			"Requires an office visit",
			"Paper receipt",
		},
	},
	{
		ID:          models.MethodBaridiMob,
		Name:        "BaridiMob",
		Online:      true,
		Fee:         FeeBaridiMob,
		Description: "Payment through the BaridiMob app",
		Instructions: []string{
			"Fast in-app transfer",
			"Instant payment",
			"Requires a BaridiMob account",
		},
	},
	{
		ID:          models.MethodBankTransfer,
		Name:        "Bank transfer",
		Online:      false,
		Fee:         FeeBankTransfer,
		Description: "Direct wire transfer",
		Instructions: []string{
			"Safe and guaranteed",
			"Suited to large amounts",
			"Requires a branch visit",
		},
	},
}
