package config

import "time"

// PaymentConfig holds the settings for every supported payment rail.
// Values default to the storefront's published accounts and can be
// overridden per deployment through the environment.
type PaymentConfig struct {
	RedotpayURL      string
	RedotpayMerchant string
	SignatureSecret  string

	CCPNumber string
	CCPName   string
	CCPBranch string

	BaridiMobNumber string
	BaridiMobName   string

	BankName      string
	AccountNumber string
	AccountName   string
	IBAN          string
	BIC           string
	BankReference string // prefix for transfer references, e.g. "DA"

	SupportPhone string
	SupportEmail string

	RedotpayExpiry  time.Duration
	BaridiMobExpiry time.Duration
	BankExpiry      time.Duration
	CCPExpiry       time.Duration

	RetentionPeriod time.Duration
	CleanupInterval time.Duration
}

// LoadPaymentConfig resolves payment settings from the environment.
func LoadPaymentConfig() PaymentConfig {
	return PaymentConfig{
		RedotpayURL:      GetEnv("REDOTPAY_URL", "https://redotpay.com/pay"),
		RedotpayMerchant: GetEnv("REDOTPAY_MERCHANT_ID", "DEMO_MERCHANT"),
		SignatureSecret:  GetEnv("PAYMENT_SIGNATURE_SECRET", "digital-algeria-secret-2026"),

		CCPNumber: GetEnv("CCP_NUMBER", "12345678901234567890"),
		CCPName:   GetEnv("CCP_NAME", "Digital Algeria"),
		CCPBranch: GetEnv("CCP_BRANCH", "Alger Centre"),

		BaridiMobNumber: GetEnv("BARIDIMOB_NUMBER", "0550123456"),
		BaridiMobName:   GetEnv("BARIDIMOB_NAME", "Digital Algeria"),

		BankName:      GetEnv("BANK_NAME", "BNA"),
		AccountNumber: GetEnv("BANK_ACCOUNT_NUMBER", "00100234567890123456"),
		AccountName:   GetEnv("BANK_ACCOUNT_NAME", "Digital Algeria SARL"),
		IBAN:          GetEnv("BANK_IBAN", "DZ580002100001234567890123"),
		BIC:           GetEnv("BANK_BIC", "BNALDZAL"),
		BankReference: GetEnv("BANK_REFERENCE_PREFIX", "DA"),

		SupportPhone: GetEnv("SUPPORT_PHONE", "0550123456"),
		SupportEmail: GetEnv("SUPPORT_EMAIL", "support@digital-algeria.dz"),

		RedotpayExpiry:  GetDurationEnv("REDOTPAY_EXPIRY", 30*time.Minute),
		BaridiMobExpiry: GetDurationEnv("BARIDIMOB_EXPIRY", 24*time.Hour),
		BankExpiry:      GetDurationEnv("BANK_TRANSFER_EXPIRY", 3*24*time.Hour),
		CCPExpiry:       GetDurationEnv("CCP_EXPIRY", 7*24*time.Hour),

		RetentionPeriod: GetDurationEnv("TRANSACTION_RETENTION", 30*24*time.Hour),
		CleanupInterval: GetDurationEnv("CLEANUP_INTERVAL", time.Hour),
	}
}
