package gateway

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"dzpay/internal/models"
)

// signRequest computes a keyed MAC over "orderID:amount:timestamp".
// The gateway on the other side is expected to recompute and compare it
// before honoring the redirect.
func signRequest(secret, orderID string, amount int64, timestamp int64) string {
	h, err := blake2b.New256([]byte(secret))
	if err != nil {
		// Only possible with a key longer than 64 bytes.
		panic(fmt.Sprintf("invalid signature key: %v", err))
	}
	fmt.Fprintf(h, "%s:%d:%d", orderID, amount, timestamp)
	return hex.EncodeToString(h.Sum(nil))
}

// buildRedirectURL query-encodes the signed payload onto the gateway base URL.
func buildRedirectURL(baseURL string, payload map[string]string) string {
	params := url.Values{}
	for key, value := range payload {
		if value != "" {
			params.Set(key, value)
		}
	}
	return baseURL + "?" + params.Encode()
}

// qrCodeURL returns a scannable image for the given text.
func qrCodeURL(text string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" + url.QueryEscape(text)
}

// newTransactionID builds a method-prefixed, globally unique ID.
func newTransactionID(method models.Method) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return IDPrefix(method) + suffix
}

// newPaymentCode generates the random 6-digit transfer reference for
// BaridiMob payments.
func newPaymentCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("failed to generate payment code: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}
