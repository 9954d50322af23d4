package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature reports whether sig is the hex HMAC-SHA256 of
// "<orderID>|<paymentID>" keyed by the gateway secret. The comparison is
// constant-time.
func VerifySignature(secret string, orderID string, paymentID string, sig string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(sig))
}
