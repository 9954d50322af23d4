package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	secret := "test-secret"
	orderID := "order_IluGWxBm9U8zJ8"
	paymentID := "pay_G3P9vcIhRs3NV4"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	sig := hex.EncodeToString(mac.Sum(nil))

	if !VerifySignature(secret, orderID, paymentID, sig) {
		t.Fatal("expected the genuine signature to verify")
	}

	if VerifySignature("other-secret", orderID, paymentID, sig) {
		t.Error("signature verified under the wrong secret")
	}
}

func TestVerifySignatureMutations(t *testing.T) {
	secret := "test-secret"
	orderID := "order_IluGWxBm9U8zJ8"
	paymentID := "pay_G3P9vcIhRs3NV4"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	sig := hex.EncodeToString(mac.Sum(nil))

	// Flipping any single character of any input must reject.
	if VerifySignature(secret, mutate(orderID), paymentID, sig) {
		t.Error("mutated order id verified")
	}
	if VerifySignature(secret, orderID, mutate(paymentID), sig) {
		t.Error("mutated payment id verified")
	}
	if VerifySignature(secret, orderID, paymentID, mutate(sig)) {
		t.Error("mutated signature verified")
	}
	if VerifySignature(secret, orderID, paymentID, sig[:len(sig)-1]) {
		t.Error("truncated signature verified")
	}
	if VerifySignature(secret, orderID, paymentID, "") {
		t.Error("empty signature verified")
	}
}

func mutate(s string) string {
	b := []byte(s)
	if b[0] == 'x' {
		b[0] = 'y'
	} else {
		b[0] = 'x'
	}
	return string(b)
}
