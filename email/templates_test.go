package email

import (
	"strings"
	"testing"
)

func TestRenderEnrollment(t *testing.T) {
	subject, body := RenderEnrollment("Go from scratch", "Ravi")

	if subject != "Successfully enrolled into Go from scratch" {
		t.Errorf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "Dear Ravi,") {
		t.Errorf("body does not greet the student: %s", body)
	}
	if !strings.Contains(body, "Go from scratch") {
		t.Errorf("body does not name the course: %s", body)
	}
}

func TestRenderReceipt(t *testing.T) {
	subject, body := RenderReceipt("Ravi", 5000, "order_1", "pay_1")

	if subject != "Payment Received" {
		t.Errorf("unexpected subject %q", subject)
	}
	// 5000 paise is 50 rupees.
	if !strings.Contains(body, "50.00") {
		t.Errorf("body does not show the amount in rupees: %s", body)
	}
	if !strings.Contains(body, "order_1") || !strings.Contains(body, "pay_1") {
		t.Errorf("body does not reference the order and payment ids: %s", body)
	}
}

func TestRenderReceiptOddAmount(t *testing.T) {
	_, body := RenderReceipt("Ravi", 123456, "order_1", "pay_1")

	if !strings.Contains(body, "1234.56") {
		t.Errorf("body does not keep paise precision: %s", body)
	}
}
