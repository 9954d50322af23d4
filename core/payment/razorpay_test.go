package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irsalhamdi/course-market/config"
)

func TestRazorpayCreateOrder(t *testing.T) {
	var got struct {
		Method string
		Path   string
		User   string
		Pass   string
		Body   map[string]interface{}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Method = r.Method
		got.Path = r.URL.Path
		got.User, got.Pass, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&got.Body); err != nil {
			t.Errorf("decoding order request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_IluGWxBm9U8zJ8",
			"amount":   50000,
			"currency": "INR",
			"receipt":  "rcpt_1",
		})
	}))
	defer srv.Close()

	rz := NewRazorpay(config.Razorpay{URL: srv.URL, Key: "rzp_test_key", Secret: "rzp_test_secret"})

	ord, err := rz.CreateOrder(context.Background(), 50000, "INR", "rcpt_1")
	if err != nil {
		t.Fatalf("creating order: %v", err)
	}

	if got.Method != http.MethodPost || got.Path != "/v1/orders" {
		t.Errorf("expected POST /v1/orders, got %s %s", got.Method, got.Path)
	}
	if got.User != "rzp_test_key" || got.Pass != "rzp_test_secret" {
		t.Errorf("expected the key pair as basic auth, got %s:%s", got.User, got.Pass)
	}

	wantBody := map[string]interface{}{
		"amount":   float64(50000),
		"currency": "INR",
		"receipt":  "rcpt_1",
	}
	if diff := cmp.Diff(wantBody, got.Body); diff != "" {
		t.Errorf("order request mismatch (-want +got):\n%s", diff)
	}

	wantOrder := Order{ID: "order_IluGWxBm9U8zJ8", Amount: 50000, Currency: "INR", Receipt: "rcpt_1"}
	if diff := cmp.Diff(wantOrder, ord); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRazorpayCreateOrderAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"code": "BAD_REQUEST_ERROR", "description": "Authentication failed"},
		})
	}))
	defer srv.Close()

	rz := NewRazorpay(config.Razorpay{URL: srv.URL, Key: "bad", Secret: "bad"})

	if _, err := rz.CreateOrder(context.Background(), 50000, "INR", "rcpt_1"); err == nil {
		t.Fatal("expected an error on a non-2xx gateway response")
	}
}

func TestRazorpayCreateOrderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	rz := NewRazorpay(config.Razorpay{URL: srv.URL, Key: "k", Secret: "s"})

	if _, err := rz.CreateOrder(context.Background(), 50000, "INR", "rcpt_1"); err == nil {
		t.Fatal("expected an error when the gateway is unreachable")
	}
}
