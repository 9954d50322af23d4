package payment

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/irsalhamdi/course-market/config"
)

// Razorpay creates orders through the Razorpay Orders API. The key pair
// authenticates via basic auth, as the API requires.
type Razorpay struct {
	client *resty.Client
}

func NewRazorpay(cfg config.Razorpay) *Razorpay {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetBasicAuth(cfg.Key, cfg.Secret).
		SetHeader("Content-Type", "application/json")

	return &Razorpay{client: client}
}

func (rz *Razorpay) CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (Order, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	var ord Order
	resp, err := rz.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&ord).
		Post("/v1/orders")
	if err != nil {
		return Order{}, fmt.Errorf("creating razorpay order: %w", err)
	}

	if resp.IsError() {
		return Order{}, fmt.Errorf("creating razorpay order: status[%s] body[%s]", resp.Status(), resp.String())
	}

	return ord, nil
}
