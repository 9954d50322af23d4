package payment

import (
	"context"

	"github.com/irsalhamdi/course-market/core/course"
	"github.com/irsalhamdi/course-market/core/progress"
	"github.com/irsalhamdi/course-market/core/user"
)

// Currency is the only settlement currency the gateway account accepts.
// Order amounts are expressed in its minor unit (paise).
const Currency = "INR"

// Order is the gateway-side order descriptor. It is returned to the client
// for checkout and never stored locally.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Response is the envelope every payment endpoint answers with. Message
// carries the order descriptor on a successful capture and a plain string
// everywhere else.
type Response struct {
	Success bool        `json:"success"`
	Message interface{} `json:"message"`
}

type CaptureNew struct {
	Courses []string `json:"courses"`
}

// VerifyNew carries the parameters the gateway appends to the checkout
// redirect. Field names are the gateway's own.
type VerifyNew struct {
	OrderID   string   `json:"razorpay_order_id"`
	PaymentID string   `json:"razorpay_payment_id"`
	Signature string   `json:"razorpay_signature"`
	Courses   []string `json:"courses"`
}

type ReceiptNew struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Amount    int64  `json:"amount"`
}

// Store is the slice of the document store the payment flow touches. It is an
// interface so handler tests can swap in fakes.
type Store interface {
	FetchCourse(ctx context.Context, courseID string) (course.Course, error)
	EnrollStudent(ctx context.Context, courseID string, userID string) (course.Course, error)
	CreateProgress(ctx context.Context, prog progress.Progress) error
	PushUserEnrollment(ctx context.Context, userID string, courseID string, progressID string) (user.User, error)
	FetchUser(ctx context.Context, userID string) (user.User, error)
}

// Gateway creates orders on the payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (Order, error)
}

// Mailer sends a single HTML mail.
type Mailer interface {
	Send(to string, subject string, body string) error
}
