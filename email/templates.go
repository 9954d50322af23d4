package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Templates are embedded so the binary needs no assets directory. Execution
// over plain string fields cannot fail, so Render* keeps a simple signature.

var enrollmentTmpl = template.Must(template.New("enrollment").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
	<h2>Course Registration Confirmation</h2>
	<p>Dear {{.FirstName}},</p>
	<p>You have successfully registered for the course <strong>{{.CourseName}}</strong>.</p>
	<p>Head over to your dashboard to start learning.</p>
</div>`))

var receiptTmpl = template.Must(template.New("receipt").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
	<h2>Payment Received</h2>
	<p>Dear {{.FirstName}},</p>
	<p>We have received your payment of <strong>&#8377;{{.Amount}}</strong>.</p>
	<p>Your order id is <strong>{{.OrderID}}</strong> and payment id is <strong>{{.PaymentID}}</strong>.</p>
</div>`))

// RenderEnrollment builds the mail confirming enrollment into a course.
func RenderEnrollment(courseName string, firstName string) (subject string, body string) {
	subject = fmt.Sprintf("Successfully enrolled into %s", courseName)

	data := struct {
		CourseName string
		FirstName  string
	}{courseName, firstName}

	var buf bytes.Buffer
	_ = enrollmentTmpl.Execute(&buf, data)
	return subject, buf.String()
}

// RenderReceipt builds the payment receipt. The amount arrives in minor
// units (paise) and is shown in rupees.
func RenderReceipt(firstName string, amount int64, orderID string, paymentID string) (subject string, body string) {
	subject = "Payment Received"

	data := struct {
		FirstName string
		Amount    string
		OrderID   string
		PaymentID string
	}{firstName, fmt.Sprintf("%.2f", float64(amount)/100), orderID, paymentID}

	var buf bytes.Buffer
	_ = receiptTmpl.Execute(&buf, data)
	return subject, buf.String()
}
