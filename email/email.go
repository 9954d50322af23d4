package email

import (
	"fmt"
	"net/smtp"

	"github.com/irsalhamdi/course-market/config"
)

// Email sends HTML mail over plain-auth SMTP.
type Email struct {
	address  string
	password string
	host     string
	port     string
}

func New(cfg config.Email) *Email {
	return &Email{
		address:  cfg.Address,
		password: cfg.Password,
		host:     cfg.Host,
		port:     cfg.Port,
	}
}

func (e *Email) Send(to string, subject string, body string) error {
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s\r\n", e.address)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += body

	auth := smtp.PlainAuth("", e.address, e.password, e.host)
	if err := smtp.SendMail(e.host+":"+e.port, auth, e.address, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}
