package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
)

// SMTPSink sends mail synchronously over plain SMTP. Used by the
// notification consumer; the API process enqueues instead (OutboxSink).
type SMTPSink struct{}

func NewSMTPSink() *SMTPSink {
	return &SMTPSink{}
}

func (s *SMTPSink) Send(ctx context.Context, subject, body, to string) error {
	from := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	addr := fmt.Sprintf("%s:%s", host, port)
	msg := []byte(
		"From: " + os.Getenv("SMTP_FROM") + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body + "\r\n")

	auth := smtp.PlainAuth("", from, pass, host)
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}
