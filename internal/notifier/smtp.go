package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Dialer is the part of gomail.Dialer the SMTP sender uses.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpSender struct {
	dialer Dialer
}

func NewSMTP(host string, port int, user, pass string) EmailSender {
	return NewSMTPWithDialer(gomail.NewDialer(host, port, user, pass))
}

func NewSMTPWithDialer(dialer Dialer) EmailSender {
	return &smtpSender{
		dialer: dialer,
	}
}

func (s *smtpSender) Name() string {
	return "smtp"
}

// Send returns the generated Message-ID, since SMTP relays hand back none.
func (s *smtpSender) Send(ctx context.Context, email Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()

	m := gomail.NewMessage()
	m.SetHeader("From", email.From)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", id, senderDomain(email.From)))
	m.SetBody("text/html", email.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return id, nil
}

func senderDomain(from string) string {
	from = strings.TrimRight(from, ">")
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		return from[i+1:]
	}
	return "localhost"
}
