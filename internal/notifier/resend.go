package notifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
}

func NewResend(apiKey string, httpClient *http.Client) EmailSender {
	return &resendSender{
		client: resend.NewCustomClient(httpClient, apiKey),
	}
}

func (s *resendSender) Name() string {
	return "resend"
}

func (s *resendSender) Send(ctx context.Context, email Email) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return sent.Id, nil
}
