package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/CortexBlog/blog-service/internal/notifier"
	"github.com/CortexBlog/blog-service/pkg/utils"
	"go.uber.org/zap"
)

const contactEmailTemplate = `
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
`

type contactService struct {
	logger *zap.Logger
	sender notifier.EmailSender
	from   string
	to     string
}

func newContactService(logger *zap.Logger, sender notifier.EmailSender, from, to string) Contact {
	return &contactService{
		logger: logger,
		sender: sender,
		from:   from,
		to:     to,
	}
}

func (s *contactService) Submit(ctx context.Context, input dto.ContactRequest) (string, error) {
	if utils.IsSpam(input.Honeypot) {
		return "", ErrSpamDetected
	}

	if utils.HasEmpty(input.Name, input.Email, input.Message) {
		return "", ErrMissingFields
	}

	if !utils.ValidateEmail(input.Email) {
		return "", ErrInvalidEmail
	}

	name := utils.SanitizeInput(input.Name)
	message := utils.SanitizeInput(input.Message)

	id, err := s.sender.Send(ctx, notifier.Email{
		From:    s.from,
		To:      s.to,
		Subject: "New Contact Form Submission from " + name,
		HTML:    renderContactEmail(name, input.Email, message),
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to send contact email via %s: %s", s.sender.Name(), err.Error())
		return "", ErrEmailDelivery
	}

	return id, nil
}

// renderContactEmail expects name and message to be sanitized already.
func renderContactEmail(name, email, message string) string {
	return fmt.Sprintf(contactEmailTemplate, name, email, strings.ReplaceAll(message, "\n", "<br>"))
}
