package notifier

import (
	"net/http"

	"github.com/CortexBlog/blog-service/internal/config"
	"github.com/CortexBlog/blog-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewEmailSender picks the first configured email transport:
// Resend, then SMTP, otherwise a sender that always fails.
func NewEmailSender(cfg config.EmailConfig, httpClient *http.Client) EmailSender {
	switch {
	case cfg.ResendAPIKey != "":
		return NewResend(cfg.ResendAPIKey, httpClient)
	case cfg.SMTPHost != "":
		return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	default:
		return disabledSender{}
	}
}

// NewSubscriber picks the first configured mailing-list provider in fixed
// priority order. Selection is exclusive: the others are never consulted.
// subscribers may be nil when no database is configured.
func NewSubscriber(logger *zap.Logger, cfg config.NewsletterConfig, httpClient *http.Client, subscribers postgres.Subscriber) Subscriber {
	switch {
	case cfg.MailchimpAPIKey != "" && cfg.MailchimpAudienceID != "" && cfg.MailchimpServerPrefix != "":
		return NewMailchimp(logger, httpClient, cfg.MailchimpAPIKey, cfg.MailchimpAudienceID, cfg.MailchimpServerPrefix)
	case cfg.ConvertKitAPIKey != "" && cfg.ConvertKitFormID != "":
		return NewConvertKit(logger, httpClient, cfg.ConvertKitAPIKey, cfg.ConvertKitFormID)
	case cfg.ButtondownAPIKey != "":
		return NewButtondown(logger, httpClient, cfg.ButtondownAPIKey)
	case cfg.DatabaseURL != "" && subscribers != nil:
		return NewPostgres(logger, subscribers)
	default:
		return noSubscriber{}
	}
}
