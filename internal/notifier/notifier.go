// Package notifier holds the outbound delivery variants: transactional email
// senders and mailing-list subscribers. Exactly one of each is selected at
// startup from configuration.
package notifier

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured     = errors.New("no provider configured")
	ErrDelivery          = errors.New("email delivery failed")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrSubscribe         = errors.New("subscription failed")
)

type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// EmailSender delivers one email and returns the provider's message id.
type EmailSender interface {
	Name() string
	Send(ctx context.Context, email Email) (string, error)
}

// Subscriber forwards one address to a mailing list. It returns
// ErrAlreadySubscribed when the provider reports a duplicate.
type Subscriber interface {
	Name() string
	Subscribe(ctx context.Context, email string) error
}

type disabledSender struct{}

func (disabledSender) Name() string { return "disabled" }

func (disabledSender) Send(context.Context, Email) (string, error) {
	return "", ErrNotConfigured
}

type noSubscriber struct{}

func (noSubscriber) Name() string { return "none" }

func (noSubscriber) Subscribe(context.Context, string) error {
	return ErrNotConfigured
}
