package service

import (
	"context"
	"errors"

	"github.com/CortexBlog/blog-service/internal/dto"
	"github.com/CortexBlog/blog-service/internal/notifier"
	"github.com/CortexBlog/blog-service/pkg/utils"
	"go.uber.org/zap"
)

type newsletterService struct {
	logger     *zap.Logger
	subscriber notifier.Subscriber
}

func newNewsletterService(logger *zap.Logger, subscriber notifier.Subscriber) Newsletter {
	return &newsletterService{
		logger:     logger,
		subscriber: subscriber,
	}
}

func (s *newsletterService) Signup(ctx context.Context, input dto.NewsletterRequest) (Subscription, error) {
	if utils.IsSpam(input.Honeypot) {
		return Subscription{}, ErrSpamDetected
	}

	if input.Email == "" || !utils.ValidateEmail(input.Email) {
		return Subscription{}, ErrInvalidEmail
	}

	err := s.subscriber.Subscribe(ctx, input.Email)
	switch {
	case err == nil:
		return Subscription{Provider: s.subscriber.Name(), Forwarded: true}, nil
	case errors.Is(err, notifier.ErrNotConfigured):
		s.logger.Sugar().Infof("newsletter signup received but no provider is configured")
		return Subscription{Provider: s.subscriber.Name()}, nil
	case errors.Is(err, notifier.ErrAlreadySubscribed):
		return Subscription{}, ErrAlreadySubscribed
	default:
		s.logger.Sugar().Errorf("failed to subscribe via %s: %s", s.subscriber.Name(), err.Error())
		return Subscription{}, ErrSubscribe
	}
}
